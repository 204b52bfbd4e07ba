package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Upload is one imported bank statement.
//
// The most recent upload is the one the dashboard and the goal
// check are computed from.
type Upload struct {
	DefaultModel
	Filename     string        `json:"filename" example:"statement-2024-05.csv"`
	Transactions []Transaction `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (u *Upload) BeforeSave(_ *gorm.DB) error {
	u.Filename = strings.TrimSpace(u.Filename)
	return nil
}

// LatestUpload returns the most recently created upload.
//
// If nothing has been uploaded yet, ErrNoUpload is returned.
func LatestUpload(db *gorm.DB) (Upload, error) {
	var upload Upload
	err := db.Order("created_at DESC").First(&upload).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Upload{}, ErrNoUpload
	}

	return upload, err
}

// Rows returns the transactions of the upload in file order.
func (u Upload) Rows(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.
		Where(&Transaction{UploadID: u.ID}).
		Order("position ASC").
		Find(&transactions).
		Error

	return transactions, err
}
