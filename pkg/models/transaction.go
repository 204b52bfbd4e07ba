package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction is a single row of an uploaded statement.
type Transaction struct {
	DefaultModel
	UploadID    uuid.UUID       `json:"uploadId" gorm:"type:uuid;index"`
	Position    int             `json:"position" example:"3"`                             // Row number in the statement
	Date        *time.Time      `json:"date" example:"2024-05-03T00:00:00Z"`              // Date of the transaction, null if it could not be parsed
	Description string          `json:"description" example:"SWIGGY ORDER 12931"`         // Description as given in the statement
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"432.5"` // Absolute amount
	Type        string          `json:"type" example:"debit"`                             // debit or credit
	Category    string          `json:"category" example:"Food"`                          // Category assigned on import
	Month       string          `json:"month" gorm:"index" example:"2024-05"`             // YYYY-MM or "unknown"
	ImportHash  string          `json:"importHash"`                                       // SHA256 of the raw statement row
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	if t.Date != nil {
		d := t.Date.In(time.UTC)
		t.Date = &d
	}
	return
}

// BeforeSave
//   - trims whitespace from string fields
//   - lower-cases the type and defaults it to debit
//   - stores the absolute amount
//   - derives the month label from the date
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.ImportHash = strings.TrimSpace(t.ImportHash)

	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	if t.Type == "" {
		t.Type = "debit"
	}

	t.Amount = t.Amount.Abs()

	if t.Date != nil {
		d := t.Date.In(time.UTC)
		t.Date = &d
	}
	t.Month = types.Label(t.Date)

	return
}

// Debit reports if the transaction is money spent.
func (t Transaction) Debit() bool {
	return strings.Contains(t.Type, "debit")
}

// Credit reports if the transaction is money received.
func (t Transaction) Credit() bool {
	return strings.Contains(t.Type, "credit")
}
