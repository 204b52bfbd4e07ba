package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestLatestUploadEmpty() {
	_, err := models.LatestUpload(models.DB)
	suite.Assert().ErrorIs(err, models.ErrNoUpload)
}

func (suite *TestSuiteStandard) TestLatestUpload() {
	suite.createTestUpload(models.Upload{Filename: "april.csv"})
	time.Sleep(5 * time.Millisecond)
	suite.createTestUpload(models.Upload{Filename: "  may.csv "})

	upload, err := models.LatestUpload(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal("may.csv", upload.Filename)
}

func (suite *TestSuiteStandard) TestUploadRowsInFileOrder() {
	upload := suite.createTestUpload(models.Upload{
		Filename: "statement.csv",
		Transactions: []models.Transaction{
			{Position: 2, Description: "second", Amount: decimal.NewFromFloat(2)},
			{Position: 1, Description: "first", Amount: decimal.NewFromFloat(1)},
		},
	})

	rows, err := upload.Rows(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal("first", rows[0].Description)
	suite.Assert().Equal("second", rows[1].Description)
}
