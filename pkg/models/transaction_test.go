package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/internal/types"
	"github.com/spendlens/backend/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	date := time.Date(2024, 2, 14, 9, 30, 0, 0, time.FixedZone("IST", 19800))
	upload := suite.createTestUpload(models.Upload{
		Filename: "statement.csv",
		Transactions: []models.Transaction{
			{
				Date:        &date,
				Description: "  Uber trip \t",
				Amount:      decimal.NewFromFloat(-250.5),
				Type:        " DEBIT ",
			},
			{
				Description: "Salary",
				Amount:      decimal.NewFromFloat(50000),
				Type:        "",
			},
		},
	})

	rows, err := upload.Rows(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)

	suite.Assert().Equal("Uber trip", rows[0].Description)
	suite.Assert().Equal("debit", rows[0].Type)
	suite.Assert().True(rows[0].Amount.Equal(decimal.NewFromFloat(250.5)), "Amount is %s", rows[0].Amount)
	suite.Assert().Equal("2024-02", rows[0].Month)
	suite.Assert().Equal(time.UTC, rows[0].Date.Location())

	suite.Assert().Equal("debit", rows[1].Type, "Type must default to debit")
	suite.Assert().Equal(types.UnknownMonth, rows[1].Month)
	suite.Assert().Nil(rows[1].Date)
}

func (suite *TestSuiteStandard) TestTransactionDirection() {
	tests := []struct {
		kind   string
		debit  bool
		credit bool
	}{
		{"debit", true, false},
		{"card debit", true, false},
		{"credit", false, true},
		{"transfer", false, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.kind, func(t *testing.T) {
			transaction := models.Transaction{Type: tt.kind}
			assert.Equal(t, tt.debit, transaction.Debit())
			assert.Equal(t, tt.credit, transaction.Credit())
		})
	}
}
