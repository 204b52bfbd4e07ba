package importer

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/pkg/models"
)

// Row is a parsed line of a bank statement.
type Row struct {
	Date        *time.Time      // nil when the date column is missing or unparseable
	Description string          // Description as given in the statement
	Amount      decimal.Decimal // Absolute amount, zero when unparseable
	Type        string          // Lower-cased transaction type, "debit" when the column is missing
	ImportHash  string          // SHA256 of the raw line
}

// Transaction converts the row into a transaction model for the given position
// and category.
func (r Row) Transaction(position int, category string) models.Transaction {
	return models.Transaction{
		Position:    position,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    category,
		ImportHash:  r.ImportHash,
	}
}
