// Package statement parses bank statement CSV exports.
//
// The first line is a header. The columns "date", "description", "amount"
// and "type" are recognized in any order and case, all other columns are
// ignored. Only "amount" is required.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/pkg/importer"
	"github.com/spendlens/backend/pkg/importer/helpers"
)

const (
	columnDate        = "date"
	columnDescription = "description"
	columnAmount      = "amount"
	columnType        = "type"
)

var ErrMissingAmountColumn = errors.New("the CSV must contain an amount column")

// dateLayouts are tried for every date.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006/01/02",
	"02-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Numeric dates with the month or the day first.
var (
	monthFirstLayouts = []string{"01/02/2006", "1/2/2006", "01-02-2006", "1-2-2006"}
	dayFirstLayouts   = []string{"02/01/2006", "2/1/2006", "02-01-2006", "2-1-2006"}
)

// Parse reads all rows of a statement.
func Parse(f io.Reader) ([]importer.Row, error) {
	reader := csv.NewReader(f)

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	// Exports often have a trailing column on some lines only
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []importer.Row{}, nil
	}
	if err != nil {
		return csvReadError(lineOf(err, 1), fmt.Errorf("could not read header: %w", err))
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	if _, ok := columns[columnAmount]; !ok {
		return []importer.Row{}, ErrMissingAmountColumn
	}

	field := func(record []string, name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return "", ok
		}
		return strings.TrimSpace(record[i]), true
	}

	rows := make([]importer.Row, 0)
	dates := make([]string, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(lineOf(err, line+1), fmt.Errorf("could not read line in CSV: %w", err))
		}
		line, _ = reader.FieldPos(0)

		row := importer.Row{
			ImportHash: helpers.Sha256String(strings.Join(record, ",")),
		}

		date, _ := field(record, columnDate)
		dates = append(dates, date)

		row.Description, _ = field(record, columnDescription)

		amount, _ := field(record, columnAmount)
		row.Amount = parseAmount(amount)

		kind, ok := field(record, columnType)
		if !ok {
			kind = "debit"
		}
		row.Type = strings.ToLower(kind)

		rows = append(rows, row)
	}

	dateParser := newDateParser(dates)
	for i := range rows {
		rows[i].Date = dateParser.parse(dates[i])
	}

	return rows, nil
}

// dateParser parses the dates of one statement.
type dateParser struct {
	layouts []string
}

// newDateParser decides once per statement whether numeric dates are read
// day first. This is the case when the first date of the statement can only
// be read day first, like 15/05/2024. Dates that only match the other order
// are still parsed.
func newDateParser(dates []string) dateParser {
	first, second := monthFirstLayouts, dayFirstLayouts

	for _, date := range dates {
		if date == "" {
			continue
		}

		if parseLayouts(monthFirstLayouts, date) == nil && parseLayouts(dayFirstLayouts, date) != nil {
			first, second = dayFirstLayouts, monthFirstLayouts
		}
		break
	}

	layouts := make([]string, 0, len(dateLayouts)+len(first)+len(second))
	layouts = append(layouts, dateLayouts...)
	layouts = append(layouts, first...)
	layouts = append(layouts, second...)

	return dateParser{layouts: layouts}
}

// parse returns nil if the value does not match any known layout.
func (p dateParser) parse(value string) *time.Time {
	if value == "" {
		return nil
	}

	return parseLayouts(p.layouts, value)
}

func parseLayouts(layouts []string, value string) *time.Time {
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return &t
		}
	}

	return nil
}

// parseAmount returns the absolute amount, unparseable values count as zero.
func parseAmount(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	return amount.Abs()
}

// lineOf returns the line a csv.ParseError occurred in, or fallback for
// other errors.
func lineOf(err error, fallback int) int {
	var parseError *csv.ParseError
	if errors.As(err, &parseError) {
		return parseError.Line
	}

	return fallback
}

// csvReadError returns the an error with the format string, including the line of the input
// the error occurred in in the message.
func csvReadError(line int, err error) ([]importer.Row, error) {
	return []importer.Row{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
