package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter prints numbers with the grouping and decimal separators of a
// locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for a BCP 47 tag. Invalid tags fall back
// to English.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return Formatter{printer: message.NewPrinter(tag)}
}

// Amount formats a money amount with two decimal places.
func (f Formatter) Amount(v float64) string {
	return "₹" + f.printer.Sprintf("%.2f", v)
}

// Count formats a whole number.
func (f Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Percent formats a share in percent with one decimal place.
func (f Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%.1f", v) + "%"
}
