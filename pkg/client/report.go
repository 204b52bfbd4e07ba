package client

import (
	"strconv"
	"strings"

	"github.com/spendlens/backend/pkg/goal"
)

// number formats a number the way the browser prints it.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatReport renders a goal result as the text shown in the result panel.
func FormatReport(r goal.Result) string {
	var b strings.Builder

	if r.Feasible {
		b.WriteString("Feasible: Yes ✅\n")
	} else {
		b.WriteString("Feasible: No ❌\n")
	}

	b.WriteString("Current Monthly Savings: ₹" + number(r.CurrentMonthlySavings) + "\n")
	b.WriteString("Needed Monthly Savings: ₹" + number(r.NeededMonthlySavings) + "\n")

	if r.MonthsNeededAtCurrentRate != nil && *r.MonthsNeededAtCurrentRate != 0 {
		b.WriteString("Months needed at current savings: " + number(*r.MonthsNeededAtCurrentRate) + "\n")
	}

	b.WriteString("\nSuggestions:\n")
	for _, s := range r.Suggestions {
		b.WriteString("- " + s + "\n")
	}

	return b.String()
}
