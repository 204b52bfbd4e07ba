package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spendlens/backend/pkg/client"
)

var errRequired = errors.New("this field is required")

// NewGoalForm returns a form writing the goal inputs into fields.
func NewGoalForm(fields *client.GoalFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal amount").
				Placeholder("100000").
				Value(&fields.GoalAmount).
				Validate(required),
			huh.NewInput().
				Title("Months").
				Placeholder("12").
				Value(&fields.Months).
				Validate(required),
			huh.NewInput().
				Title("Monthly income").
				Description("Leave blank to use the income found in the statement").
				Value(&fields.MonthlyIncome),
		),
	)
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}
