package goal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spendlens/backend/pkg/analysis"
)

// suggestionLimit is the number of categories suggestions are made for.
const suggestionLimit = 3

const onTrack = "You're on track! Keep saving consistently."

var (
	ErrIncomeRequired = errors.New("monthly_income required.")
	ErrGoalAmount     = errors.New("goal_amount must be a number")
	ErrMonths         = errors.New("months must be a positive whole number")
)

// Check computes the feasibility of the request against the summary.
//
// Without an explicit monthly income, the income estimated from the
// statement is used. If neither is available, ErrIncomeRequired is returned.
func Check(summary analysis.Summary, r Request) (Result, error) {
	if r.GoalAmount == nil || math.IsNaN(*r.GoalAmount) || math.IsInf(*r.GoalAmount, 0) {
		return Result{}, ErrGoalAmount
	}

	if r.Months == nil || *r.Months <= 0 {
		return Result{}, ErrMonths
	}

	income := r.MonthlyIncome
	if income == nil {
		income = summary.EstimatedMonthlyIncome
	}

	if income == nil {
		return Result{}, ErrIncomeRequired
	}

	goalAmount := *r.GoalAmount
	current := math.Max(0, *income-summary.AvgMonthlySpending)
	needed := goalAmount / float64(*r.Months)
	feasible := current >= needed

	result := Result{
		Feasible:              feasible,
		CurrentMonthlySavings: round(current, 2),
		NeededMonthlySavings:  round(needed, 2),
		Suggestions:           make([]string, 0),
	}

	if current > 0 {
		monthsNeeded := goalAmount / current
		if monthsNeeded != 0 {
			m := round(monthsNeeded, 1)
			result.MonthsNeededAtCurrentRate = &m
		}
	}

	if feasible {
		result.Suggestions = append(result.Suggestions, onTrack)
		return result, nil
	}

	for i, category := range summary.CategoryTotals.Keys() {
		if i == suggestionLimit {
			break
		}

		amount, _ := summary.CategoryTotals.Get(category)
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Reduce %s by 10%% (≈ ₹%s)", category, formatAmount(round(amount*0.1, 2))))
	}

	return result, nil
}

// round rounds the exact binary value of v. A float that prints as a half,
// like 2.675, is slightly below it and rounds down.
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// formatAmount prints an amount with at least one decimal place.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
