// Package analysis aggregates uploaded statements into the dashboard summary.
package analysis

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendlens/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// recurringLimit is the number of most frequent descriptions reported.
const recurringLimit = 10

// Summary is the aggregated view of a statement.
type Summary struct {
	MonthlySpending        Amounts  `json:"monthly_spending"`         // Debit sums per month, ordered by month
	AvgMonthlySpending     float64  `json:"avg_monthly_spending"`     // Mean of the monthly debit sums
	EstimatedMonthlyIncome *float64 `json:"estimated_monthly_income"` // Mean of the monthly credit sums, null without credits
	CategoryTotals         Amounts  `json:"category_totals"`          // Debit sums per category, largest first
	Recurring              Counts   `json:"recurring"`                // Most frequent descriptions
}

// IsZero reports if the summary holds no data at all.
func (s Summary) IsZero() bool {
	return s.MonthlySpending.Len() == 0 &&
		s.CategoryTotals.Len() == 0 &&
		s.Recurring.Len() == 0 &&
		s.AvgMonthlySpending == 0 &&
		s.EstimatedMonthlyIncome == nil
}

// MarshalJSON implements the json.Marshaler interface.
//
// An empty summary is sent as {}.
func (s Summary) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("{}"), nil
	}

	type summary Summary
	return json.Marshal(summary(s))
}

// Analyze aggregates transactions into a Summary.
//
// Transactions with a type containing "debit" count as spending,
// those with a type containing "credit" as income.
func Analyze(transactions []models.Transaction) Summary {
	spending := make(map[string]decimal.Decimal)
	income := make(map[string]decimal.Decimal)
	categories := make(map[string]decimal.Decimal)
	descriptions := make(map[string]int)
	var firstSeen []string

	for _, t := range transactions {
		if t.Description != "" {
			if _, ok := descriptions[t.Description]; !ok {
				firstSeen = append(firstSeen, t.Description)
			}
			descriptions[t.Description]++
		}

		switch {
		case t.Debit():
			spending[t.Month] = spending[t.Month].Add(t.Amount)

			category := t.Category
			if strings.TrimSpace(category) == "" {
				category = CategoryOther
			}
			categories[category] = categories[category].Add(t.Amount)
		case t.Credit():
			income[t.Month] = income[t.Month].Add(t.Amount)
		}
	}

	var s Summary

	months := sortedKeys(spending)
	for _, m := range months {
		s.MonthlySpending.Set(m, spending[m].InexactFloat64())
	}
	s.AvgMonthlySpending = mean(spending)

	if len(income) > 0 {
		avg := mean(income)
		s.EstimatedMonthlyIncome = &avg
	}

	names := sortedKeys(categories)
	slices.SortStableFunc(names, func(a, b string) int {
		return categories[b].Cmp(categories[a])
	})
	for _, name := range names {
		s.CategoryTotals.Set(name, categories[name].InexactFloat64())
	}

	slices.SortStableFunc(firstSeen, func(a, b string) int {
		return descriptions[b] - descriptions[a]
	})
	for i, d := range firstSeen {
		if i == recurringLimit {
			break
		}
		s.Recurring.Set(d, descriptions[d])
	}

	return s
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// mean returns the average of the map values, 0 for an empty map.
func mean(m map[string]decimal.Decimal) float64 {
	if len(m) == 0 {
		return 0
	}

	sum := decimal.Zero
	for _, v := range m {
		sum = sum.Add(v)
	}

	return sum.Div(decimal.NewFromInt(int64(len(m)))).InexactFloat64()
}
