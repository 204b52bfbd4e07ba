// Package goal answers whether a savings goal is reachable with the
// spending and income found in the latest statement.
package goal

// Request is the body of a goal check.
//
// A nil field is a value the sender could not parse, or one it did not send.
type Request struct {
	GoalAmount    *float64 `json:"goal_amount" example:"100000"`
	Months        *int     `json:"months" example:"12"`
	MonthlyIncome *float64 `json:"monthly_income" example:"55000"`
}

// Result is the outcome of a successful goal check.
type Result struct {
	Feasible                  bool     `json:"feasible" example:"false"`
	CurrentMonthlySavings     float64  `json:"current_monthly_savings" example:"4200.5"`
	NeededMonthlySavings      float64  `json:"needed_monthly_savings" example:"8333.33"`
	MonthsNeededAtCurrentRate *float64 `json:"months_needed_at_current_rate" example:"23.8"`
	Suggestions               []string `json:"suggestions"`
}

// Outcome is either Ok or Err.
type Outcome interface {
	outcome()
}

// Ok carries the result of a completed check.
type Ok struct {
	Result Result
}

// Err carries a message explaining why no result could be produced.
type Err struct {
	Message string
}

func (Ok) outcome()  {}
func (Err) outcome() {}
