package client

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/spendlens/backend/pkg/goal"
)

// GoalFields are the raw values of the goal form inputs.
type GoalFields struct {
	GoalAmount    string
	Months        string
	MonthlyIncome string
}

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?(0[xX][0-9a-fA-F]+|\d+)`)
)

// parseFloat parses the longest numeric prefix of s, like a browser does.
// It returns nil if s does not start with a finite number.
func parseFloat(s string) *float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" || strings.HasSuffix(m, "Infinity") {
		return nil
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parseInt parses the leading integer of s, like a browser does.
func parseInt(s string) *int {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}

	sign, digits := "", m
	if m[0] == '+' || m[0] == '-' {
		sign, digits = m[:1], m[1:]
	}

	base := 10
	if len(digits) > 1 && (digits[1] == 'x' || digits[1] == 'X') {
		base, digits = 16, digits[2:]
	}

	v, err := strconv.ParseInt(sign+digits, base, 0)
	if err != nil {
		return nil
	}

	i := int(v)
	return &i
}

// ParseGoalForm converts the form inputs into a request. Values that are not
// numbers become nil, as does a blank monthly income.
func ParseGoalForm(f GoalFields) goal.Request {
	r := goal.Request{
		GoalAmount: parseFloat(f.GoalAmount),
		Months:     parseInt(f.Months),
	}

	if f.MonthlyIncome != "" {
		r.MonthlyIncome = parseFloat(f.MonthlyIncome)
	}

	return r
}

// FormState is the state of a goal form.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "success"
	case FormFailed:
		return "error"
	}
	return "idle"
}

// GoalForm handles submissions of the goal form and holds the text of the
// result panel.
type GoalForm struct {
	client *Client

	mu     sync.Mutex
	state  FormState
	output string
}

func NewGoalForm(c *Client) *GoalForm {
	return &GoalForm{client: c}
}

// Submit checks the goal entered in the form and updates the result panel.
func (f *GoalForm) Submit(ctx context.Context, fields GoalFields) goal.Outcome {
	f.mu.Lock()
	f.state = FormSubmitting
	f.mu.Unlock()

	outcome := f.client.CheckGoal(ctx, ParseGoalForm(fields))

	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = FormFailed
	if _, ok := outcome.(goal.Ok); ok {
		f.state = FormSucceeded
	}
	f.output = Text(outcome)

	return outcome
}

// Text returns the result panel text for an outcome: the report for a
// result, the message verbatim for an error.
func Text(outcome goal.Outcome) string {
	switch o := outcome.(type) {
	case goal.Ok:
		return FormatReport(o.Result)
	case goal.Err:
		return o.Message
	}
	return ""
}

// State returns the current state of the form.
func (f *GoalForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Output returns the text of the result panel.
func (f *GoalForm) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.output
}
