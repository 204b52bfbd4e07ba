package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/spendlens/backend/pkg/client"
	"github.com/spendlens/backend/pkg/controllers"
	"github.com/spendlens/backend/pkg/goal"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCheckGoal() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/check_goal", map[string]any{
		"goal_amount": 100000,
		"months":      12,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result goal.Result
	test.DecodeResponse(suite.T(), &recorder, &result)

	assert.True(suite.T(), result.Feasible)
	assert.Equal(suite.T(), 32215.75, result.CurrentMonthlySavings)
	assert.Equal(suite.T(), 8333.33, result.NeededMonthlySavings)
	require.NotNil(suite.T(), result.MonthsNeededAtCurrentRate)
	assert.Equal(suite.T(), 3.1, *result.MonthsNeededAtCurrentRate)
	assert.Equal(suite.T(), []string{"You're on track! Keep saving consistently."}, result.Suggestions)
}

func (suite *TestSuiteStandard) TestCheckGoalInfeasible() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/check_goal", map[string]any{
		"goal_amount":    500000,
		"months":         "6",
		"monthly_income": 25000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result goal.Result
	test.DecodeResponse(suite.T(), &recorder, &result)

	assert.False(suite.T(), result.Feasible)
	assert.Equal(suite.T(), 2215.75, result.CurrentMonthlySavings)
	assert.Equal(suite.T(), []string{
		"Reduce Rent by 10% (≈ ₹4000.0)",
		"Reduce Grocery by 10% (≈ ₹230.0)",
		"Reduce Food by 10% (≈ ₹165.05)",
	}, result.Suggestions)
}

func (suite *TestSuiteStandard) TestCheckGoalErrors() {
	tests := []struct {
		name    string
		body    any
		upload  bool
		message string
	}{
		{"No income and no statement", map[string]any{"goal_amount": 1000, "months": 2}, false, "monthly_income required."},
		{"Explicit null income without credits", map[string]any{"goal_amount": 1000, "monthly_income": nil}, false, "monthly_income required."},
		{"Null goal", map[string]any{"goal_amount": nil, "months": 2, "monthly_income": 100}, true, "goal_amount must be a number"},
		{"Null months", map[string]any{"goal_amount": 1000, "months": nil}, true, "months must be a positive whole number"},
		{"Zero months", map[string]any{"goal_amount": 1000, "months": 0}, true, "months must be a positive whole number"},
		{"Months below one", map[string]any{"goal_amount": 1000, "months": 0.5}, true, "months must be a positive whole number"},
		{"Text goal", map[string]any{"goal_amount": "a lot", "months": 3}, true, "invalid goal: goal_amount is not a number"},
		{"Boolean months", map[string]any{"goal_amount": 10, "months": true}, true, "invalid goal: months is not a number"},
		{"Empty body", "", true, "the request body must not be empty"},
		{"Broken JSON", `{"goal_amount": `, true, "the body of your request contains invalid or un-parseable data. Please check and try again"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			if tt.upload {
				suite.uploadStatement()
			}

			recorder := test.Request(t, http.MethodPost, "http://example.com/api/check_goal", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, tt.message, test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}

// TestCheckGoalDefaults verifies that a missing goal counts as 0 and
// missing months as 1.
func (suite *TestSuiteStandard) TestCheckGoalDefaults() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/check_goal", map[string]any{
		"monthly_income": 1000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var result goal.Result
	test.DecodeResponse(suite.T(), &recorder, &result)

	assert.True(suite.T(), result.Feasible)
	assert.Equal(suite.T(), 1000.0, result.CurrentMonthlySavings)
	assert.Equal(suite.T(), 0.0, result.NeededMonthlySavings)
	assert.Nil(suite.T(), result.MonthsNeededAtCurrentRate)
}

func (suite *TestSuiteStandard) TestCheckGoalReport() {
	suite.uploadStatement()

	tests := []struct {
		name   string
		fields url.Values
		want   string
	}{
		{
			"Feasible",
			url.Values{"goal_amount": {"100000"}, "months": {"12 months"}, "monthly_income": {""}},
			"Feasible: Yes ✅\nCurrent Monthly Savings: ₹32215.75\nNeeded Monthly Savings: ₹8333.33\nMonths needed at current savings: 3.1\n\nSuggestions:\n- You're on track! Keep saving consistently.\n",
		},
		{
			"Not a number",
			url.Values{"goal_amount": {"lots"}, "months": {"12"}},
			"goal_amount must be a number",
		},
		{
			"Hex months and estimated income",
			url.Values{"goal_amount": {"100"}, "months": {"0x2"}, "monthly_income": {"none"}},
			"Feasible: Yes ✅\nCurrent Monthly Savings: ₹32215.75\nNeeded Monthly Savings: ₹50\n\nSuggestions:\n- You're on track! Keep saving consistently.\n",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/api/check_goal/report", tt.fields.Encode(), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.ReportResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.want, response.Text)
		})
	}
}

func (suite *TestSuiteStandard) TestCheckGoalReportDatabaseError() {
	suite.CloseDB()

	form := url.Values{"goal_amount": {"100"}, "months": {"1"}}
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/check_goal/report", form.Encode(), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), client.ErrCheckGoal, response.Text)
}

func (suite *TestSuiteStandard) TestCheckGoalReportIncomeRequired() {
	form := url.Values{"goal_amount": {"100"}, "months": {"2"}, "monthly_income": {"abc"}}
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/api/check_goal/report", form.Encode(), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "monthly_income required.", response.Text)
}
