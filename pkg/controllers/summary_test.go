package controllers_test

import (
	"net/http"

	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/controllers"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.JSONEq(suite.T(), "{}", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary analysis.Summary
	test.DecodeResponse(suite.T(), &recorder, &summary)

	assert.Equal(suite.T(), []string{"2024-04", "2024-05"}, summary.MonthlySpending.Keys())
	assert.Equal(suite.T(), []float64{21419.5, 24149}, summary.MonthlySpending.Values())
	assert.Equal(suite.T(), 22784.25, summary.AvgMonthlySpending)
	require.NotNil(suite.T(), summary.EstimatedMonthlyIncome)
	assert.Equal(suite.T(), 55000.0, *summary.EstimatedMonthlyIncome)
	assert.Equal(suite.T(), []string{"Rent", "Grocery", "Food", "Subscription", "Transport"}, summary.CategoryTotals.Keys())
	assert.Equal(suite.T(), []string{"Salary ACME Corp", "NETFLIX"}, summary.Recurring.Keys()[:2])
}

// TestSummaryKeyOrder verifies that the mappings keep their order on the wire.
func (suite *TestSuiteStandard) TestSummaryKeyOrder() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Contains(suite.T(), recorder.Body.String(), `"category_totals":{"Rent":40000,"Grocery":2300,"Food":1650.5,"Subscription":1298,"Transport":320}`)
}

func (suite *TestSuiteStandard) TestSummaryDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/summary", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
	assert.Equal(suite.T(), "an error occurred on the server during your request", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactions() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.JSONEq(suite.T(), `{"data":[]}`, recorder.Body.String())

	suite.uploadStatement()

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 10)

	for i, transaction := range response.Data {
		assert.Equal(suite.T(), i, transaction.Position)
	}
	assert.Equal(suite.T(), "credit", response.Data[0].Type)
	assert.Equal(suite.T(), "Rent", response.Data[1].Category)
	assert.Equal(suite.T(), "Transport", response.Data[3].Category)
}
