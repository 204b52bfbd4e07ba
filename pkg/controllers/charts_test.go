package controllers_test

import (
	"bytes"
	"image/png"
	"net/http"
	"testing"

	"github.com/spendlens/backend/pkg/controllers"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestChartNoData() {
	for _, name := range []string{"monthly", "categories"} {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/charts/"+name, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
		assert.JSONEq(suite.T(), `{"data":null}`, recorder.Body.String())
	}

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/charts/monthly.png", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	assert.Equal(suite.T(), "there is no data to render", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestChartMonthly() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/charts/monthly", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ChartResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "bar", response.Data.Type)
	assert.Equal(suite.T(), []string{"2024-04", "2024-05"}, response.Data.Data.Labels)
	require.Len(suite.T(), response.Data.Data.Datasets, 1)
	assert.Equal(suite.T(), "Monthly Spending", response.Data.Data.Datasets[0].Label)
	assert.Equal(suite.T(), []float64{21419.5, 24149}, response.Data.Data.Datasets[0].Data)
}

func (suite *TestSuiteStandard) TestChartCategories() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/charts/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ChartResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "pie", response.Data.Type)
	assert.Equal(suite.T(), []string{"Rent", "Grocery", "Food", "Subscription", "Transport"}, response.Data.Data.Labels)
	assert.Len(suite.T(), response.Data.Colors(), 5)
	assert.Equal(suite.T(), "rgba(75,192,192,0.85)", response.Data.Colors()[0])
}

func (suite *TestSuiteStandard) TestChartImages() {
	suite.uploadStatement()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/charts/monthly.png?width=320&height=200", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), "image/png", recorder.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(recorder.Body.Bytes()))
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), 320, img.Bounds().Dx())
	assert.Equal(suite.T(), 200, img.Bounds().Dy())

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/api/charts/categories.SVG", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.Equal(suite.T(), "image/svg+xml", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Body.String(), "<svg")
}

func (suite *TestSuiteStandard) TestChartErrors() {
	suite.uploadStatement()

	tests := []struct {
		name    string
		url     string
		status  int
		message string
	}{
		{"Unknown chart", "http://example.com/api/charts/weekly", http.StatusNotFound, "there is no chart with this name"},
		{"Unknown chart image", "http://example.com/api/charts/weekly.png", http.StatusNotFound, "there is no chart with this name"},
		{"Unknown format", "http://example.com/api/charts/monthly.gif", http.StatusBadRequest, "unknown image format: gif"},
		{"Width not a number", "http://example.com/api/charts/monthly.png?width=wide", http.StatusBadRequest, "width and height must be whole numbers between 1 and 4096"},
		{"Height too large", "http://example.com/api/charts/categories.svg?height=5000", http.StatusBadRequest, "width and height must be whole numbers between 1 and 4096"},
		{"Zero width", "http://example.com/api/charts/categories.svg?width=0", http.StatusBadRequest, "width and height must be whole numbers between 1 and 4096"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
			assert.Equal(t, tt.message, test.DecodeError(t, recorder.Body.Bytes()))
		})
	}
}
