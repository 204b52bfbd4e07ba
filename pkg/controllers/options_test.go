package controllers_test

import (
	"net/http"
	"testing"

	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/healthz", "OPTIONS, GET"},
		{"http://example.com/version", "OPTIONS, GET"},
		{"http://example.com/api", "OPTIONS, GET"},
		{"http://example.com/api/summary", "OPTIONS, GET"},
		{"http://example.com/api/transactions", "OPTIONS, GET"},
		{"http://example.com/api/check_goal", "OPTIONS, POST"},
		{"http://example.com/api/check_goal/report", "OPTIONS, POST"},
		{"http://example.com/api/charts/monthly", "OPTIONS, GET"},
		{"http://example.com/api/charts/categories.png", "OPTIONS, GET"},
		{"http://example.com/api/effects", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
