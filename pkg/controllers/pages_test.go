package controllers_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/spendlens/backend/pkg/models"
	"github.com/spendlens/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPages() {
	tests := []struct {
		path     string
		contains []string
	}{
		{"/", []string{`id="landing-lottie"`, "<lottie-player", "loop", "autoplay"}},
		{"/home", []string{`id="home-three-canvas"`, `action="/upload"`, `name="file"`}},
		{"/dashboard", []string{`id="dashboard-three-canvas"`, `id="lineChart"`, `id="pieChart"`, `id="goalForm"`, `id="goalResult"`, `id="three-container"`}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			for _, s := range tt.contains {
				assert.Contains(t, recorder.Body.String(), s)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUpload() {
	body, headers := test.CSV(suite.T(), "STATEMENT.CSV",
		"date,description,amount,type",
		"2024-05-03,SWIGGY ORDER 12931,-432.5,DEBIT",
	)
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
	assert.Equal(suite.T(), "/dashboard", recorder.Header().Get("Location"))

	upload, err := models.LatestUpload(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "STATEMENT.CSV", upload.Filename)

	rows, err := upload.Rows(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), rows, 1)
	assert.Equal(suite.T(), "Food", rows[0].Category)
	assert.Equal(suite.T(), "debit", rows[0].Type)
	assert.Equal(suite.T(), "2024-05", rows[0].Month)
	assert.Equal(suite.T(), "432.5", rows[0].Amount.String())
}

func (suite *TestSuiteStandard) TestUploadErrors() {
	noPart, noPartHeaders := test.MultipartFile(suite.T(), "statement", "statement.csv", strings.NewReader("amount\n1\n"))
	noName, noNameHeaders := test.MultipartFile(suite.T(), "file", "", strings.NewReader("amount\n1\n"))
	pdf, pdfHeaders := test.MultipartFile(suite.T(), "file", "statement.pdf", strings.NewReader("%PDF-1.4"))
	noAmount, noAmountHeaders := test.CSV(suite.T(), "statement.csv", "date,description", "2024-05-03,Rent")

	tests := []struct {
		name    string
		body    *bytes.Buffer
		headers map[string]string
		message string
	}{
		{"Not multipart", bytes.NewBufferString("file=statement.csv"), map[string]string{"Content-Type": "application/x-www-form-urlencoded"}, "No file part"},
		{"Other field", noPart, noPartHeaders, "No file part"},
		{"No filename", noName, noNameHeaders, "No selected file"},
		{"Wrong suffix", pdf, pdfHeaders, "Invalid file"},
		{"No amount column", noAmount, noAmountHeaders, "the CSV must contain an amount column"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/upload", tt.body, tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Equal(t, tt.message, recorder.Body.String())
		})
	}

	_, err := models.LatestUpload(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrNoUpload)
}

func (suite *TestSuiteStandard) TestUploadReplacesLatest() {
	suite.uploadStatement()

	body, headers := test.CSV(suite.T(), "second.csv", "amount,description", "99,Coffee")
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)

	upload, err := models.LatestUpload(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "second.csv", upload.Filename)
}

func (suite *TestSuiteStandard) TestUploadDatabaseError() {
	suite.CloseDB()

	body, headers := test.CSV(suite.T(), "statement.csv", "amount", "1")
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/upload", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
