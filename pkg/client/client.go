// Package client talks to the spendlens API the way the dashboard page does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/goal"
)

// ErrCheckGoal is the message shown when a goal check could not be completed.
const ErrCheckGoal = "Error checking goal."

var ErrUpload = errors.New("upload failed")

// Client is an API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL. A nil httpClient uses a
// client with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchSummary returns the summary of the latest upload.
//
// It never fails: any error results in an empty summary and is only logged.
func (c *Client) FetchSummary(ctx context.Context) analysis.Summary {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/summary", nil)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching summary")
		return analysis.Summary{}
	}

	res, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching summary")
		return analysis.Summary{}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Debug().Int("status", res.StatusCode).Msg("summary not available")
		return analysis.Summary{}
	}

	var summary analysis.Summary
	if err := json.NewDecoder(res.Body).Decode(&summary); err != nil {
		log.Error().Err(err).Msg("Error fetching summary")
		return analysis.Summary{}
	}

	return summary
}

// goalResponse is either a goal.Result or an error message.
type goalResponse struct {
	Error                     *string   `json:"error"`
	Feasible                  bool      `json:"feasible"`
	CurrentMonthlySavings     float64   `json:"current_monthly_savings"`
	NeededMonthlySavings      float64   `json:"needed_monthly_savings"`
	MonthsNeededAtCurrentRate *float64  `json:"months_needed_at_current_rate"`
	Suggestions               *[]string `json:"suggestions"`
}

// CheckGoal submits a goal check.
//
// A message sent by the server is returned verbatim as goal.Err. Transport
// and decoding failures are logged and return ErrCheckGoal.
func (c *Client) CheckGoal(ctx context.Context, r goal.Request) goal.Outcome {
	data, err := c.checkGoal(ctx, r)
	if err != nil {
		log.Error().Err(err).Msg("Error checking goal")
		return goal.Err{Message: ErrCheckGoal}
	}

	if data.Error != nil && *data.Error != "" {
		return goal.Err{Message: *data.Error}
	}

	if data.Suggestions == nil {
		log.Error().Msg("Error checking goal: response has no suggestions")
		return goal.Err{Message: ErrCheckGoal}
	}

	return goal.Ok{Result: goal.Result{
		Feasible:                  data.Feasible,
		CurrentMonthlySavings:     data.CurrentMonthlySavings,
		NeededMonthlySavings:      data.NeededMonthlySavings,
		MonthsNeededAtCurrentRate: data.MonthsNeededAtCurrentRate,
		Suggestions:               *data.Suggestions,
	}}
}

func (c *Client) checkGoal(ctx context.Context, r goal.Request) (goalResponse, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return goalResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/check_goal", bytes.NewReader(body))
	if err != nil {
		return goalResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return goalResponse{}, err
	}
	defer res.Body.Close()

	// Error responses carry a message, so the body is decoded for all status codes
	var data goalResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return goalResponse{}, fmt.Errorf("decoding response with status %d: %w", res.StatusCode, err)
	}

	return data, nil
}

// Upload uploads a statement CSV.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return err
	}

	if _, err := io.Copy(part, file); err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	// A successful upload redirects to the dashboard, which is not needed here
	noRedirect := *c.http
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	res, err := noRedirect.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusFound || res.StatusCode == http.StatusSeeOther || res.StatusCode == http.StatusOK {
		return nil
	}

	message, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("%w: %s: %s", ErrUpload, res.Status, strings.TrimSpace(string(message)))
}
