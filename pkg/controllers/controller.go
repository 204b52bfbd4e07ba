package controllers

import (
	"errors"
	"net/http"

	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/charts"
	"github.com/spendlens/backend/pkg/effects"
	"github.com/spendlens/backend/pkg/models"
)

// Controller holds the settings shared by the handlers.
type Controller struct {
	Categorizer    analysis.Categorizer
	EffectFPS      int
	OriginPatterns []string // Hosts allowed to open effect streams in addition to the API host
}

// New returns a Controller using the default categorization rules.
func New() Controller {
	return Controller{
		Categorizer: analysis.NewCategorizer(analysis.DefaultRules),
		EffectFPS:   effects.DefaultFPS,
	}
}

type httpError struct {
	Error string `json:"error" example:"monthly_income required."`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, charts.ErrNoData) || errors.Is(err, errUnknownChart) || errors.Is(err, errUnknownEffect) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Upload errors. These are sent as plain text.
var (
	errNoFilePart     = errors.New("No file part")
	errNoSelectedFile = errors.New("No selected file")
	errInvalidFile    = errors.New("Invalid file")
)

var (
	errUnknownChart  = errors.New("there is no chart with this name")
	errUnknownEffect = errors.New("there is no streamed effect with this name")
	errChartSize     = errors.New("width and height must be whole numbers between 1 and 4096")
	errViewport      = errors.New("width, height and dpr must be positive numbers")
	errNotANumber    = errors.New("invalid goal")
)

// latestSummary returns the summary of the latest upload. Without any upload,
// the summary is empty.
func latestSummary() (analysis.Summary, error) {
	upload, err := models.LatestUpload(models.DB)
	if errors.Is(err, models.ErrNoUpload) {
		return analysis.Summary{}, nil
	} else if err != nil {
		return analysis.Summary{}, err
	}

	rows, err := upload.Rows(models.DB)
	if err != nil {
		return analysis.Summary{}, err
	}

	return analysis.Analyze(rows), nil
}
