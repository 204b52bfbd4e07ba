package controllers

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/charts"
	"github.com/spendlens/backend/pkg/httputil"
)

const (
	defaultChartWidth  = 800
	defaultChartHeight = 400
	maxChartSize       = 4096
)

type ChartResponse struct {
	Data *charts.Config `json:"data"` // Chart.js configuration, null when there is nothing to draw
}

// chart builds a chart configuration and renders it as an image.
type chart struct {
	config func(analysis.Summary) (*charts.Config, bool)
	render func(io.Writer, *charts.Config, charts.Format, int, int) error
}

var dashboardCharts = map[string]chart{
	"monthly": {
		config: func(s analysis.Summary) (*charts.Config, bool) { return charts.Bar(s.MonthlySpending) },
		render: charts.RenderBar,
	},
	"categories": {
		config: func(s analysis.Summary) (*charts.Config, bool) { return charts.Pie(s.CategoryTotals) },
		render: charts.RenderPie,
	},
}

// RegisterChartRoutes registers the routes for the dashboard charts.
func RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:name", OptionsChart)
	r.GET("/:name", GetChart)
}

// OptionsChart returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Charts
//	@Success		204
//	@Param			name	path	string	true	"Chart name, optionally with an image suffix"
//	@Router			/api/charts/{name} [options]
func OptionsChart(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetChart returns a dashboard chart
//
//	@Summary		Get chart
//	@Description	Returns the Chart.js configuration of the "monthly" or "categories" chart.
//	@Description	With a ".png" or ".svg" suffix, the chart is rendered as an image.
//	@Tags			Charts
//	@Produce		json
//	@Produce		png
//	@Produce		image/svg+xml
//	@Param			name	path		string	true	"Chart name, optionally with an image suffix"	example(monthly.png)
//	@Param			width	query		int		false	"Image width in pixels"
//	@Param			height	query		int		false	"Image height in pixels"
//	@Success		200		{object}	ChartResponse
//	@Failure		400		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Router			/api/charts/{name} [get]
func GetChart(c *gin.Context) {
	name, suffix, image := strings.Cut(c.Param("name"), ".")

	ch, ok := dashboardCharts[name]
	if !ok {
		c.JSON(status(errUnknownChart), httpError{
			Error: errUnknownChart.Error(),
		})
		return
	}

	summary, ok := summaryOrError(c)
	if !ok {
		return
	}

	cfg, ok := ch.config(summary)
	if !image {
		if !ok {
			cfg = nil
		}
		c.JSON(http.StatusOK, ChartResponse{Data: cfg})
		return
	}

	width, height, err := chartSize(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	format := charts.Format(strings.ToLower(suffix))
	var buf bytes.Buffer
	err = ch.render(&buf, cfg, format, width, height)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// chartSize reads the image size from the query.
func chartSize(c *gin.Context) (int, int, error) {
	size := func(key string, defaultValue int) (int, error) {
		value, ok := c.GetQuery(key)
		if !ok {
			return defaultValue, nil
		}

		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 || n > maxChartSize {
			return 0, errChartSize
		}
		return n, nil
	}

	width, err := size("width", defaultChartWidth)
	if err != nil {
		return 0, 0, err
	}

	height, err := size("height", defaultChartHeight)
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}
