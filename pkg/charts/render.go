package charts

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when a chart without data points is rendered.
var ErrNoData = errors.New("there is no data to render")

// ErrUnknownFormat is returned for unsupported image formats.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an image format charts can be rendered to.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case PNG:
		return chart.PNG, nil
	case SVG:
		return chart.SVG, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

var rgba = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*([\d.]+)\s*)?\)$`)

// color converts a CSS rgb/rgba or hex color. Unparseable colors fall back
// to the go-chart default gray.
func color(css string) drawing.Color {
	if m := rgba.FindStringSubmatch(css); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		a := 1.0
		if m[4] != "" {
			a, _ = strconv.ParseFloat(m[4], 64)
		}
		return drawing.Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a * 255)}
	}

	if len(css) > 0 && css[0] == '#' {
		return drawing.ColorFromHex(css[1:])
	}

	return chart.ColorAlternateGray
}

// Hex returns a CSS color as #rrggbb. The alpha channel is dropped.
func Hex(css string) string {
	c := color(css)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderBar renders a bar chart configuration as an image.
func RenderBar(w io.Writer, cfg *Config, format Format, width, height int) error {
	provider, err := format.provider()
	if err != nil {
		return err
	}

	if cfg == nil || len(cfg.Values()) == 0 {
		return ErrNoData
	}

	colors := cfg.Colors()
	maximum := 0.0
	bars := make([]chart.Value, 0, len(cfg.Values()))
	for i, v := range cfg.Values() {
		if v > maximum {
			maximum = v
		}
		bars = append(bars, chart.Value{
			Label: cfg.Data.Labels[i],
			Value: v,
			Style: chart.Style{FillColor: color(colors[i]), StrokeColor: color(colors[i])},
		})
	}

	// go-chart rejects an empty value range
	top := maximum * 1.1
	if top == 0 {
		top = 1
	}

	bc := chart.BarChart{
		Title:    cfg.Data.Datasets[0].Label,
		Width:    width,
		Height:   height,
		BarWidth: barWidth(width, len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	return bc.Render(provider, w)
}

func barWidth(width, bars int) int {
	w := width / (bars * 2)
	if w < 8 {
		return 8
	}
	if w > 80 {
		return 80
	}
	return w
}

// RenderPie renders a pie chart configuration as an image.
func RenderPie(w io.Writer, cfg *Config, format Format, width, height int) error {
	provider, err := format.provider()
	if err != nil {
		return err
	}

	if cfg == nil || len(cfg.Values()) == 0 {
		return ErrNoData
	}

	colors := cfg.Colors()
	total := 0.0
	values := make([]chart.Value, 0, len(cfg.Values()))
	for i, v := range cfg.Values() {
		total += v
		style := chart.Style{StrokeColor: drawing.ColorWhite, StrokeWidth: 2}
		if colors[i] != "" {
			style.FillColor = color(colors[i])
		}
		values = append(values, chart.Value{Label: cfg.Data.Labels[i], Value: v, Style: style})
	}

	if total == 0 {
		return ErrNoData
	}

	pc := chart.PieChart{
		Width:  width,
		Height: height,
		Values: values,
	}

	return pc.Render(provider, w)
}
