package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/spendlens/backend/pkg/charts"
)

var ErrChartType = errors.New("chart type cannot be drawn in the terminal")

const (
	defaultWidth = 72
	minBarWidth  = 4
	barRune      = "█"
	sliceRune    = "■"
)

// Surface draws chart configurations as text. Every canvas holds the view of
// the chart drawn last.
type Surface struct {
	mu       sync.Mutex
	width    int
	format   Formatter
	canvases map[string]*drawing
}

// drawing is a chart drawn on a Surface.
type drawing struct {
	surface  *Surface
	canvasID string
	view     string
}

// Destroy removes the chart from its canvas.
func (d *drawing) Destroy() {
	d.surface.mu.Lock()
	defer d.surface.mu.Unlock()

	if d.surface.canvases[d.canvasID] == d {
		delete(d.surface.canvases, d.canvasID)
	}
}

// NewSurface returns a Surface drawing charts width cells wide.
func NewSurface(width int, format Formatter) *Surface {
	if width <= 0 {
		width = defaultWidth
	}

	return &Surface{
		width:    width,
		format:   format,
		canvases: make(map[string]*drawing),
	}
}

// SetWidth sets the width of charts drawn from now on.
func (s *Surface) SetWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width > 0 {
		s.width = width
	}
}

// Draw implements charts.Surface.
func (s *Surface) Draw(canvasID string, cfg *charts.Config) (charts.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var view string
	switch cfg.Type {
	case "bar":
		view = s.bar(cfg)
	case "pie":
		view = s.pie(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrChartType, cfg.Type)
	}

	d := &drawing{surface: s, canvasID: canvasID, view: view}
	s.canvases[canvasID] = d

	return d, nil
}

// View returns the chart on the canvas, or an empty string.
func (s *Surface) View(canvasID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.canvases[canvasID]; ok {
		return d.view
	}
	return ""
}

// Len returns the number of canvases holding a chart.
func (s *Surface) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.canvases)
}

// bar draws one horizontal bar per label.
func (s *Surface) bar(cfg *charts.Config) string {
	values := cfg.Values()
	colors := cfg.Colors()

	amounts := make([]string, len(values))
	labelWidth, amountWidth := 0, 0
	maximum := 0.0
	for i, v := range values {
		amounts[i] = s.format.Amount(v)
		labelWidth = max(labelWidth, lipgloss.Width(cfg.Data.Labels[i]))
		amountWidth = max(amountWidth, lipgloss.Width(amounts[i]))
		maximum = max(maximum, v)
	}

	barWidth := max(minBarWidth, s.width-labelWidth-amountWidth-4)
	if maximum == 0 {
		maximum = 1
	}

	var b strings.Builder
	if len(cfg.Data.Datasets) > 0 && cfg.Data.Datasets[0].Label != "" {
		b.WriteString(headerStyle.Render(cfg.Data.Datasets[0].Label))
		b.WriteString("\n")
	}

	for i, v := range values {
		n := int(v / maximum * float64(barWidth))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(charts.Hex(colors[i])))

		fmt.Fprintf(&b, "%-*s  ", labelWidth, cfg.Data.Labels[i])
		b.WriteString(style.Render(strings.Repeat(barRune, n)))
		b.WriteString(strings.Repeat(" ", barWidth-n))
		fmt.Fprintf(&b, "  %*s\n", amountWidth, amounts[i])
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// pie draws a legend with the share of every label.
func (s *Surface) pie(cfg *charts.Config) string {
	values := cfg.Values()
	colors := cfg.Colors()

	total := 0.0
	labelWidth := 0
	for i, v := range values {
		total += v
		labelWidth = max(labelWidth, lipgloss.Width(cfg.Data.Labels[i]))
	}

	var b strings.Builder
	for i, v := range values {
		share := 0.0
		if total > 0 {
			share = v / total * 100
		}

		style := mutedStyle
		if colors[i] != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(charts.Hex(colors[i])))
		}

		b.WriteString(style.Render(sliceRune))
		fmt.Fprintf(&b, " %-*s  %6s  %s\n", labelWidth, cfg.Data.Labels[i], s.format.Percent(share), s.format.Amount(v))
	}

	return strings.TrimSuffix(b.String(), "\n")
}
