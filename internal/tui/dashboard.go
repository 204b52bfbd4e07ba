package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spendlens/backend/pkg/analysis"
	"github.com/spendlens/backend/pkg/charts"
)

const fetchTimeout = 30 * time.Second

// Fetcher loads the summary of the latest upload.
type Fetcher interface {
	FetchSummary(ctx context.Context) analysis.Summary
}

// SummaryMsg is sent when a summary has been fetched.
type SummaryMsg struct {
	Summary analysis.Summary
}

// Dashboard is the Bubble Tea model of the terminal dashboard.
type Dashboard struct {
	fetcher Fetcher
	format  Formatter
	surface *Surface
	board   *charts.Board

	spinner spinner.Model
	loading bool
	summary analysis.Summary
	err     error
	width   int
}

// NewDashboard returns a dashboard showing the summaries of fetcher.
func NewDashboard(fetcher Fetcher, format Formatter) Dashboard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	surface := NewSurface(defaultWidth, format)

	return Dashboard{
		fetcher: fetcher,
		format:  format,
		surface: surface,
		board:   charts.NewBoard(surface),
		spinner: sp,
		loading: true,
	}
}

// Init implements tea.Model.
func (d Dashboard) Init() tea.Cmd {
	return tea.Batch(d.fetch(), d.spinner.Tick)
}

func (d Dashboard) fetch() tea.Cmd {
	fetcher := d.fetcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return SummaryMsg{Summary: fetcher.FetchSummary(ctx)}
	}
}

// Update implements tea.Model.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.surface.SetWidth(msg.Width - 4)
		d.err = d.board.DrawSummary(d.summary)
		return d, nil

	case SummaryMsg:
		d.loading = false
		d.summary = msg.Summary
		d.err = d.board.DrawSummary(msg.Summary)
		return d, nil

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			d.board.Clear()
			return d, tea.Quit
		case "r":
			if d.loading {
				return d, nil
			}
			d.loading = true
			return d, tea.Batch(d.fetch(), d.spinner.Tick)
		}
	}

	return d, nil
}

// View implements tea.Model.
func (d Dashboard) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("spendlens"))
	b.WriteString("\n\n")

	switch {
	case d.loading:
		b.WriteString(d.spinner.View() + " Loading summary…")
	case d.err != nil:
		b.WriteString(errorStyle.Render(d.err.Error()))
	default:
		b.WriteString(renderSummary(d.summary, d.surface, d.format))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("r refresh • q quit"))

	return b.String()
}

// RenderSummary renders a summary with its charts for printing.
func RenderSummary(summary analysis.Summary, format Formatter, width int) (string, error) {
	surface := NewSurface(width, format)
	board := charts.NewBoard(surface)
	defer board.Clear()

	if err := board.DrawSummary(summary); err != nil {
		return "", err
	}

	return renderSummary(summary, surface, format), nil
}

func renderSummary(summary analysis.Summary, surface *Surface, format Formatter) string {
	if summary.IsZero() {
		return mutedStyle.Render("No statement uploaded yet. Upload one with `spendlens upload FILE`.")
	}

	var b strings.Builder

	income := mutedStyle.Render("unknown")
	if summary.EstimatedMonthlyIncome != nil {
		income = okStyle.Render(format.Amount(*summary.EstimatedMonthlyIncome))
	}
	fmt.Fprintf(&b, "Average monthly spending  %s\n", format.Amount(summary.AvgMonthlySpending))
	fmt.Fprintf(&b, "Estimated monthly income  %s\n", income)

	if view := surface.View(charts.MonthlyCanvas); view != "" {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(view))
	}

	if view := surface.View(charts.CategoryCanvas); view != "" {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Spending by category"))
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(view))
	}

	if summary.Recurring.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Recurring"))
		for _, description := range summary.Recurring.Keys() {
			count, _ := summary.Recurring.Get(description)
			fmt.Fprintf(&b, "\n  %s × %s", format.Count(count), description)
		}
	}

	return b.String()
}
