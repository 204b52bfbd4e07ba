package charts

import (
	"github.com/spendlens/backend/pkg/analysis"
)

// Canvas IDs of the dashboard page.
const (
	MonthlyCanvas  = "lineChart"
	CategoryCanvas = "pieChart"
)

const (
	barColor      = "rgba(75,192,192,0.9)"
	barFadedColor = "rgba(75,192,192,0.25)"
	barHoverColor = "rgba(75,192,192,1)"
	labelColor    = "#222"
	tickColor     = "#333"
)

// Palette holds the pie chart colors. Categories past the end of the
// palette are drawn without an assigned color.
var Palette = []string{
	"rgba(75,192,192,0.85)", "rgba(255,99,132,0.85)", "rgba(54,162,235,0.85)", "rgba(255,206,86,0.85)",
	"rgba(156,39,176,0.85)", "rgba(255,152,0,0.85)", "rgba(0,188,212,0.85)", "rgba(255,193,7,0.85)",
	"rgba(139,195,74,0.85)", "rgba(255,87,34,0.85)",
}

func boolPtr(b bool) *bool {
	return &b
}

// Bar returns the monthly spending bar chart. The labels are the months in
// the order of the mapping. ok is false for an empty mapping.
func Bar(monthly analysis.Amounts) (cfg *Config, ok bool) {
	if monthly.Len() == 0 {
		return nil, false
	}

	return &Config{
		Type: "bar",
		Data: Data{
			Labels: monthly.Keys(),
			Datasets: []Dataset{{
				Label:                "Monthly Spending",
				Data:                 monthly.Values(),
				BackgroundColor:      barColor,
				Gradient:             &Gradient{Height: 400, From: barColor, To: barFadedColor},
				HoverBackgroundColor: barHoverColor,
				BorderRadius:         8,
				BorderSkipped:        boolPtr(false),
			}},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: false,
			Plugins: Plugins{
				Legend: Legend{Display: boolPtr(true), Position: "top", Labels: FontColors{Color: labelColor}},
				Tooltip: &Tooltip{
					Enabled:         true,
					BackgroundColor: "rgba(0,0,0,0.7)",
					TitleColor:      "#fff",
					BodyColor:       "#fff",
					Padding:         10,
				},
			},
			Scales: &Scales{
				Y: Axis{BeginAtZero: true, Ticks: FontColors{Color: tickColor}, Grid: Grid{Color: "rgba(0,0,0,0.05)"}},
				X: Axis{Ticks: FontColors{Color: tickColor}, Grid: Grid{Display: boolPtr(false)}},
			},
			Animation: Animation{Duration: 1000, Easing: "easeOutQuart"},
		},
	}, true
}

// Pie returns the category pie chart. ok is false for an empty mapping.
func Pie(categories analysis.Amounts) (cfg *Config, ok bool) {
	if categories.Len() == 0 {
		return nil, false
	}

	labels := categories.Keys()
	colors := Palette
	if len(labels) < len(colors) {
		colors = colors[:len(labels)]
	}

	return &Config{
		Type: "pie",
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Data:            categories.Values(),
				BackgroundColor: append([]string(nil), colors...),
				BorderColor:     "#fff",
				BorderWidth:     2,
				HoverOffset:     8,
			}},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: false,
			Plugins: Plugins{
				Legend: Legend{Position: "right", Labels: FontColors{Color: labelColor}},
			},
			Animation: Animation{Duration: 1000, AnimateRotate: true, AnimateScale: true},
		},
	}, true
}
