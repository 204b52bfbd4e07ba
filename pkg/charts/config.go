// Package charts builds the dashboard charts from a summary.
//
// Configs are Chart.js compatible and are drawn by the browser, the
// terminal dashboard, or rendered to images on the server.
package charts

// Config is a Chart.js chart configuration.
type Config struct {
	Type    string  `json:"type" example:"bar"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single series. BackgroundColor is either a single color or
// one color per label.
type Dataset struct {
	Label                string    `json:"label,omitempty"`
	Data                 []float64 `json:"data"`
	BackgroundColor      any       `json:"backgroundColor" swaggertype:"string"`
	Gradient             *Gradient `json:"gradient,omitempty"` // Vertical fill, replaces BackgroundColor where canvas gradients are available
	HoverBackgroundColor string    `json:"hoverBackgroundColor,omitempty"`
	BorderColor          string    `json:"borderColor,omitempty"`
	BorderWidth          int       `json:"borderWidth,omitempty"`
	BorderRadius         int       `json:"borderRadius,omitempty"`
	BorderSkipped        *bool     `json:"borderSkipped,omitempty"`
	HoverOffset          int       `json:"hoverOffset,omitempty"`
}

// Gradient is a linear gradient from the top of the chart area to Height.
type Gradient struct {
	Height int    `json:"height" example:"400"`
	From   string `json:"from" example:"rgba(75,192,192,0.9)"`
	To     string `json:"to" example:"rgba(75,192,192,0.25)"`
}

type Options struct {
	Responsive          bool      `json:"responsive"`
	MaintainAspectRatio bool      `json:"maintainAspectRatio"`
	Plugins             Plugins   `json:"plugins"`
	Scales              *Scales   `json:"scales,omitempty"`
	Animation           Animation `json:"animation"`
}

type Plugins struct {
	Legend  Legend   `json:"legend"`
	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

type Legend struct {
	Display  *bool      `json:"display,omitempty"`
	Position string     `json:"position"`
	Labels   FontColors `json:"labels"`
}

type FontColors struct {
	Color string `json:"color"`
}

type Tooltip struct {
	Enabled         bool   `json:"enabled"`
	BackgroundColor string `json:"backgroundColor"`
	TitleColor      string `json:"titleColor"`
	BodyColor       string `json:"bodyColor"`
	Padding         int    `json:"padding"`
}

type Scales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	BeginAtZero bool       `json:"beginAtZero,omitempty"`
	Ticks       FontColors `json:"ticks"`
	Grid        Grid       `json:"grid"`
}

type Grid struct {
	Display *bool  `json:"display,omitempty"`
	Color   string `json:"color,omitempty"`
}

type Animation struct {
	Duration      int    `json:"duration"`
	Easing        string `json:"easing,omitempty"`
	AnimateRotate bool   `json:"animateRotate,omitempty"`
	AnimateScale  bool   `json:"animateScale,omitempty"`
}

// Colors returns the background color of the first dataset for every label.
// Labels without an assigned color get an empty string.
func (c Config) Colors() []string {
	colors := make([]string, len(c.Data.Labels))
	if len(c.Data.Datasets) == 0 {
		return colors
	}

	switch bg := c.Data.Datasets[0].BackgroundColor.(type) {
	case string:
		for i := range colors {
			colors[i] = bg
		}
	case []string:
		copy(colors, bg)
	case []any:
		for i := range colors {
			if i < len(bg) {
				colors[i], _ = bg[i].(string)
			}
		}
	}

	return colors
}

// Values returns the data of the first dataset.
func (c Config) Values() []float64 {
	if len(c.Data.Datasets) == 0 {
		return nil
	}
	return c.Data.Datasets[0].Data
}
