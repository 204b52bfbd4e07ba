package effects

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

// Libraries the scenes depend on in the browser.
const (
	LibraryThree  = "THREE"
	LibraryLottie = "lottie-player"
)

// Lottie is a Lottie player element. It has no render loop, the player
// custom element animates itself.
type Lottie struct {
	Src        string  `json:"src" example:"https://assets10.lottiefiles.com/packages/lf20_jcikwtux.json"`
	Background string  `json:"background" example:"transparent"`
	Speed      float64 `json:"speed" example:"1"`
	Size       int     `json:"size" example:"420"`
	Loop       bool    `json:"loop" example:"true"`
	Autoplay   bool    `json:"autoplay" example:"true"`
}

// LandingLottie is the player shown on the landing page.
var LandingLottie = Lottie{
	Src:        "https://assets10.lottiefiles.com/packages/lf20_jcikwtux.json",
	Background: "transparent",
	Speed:      1,
	Size:       420,
	Loop:       true,
	Autoplay:   true,
}

// Style returns the inline style of the player element.
func (l Lottie) Style() string {
	return fmt.Sprintf("width:%dpx; height:%dpx;", l.Size, l.Size)
}

// Spec describes a scene and what it needs on the page.
type Spec struct {
	Name    string
	Target  string
	Library string
	New     func() Scene
}

// Specs lists all scenes. Specs without a constructor are static mounts.
var Specs = []Spec{
	{Name: "landing", Target: "landing-lottie", Library: LibraryLottie},
	{Name: "home", Target: "home-three-canvas", Library: LibraryThree, New: func() Scene { return NewPlane() }},
	{Name: "dashboard", Target: "dashboard-three-canvas", Library: LibraryThree, New: func() Scene {
		return NewParticles(time.Now().UnixNano())
	}},
	{Name: "cube", Target: "three-container", Library: LibraryThree, New: func() Scene { return NewCube() }},
}

// Lookup returns the spec of the scene with the given name.
func Lookup(name string) (Spec, bool) {
	i := slices.IndexFunc(Specs, func(s Spec) bool { return s.Name == name })
	if i < 0 {
		return Spec{}, false
	}
	return Specs[i], true
}

// Page is what a rendered page provides to the scenes.
type Page struct {
	Name      string   `json:"name" example:"dashboard"`
	Elements  []string `json:"elements"`          // DOM IDs present on the page
	Libraries []string `json:"libraries"`         // Third-party globals loaded by the page
	Players   []string `json:"players,omitempty"` // IDs of containers that already hold a Lottie player
}

// Has reports whether the page contains the DOM ID.
func (p Page) Has(id string) bool {
	return slices.Contains(p.Elements, id)
}

// Loaded reports whether the page loaded the library.
func (p Page) Loaded(library string) bool {
	return slices.Contains(p.Libraries, library)
}

// Pages are the pages served by the web frontend.
var Pages = map[string]Page{
	"landing": {
		Name:      "landing",
		Elements:  []string{"landing-lottie"},
		Libraries: []string{LibraryLottie},
	},
	"home": {
		Name:      "home",
		Elements:  []string{"home-three-canvas"},
		Libraries: []string{LibraryThree},
	},
	"dashboard": {
		Name:      "dashboard",
		Elements:  []string{"dashboard-three-canvas", "three-container", "lineChart", "pieChart", "goalForm", "goalResult"},
		Libraries: []string{LibraryThree, "Chart"},
	},
}

// Init tells the browser how to start a scene.
type Init struct {
	Name   string  `json:"name" example:"dashboard"`
	Target string  `json:"target" example:"dashboard-three-canvas"`
	Stream bool    `json:"stream"`           // Frames are streamed from the effects endpoint
	Player *Lottie `json:"player,omitempty"` // Lottie player to mount into the target
}

// ForPage returns the scenes to start on a page.
//
// A scene is skipped when its target element or its library is missing.
// A Lottie player is not mounted twice into the same container.
func ForPage(page Page) []Init {
	inits := []Init{}

	for _, spec := range Specs {
		if !page.Has(spec.Target) || !page.Loaded(spec.Library) {
			continue
		}

		if spec.New != nil {
			inits = append(inits, Init{Name: spec.Name, Target: spec.Target, Stream: true})
			continue
		}

		if slices.Contains(page.Players, spec.Target) {
			continue
		}

		player := LandingLottie
		inits = append(inits, Init{Name: spec.Name, Target: spec.Target, Player: &player})
	}

	return inits
}
