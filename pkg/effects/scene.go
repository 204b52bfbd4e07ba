package effects

import (
	"math"
	"math/rand"
)

// Object is a scene graph node with its current transform.
type Object struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind,omitempty"`
	Color     string  `json:"color,omitempty"`
	Opacity   float64 `json:"opacity,omitempty"`
	Intensity float64 `json:"intensity,omitempty"`
	Size      []int   `json:"size,omitempty"`
	Position  Vec3    `json:"position"`
	Rotation  Vec3    `json:"rotation"`
}

// Points is a point cloud geometry with one RGB color per point.
type Points struct {
	Positions []float32 `json:"positions"`
	Colors    []float32 `json:"colors"`
	Size      float64   `json:"size"`
	Opacity   float64   `json:"opacity"`
}

// Frame is the state of a scene for one rendered frame.
//
// The first frame of a scene carries the full description, later frames
// only the transforms that change.
type Frame struct {
	Scene   string   `json:"scene"`
	Tick    uint64   `json:"tick"`
	Camera  Camera   `json:"camera"`
	Objects []Object `json:"objects"`
	Points  *Points  `json:"points,omitempty"`
}

// Scene is an isolated animated micro-scene.
//
// Scenes are not safe for concurrent use, they are driven by a single Effect.
type Scene interface {
	Name() string
	// Init resets the scene and returns its first frame.
	Init(v Viewport) Frame
	// Step advances the scene by one frame.
	Step() Frame
}

// Plane is a translucent plane drifting slowly in front of a moving light.
type Plane struct {
	t float64
}

func NewPlane() *Plane {
	return &Plane{}
}

func (p *Plane) Name() string {
	return "home"
}

func (p *Plane) Init(Viewport) Frame {
	p.t = 0

	frame := p.frame()
	frame.Camera = perspective(50, 5)
	frame.Objects[0].Kind = "plane"
	frame.Objects[0].Color = "#1b6f9c"
	frame.Objects[0].Opacity = 0.35
	frame.Objects[0].Size = []int{20, 12, 32, 32}
	frame.Objects[1].Kind = "pointLight"
	frame.Objects[1].Color = "#ffffff"
	frame.Objects[1].Intensity = 0.8
	return frame
}

func (p *Plane) Step() Frame {
	p.t += 0.01
	return p.frame()
}

func (p *Plane) frame() Frame {
	return Frame{Objects: []Object{
		{
			Name:     "plane",
			Position: Vec3{X: math.Sin(p.t*0.6) * 0.3, Z: -10},
			Rotation: Vec3{X: -0.3, Z: math.Sin(p.t*0.2) * 0.05},
		},
		{
			Name:     "light",
			Position: Vec3{X: math.Cos(p.t*0.7) * 6, Y: 5, Z: 10},
		},
	}}
}

const maxParticles = 350

// ParticleCount returns the number of particles for a window width.
func ParticleCount(width int) int {
	return max(0, min(maxParticles, width/3))
}

// Particles is a slowly rotating field of colored points.
type Particles struct {
	rand *rand.Rand
	t    float64
}

// NewParticles returns a particle field. The seed determines the layout.
func NewParticles(seed int64) *Particles {
	return &Particles{rand: rand.New(rand.NewSource(seed))}
}

func (p *Particles) Name() string {
	return "dashboard"
}

func (p *Particles) Init(v Viewport) Frame {
	p.t = 0

	count := ParticleCount(v.Width)
	points := &Points{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		Size:      1.8,
		Opacity:   0.85,
	}

	for i := 0; i < count; i++ {
		i3 := i * 3
		points.Positions[i3] = float32((p.rand.Float64() - 0.5) * 60)
		points.Positions[i3+1] = float32((p.rand.Float64() - 0.5) * 40)
		points.Positions[i3+2] = float32((p.rand.Float64() - 0.5) * 20)

		points.Colors[i3] = float32(0.2 + p.rand.Float64()*0.6)
		points.Colors[i3+1] = float32(0.4 + p.rand.Float64()*0.5)
		points.Colors[i3+2] = float32(0.6 + p.rand.Float64()*0.4)
	}

	frame := p.frame()
	frame.Camera = perspective(50, 10)
	frame.Objects[0].Kind = "points"
	frame.Points = points
	return frame
}

func (p *Particles) Step() Frame {
	p.t += 0.005
	return p.frame()
}

func (p *Particles) frame() Frame {
	return Frame{Objects: []Object{{
		Name:     "points",
		Position: Vec3{Z: -10},
		Rotation: Vec3{X: math.Sin(p.t*0.3) * 0.05, Y: p.t * 0.2},
	}}}
}

// Cube is a red cube spinning around two axes.
type Cube struct {
	rotation Vec3
}

func NewCube() *Cube {
	return &Cube{}
}

func (c *Cube) Name() string {
	return "cube"
}

func (c *Cube) Init(Viewport) Frame {
	c.rotation = Vec3{}

	frame := c.frame()
	frame.Camera = perspective(75, 5)
	frame.Objects[0].Kind = "box"
	frame.Objects[0].Color = "#ff0000"
	frame.Objects[0].Size = []int{5, 5, 5}
	frame.Objects[1].Kind = "directionalLight"
	frame.Objects[1].Color = "#ffffff"
	frame.Objects[1].Intensity = 1
	return frame
}

func (c *Cube) Step() Frame {
	c.rotation.X += 0.01
	c.rotation.Y += 0.01
	return c.frame()
}

func (c *Cube) frame() Frame {
	return Frame{Objects: []Object{
		{Name: "cube", Rotation: c.rotation},
		{Name: "light", Position: Vec3{X: 5, Y: 5, Z: 5}},
	}}
}
