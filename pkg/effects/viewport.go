package effects

import "math"

const maxPixelRatio = 2

// Viewport is the size of the browser window an effect renders into.
type Viewport struct {
	Width            int     `json:"width" example:"1280"`
	Height           int     `json:"height" example:"720"`
	DevicePixelRatio float64 `json:"devicePixelRatio" example:"2"`
}

// PixelRatio returns the device pixel ratio capped at 2.
func (v Viewport) PixelRatio() float64 {
	if v.DevicePixelRatio <= 0 {
		return 1
	}
	return math.Min(v.DevicePixelRatio, maxPixelRatio)
}

// Aspect returns the width to height ratio.
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Camera is a perspective camera and the renderer size it draws at.
type Camera struct {
	FOV        float64 `json:"fov"`
	Aspect     float64 `json:"aspect"`
	Near       float64 `json:"near"`
	Far        float64 `json:"far"`
	Position   Vec3    `json:"position"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	PixelRatio float64 `json:"pixelRatio"`
}

func perspective(fov, z float64) Camera {
	return Camera{FOV: fov, Near: 0.1, Far: 1000, Position: Vec3{Z: z}}
}

// fit sizes the camera for the viewport.
func (c Camera) fit(v Viewport) Camera {
	c.Aspect = v.Aspect()
	c.Width = v.Width
	c.Height = v.Height
	c.PixelRatio = v.PixelRatio()
	return c
}
