package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// BalloonData is the per-balloon state. X/Y is the body center in logical
// pixels; the knot hangs just below the body.
type BalloonData struct {
	X, Y     float64
	RadiusX  float64
	RadiusY  float64
	Velocity float64 // Rise speed, px per tick
	Letter   rune
	Color    color.RGBA
	Popped   bool
	Scale    float64 // Spawn pop-in scale, settles at 1.0
}

var Balloon = donburi.NewComponentType[BalloonData]()
