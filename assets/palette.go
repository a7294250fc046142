package assets

import (
	"image/color"
	"math/rand"
)

// BalloonPalette is the set of fill colors balloons are drawn from.
var BalloonPalette = []color.RGBA{
	{R: 235, G: 77, B: 75, A: 255},  // red
	{R: 240, G: 147, B: 43, A: 255}, // orange
	{R: 249, G: 202, B: 36, A: 255}, // yellow
	{R: 106, G: 176, B: 76, A: 255}, // green
	{R: 72, G: 126, B: 176, A: 255}, // blue
	{R: 104, G: 109, B: 224, A: 255}, // violet
	{R: 190, G: 46, B: 221, A: 255}, // magenta
	{R: 255, G: 121, B: 121, A: 255}, // coral
}

// RandomBalloonColor returns a uniformly random palette color.
func RandomBalloonColor(r *rand.Rand) color.RGBA {
	return BalloonPalette[r.Intn(len(BalloonPalette))]
}

// Lighten moves a color toward white by fraction f (0 = unchanged, 1 = white).
// Used for the balloon highlight gradient and the outline tint.
func Lighten(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	lerp := func(ch uint8) uint8 {
		return uint8(float64(ch) + (255-float64(ch))*f)
	}
	return color.RGBA{R: lerp(c.R), G: lerp(c.G), B: lerp(c.B), A: c.A}
}
