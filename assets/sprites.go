package assets

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Balloon body sprites are rendered once per palette color at a fixed
// supersampled size and scaled to each balloon's radii at draw time.
const (
	spriteRadiusX = 52
	spriteRadiusY = 64
	gradientSteps = 10
)

var (
	balloonSprites = map[color.RGBA]*ebiten.Image{}
	unitCircle     *ebiten.Image
)

// getUnitCircle returns a white filled circle used as the base stamp for
// every ellipse layer.
func getUnitCircle() *ebiten.Image {
	if unitCircle == nil {
		unitCircle = ebiten.NewImage(64, 64)
		vector.DrawFilledCircle(unitCircle, 32, 32, 32, color.White, true)
	}
	return unitCircle
}

// PreloadBalloonSprites renders the body sprite for every palette color.
// Called once when the playing scene configures to avoid first-spawn lag.
func PreloadBalloonSprites() {
	for _, c := range BalloonPalette {
		if _, ok := balloonSprites[c]; !ok {
			balloonSprites[c] = renderBalloonBody(c)
		}
	}
}

// BalloonSprite returns the pre-rendered body for a fill color, or nil if
// the color has not been rendered. Callers must tolerate nil and skip the
// draw for that frame.
func BalloonSprite(c color.RGBA) *ebiten.Image {
	return balloonSprites[c]
}

// renderBalloonBody bakes the shaded body: a faint oversized outline, then
// concentric ellipses stepping from the base color to a lightened highlight
// offset toward the upper left.
func renderBalloonBody(base color.RGBA) *ebiten.Image {
	w := spriteRadiusX * 2
	h := spriteRadiusY * 2
	img := ebiten.NewImage(w+4, h+4)

	circle := getUnitCircle()
	op := &ebiten.DrawImageOptions{}

	// Outline: a slightly larger ellipse in a light tint behind the body.
	op.GeoM.Scale(float64(w+4)/64.0, float64(h+4)/64.0)
	op.ColorScale.ScaleWithColor(Lighten(base, 0.75))
	img.DrawImage(circle, op)

	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / float64(gradientSteps-1)
		shrink := 1.0 - 0.5*t
		lw := float64(w) * shrink
		lh := float64(h) * shrink

		// Offset shrinking layers toward the top-left light source.
		ox := 2.0 + (float64(w)-lw)*0.35
		oy := 2.0 + (float64(h)-lh)*0.3

		op.GeoM.Reset()
		op.GeoM.Scale(lw/64.0, lh/64.0)
		op.GeoM.Translate(ox, oy)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(Lighten(base, 0.55*t))
		img.DrawImage(circle, op)
	}

	return img
}

// RenderCloud bakes a cloud sprite: a row of overlapping white puffs over a
// flatter base ellipse. The alpha is applied at blit time, not baked in.
func RenderCloud(r *rand.Rand, radiusX, radiusY float64) *ebiten.Image {
	w := int(radiusX * 2)
	h := int(radiusY * 2)
	img := ebiten.NewImage(w, h)

	circle := getUnitCircle()
	op := &ebiten.DrawImageOptions{}

	// Base: a wide flat ellipse anchored to the bottom half.
	op.GeoM.Scale(float64(w)/64.0, float64(h)*0.6/64.0)
	op.GeoM.Translate(0, float64(h)*0.4)
	img.DrawImage(circle, op)

	puffs := 3 + r.Intn(3)
	for i := 0; i < puffs; i++ {
		pr := radiusY * (0.6 + r.Float64()*0.5)
		px := radiusX*0.3 + r.Float64()*(radiusX*1.4) - pr
		py := float64(h) - pr*2 - r.Float64()*(radiusY*0.3)
		if py < 0 {
			py = 0
		}

		op.GeoM.Reset()
		op.GeoM.Scale(pr*2/64.0, pr*2/64.0)
		op.GeoM.Translate(px, py)
		img.DrawImage(circle, op)
	}

	return img
}
