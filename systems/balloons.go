package systems

import (
	"github.com/playpop/wordpop/assets"
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/fonts"
	"github.com/playpop/wordpop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const tickDelta = 1.0 / 60.0

// UpdateBalloons advances every live balloon and retires the ones that have
// fully risen past the top edge. The pool is scanned first and the removals
// are committed in one pass afterwards, so a frame never observes a
// half-updated pool.
func UpdateBalloons(e *ecs.ECS) {
	var retired []*donburi.Entry

	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if b.Popped {
			// A popped balloon must be gone before the next render pass.
			retired = append(retired, entry)
			return
		}

		b.Y -= b.Velocity

		obj := components.Object.Get(entry)
		if obj.Object != nil {
			obj.X = b.X - b.RadiusX
			obj.Y = b.Y - b.RadiusY
			obj.Update()
		}

		if b.Scale != 1.0 && entry.HasComponent(components.Tween) {
			seq := components.Tween.Get(entry)
			if v, _, done := seq.Update(tickDelta); done {
				b.Scale = 1.0
			} else {
				b.Scale = float64(v)
			}
		}

		// Fully above the top edge, vertical radius as margin.
		if b.Y < -b.RadiusY {
			retired = append(retired, entry)
		}
	})

	for _, entry := range retired {
		removeBalloon(e, entry)
	}
}

var (
	balloonDrawOp  = &ebiten.DrawImageOptions{}
	letterFontFace font.Face
)

// DrawBalloons renders every live balloon back to front. Iteration order is
// creation order, so the most recently spawned balloon draws on top,
// matching the newest-first hit-test priority.
func DrawBalloons(e *ecs.ECS, screen *ebiten.Image) {
	if letterFontFace == nil {
		letterFontFace = fonts.Letter.Get()
	}

	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		b := components.Balloon.Get(entry)
		if b.Popped {
			return
		}

		sprite := assets.BalloonSprite(b.Color)
		if sprite == nil {
			// Sprite not available this frame; skip the balloon, retry next.
			return
		}

		w := float64(sprite.Bounds().Dx())
		h := float64(sprite.Bounds().Dy())
		sx := b.RadiusX * 2 * b.Scale / w
		sy := b.RadiusY * 2 * b.Scale / h

		balloonDrawOp.GeoM.Reset()
		balloonDrawOp.GeoM.Scale(sx, sy)
		balloonDrawOp.GeoM.Translate(b.X-b.RadiusX*b.Scale, b.Y-b.RadiusY*b.Scale)
		screen.DrawImage(sprite, balloonDrawOp)

		drawKnot(screen, b)
		drawLetter(screen, b)
	})
}

// drawKnot draws the triangular tie-off under the body.
func drawKnot(screen *ebiten.Image, b *components.BalloonData) {
	halfW := cfg.Balloon.KnotWidth / 2 * b.Scale
	top := b.Y + b.RadiusY*b.Scale - 2
	bottom := top + cfg.Balloon.KnotHeight*b.Scale
	fillTriangle(screen,
		b.X, top,
		b.X-halfW, bottom,
		b.X+halfW, bottom,
		b.Color)
}

// drawLetter centers the balloon's letter on the body with a drop shadow.
func drawLetter(screen *ebiten.Image, b *components.BalloonData) {
	s := string(b.Letter)
	bounds := text.BoundString(letterFontFace, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := int(b.X) - bounds.Dx()/2 - bounds.Min.X
	y := int(b.Y) - bounds.Min.Y - bounds.Dy()/2

	off := int(cfg.Balloon.ShadowOffset)
	text.Draw(screen, s, letterFontFace, x+off, y+off, cfg.ShadowBlack)
	text.Draw(screen, s, letterFontFace, x, y, cfg.White)
}
