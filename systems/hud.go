package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudFontFace font.Face

// DrawHUD renders the score chip top-left and the target word progress
// readout top-right. Progress shows the letters popped so far followed by
// placeholders for the rest.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if hudFontFace == nil {
		hudFontFace = fonts.HUD.Get()
	}

	session, progress := GetOrCreateSession(e)

	// Score chip
	scoreText := fmt.Sprintf("SCORE %d", session.Score)
	bounds := text.BoundString(hudFontFace, scoreText) //nolint:staticcheck // TODO: migrate to text/v2
	pad := float32(cfg.HUD.ChipPadding)
	chipW := float32(bounds.Dx()) + pad*2
	chipH := float32(bounds.Dy()) + pad*2
	chipX := float32(cfg.HUD.Margin)
	chipY := float32(cfg.HUD.Margin)

	fillRoundedRect(screen, chipX, chipY, chipW, chipH, float32(cfg.HUD.ChipRadius), cfg.HUD.ChipColor)
	text.Draw(screen, scoreText, hudFontFace,
		int(chipX+pad)-bounds.Min.X, int(chipY+pad)-bounds.Min.Y, cfg.HUD.ScoreColor)

	// Progress readout: revealed letters, then placeholders
	word := []rune(cfg.Word.Target)
	revealed := string(word[:progress.Cursor])
	var rest []rune
	for range word[progress.Cursor:] {
		rest = append(rest, cfg.Word.Placeholder)
	}

	full := revealed + " " + string(rest)
	fullBounds := text.BoundString(hudFontFace, full) //nolint:staticcheck // TODO: migrate to text/v2
	px := cfg.C.Width - int(cfg.HUD.Margin) - fullBounds.Dx() - fullBounds.Min.X
	py := int(cfg.HUD.Margin+cfg.HUD.ChipPadding) - fullBounds.Min.Y

	text.Draw(screen, revealed, hudFontFace, px, py, cfg.HUD.RevealedCol)
	revealedBounds := text.BoundString(hudFontFace, revealed+" ") //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, string(rest), hudFontFace, px+revealedBounds.Dx(), py, cfg.HUD.PlaceholdCol)
}

// fillRoundedRect fills a rectangle with quarter-round corners.
func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.RGBA) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}

	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.QuadTo(x+w, y, x+w, y+r)
	path.LineTo(x+w, y+h-r)
	path.QuadTo(x+w, y+h, x+w-r, y+h)
	path.LineTo(x+r, y+h)
	path.QuadTo(x, y+h, x, y+h-r)
	path.LineTo(x, y+r)
	path.QuadTo(x, y, x+r, y)
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, &path, nil, op)
}
