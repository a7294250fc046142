package systems

import (
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CloudsEnabled gates the cloud field from the intro settings toggle.
var CloudsEnabled = true

// UpdateClouds drifts each cloud rightward and wraps it to the left once it
// is fully off the right edge. Clouds are created once per session and
// never destroyed.
func UpdateClouds(e *ecs.ECS) {
	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cloud.Get(entry)
		c.X += c.Drift
		if c.X-c.RadiusX > float64(cfg.C.Width) {
			c.X = -c.RadiusX
		}
	})
}

var cloudDrawOp = &ebiten.DrawImageOptions{}

// DrawClouds blits each cloud's pre-rendered sprite at its opacity.
func DrawClouds(e *ecs.ECS, screen *ebiten.Image) {
	if !CloudsEnabled {
		return
	}
	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		c := components.Cloud.Get(entry)
		if c.Sprite == nil {
			return
		}
		cloudDrawOp.GeoM.Reset()
		cloudDrawOp.GeoM.Translate(c.X-c.RadiusX, c.Y-c.RadiusY)
		cloudDrawOp.ColorScale.Reset()
		cloudDrawOp.ColorScale.ScaleAlpha(float32(c.Opacity))
		screen.DrawImage(c.Sprite, cloudDrawOp)
	})
}
