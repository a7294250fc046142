package factory

import (
	"math/rand"

	"github.com/playpop/wordpop/archetypes"
	"github.com/playpop/wordpop/assets"
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBalloon spawns a balloon carrying the given letter just below the
// bottom edge. Size and rise velocity get a small random jitter so balloons
// never move as a uniform wall; the velocity baseline is the current game
// speed.
func CreateBalloon(e *ecs.ECS, letter rune, speed float64, r *rand.Rand) *donburi.Entry {
	balloon := archetypes.Balloon.Spawn(e)

	jitter := 1 + cfg.Balloon.SizeJitter*(r.Float64()*2-1)
	rx := cfg.Balloon.RadiusX * jitter
	ry := cfg.Balloon.RadiusY * jitter

	x := rx + r.Float64()*(float64(cfg.C.Width)-rx*2)
	y := float64(cfg.C.Height) + ry

	components.Balloon.SetValue(balloon, components.BalloonData{
		X:        x,
		Y:        y,
		RadiusX:  rx,
		RadiusY:  ry,
		Velocity: speed + r.Float64()*cfg.Balloon.VelocityJitter,
		Letter:   letter,
		Color:    assets.RandomBalloonColor(r),
		Scale:    0.6,
	})

	// Hit object covers the body plus the knot below it.
	obj := resolv.NewObject(x-rx, y-ry, rx*2, ry*2+cfg.Balloon.KnotHeight, tags.ResolvBalloon)
	obj.Data = balloon
	components.Object.SetValue(balloon, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	// Brief scale-in so spawns read as "inflating" rather than popping into
	// existence.
	tw := gween.NewSequence(
		gween.New(0.6, 1.0, cfg.Balloon.PopInDuration, ease.OutQuad),
	)
	components.Tween.Set(balloon, tw)

	return balloon
}
