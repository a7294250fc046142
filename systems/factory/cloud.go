package factory

import (
	"math/rand"

	"github.com/playpop/wordpop/archetypes"
	"github.com/playpop/wordpop/assets"
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCloud spawns one background cloud with randomized shape, drift and
// opacity. Its sprite is rendered once here and reused for the whole
// session.
func CreateCloud(e *ecs.ECS, r *rand.Rand) *donburi.Entry {
	cloud := archetypes.Cloud.Spawn(e)

	rx := cfg.Cloud.RadiusXMin + r.Float64()*(cfg.Cloud.RadiusXMax-cfg.Cloud.RadiusXMin)
	ry := rx * cfg.Cloud.AspectY

	components.Cloud.SetValue(cloud, components.CloudData{
		X:       r.Float64() * float64(cfg.C.Width),
		Y:       ry + r.Float64()*float64(cfg.C.Height)*0.5,
		RadiusX: rx,
		RadiusY: ry,
		Drift:   cfg.Cloud.DriftMin + r.Float64()*(cfg.Cloud.DriftMax-cfg.Cloud.DriftMin),
		Opacity: cfg.Cloud.OpacityMin + r.Float64()*(cfg.Cloud.OpacityMax-cfg.Cloud.OpacityMin),
		Sprite:  assets.RenderCloud(r, rx, ry),
	})

	return cloud
}
