package systems

import (
	"testing"

	"github.com/playpop/wordpop/archetypes"
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/yohamta/donburi/ecs"
)

func spawnTestCloud(e *ecs.ECS, x, y, rx, drift float64) *components.CloudData {
	entry := archetypes.Cloud.Spawn(e)
	components.Cloud.SetValue(entry, components.CloudData{
		X: x, Y: y,
		RadiusX: rx, RadiusY: rx / 2,
		Drift:   drift,
		Opacity: 0.8,
	})
	return components.Cloud.Get(entry)
}

func TestCloudDriftsRight(t *testing.T) {
	e := newTestECS()
	c := spawnTestCloud(e, 100, 80, 50, 0.25)

	for i := 0; i < 4; i++ {
		UpdateClouds(e)
	}

	if c.X != 101 {
		t.Errorf("X = %v after 4 ticks at 0.25 drift, want 101", c.X)
	}
	if c.Y != 80 {
		t.Errorf("Y = %v, clouds must not move vertically", c.Y)
	}
}

func TestCloudWrapsPastRightEdge(t *testing.T) {
	e := newTestECS()
	w := float64(cfg.C.Width)
	c := spawnTestCloud(e, w+50, 80, 50, 0.5)

	// Still touching the edge: trailing edge at X-RadiusX == w.
	UpdateClouds(e)
	if c.X != -50 {
		t.Errorf("X = %v, cloud should wrap to -RadiusX once fully off screen", c.X)
	}
}

func TestCloudNotWrappedWhileVisible(t *testing.T) {
	e := newTestECS()
	w := float64(cfg.C.Width)
	c := spawnTestCloud(e, w+49, 80, 50, 0.5)

	UpdateClouds(e)
	if c.X != w+49.5 {
		t.Errorf("X = %v, cloud wrapped while its trailing edge was still on screen", c.X)
	}
}
