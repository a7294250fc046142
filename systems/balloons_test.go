package systems

import (
	"math/rand"
	"testing"

	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/systems/factory"
)

func TestBalloonsRiseByVelocity(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(11))

	entry := factory.CreateBalloon(e, 'B', 1.0, r)
	b := components.Balloon.Get(entry)
	y := b.Y
	v := b.Velocity

	UpdateBalloons(e)

	if got := b.Y; got != y-v {
		t.Errorf("expected y %v after one tick, got %v", y-v, got)
	}
}

func TestBalloonRetiredAboveTopEdge(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(11))

	entry := factory.CreateBalloon(e, 'B', 1.0, r)
	b := components.Balloon.Get(entry)
	b.Y = -b.RadiusY // one more tick of motion pushes it past the margin

	UpdateBalloons(e)

	if n := len(LiveLetters(e)); n != 0 {
		t.Fatalf("expected balloon retired above the top edge, %d live", n)
	}
}

func TestBalloonBelowTopEdgeSurvives(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(11))

	entry := factory.CreateBalloon(e, 'B', 1.0, r)
	b := components.Balloon.Get(entry)
	b.Y = b.RadiusY + 10

	UpdateBalloons(e)

	if n := len(LiveLetters(e)); n != 1 {
		t.Fatalf("expected balloon to survive, %d live", n)
	}
}

func TestPoppedBalloonRemovedBeforeNextFrame(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(11))

	entry := factory.CreateBalloon(e, 'B', 1.0, r)
	components.Balloon.Get(entry).Popped = true

	UpdateBalloons(e)

	count := 0
	for range components.Balloon.Iter(e.World) {
		count++
	}
	if count != 0 {
		t.Fatalf("popped balloon still in pool after update, %d entries", count)
	}
}

func TestBalloonScaleSettlesAtOne(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(11))

	entry := factory.CreateBalloon(e, 'B', 1.0, r)
	b := components.Balloon.Get(entry)
	b.Y = float64(cfg.C.Height) * 4 // plenty of room, no retirement

	if b.Scale >= 1.0 {
		t.Fatalf("expected spawn scale below 1, got %v", b.Scale)
	}
	for i := 0; i < 60; i++ {
		UpdateBalloons(e)
	}
	if b.Scale != 1.0 {
		t.Errorf("expected scale settled at 1.0, got %v", b.Scale)
	}
}

func TestSpawnPlacementWithinBounds(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(23))

	for i := 0; i < 100; i++ {
		entry := factory.CreateBalloon(e, 'B', 1.0, r)
		b := components.Balloon.Get(entry)
		if b.X-b.RadiusX < 0 || b.X+b.RadiusX > float64(cfg.C.Width) {
			t.Fatalf("balloon clipped off-edge: x=%v rx=%v", b.X, b.RadiusX)
		}
		if b.Y < float64(cfg.C.Height) {
			t.Fatalf("balloon must start below the visible area, y=%v", b.Y)
		}
		if b.Velocity < 1.0 || b.Velocity > 1.0+cfg.Balloon.VelocityJitter {
			t.Fatalf("velocity out of jitter range: %v", b.Velocity)
		}
	}
}
