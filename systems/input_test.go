package systems

import (
	"math/rand"
	"testing"

	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/systems/factory"
	"github.com/yohamta/donburi"
)

func TestHitTest(t *testing.T) {
	b := &components.BalloonData{
		X: 100, Y: 100,
		RadiusX: 20, RadiusY: 30,
	}

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 100, 100, true},
		{"inside body", 110, 110, true},
		{"on horizontal edge", 119.9, 100, true},
		{"outside corner of bounding box", 118, 128, false},
		{"just past horizontal edge", 121, 100, false},
		{"inside knot", 100, 135, true},
		{"beside knot", 110, 135, false},
		{"below knot", 100, 140, false},
		{"far away", 300, 300, false},
	}

	for _, tc := range cases {
		if got := HitTest(b, tc.x, tc.y); got != tc.want {
			t.Errorf("%s: HitTest(%v, %v) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

// moveBalloon repositions a balloon and keeps its hit object in sync.
func moveBalloon(entry *donburi.Entry, x, y float64) {
	b := components.Balloon.Get(entry)
	b.X, b.Y = x, y
	obj := components.Object.Get(entry)
	obj.X = b.X - b.RadiusX
	obj.Y = b.Y - b.RadiusY
	obj.Update()
}

func TestResolveTapPopsTopmostBalloon(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height+160, 32, 32)
	r := rand.New(rand.NewSource(5))
	_, progress := GetOrCreateSession(e)

	// Older balloon carries a wrong letter, newer one the required letter,
	// both overlapping the same point. Newest must win.
	moveBalloon(factory.CreateBalloon(e, 'A', 1.0, r), 320, 240)
	moveBalloon(factory.CreateBalloon(e, 'B', 1.0, r), 320, 240)

	if !ResolveTap(e, 320, 240) {
		t.Fatal("expected the tap to hit")
	}

	if progress.Cursor != 1 {
		t.Fatalf("expected the newer balloon (required letter) to be popped; cursor=%d", progress.Cursor)
	}
	letters := LiveLetters(e)
	if len(letters) != 1 || letters[0] != 'A' {
		t.Fatalf("expected only the older balloon to remain, got %v", letters)
	}
}

func TestResolveTapMissHasNoEffect(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height+160, 32, 32)
	r := rand.New(rand.NewSource(5))
	session, progress := GetOrCreateSession(e)

	factory.CreateBalloon(e, 'B', 1.0, r)

	if ResolveTap(e, 1, 1) {
		t.Fatal("tap in the empty corner should not hit")
	}
	if progress.Cursor != 0 || session.Score != 0 {
		t.Error("missed tap mutated session state")
	}
	if len(LiveLetters(e)) != 1 {
		t.Error("missed tap consumed a balloon")
	}
}

func TestResolveTapConsumesExactlyOneBalloon(t *testing.T) {
	e := newTestECS()
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height+160, 32, 32)
	r := rand.New(rand.NewSource(5))
	GetOrCreateSession(e)

	// Two overlapping balloons both carrying the required letter.
	for i := 0; i < 2; i++ {
		moveBalloon(factory.CreateBalloon(e, 'B', 1.0, r), 320, 240)
	}

	ResolveTap(e, 320, 240)

	if n := len(LiveLetters(e)); n != 1 {
		t.Fatalf("exactly one balloon must be consumed per tap, %d remain", n)
	}
}

func TestResolveTapWorksWithoutSpace(t *testing.T) {
	e := newTestECS()
	r := rand.New(rand.NewSource(5))
	_, progress := GetOrCreateSession(e)

	entry := factory.CreateBalloon(e, 'B', 1.0, r)
	b := components.Balloon.Get(entry)
	b.X, b.Y = 320, 240

	if !ResolveTap(e, 320, 240) {
		t.Fatal("expected a hit without a broad-phase space")
	}
	if progress.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", progress.Cursor)
	}
}
