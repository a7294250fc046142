package systems

import (
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput resolves pointer-down events (mouse or touch) against the
// balloon pool. Taps are ignored while a feedback message is showing.
func UpdateInput(e *ecs.ECS) {
	x, y, ok := pointerDown()
	if !ok {
		return
	}
	if IsMessageActive(e) {
		return
	}
	ResolveTap(e, float64(x), float64(y))
}

// pointerDown reports a just-pressed mouse button or touch in logical
// screen coordinates. A touch event with no touch points is ignored.
func pointerDown() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}

// ResolveTap pops at most one balloon at the given position and drives the
// progress state machine with its letter. Balloons are tested newest first,
// matching draw order (the frontmost balloon wins). Returns whether a
// balloon was consumed.
func ResolveTap(e *ecs.ECS, x, y float64) bool {
	candidates := probeCandidates(e, x, y)

	var entries []*donburi.Entry
	tags.Balloon.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})

	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		b := components.Balloon.Get(entry)
		if b.Popped {
			continue
		}
		if candidates != nil && !candidates[entry] {
			continue
		}
		if !HitTest(b, x, y) {
			continue
		}

		letter := b.Letter
		b.Popped = true
		removeBalloon(e, entry)
		ApplyHit(e, letter)
		return true
	}
	return false
}

// probeCandidates narrows the hit scan with a 1x1 probe in the resolv
// space. Returns nil (meaning "test everything") when no space exists.
func probeCandidates(e *ecs.ECS, x, y float64) map[*donburi.Entry]bool {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvBalloon)
	if check == nil {
		return map[*donburi.Entry]bool{}
	}

	candidates := make(map[*donburi.Entry]bool, len(check.Objects))
	for _, obj := range check.Objects {
		if entry, ok := obj.Data.(*donburi.Entry); ok {
			candidates[entry] = true
		}
	}
	return candidates
}

// HitTest reports whether the point hits the balloon: inside the elliptical
// body, or inside the small rectangular region around the knot below it.
func HitTest(b *components.BalloonData, x, y float64) bool {
	dx := (x - b.X) / b.RadiusX
	dy := (y - b.Y) / b.RadiusY
	if dx*dx+dy*dy <= 1.0 {
		return true
	}

	halfW := cfg.Balloon.KnotWidth / 2
	top := b.Y + b.RadiusY - 2
	return x >= b.X-halfW && x <= b.X+halfW &&
		y >= top && y <= top+cfg.Balloon.KnotHeight
}
