package assets

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestLightenEndpoints(t *testing.T) {
	c := color.RGBA{R: 100, G: 150, B: 200, A: 255}

	if got := Lighten(c, 0); got != c {
		t.Errorf("Lighten(c, 0) = %v, want unchanged", got)
	}
	if got := Lighten(c, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Lighten(c, 1) = %v, want white", got)
	}
}

func TestLightenClampsFraction(t *testing.T) {
	c := color.RGBA{R: 100, G: 150, B: 200, A: 255}

	if got := Lighten(c, -0.5); got != c {
		t.Errorf("negative fraction should clamp to unchanged, got %v", got)
	}
	if got := Lighten(c, 2.0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("fraction above 1 should clamp to white, got %v", got)
	}
}

func TestLightenMonotonicAndPreservesAlpha(t *testing.T) {
	c := color.RGBA{R: 72, G: 126, B: 176, A: 200}

	prev := c
	for _, f := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		got := Lighten(c, f)
		if got.R < prev.R || got.G < prev.G || got.B < prev.B {
			t.Fatalf("Lighten not monotonic at f=%v: %v -> %v", f, prev, got)
		}
		if got.A != c.A {
			t.Fatalf("Lighten changed alpha at f=%v: %v", f, got.A)
		}
		prev = got
	}
}

func TestRandomBalloonColorDrawsFromPalette(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	seen := map[color.RGBA]bool{}

	for i := 0; i < 400; i++ {
		c := RandomBalloonColor(r)
		found := false
		for _, p := range BalloonPalette {
			if c == p {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("color %v not in palette", c)
		}
		seen[c] = true
	}

	// 400 uniform draws over 8 colors should cover every entry.
	if len(seen) != len(BalloonPalette) {
		t.Errorf("only %d of %d palette colors drawn", len(seen), len(BalloonPalette))
	}
}
