package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageStateData is a singleton tracking the active feedback message.
// While Timer > 0 the overlay is shown and balloon taps are ignored.
// Showing a new message replaces the current one and restarts the timer.
type MessageStateData struct {
	Text  string
	Color color.RGBA
	Timer int          // Ticks remaining, 0 = no message
	Fade  *gween.Tween // Alpha fade over the final ticks
	Alpha float64
}

var MessageState = donburi.NewComponentType[MessageStateData]()
