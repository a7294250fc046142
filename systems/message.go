package systems

import (
	"image/color"

	"github.com/playpop/wordpop/archetypes"
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// ShowMessage activates the feedback overlay for the given number of ticks.
// Any message already showing is replaced and its remaining time discarded,
// so there is never more than one pending expiry.
func ShowMessage(e *ecs.ECS, msg string, clr color.RGBA, duration int) {
	state := getOrCreateMessageState(e)
	state.Text = msg
	state.Color = clr
	state.Timer = duration
	state.Alpha = 1.0
	state.Fade = gween.New(1, 0, float32(cfg.Message.FadeTail)*tickDelta, ease.OutQuad)
}

// ClearMessage expires the active message immediately.
func ClearMessage(e *ecs.ECS) {
	state := getOrCreateMessageState(e)
	state.Timer = 0
	state.Fade = nil
}

// IsMessageActive reports whether the overlay is showing. Balloon taps are
// ignored while it is, to debounce input during feedback.
func IsMessageActive(e *ecs.ECS) bool {
	return getOrCreateMessageState(e).Timer > 0
}

// UpdateMessage counts the active message down and runs the fade-out tween
// over its final ticks.
func UpdateMessage(e *ecs.ECS) {
	state := getOrCreateMessageState(e)
	if state.Timer <= 0 {
		return
	}
	state.Timer--
	if state.Timer < cfg.Message.FadeTail && state.Fade != nil {
		v, _ := state.Fade.Update(tickDelta)
		state.Alpha = float64(v)
	}
	if state.Timer == 0 {
		state.Fade = nil
	}
}

var messageFontFace font.Face

// DrawMessage renders the active message centered on the screen.
func DrawMessage(e *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(e)
	if state.Timer <= 0 {
		return
	}

	if messageFontFace == nil {
		messageFontFace = fonts.Message.Get()
	}

	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := cfg.C.Width/2 - bounds.Dx()/2 - bounds.Min.X
	y := cfg.C.Height/2 - bounds.Min.Y - bounds.Dy()/2

	clr := state.Color
	clr.A = uint8(float64(clr.A) * state.Alpha)
	shadow := cfg.ShadowBlack
	shadow.A = uint8(float64(shadow.A) * state.Alpha)

	text.Draw(screen, state.Text, messageFontFace, x+2, y+2, shadow)
	text.Draw(screen, state.Text, messageFontFace, x, y, clr)
}

// getOrCreateMessageState returns the singleton MessageState component.
func getOrCreateMessageState(e *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(e.World)
	if !ok {
		entry = archetypes.MessageState.Spawn(e)
		components.MessageState.SetValue(entry, components.MessageStateData{})
	}
	return components.MessageState.Get(entry)
}
