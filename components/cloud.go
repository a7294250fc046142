package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CloudData is a decorative background cloud. The sprite is rendered once at
// creation and blitted every frame; clouds live for the whole session.
type CloudData struct {
	X, Y    float64
	RadiusX float64
	RadiusY float64
	Drift   float64 // Px per tick, always rightward
	Opacity float64
	Sprite  *ebiten.Image
}

var Cloud = donburi.NewComponentType[CloudData]()
