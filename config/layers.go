package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn back to front.
const (
	LayerBackground ecs.LayerID = iota
	LayerBalloons
	LayerHUD
	LayerOverlay
)

// Default is the layer entities are created on.
const Default = LayerBackground
