package components

import "github.com/yohamta/donburi"

// SessionData is a singleton holding the per-session score, the speed
// multiplier, and the spawn timer.
type SessionData struct {
	Score      int
	Speed      float64
	SpawnTimer float64 // Ticks since the last spawn
}

var Session = donburi.NewComponentType[SessionData]()
