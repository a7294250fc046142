package tags

import "github.com/yohamta/donburi"

var (
	Balloon = donburi.NewTag().SetName("Balloon")
	Cloud   = donburi.NewTag().SetName("Cloud")
)

// Resolv tags for hit-testing
const (
	ResolvBalloon = "balloon"
	ResolvProbe   = "probe"
)
