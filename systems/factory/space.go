package factory

import (
	"github.com/playpop/wordpop/archetypes"
	"github.com/playpop/wordpop/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the resolv space balloons register their hit objects
// in. The space extends past the bottom edge so freshly spawned balloons
// start inside it.
func CreateSpace(e *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}
