package archetypes

import (
	"github.com/playpop/wordpop/components"
	cfg "github.com/playpop/wordpop/config"
	"github.com/playpop/wordpop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Balloon = newArchetype(
		tags.Balloon,
		components.Balloon,
		components.Object,
		components.Tween,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
	)
	Session = newArchetype(
		components.Session,
		components.Progress,
	)
	MessageState = newArchetype(
		components.MessageState,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
