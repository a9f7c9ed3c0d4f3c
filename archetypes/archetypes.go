package archetypes

import (
	"github.com/automoto/ladderclimb/components"
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	Level = newArchetype(
		components.Level,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Ladder,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
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
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
