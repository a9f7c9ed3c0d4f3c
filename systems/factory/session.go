package factory

import (
	"github.com/automoto/ladderclimb/archetypes"
	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession stores the round as the world's singleton. The level entity
// starts unbuilt so the level system lays out statics on its first run.
func CreateSession(ecs *ecs.ECS, sess *rules.Session) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{Session: sess})

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{})

	return entry
}
