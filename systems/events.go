package systems

import (
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEvents hands the round's sound and effect requests to the audio queue
// and the effect entities.
func UpdateEvents(ecs *ecs.ECS) {
	ev := GetSession(ecs).DrainEvents()
	for _, s := range ev.Sounds {
		PlaySFX(ecs, cfg.SoundFor(s))
	}
	for _, fx := range ev.Effects {
		factory.CreateEffect(ecs, fx)
	}
}

// UpdateSnapshot captures the state renderers draw from. Runs last.
func UpdateSnapshot(ecs *ecs.ECS) {
	data := getSessionData(ecs)
	data.Snapshot = data.Session.Snapshot(Arena(ecs))
}
