package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// The gameplay systems split rules.Session.Step into its stages so each runs
// as its own system. Registered in this order and wrapped with
// WithGameplayChecks they behave exactly like Step: a stage that ends the
// round stops the rest of the tick.

// UpdatePlayer steps the player with this frame's intent.
func UpdatePlayer(ecs *ecs.ECS) {
	GetSession(ecs).StepPlayer(Arena(ecs), PlayerIntent(getOrCreateInput(ecs)))
}

// UpdateHazards steps every live hazard and removes the ones that left play.
func UpdateHazards(ecs *ecs.ECS) {
	GetSession(ecs).StepHazards(Arena(ecs))
}

// UpdateCollisions resolves jump-overs, hits and the goal.
func UpdateCollisions(ecs *ecs.ECS) {
	GetSession(ecs).Resolve(Arena(ecs))
}

// UpdateSpawner spawns the next hazard when it is due.
func UpdateSpawner(ecs *ecs.ECS) {
	GetSession(ecs).StepSpawner(Arena(ecs))
}

// UpdateClock closes the tick and pays the passive bonus.
func UpdateClock(ecs *ecs.ECS) {
	GetSession(ecs).EndTick()
}
