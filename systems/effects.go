package systems

import (
	"github.com/automoto/ladderclimb/components"
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const confettiGravity = 0.05

// UpdateEffects advances effect tweens and destroys finished effects. Effects
// freeze while the game is paused.
func UpdateEffects(ecs *ecs.ECS) {
	if GetSession(ecs).Paused {
		return
	}
	dt := 1 / float32(cfg.C.TPS)

	var toRemove []*donburi.Entry
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		progress, done := fx.Tween.Update(dt)
		fx.Progress = progress

		for i := range fx.Pieces {
			p := &fx.Pieces[i]
			p.VY += confettiGravity
			p.X += p.VX
			p.Y += p.VY
		}

		if done {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}
