package rules

import "github.com/automoto/ladderclimb/shared/physics"

// Spawner emits hazards on a fixed tick interval. Every FireballEvery-th
// spawn is a fireball, the rest are barrels.
type Spawner struct {
	Interval      int
	FireballEvery int

	Timer int
	Count int
}

func NewSpawner(t Tuning) Spawner {
	return Spawner{Interval: t.SpawnInterval, FireballEvery: t.FireballEvery}
}

func (sp *Spawner) Reset() {
	sp.Timer = 0
	sp.Count = 0
}

// Tick advances the timer. When it fires it returns the kind to spawn and the
// serial for the new hazard. Nothing spawns once the goal is defeated.
func (sp *Spawner) Tick(goalDefeated bool) (kind physics.Kind, serial int, ok bool) {
	if goalDefeated {
		return 0, 0, false
	}
	sp.Timer++
	if sp.Timer < sp.Interval {
		return 0, 0, false
	}
	sp.Timer = 0
	sp.Count++

	kind = physics.KindBarrel
	if sp.FireballEvery > 0 && sp.Count%sp.FireballEvery == 0 {
		kind = physics.KindFireball
	}
	return kind, sp.Count, true
}
