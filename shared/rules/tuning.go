// Package rules owns the round: score, lives, round state, the spawner and
// the per-tick collision and scoring pass. It drives the physics package and
// reports what happened through events that collaborators drain.
package rules

type Tuning struct {
	Lives int

	BarrelScore   int
	FireballScore int
	// JumpOverTolerance lets the player's feet dip slightly below a
	// hazard's top and still be credited with clearing it.
	JumpOverTolerance float64

	PassiveBonus    int
	PassiveInterval int // ticks

	SpawnInterval int // ticks
	FireballEvery int // every Nth spawn is a fireball
}

func DefaultTuning() Tuning {
	return Tuning{
		Lives:             3,
		BarrelScore:       100,
		FireballScore:     200,
		JumpOverTolerance: 6,
		PassiveBonus:      10,
		PassiveInterval:   60,
		SpawnInterval:     150,
		FireballEvery:     4,
	}
}
