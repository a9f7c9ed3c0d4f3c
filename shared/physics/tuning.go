package physics

// Tuning holds every constant the step functions use. Units are pixels and
// ticks.
type Tuning struct {
	Gravity      float64
	MaxFallSpeed float64
	// RestTolerance is the depth below a platform's lower face that still
	// counts as contact. It must be at least MaxFallSpeed so a falling entity
	// cannot step over a platform in one tick.
	RestTolerance float64
	// LadderTopTolerance is how far a hazard's bottom may be from a ladder's
	// top edge while it still counts as hovering over that ladder.
	LadderTopTolerance float64

	Player   PlayerTuning
	Barrel   BarrelTuning
	Fireball FireballTuning
}

type PlayerTuning struct {
	Width, Height   float64
	Speed           float64
	JumpPower       float64
	MaxJumpHeight   float64
	LadderSpeed     float64
	LadderGrabReach float64 // extra reach below the feet when looking for a ladder
	LadderFootSnap  float64 // max distance between feet and a ladder bottom to step off
	InvincibleTicks int
}

type BarrelTuning struct {
	Radius           float64
	Speed            float64
	LadderDropChance float64 // sampled every tick while over a ladder top
}

type FireballTuning struct {
	Radius              float64
	Speed               float64
	Spin                float64 // radians per tick, cosmetic
	BounceInterval      int     // resting ticks between hops
	BounceImpulse       float64
	LadderDescentChance float64 // sampled once per ladder encounter
	LadderDescentSpeed  float64
}

// DefaultTuning returns the reference values.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:            0.4,
		MaxFallSpeed:       10,
		RestTolerance:      10,
		LadderTopTolerance: 6,
		Player: PlayerTuning{
			Width:           24,
			Height:          32,
			Speed:           3,
			JumpPower:       8,
			MaxJumpHeight:   48,
			LadderSpeed:     2,
			LadderGrabReach: 2,
			LadderFootSnap:  4,
			InvincibleTicks: 120,
		},
		Barrel: BarrelTuning{
			Radius:           12,
			Speed:            2,
			LadderDropChance: 0.02,
		},
		Fireball: FireballTuning{
			Radius:              10,
			Speed:               1.5,
			Spin:                0.2,
			BounceInterval:      90,
			BounceImpulse:       4,
			LadderDescentChance: 0.5,
			LadderDescentSpeed:  1.5,
		},
	}
}
