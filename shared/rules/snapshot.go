package rules

import (
	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/physics"
)

// Snapshot is the read-only view handed to renderers once per tick.
type Snapshot struct {
	Tick      int
	State     RoundState
	Paused    bool
	Score     int
	Lives     int
	HighScore int
	Level     string

	Player  PlayerPose
	Hazards []HazardPose

	Goal         gamemath.Rect
	GoalDefeated bool
}

type PlayerPose struct {
	Box        gamemath.Rect
	Facing     physics.Facing
	Grounded   bool
	Climbing   bool
	Invincible bool
	// Visible is false on the off-beats of the invincibility flicker.
	Visible bool
}

type HazardPose struct {
	Kind     physics.Kind
	Center   gamemath.Vec
	Radius   float64
	Rotation float64
	Phase    physics.Phase
}

const flickerPeriod = 8

func (s *Session) Snapshot(a Arena) Snapshot {
	p := a.Player()
	snap := Snapshot{
		Tick:         s.Tick,
		State:        s.State,
		Paused:       s.Paused,
		Score:        s.Score,
		Lives:        s.Lives,
		HighScore:    s.HighScore,
		Level:        s.Level().Name,
		Goal:         s.Level().Goal,
		GoalDefeated: s.GoalDefeated,
		Player: PlayerPose{
			Box:        p.Box(),
			Facing:     p.Facing,
			Grounded:   p.Grounded,
			Climbing:   p.Climbing,
			Invincible: p.Invincible(),
			Visible:    !p.Invincible() || p.InvincibleTicks%flickerPeriod < flickerPeriod/2,
		},
	}
	hazards := a.Hazards()
	snap.Hazards = make([]HazardPose, 0, len(hazards))
	for _, h := range hazards {
		snap.Hazards = append(snap.Hazards, HazardPose{
			Kind:     h.Kind,
			Center:   h.Center(),
			Radius:   h.Radius,
			Rotation: h.Rotation,
			Phase:    h.Phase(),
		})
	}
	return snap
}
