// Package physics advances the player and the hazards by one tick. All state
// lives in plain structs; nothing here knows about the ECS, the renderer or
// wall-clock time, so a given tick count always yields the same state.
package physics

import (
	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/leveldata"
)

// NoIndex marks an absent platform or ladder reference.
const NoIndex = -1

// Intent is the per-tick input vector supplied by the input collaborator.
type Intent struct {
	Left, Right, Up, Down bool
	Jump                  bool
}

// LadderIndex answers which ladders of the current level overlap a box.
// Returned values index Level.Ladders.
type LadderIndex interface {
	Overlapping(box gamemath.Rect) []int
}

// ScanLadders is a LadderIndex that tests every ladder.
type ScanLadders []leveldata.Ladder

func (s ScanLadders) Overlapping(box gamemath.Rect) []int {
	var hits []int
	for i, l := range s {
		if l.Overlaps(box) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Stage bundles everything a step function reads but never writes.
type Stage struct {
	Level   *leveldata.Level
	Ladders LadderIndex
	Tuning  Tuning
	// Chance returns a uniform sample in [0, 1). Used for ladder descents.
	Chance func() float64
}

// NewStage builds a Stage with a linear ladder scan.
func NewStage(level *leveldata.Level, tuning Tuning, chance func() float64) *Stage {
	return &Stage{
		Level:   level,
		Ladders: ScanLadders(level.Ladders),
		Tuning:  tuning,
		Chance:  chance,
	}
}

func (s *Stage) fall(vy float64) float64 {
	vy += s.Tuning.Gravity
	if vy > s.Tuning.MaxFallSpeed {
		vy = s.Tuning.MaxFallSpeed
	}
	return vy
}
