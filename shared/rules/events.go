package rules

import "github.com/automoto/ladderclimb/shared/gamemath"

// Sound is a fire-and-forget audio cue.
type Sound int

const (
	SoundJump Sound = iota
	SoundHit
	SoundDeath
	SoundScore
	SoundLevelComplete
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundHit:
		return "hit"
	case SoundDeath:
		return "death"
	case SoundScore:
		return "score"
	case SoundLevelComplete:
		return "levelComplete"
	case SoundGameOver:
		return "gameOver"
	}
	return "unknown"
}

type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectCelebration
)

// Effect is a purely cosmetic request. At is unused for celebrations.
type Effect struct {
	Kind EffectKind
	At   gamemath.Vec
}

// Events accumulates collaborator notifications until drained.
type Events struct {
	Sounds  []Sound
	Effects []Effect
}
