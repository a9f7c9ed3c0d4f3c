package config

import "github.com/automoto/ladderclimb/shared/rules"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundJump
	SoundHit
	SoundDeath
	SoundScore
	// Round sounds
	SoundLevelComplete
	SoundGameOver
	// UI sounds
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundJump:          "audio/sfx/jump.wav",
			SoundHit:           "audio/sfx/hit.wav",
			SoundDeath:         "audio/sfx/death.wav",
			SoundScore:         "audio/sfx/score.wav",
			SoundLevelComplete: "audio/sfx/level_complete.wav",
			SoundGameOver:      "audio/sfx/game_over.wav",
			SoundMenuSelect:    "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:   1.5,
			SoundScore: 0.8,
		},
	}
}

// SoundFor maps a round event to its sound effect.
func SoundFor(s rules.Sound) SoundID {
	switch s {
	case rules.SoundJump:
		return SoundJump
	case rules.SoundHit:
		return SoundHit
	case rules.SoundDeath:
		return SoundDeath
	case rules.SoundScore:
		return SoundScore
	case rules.SoundLevelComplete:
		return SoundLevelComplete
	case rules.SoundGameOver:
		return SoundGameOver
	}
	return SoundNone
}
