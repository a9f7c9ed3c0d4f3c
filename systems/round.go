package systems

import (
	"log"

	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound drives the round state machine from the keyboard and gamepad.
// The overlay buttons call the same transitions.
func UpdateRound(ecs *ecs.ECS) {
	sess := GetSession(ecs)
	input := getOrCreateInput(ecs)
	confirm := GetAction(input, cfg.ActionConfirm).JustPressed
	restart := GetAction(input, cfg.ActionRestart).JustPressed

	switch sess.State {
	case rules.StateStart:
		if confirm {
			StartRound(ecs)
		}
	case rules.StatePlaying:
		if GetAction(input, cfg.ActionPause).JustPressed {
			TogglePause(ecs)
		} else if sess.Paused && restart {
			RestartLevel(ecs)
		}
	case rules.StateLevelComplete:
		if confirm {
			NextLevel(ecs)
		} else if restart {
			RestartLevel(ecs)
		}
	case rules.StateGameOver:
		if confirm || restart {
			RestartLevel(ecs)
		}
	}
}

// StartRound leaves the start screen.
func StartRound(ecs *ecs.ECS) {
	sess := GetSession(ecs)
	if sess.State != rules.StateStart {
		return
	}
	PlaySFX(ecs, cfg.SoundMenuSelect)
	sess.StartRound(Arena(ecs))
	log.Printf("Round started on %s", sess.Level().Name)
}

// RestartLevel begins a fresh round on the current level.
func RestartLevel(ecs *ecs.ECS) {
	sess := GetSession(ecs)
	PlaySFX(ecs, cfg.SoundMenuSelect)
	sess.RestartLevel(Arena(ecs))
	log.Printf("Round restarted on %s", sess.Level().Name)
}

// NextLevel continues after a completed level.
func NextLevel(ecs *ecs.ECS) {
	sess := GetSession(ecs)
	if sess.State != rules.StateLevelComplete {
		return
	}
	PlaySFX(ecs, cfg.SoundMenuSelect)
	sess.NextLevel(Arena(ecs))
	log.Printf("Advanced to %s (score %d, lives %d)", sess.Level().Name, sess.Score, sess.Lives)
}

func TogglePause(ecs *ecs.ECS) {
	PlaySFX(ecs, cfg.SoundMenuSelect)
	GetSession(ecs).TogglePause()
}
