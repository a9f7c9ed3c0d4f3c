package headless

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/shared/rules"
)

// IntentSource supplies the input intent for each tick.
type IntentSource interface {
	Intent(snap *rules.Snapshot) physics.Intent
}

// Step holds one intent for a number of ticks.
type Step struct {
	Intent physics.Intent
	Ticks  int
}

// Script replays its steps in order and loops when it runs out.
type Script struct {
	Steps []Step
	step  int
	tick  int
}

func (s *Script) Intent(_ *rules.Snapshot) physics.Intent {
	if len(s.Steps) == 0 {
		return physics.Intent{}
	}
	cur := s.Steps[s.step]
	s.tick++
	if s.tick >= cur.Ticks {
		s.tick = 0
		s.step = (s.step + 1) % len(s.Steps)
	}
	return cur.Intent
}

// ParseScript reads steps written as KEYS:TICKS separated by commas, where
// KEYS is any mix of L, R, U, D and J, or "-" for no input. "RJ:1,R:40"
// jumps to the right and keeps running for 40 ticks.
func ParseScript(src string) (*Script, error) {
	var steps []Step
	for _, field := range strings.Split(src, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		keys, count, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing tick count", field)
		}
		ticks, err := strconv.Atoi(count)
		if err != nil || ticks <= 0 {
			return nil, fmt.Errorf("step %q: bad tick count", field)
		}
		var in physics.Intent
		for _, k := range strings.ToUpper(keys) {
			switch k {
			case 'L':
				in.Left = true
			case 'R':
				in.Right = true
			case 'U':
				in.Up = true
			case 'D':
				in.Down = true
			case 'J':
				in.Jump = true
			case '-':
			default:
				return nil, fmt.Errorf("step %q: unknown key %q", field, k)
			}
		}
		steps = append(steps, Step{Intent: in, Ticks: ticks})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return &Script{Steps: steps}, nil
}

// Wander walks in one direction for a while, climbs whatever ladder it finds
// and jumps now and then.
type Wander struct {
	rng      *rand.Rand
	hold     int
	right    bool
	climbing bool
}

func NewWander(rng *rand.Rand) *Wander {
	return &Wander{rng: rng, right: true}
}

const (
	wanderMinHold = 30
	wanderMaxHold = 120
	wanderJump    = 0.03
	wanderClimb   = 0.5
)

func (w *Wander) Intent(snap *rules.Snapshot) physics.Intent {
	if w.hold <= 0 {
		w.hold = wanderMinHold + w.rng.Intn(wanderMaxHold-wanderMinHold)
		w.right = w.rng.Intn(2) == 0
		w.climbing = w.rng.Float64() < wanderClimb
	}
	w.hold--

	if w.climbing && snap.Player.Climbing {
		return physics.Intent{Up: true}
	}
	return physics.Intent{
		Left:  !w.right,
		Right: w.right,
		Up:    w.climbing,
		Jump:  snap.Player.Grounded && w.rng.Float64() < wanderJump,
	}
}
