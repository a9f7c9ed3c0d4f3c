package physics

import (
	"math"

	"github.com/automoto/ladderclimb/shared/gamemath"
)

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the controllable character. X and Y are the top-left corner of
// its box.
type Player struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	Grounded bool
	OnLadder bool
	// Climbing implies VY is exactly plus or minus the ladder speed.
	Climbing bool
	Facing   Facing

	JumpOriginY     float64
	InvincibleTicks int
}

// PlayerEvents reports what happened during one Update.
type PlayerEvents struct {
	Jumped  bool
	FellOut bool
}

// NewPlayer places a fresh player at spawn with invincibility engaged.
func NewPlayer(spawn gamemath.Vec, t PlayerTuning) *Player {
	p := &Player{Width: t.Width, Height: t.Height}
	p.Reset(spawn, t)
	return p
}

// Reset returns the player to spawn, zeroes motion and ladder flags and
// starts the invincibility window.
func (p *Player) Reset(spawn gamemath.Vec, t PlayerTuning) {
	p.X, p.Y = spawn.X, spawn.Y
	p.VX, p.VY = 0, 0
	p.Width, p.Height = t.Width, t.Height
	p.Grounded = false
	p.OnLadder = false
	p.Climbing = false
	p.Facing = FacingRight
	p.JumpOriginY = spawn.Y
	p.InvincibleTicks = t.InvincibleTicks
}

func (p *Player) Invincible() bool { return p.InvincibleTicks > 0 }

func (p *Player) Box() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Player) Center() gamemath.Vec { return p.Box().Center() }

// Feet is the bottom-center point used for platform contact.
func (p *Player) Feet() gamemath.Vec {
	return gamemath.Vec{X: p.X + p.Width/2, Y: p.Y + p.Height}
}

// Jump starts a jump if the player stands on a platform and is not on a
// ladder. It reports whether the jump happened.
func (p *Player) Jump(t PlayerTuning) bool {
	if !p.Grounded || p.Climbing {
		return false
	}
	p.VY = -t.JumpPower
	p.JumpOriginY = p.Y
	p.Grounded = false
	return true
}

// Update advances the player by one tick.
func (p *Player) Update(in Intent, s *Stage) PlayerEvents {
	t := s.Tuning.Player
	var ev PlayerEvents

	if p.InvincibleTicks > 0 {
		p.InvincibleTicks--
	}

	if in.Jump {
		ev.Jumped = p.Jump(t)
	}

	p.OnLadder = len(s.Ladders.Overlapping(p.ladderProbe(t))) > 0
	switch {
	case p.OnLadder && in.Up && !ev.Jumped:
		p.Climbing = true
		p.VY = -t.LadderSpeed
	case p.OnLadder && in.Down && !ev.Jumped:
		p.Climbing = true
		p.VY = t.LadderSpeed
	default:
		if p.Climbing {
			p.VY = 0
		}
		p.Climbing = false
	}

	p.VX = 0
	if in.Left && !in.Right {
		p.VX = -t.Speed
		p.Facing = FacingLeft
	} else if in.Right && !in.Left {
		p.VX = t.Speed
		p.Facing = FacingRight
	}
	if p.VX != 0 && p.Climbing {
		// Walking off a ladder.
		p.Climbing = false
		p.VY = 0
	}

	if !p.Climbing {
		p.VY = s.fall(p.VY)
		if p.VY < 0 && p.JumpOriginY-p.Y >= t.MaxJumpHeight {
			p.VY = 0
		}
	}

	p.X += p.VX
	p.Y += p.VY
	p.X = gamemath.Clamp(p.X, 0, s.Level.Width-p.Width)

	p.resolvePlatforms(s)

	ev.FellOut = p.Y > s.Level.Height
	return ev
}

func (p *Player) resolvePlatforms(s *Stage) {
	p.Grounded = false
	if p.Climbing && p.VY < 0 {
		return
	}
	feet := p.Feet()
	for _, plat := range s.Level.Platforms {
		if !gamemath.IsResting(feet, p.VY, plat.Slab, s.Tuning.RestTolerance) {
			continue
		}
		if p.Climbing && !p.atLadderFoot(s) {
			continue
		}
		p.Y = gamemath.RestingHeight(feet.X, plat.Slab, p.Height)
		p.VY = 0
		p.Grounded = true
		p.Climbing = false
		return
	}
}

// ladderProbe is the player box stretched down a little so a player standing
// on a ladder's top platform can still grab it.
func (p *Player) ladderProbe(t PlayerTuning) gamemath.Rect {
	b := p.Box()
	b.H += t.LadderGrabReach
	return b
}

func (p *Player) atLadderFoot(s *Stage) bool {
	feet := p.Feet().Y
	for _, i := range s.Ladders.Overlapping(p.ladderProbe(s.Tuning.Player)) {
		if math.Abs(feet-s.Level.Ladders[i].Bottom()) <= s.Tuning.Player.LadderFootSnap {
			return true
		}
	}
	return false
}
