package physics

import (
	"math"

	"github.com/automoto/ladderclimb/shared/gamemath"
)

// Kind selects the behavior variant of a hazard.
type Kind int

const (
	KindBarrel Kind = iota
	KindFireball
)

func (k Kind) String() string {
	switch k {
	case KindBarrel:
		return "barrel"
	case KindFireball:
		return "fireball"
	}
	return "unknown"
}

// Phase is the coarse motion state of a hazard.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseResting
	PhaseDescending
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseResting:
		return "resting"
	case PhaseDescending:
		return "descending"
	}
	return "unknown"
}

// Fate tells the owner whether a hazard survives the tick.
type Fate int

const (
	FateAlive Fate = iota
	FateFellOut
	FateCrashed // hit a side wall on the bottom platform, or was pinned against one
)

// Hazard is a rolling obstacle. X and Y are its center. Fields shared by all
// variants live here; variant-only state is in Fireball.
type Hazard struct {
	Kind   Kind
	Serial int // spawn order, used to break ties

	X, Y     float64
	VX, VY   float64
	Radius   float64
	Rotation float64

	RestingPlatform int
	// IgnorePlatform is skipped by contact checks until the next landing.
	IgnorePlatform int
	Scored         bool

	Fireball FireballState
}

type FireballState struct {
	BounceTicks        int
	AirborneFromBounce bool
	Descending         bool
	DescentLadder      int
	// LastLadder is the ladder most recently rolled for, so each encounter
	// gets a single chance.
	LastLadder int
}

// NewHazard creates a hazard of the given kind at spawn, not yet resting.
func NewHazard(kind Kind, serial int, spawn gamemath.Vec, t Tuning) *Hazard {
	h := &Hazard{
		Kind:            kind,
		Serial:          serial,
		X:               spawn.X,
		Y:               spawn.Y,
		RestingPlatform: NoIndex,
		IgnorePlatform:  NoIndex,
		Fireball: FireballState{
			DescentLadder: NoIndex,
			LastLadder:    NoIndex,
		},
	}
	switch kind {
	case KindBarrel:
		h.Radius = t.Barrel.Radius
	case KindFireball:
		h.Radius = t.Fireball.Radius
	}
	return h
}

func (h *Hazard) Resting() bool { return h.RestingPlatform != NoIndex }

func (h *Hazard) Phase() Phase {
	switch {
	case h.Fireball.Descending:
		return PhaseDescending
	case h.Resting():
		return PhaseResting
	}
	return PhaseFalling
}

func (h *Hazard) Center() gamemath.Vec { return gamemath.Vec{X: h.X, Y: h.Y} }

func (h *Hazard) Bottom() gamemath.Vec { return gamemath.Vec{X: h.X, Y: h.Y + h.Radius} }

func (h *Hazard) Top() float64 { return h.Y - h.Radius }

func (h *Hazard) Bounds() gamemath.Rect {
	return gamemath.Rect{X: h.X - h.Radius, Y: h.Y - h.Radius, W: 2 * h.Radius, H: 2 * h.Radius}
}

// Update advances the hazard by one tick.
func (h *Hazard) Update(s *Stage) Fate {
	var hitWall bool
	switch h.Kind {
	case KindBarrel:
		hitWall = h.updateBarrel(s)
	case KindFireball:
		hitWall = h.updateFireball(s)
	}

	if h.Top() > s.Level.Height {
		return FateFellOut
	}
	if hitWall && (h.RestingPlatform == s.Level.BottomPlatform() || h.pinned(s)) {
		return FateCrashed
	}
	return FateAlive
}

// pinned reports whether a resting hazard is still rolling into the wall it
// touches. That happens when a platform slopes down into a wall.
func (h *Hazard) pinned(s *Stage) bool {
	if !h.Resting() {
		return false
	}
	return (h.X <= h.Radius && h.VX < 0) || (h.X >= s.Level.Width-h.Radius && h.VX > 0)
}

// roll moves the hazard sideways, drops it when it leaves its platform, applies
// gravity and settles it on whatever it touches. It reports whether a side
// wall was hit.
func (h *Hazard) roll(s *Stage, speed float64) (hitWall bool) {
	h.X += h.VX
	switch {
	case h.X < h.Radius:
		h.X = h.Radius
		hitWall = true
	case h.X > s.Level.Width-h.Radius:
		h.X = s.Level.Width - h.Radius
		hitWall = true
	}
	if hitWall && h.RestingPlatform != s.Level.BottomPlatform() {
		h.VX = -h.VX
	}

	exited := NoIndex
	if h.Resting() {
		p := s.Level.Platforms[h.RestingPlatform]
		if h.X < p.X || h.X > p.X+p.W {
			exited = h.RestingPlatform
			h.RestingPlatform = NoIndex
		}
	}

	if !h.Resting() {
		h.VY = s.fall(h.VY)
	}
	h.Y += h.VY

	h.settle(s, exited, speed)
	return hitWall
}

// settle finds the platform the hazard is touching, if any, snaps onto it and
// points the hazard downhill. The platform just rolled off is ignored for the
// rest of the tick.
func (h *Hazard) settle(s *Stage, exited int, speed float64) {
	bottom := h.Bottom()
	for i, p := range s.Level.Platforms {
		if i == exited || i == h.IgnorePlatform {
			continue
		}
		if !gamemath.IsResting(bottom, h.VY, p.Slab, s.Tuning.RestTolerance) {
			continue
		}
		h.Y = gamemath.RestingHeight(h.X, p.Slab, h.Radius)
		h.VY = 0
		if h.RestingPlatform != i {
			h.IgnorePlatform = NoIndex
			if h.Kind == KindFireball {
				h.Fireball.AirborneFromBounce = false
			}
		}
		h.RestingPlatform = i
		h.VX = downhill(p.Slab, h.VX) * speed
		return
	}
	h.RestingPlatform = NoIndex
}

// downhill picks a rolling direction on s: toward the lower end, or the
// current direction on a level platform.
func downhill(s gamemath.Slab, vx float64) float64 {
	if side := gamemath.LowerSide(s); side != 0 {
		return side
	}
	if vx != 0 {
		return gamemath.Sign(vx)
	}
	return 1
}

// ladderBelow returns the ladder whose top the hazard is sitting on.
func (h *Hazard) ladderBelow(s *Stage) int {
	tol := s.Tuning.LadderTopTolerance
	bottom := h.Bottom()
	probe := gamemath.Rect{X: bottom.X - 0.5, Y: bottom.Y - tol, W: 1, H: 2 * tol}
	for _, i := range s.Ladders.Overlapping(probe) {
		l := s.Level.Ladders[i]
		if bottom.X < l.X || bottom.X > l.Right() {
			continue
		}
		if math.Abs(bottom.Y-l.Y) <= tol {
			return i
		}
	}
	return NoIndex
}
