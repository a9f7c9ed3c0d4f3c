package rules

import (
	"math"

	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/physics"
)

// Resolve runs the per-tick collision and scoring pass: jump-overs and hits
// against every hazard, then the goal.
func (s *Session) Resolve(a Arena) {
	if s.State != StatePlaying {
		return
	}
	p := a.Player()

	if !p.Invincible() {
		for _, h := range a.Hazards() {
			if JumpedOver(p, h, s.Tuning.JumpOverTolerance) {
				h.Scored = true
				s.addScore(s.jumpOverBonus(h.Kind))
				s.emitSound(SoundScore)
				continue
			}
			if Hits(p, h) {
				s.emitEffect(Effect{Kind: EffectExplosion, At: h.Center()})
				s.emitSound(SoundHit)
				s.OnLifeLost(a)
				break
			}
		}
	}

	if s.State == StatePlaying && !s.GoalDefeated && p.Box().Overlaps(s.Level().Goal) {
		s.OnGoalReached()
	}
}

// JumpedOver reports whether the airborne player is clearing h from above
// and h has not been credited yet.
func JumpedOver(p *physics.Player, h *physics.Hazard, tolerance float64) bool {
	if h.Scored || p.Grounded {
		return false
	}
	if p.X >= h.X+h.Radius || p.X+p.Width <= h.X-h.Radius {
		return false
	}
	return p.Y+p.Height <= h.Top()+tolerance
}

// Hits treats the player as a circle of radius min(w,h)/2.
func Hits(p *physics.Player, h *physics.Hazard) bool {
	reach := math.Min(p.Width, p.Height)/2 + h.Radius
	return gamemath.Distance(p.Center(), h.Center()) <= reach
}

func (s *Session) jumpOverBonus(k physics.Kind) int {
	if k == physics.KindFireball {
		return s.Tuning.FireballScore
	}
	return s.Tuning.BarrelScore
}
