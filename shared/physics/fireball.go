package physics

func (h *Hazard) updateFireball(s *Stage) bool {
	t := s.Tuning.Fireball
	fb := &h.Fireball
	h.Rotation += t.Spin

	if fb.Descending {
		l := s.Level.Ladders[fb.DescentLadder]
		h.X = l.CenterX()
		h.VX = 0
		h.VY = t.LadderDescentSpeed
		h.Y += h.VY
		if h.Bottom().Y >= l.Bottom() {
			fb.Descending = false
			fb.DescentLadder = NoIndex
			h.VY = 0
		}
		return false
	}

	hitWall := h.roll(s, t.Speed)
	if !h.Resting() {
		return hitWall
	}

	l := h.ladderBelow(s)
	if l == NoIndex {
		fb.LastLadder = NoIndex
	} else if l != fb.LastLadder {
		fb.LastLadder = l
		if s.Chance() < t.LadderDescentChance {
			fb.Descending = true
			fb.DescentLadder = l
			fb.BounceTicks = 0
			h.X = s.Level.Ladders[l].CenterX()
			h.VX = 0
			h.RestingPlatform = NoIndex
			return hitWall
		}
	}

	fb.BounceTicks++
	if fb.BounceTicks >= t.BounceInterval {
		fb.BounceTicks = 0
		fb.AirborneFromBounce = true
		h.VY = -t.BounceImpulse
		h.RestingPlatform = NoIndex
	}
	return hitWall
}
