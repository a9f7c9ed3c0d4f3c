package physics

func (h *Hazard) updateBarrel(s *Stage) bool {
	hitWall := h.roll(s, s.Tuning.Barrel.Speed)
	h.Rotation += h.VX / h.Radius

	if !h.Resting() {
		return hitWall
	}
	if l := h.ladderBelow(s); l != NoIndex && s.Chance() < s.Tuning.Barrel.LadderDropChance {
		h.dropDown(s, l)
	}
	return hitWall
}

// dropDown lets a resting barrel fall through its platform along a ladder.
func (h *Hazard) dropDown(s *Stage, ladder int) {
	h.X = s.Level.Ladders[ladder].CenterX()
	h.VX = 0
	h.IgnorePlatform = h.RestingPlatform
	h.RestingPlatform = NoIndex
}
