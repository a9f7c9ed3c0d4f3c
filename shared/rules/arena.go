package rules

import (
	"slices"

	"github.com/automoto/ladderclimb/shared/physics"
)

// Arena stores the live entities of a round. The session never keeps its own
// references to them.
type Arena interface {
	Player() *physics.Player
	// Hazards returns live hazards ordered by Serial.
	Hazards() []*physics.Hazard
	AddHazard(h *physics.Hazard)
	RemoveHazard(h *physics.Hazard)
	ClearHazards()
}

// Pool is a slice-backed Arena.
type Pool struct {
	P    *physics.Player
	List []*physics.Hazard
}

func NewPool(p *physics.Player) *Pool {
	return &Pool{P: p}
}

func (p *Pool) Player() *physics.Player { return p.P }

func (p *Pool) Hazards() []*physics.Hazard { return p.List }

func (p *Pool) AddHazard(h *physics.Hazard) {
	p.List = append(p.List, h)
	// Serials normally arrive in order; keep the invariant if they don't.
	if n := len(p.List); n > 1 && p.List[n-2].Serial > h.Serial {
		slices.SortFunc(p.List, func(a, b *physics.Hazard) int { return a.Serial - b.Serial })
	}
}

func (p *Pool) RemoveHazard(h *physics.Hazard) {
	p.List = slices.DeleteFunc(p.List, func(x *physics.Hazard) bool { return x == h })
}

func (p *Pool) ClearHazards() { p.List = p.List[:0] }
