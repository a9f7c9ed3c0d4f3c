package physics

import (
	"testing"

	"github.com/automoto/ladderclimb/shared/gamemath"
	"github.com/automoto/ladderclimb/shared/leveldata"
)

func restingHazard(kind Kind, s *Stage, platform int, x, vx float64) *Hazard {
	h := NewHazard(kind, 0, gamemath.Vec{X: x}, s.Tuning)
	h.Y = gamemath.RestingHeight(x, s.Level.Platforms[platform].Slab, h.Radius)
	h.RestingPlatform = platform
	h.VX = vx
	return h
}

func TestHazardLeavesPlatformEdge(t *testing.T) {
	level := &leveldata.Level{
		Width:     400,
		Height:    300,
		Platforms: []leveldata.Platform{slab(0, 200, 300, 0)},
	}
	s := stageWith(level, 0.99)
	h := restingHazard(KindBarrel, s, 0, 299, 2)

	if fate := h.Update(s); fate != FateAlive {
		t.Fatalf("fate = %v, want alive", fate)
	}
	if h.Resting() {
		t.Error("resting platform should clear on the tick the edge is crossed")
	}
	if h.VY <= 0 {
		t.Errorf("VY = %v, gravity should apply on the same tick", h.VY)
	}
	if h.Phase() != PhaseFalling {
		t.Errorf("phase = %v, want falling", h.Phase())
	}
}

func TestHazardLandingDirection(t *testing.T) {
	tests := []struct {
		name   string
		tilt   float64
		vx     float64
		wantVX float64
	}{
		{"right side lower", 2, -1, 2},
		{"left side lower", -2, 1, -2},
		{"flat keeps direction", 0, -1, -2},
		{"flat from rest goes right", 0, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := &leveldata.Level{
				Width:     400,
				Height:    300,
				Platforms: []leveldata.Platform{slab(50, 200, 300, tt.tilt)},
			}
			s := stageWith(level, 0.99)
			h := NewHazard(KindBarrel, 0, gamemath.Vec{X: 200, Y: 150}, s.Tuning)
			h.VX = tt.vx

			for i := 0; i < 60 && !h.Resting(); i++ {
				h.Update(s)
			}
			if !h.Resting() {
				t.Fatal("barrel never landed")
			}
			if h.VX != tt.wantVX {
				t.Errorf("VX = %v, want %v", h.VX, tt.wantVX)
			}
			want := gamemath.RestingHeight(h.X, level.Platforms[0].Slab, h.Radius)
			if !approx(h.Y, want) {
				t.Errorf("Y = %v, want %v", h.Y, want)
			}
		})
	}
}

func TestHazardRemoval(t *testing.T) {
	t.Run("crash into wall on bottom platform", func(t *testing.T) {
		s := stageWith(twoFloors(), 0.99)
		h := restingHazard(KindBarrel, s, 0, 387, 2)
		if fate := h.Update(s); fate != FateCrashed {
			t.Errorf("fate = %v, want crashed", fate)
		}
	})
	t.Run("upper platform wall reverses", func(t *testing.T) {
		s := stageWith(twoFloors(), 0.99)
		h := restingHazard(KindBarrel, s, 1, 387, 2)
		if fate := h.Update(s); fate != FateAlive {
			t.Errorf("fate = %v, want alive", fate)
		}
		if h.VX >= 0 {
			t.Errorf("VX = %v, want negative after hitting the wall", h.VX)
		}
	})
	t.Run("slope into an upper wall crashes", func(t *testing.T) {
		level := &leveldata.Level{
			Width:     400,
			Height:    300,
			Platforms: []leveldata.Platform{slab(0, 200, 400, 0), slab(100, 100, 300, 2)},
		}
		s := stageWith(level, 0.99)
		h := restingHazard(KindBarrel, s, 1, 387, 2)
		if fate := h.Update(s); fate != FateCrashed {
			t.Errorf("fate = %v, want crashed instead of pinned at x=%v vx=%v", fate, h.X, h.VX)
		}
	})
	t.Run("falls below the world", func(t *testing.T) {
		s := stageWith(twoFloors(), 0.99)
		h := NewHazard(KindFireball, 0, gamemath.Vec{X: 200, Y: 315}, s.Tuning)
		if fate := h.Update(s); fate != FateFellOut {
			t.Errorf("fate = %v, want fell out", fate)
		}
	})
}

func TestBarrelDropsThroughLadder(t *testing.T) {
	s := stageWith(twoFloors(), 0)
	h := restingHazard(KindBarrel, s, 1, 108, 2)

	h.Update(s)
	if h.Resting() {
		t.Fatal("barrel should leave the platform at the ladder")
	}
	if h.X != 110 || h.VX != 0 {
		t.Errorf("X=%v VX=%v, want centered on the ladder and not rolling", h.X, h.VX)
	}
	if h.IgnorePlatform != 1 {
		t.Errorf("IgnorePlatform = %d, want 1", h.IgnorePlatform)
	}

	s.Chance = func() float64 { return 0.99 }
	for i := 0; i < 60 && !h.Resting(); i++ {
		h.Update(s)
	}
	if h.RestingPlatform != 0 {
		t.Fatalf("RestingPlatform = %d, want the lower floor", h.RestingPlatform)
	}
	if h.IgnorePlatform != NoIndex {
		t.Error("IgnorePlatform should clear on landing")
	}
}

func TestBarrelRollsPastLadderWhenChanceFails(t *testing.T) {
	s := stageWith(twoFloors(), 0.99)
	h := restingHazard(KindBarrel, s, 1, 90, 2)
	for i := 0; i < 20; i++ {
		h.Update(s)
	}
	if h.RestingPlatform != 1 {
		t.Errorf("RestingPlatform = %d, want 1", h.RestingPlatform)
	}
}

func TestFireballRollsOncePerLadder(t *testing.T) {
	s := stageWith(twoFloors(), 0)
	calls := 0
	s.Chance = func() float64 {
		calls++
		return 0.99
	}
	h := restingHazard(KindFireball, s, 1, 90, 1.5)
	for i := 0; i < 30; i++ {
		h.Update(s)
	}
	if calls != 1 {
		t.Errorf("chance sampled %d times, want 1", calls)
	}
	if h.Fireball.LastLadder != NoIndex {
		t.Errorf("LastLadder = %d, want reset after leaving the ladder", h.Fireball.LastLadder)
	}
}

func TestFireballDescendsLadder(t *testing.T) {
	s := stageWith(twoFloors(), 0)
	h := restingHazard(KindFireball, s, 1, 99, 1.5)

	h.Update(s)
	if h.Phase() != PhaseDescending {
		t.Fatalf("phase = %v, want descending", h.Phase())
	}

	h.Update(s)
	if h.X != 110 || h.VY != s.Tuning.Fireball.LadderDescentSpeed {
		t.Errorf("X=%v VY=%v while descending", h.X, h.VY)
	}

	for i := 0; i < 120 && h.RestingPlatform != 0; i++ {
		h.Update(s)
	}
	if h.RestingPlatform != 0 {
		t.Fatalf("fireball did not reach the lower floor: %+v", *h)
	}
}

func TestFireballBounces(t *testing.T) {
	s := stageWith(twoFloors(), 0.99)
	h := restingHazard(KindFireball, s, 0, 200, 1.5)
	interval := s.Tuning.Fireball.BounceInterval

	for i := 1; i < interval; i++ {
		h.Update(s)
		if !h.Resting() {
			t.Fatalf("left the platform early at tick %d", i)
		}
	}
	h.Update(s)
	if h.VY != -s.Tuning.Fireball.BounceImpulse || !h.Fireball.AirborneFromBounce {
		t.Fatalf("VY=%v airborne=%v, want a hop", h.VY, h.Fireball.AirborneFromBounce)
	}

	for i := 0; i < 60 && !h.Resting(); i++ {
		h.Update(s)
	}
	if !h.Resting() || h.Fireball.AirborneFromBounce {
		t.Error("fireball should land back after the hop")
	}
}

func TestFireballSpins(t *testing.T) {
	s := stageWith(twoFloors(), 0.99)
	h := restingHazard(KindFireball, s, 0, 200, 1.5)
	h.Update(s)
	h.Update(s)
	if !approx(h.Rotation, 2*s.Tuning.Fireball.Spin) {
		t.Errorf("Rotation = %v", h.Rotation)
	}
}
