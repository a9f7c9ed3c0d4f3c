package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLocalFrameRoundTrip(t *testing.T) {
	slabs := []Slab{
		{X: 0, Y: 100, W: 400, H: 10, Tilt: 0},
		{X: 50, Y: 200, W: 600, H: 12, Tilt: 2},
		{X: 80, Y: 300, W: 720, H: 10, Tilt: -2},
		{X: 10, Y: 10, W: 100, H: 20, Tilt: 30},
	}
	points := []Vec{{0, 0}, {123.5, 200}, {700, 305}, {-40, 12}}

	for _, s := range slabs {
		for _, p := range points {
			back := FromLocalFrame(ToLocalFrame(p, s), s)
			if !approx(back.X, p.X) || !approx(back.Y, p.Y) {
				t.Fatalf("round trip %v through %+v gave %v", p, s, back)
			}
		}
	}
}

func TestSurfacePointsHaveZeroLocalY(t *testing.T) {
	for _, tilt := range []float64{-2, -1, 0, 1, 2} {
		s := Slab{X: 80, Y: 380, W: 720, H: 10, Tilt: tilt}
		for x := s.X; x <= s.X+s.W; x += 40 {
			local := ToLocalFrame(Vec{X: x, Y: s.SurfaceY(x)}, s)
			if math.Abs(local.Y) > eps {
				t.Fatalf("tilt %v x %v: surface point has local y %v", tilt, x, local.Y)
			}
		}
	}
}

func TestRestingHeightContinuousAndMonotonic(t *testing.T) {
	cases := []struct {
		name string
		tilt float64
	}{
		{"flat", 0},
		{"right_low", 2},
		{"left_low", -2},
		{"shallow", 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Slab{X: 0, Y: 475, W: 720, H: 10, Tilt: c.tilt}
			const step = 0.25
			maxJump := step*math.Abs(math.Tan(Radians(c.tilt))) + eps

			prev := RestingHeight(s.X, s, 32)
			for x := s.X + step; x <= s.X+s.W; x += step {
				y := RestingHeight(x, s, 32)
				if math.Abs(y-prev) > maxJump {
					t.Fatalf("seam at x=%v: %v -> %v", x, prev, y)
				}
				switch {
				case c.tilt > 0 && y < prev:
					t.Fatalf("not increasing at x=%v", x)
				case c.tilt < 0 && y > prev:
					t.Fatalf("not decreasing at x=%v", x)
				case c.tilt == 0 && y != prev:
					t.Fatalf("flat slab changed height at x=%v", x)
				}
				prev = y
			}
		})
	}
}

func TestRestingHeightMatchesFormula(t *testing.T) {
	s := Slab{X: 100, Y: 200, W: 400, H: 10, Tilt: 2}
	c := s.Center()
	x := 420.0
	want := c.Y + (x-c.X)*math.Tan(2*math.Pi/180) - 24
	if got := RestingHeight(x, s, 24); !approx(got, want) {
		t.Fatalf("RestingHeight = %v, want %v", got, want)
	}
}

func TestIsResting(t *testing.T) {
	s := Slab{X: 0, Y: 100, W: 200, H: 10, Tilt: 2}
	onSurface := Vec{X: 100, Y: s.SurfaceY(100)}

	cases := []struct {
		name   string
		bottom Vec
		vy     float64
		want   bool
	}{
		{"on_surface_falling", onSurface, 1, true},
		{"on_surface_still", onSurface, 0, true},
		{"ascending_through", onSurface, -0.01, false},
		{"in_tolerance_band", Vec{X: 100, Y: onSurface.Y + 5 + 9}, 10, true},
		{"below_band", Vec{X: 100, Y: onSurface.Y + 5 + 11}, 10, false},
		{"above_slab", Vec{X: 100, Y: onSurface.Y - 6}, 1, false},
		{"past_right_edge", Vec{X: 201, Y: s.SurfaceY(201)}, 1, false},
		{"past_left_edge", Vec{X: -1, Y: s.SurfaceY(-1)}, 1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsResting(c.bottom, c.vy, s, 10); got != c.want {
				t.Fatalf("IsResting(%v, %v) = %v, want %v", c.bottom, c.vy, got, c.want)
			}
		})
	}
}

func TestAscendingNeverRests(t *testing.T) {
	for _, tilt := range []float64{-2, 0, 2} {
		s := Slab{X: 0, Y: 300, W: 500, H: 10, Tilt: tilt}
		for x := -20.0; x <= 520; x += 10 {
			for y := 280.0; y <= 330; y += 2 {
				if IsResting(Vec{X: x, Y: y}, -0.5, s, 10) {
					t.Fatalf("ascending entity rested at (%v,%v) tilt %v", x, y, tilt)
				}
			}
		}
	}
}

func TestLowerSide(t *testing.T) {
	cases := []struct {
		tilt float64
		want float64
	}{
		{2, 1},
		{-2, -1},
		{0, 0},
	}
	for _, c := range cases {
		s := Slab{X: 0, Y: 0, W: 300, H: 10, Tilt: c.tilt}
		if got := LowerSide(s); got != c.want {
			t.Fatalf("LowerSide(tilt=%v) = %v, want %v", c.tilt, got, c.want)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching_edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.Overlaps(c.b); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
		})
	}
}
