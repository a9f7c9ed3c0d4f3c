package gamemath

import "math"

// Vec is a point or displacement in world space. Y grows downward.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two rectangles share interior area. Touching
// edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Slab is a rectangle rotated by TiltDegrees about its own center.
// Positive tilt lowers the right-hand side (screen coordinates).
type Slab struct {
	X, Y, W, H float64
	Tilt       float64
}

// Center returns the pivot of the slab's rotation.
func (s Slab) Center() Vec {
	return Vec{X: s.X + s.W/2, Y: s.Y + s.H/2}
}

// Bounds returns the unrotated rectangle of the slab.
func (s Slab) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

// SurfaceY is the world Y of the slab's center line at horizontal position x.
func (s Slab) SurfaceY(x float64) float64 {
	c := s.Center()
	return c.Y + (x-c.X)*math.Tan(Radians(s.Tilt))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToLocalFrame rotates p by -Tilt about the slab's center. In the returned
// frame the slab is axis-aligned and centered on the origin.
func ToLocalFrame(p Vec, s Slab) Vec {
	c := s.Center()
	sin, cos := math.Sincos(Radians(s.Tilt))
	dx, dy := p.X-c.X, p.Y-c.Y
	return Vec{
		X: dx*cos + dy*sin,
		Y: -dx*sin + dy*cos,
	}
}

// FromLocalFrame is the inverse of ToLocalFrame.
func FromLocalFrame(p Vec, s Slab) Vec {
	c := s.Center()
	sin, cos := math.Sincos(Radians(s.Tilt))
	return Vec{
		X: c.X + p.X*cos - p.Y*sin,
		Y: c.Y + p.X*sin + p.Y*cos,
	}
}

// RestingHeight returns the world Y at which an entity of the given height
// rests on s when its reference point is at horizontal position x. Player and
// hazards all land through this function.
func RestingHeight(x float64, s Slab, entityHeight float64) float64 {
	return s.SurfaceY(x) - entityHeight
}

// IsResting reports whether an entity whose bottom-center point is bottom
// and whose vertical speed is vy is supported by s. The band below the
// slab's lower face absorbs one fall step of up to tolerance pixels.
// Ascending entities never rest, so platforms can be crossed from below.
func IsResting(bottom Vec, vy float64, s Slab, tolerance float64) bool {
	if vy < 0 {
		return false
	}
	local := ToLocalFrame(bottom, s)
	if math.Abs(local.X) > s.W/2 {
		return false
	}
	return local.Y >= -s.H/2 && local.Y <= s.H/2+tolerance
}

// LowerSide returns +1 when the right end of s sits lower than the left end,
// -1 for the opposite, and 0 for a level slab.
func LowerSide(s Slab) float64 {
	left := RestingHeight(s.X, s, 0)
	right := RestingHeight(s.X+s.W, s, 0)
	switch {
	case right-left > levelEpsilon:
		return 1
	case left-right > levelEpsilon:
		return -1
	}
	return 0
}

const levelEpsilon = 1e-9

// Distance is the euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
