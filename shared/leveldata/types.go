// Package leveldata describes the static geometry of a level: tilted
// platforms, ladders, the goal region and spawn points. Levels are immutable
// once loaded; every entity refers to platforms and ladders by index.
package leveldata

import "github.com/automoto/ladderclimb/shared/gamemath"

// Platform is a tilted walkable slab.
type Platform struct {
	gamemath.Slab
}

// Ladder is an axis-aligned climbable rectangle. Its top edge meets the
// surface of the upper platform and its bottom edge the lower one.
type Ladder struct {
	gamemath.Rect
}

// CenterX returns the horizontal middle of the ladder.
func (l Ladder) CenterX() float64 {
	return l.X + l.W/2
}

// Level holds all static data for one stage.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	Platforms   []Platform
	Ladders     []Ladder
	Goal        gamemath.Rect
	PlayerSpawn gamemath.Vec // top-left of the player box
	HazardSpawn gamemath.Vec // center of a freshly spawned hazard
}

// BottomPlatform returns the index of the lowest platform (largest center
// Y), or -1 when the level has no platforms.
func (l *Level) BottomPlatform() int {
	idx := -1
	for i, p := range l.Platforms {
		if idx < 0 || p.Center().Y > l.Platforms[idx].Center().Y {
			idx = i
		}
	}
	return idx
}
