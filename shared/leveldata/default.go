package leveldata

import "github.com/automoto/ladderclimb/shared/gamemath"

const (
	platformThickness = 10.0
	ladderWidth       = 20.0
)

// DefaultLevel returns the built-in stage: six stacked platforms with
// alternating +-2 degree tilt joined by one ladder per gap, goal on the top.
func DefaultLevel() *Level {
	platforms := []Platform{
		platform(0, 570, 800, 0),
		platform(0, 475, 720, 2),
		platform(80, 380, 720, -2),
		platform(0, 285, 720, 2),
		platform(80, 190, 720, -2),
		platform(0, 95, 300, 0),
	}

	ladderX := []float64{620, 140, 560, 200, 240}
	ladders := make([]Ladder, 0, len(ladderX))
	for i, x := range ladderX {
		ladders = append(ladders, LadderBetween(platforms[i], platforms[i+1], x, ladderWidth))
	}

	return &Level{
		Name:        "default",
		Width:       800,
		Height:      600,
		Platforms:   platforms,
		Ladders:     ladders,
		Goal:        gamemath.Rect{X: 20, Y: 50, W: 40, H: 50},
		PlayerSpawn: gamemath.Vec{X: 40, Y: 540},
		HazardSpawn: gamemath.Vec{X: 120, Y: 70},
	}
}

func platform(x, y, w, tilt float64) Platform {
	return Platform{Slab: gamemath.Slab{X: x, Y: y, W: w, H: platformThickness, Tilt: tilt}}
}

// LadderBetween builds a ladder of width w at horizontal position x spanning
// from the surface of upper down to the surface of lower, measured at the
// ladder's center line.
func LadderBetween(lower, upper Platform, x, w float64) Ladder {
	cx := x + w/2
	top := upper.SurfaceY(cx)
	bottom := lower.SurfaceY(cx)
	return Ladder{Rect: gamemath.Rect{X: x, Y: top, W: w, H: bottom - top}}
}
