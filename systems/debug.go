package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broad-phase object and prints the tick counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	if space := getSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvPlatform):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvHazard):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvGoal):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(tags.ResolvProbe):
				c = color.RGBA{255, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	snap := GetSnapshot(ecs)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  %s  hazards %d  fps %.0f",
		snap.Tick, snap.State, len(snap.Hazards), ebiten.ActualFPS()), 4, screen.Bounds().Dy()-16)
}
