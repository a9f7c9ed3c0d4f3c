package systems

import (
	"image/color"
	"math"

	"github.com/automoto/ladderclimb/components"
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	ladderRailWidth = 2
	ladderRungGap   = 10
	goalPoleWidth   = 4
	explosionStroke = 3
	confettiSize    = 4
)

// DrawLevel renders platforms, ladders and the goal as placeholder shapes.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	components.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Ladder.Get(e).Rect
		left, right := float32(r.X), float32(r.Right())
		top, bottom := float32(r.Y), float32(r.Bottom())
		vector.StrokeLine(screen, left, top, left, bottom, ladderRailWidth, cfg.UI.LadderColor, false)
		vector.StrokeLine(screen, right, top, right, bottom, ladderRailWidth, cfg.UI.LadderColor, false)
		for y := bottom - ladderRungGap/2; y > top; y -= ladderRungGap {
			vector.StrokeLine(screen, left, y, right, y, ladderRailWidth, cfg.UI.LadderColor, false)
		}
	})

	// Platforms are drawn along their center line, which is also the line
	// actors rest on.
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Platform.Get(e).Slab
		x0, x1 := s.X, s.X+s.W
		vector.StrokeLine(screen,
			float32(x0), float32(s.SurfaceY(x0)),
			float32(x1), float32(s.SurfaceY(x1)),
			float32(s.H), cfg.UI.PlatformColor, true)
	})

	snap := GetSnapshot(ecs)
	goalColor := cfg.UI.GoalColor
	if snap.GoalDefeated {
		goalColor = cfg.UI.GoalDoneColor
	}
	components.Goal.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Goal.Get(e).Rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), goalPoleWidth, float32(r.H), cfg.White, false)
		vector.FillRect(screen, float32(r.X)+goalPoleWidth, float32(r.Y), float32(r.W)-goalPoleWidth, float32(r.H)/2, goalColor, false)
	})
}

// DrawActors renders the player and hazards from the tick snapshot.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	snap := GetSnapshot(ecs)

	for _, h := range snap.Hazards {
		drawHazard(screen, h)
	}

	p := snap.Player
	if !p.Visible {
		return
	}
	b := p.Box
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), cfg.UI.PlayerColor, false)

	// Eye marks the facing direction.
	eyeX := b.X + b.W*0.7
	if p.Facing == physics.FacingLeft {
		eyeX = b.X + b.W*0.3
	}
	vector.DrawFilledCircle(screen, float32(eyeX), float32(b.Y+b.H*0.3), 3, cfg.UI.BackgroundColor, true)
}

func drawHazard(screen *ebiten.Image, h rules.HazardPose) {
	fill := cfg.UI.BarrelColor
	if h.Kind == physics.KindFireball {
		fill = cfg.UI.FireballColor
	}
	cx, cy, r := float32(h.Center.X), float32(h.Center.Y), float32(h.Radius)
	vector.DrawFilledCircle(screen, cx, cy, r, fill, true)

	// A spoke shows the rotation.
	dx := float32(math.Cos(h.Rotation)) * r
	dy := float32(math.Sin(h.Rotation)) * r
	vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 2, cfg.UI.BackgroundColor, true)
}

// DrawEffects renders explosions and confetti.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		alpha := 1 - fx.Progress

		switch fx.Kind {
		case rules.EffectExplosion:
			radius := cfg.Effects.ExplosionRadius * fx.Progress
			if radius <= 0 {
				return
			}
			vector.DrawFilledCircle(screen, float32(fx.X), float32(fx.Y), radius, fade(cfg.Orange, alpha*0.6), true)
			vector.StrokeCircle(screen, float32(fx.X), float32(fx.Y), radius, explosionStroke, fade(cfg.Yellow, alpha), true)
		case rules.EffectCelebration:
			for _, p := range fx.Pieces {
				vector.FillRect(screen, float32(p.X), float32(p.Y), confettiSize, confettiSize, fade(p.Color, alpha), false)
			}
		}
	})
}

// fade scales a color's alpha; color.RGBA is premultiplied so every channel
// is scaled.
func fade(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
