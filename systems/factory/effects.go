package factory

import (
	"image/color"
	"math/rand"

	"github.com/automoto/ladderclimb/archetypes"
	"github.com/automoto/ladderclimb/components"
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var confettiColors = []color.RGBA{cfg.Yellow, cfg.LightGreen, cfg.LightBlue, cfg.Red, cfg.BrightOrange}

// CreateEffect spawns a cosmetic effect entity for a round event.
func CreateEffect(ecs *ecs.ECS, fx rules.Effect) *donburi.Entry {
	effect := archetypes.Effect.Spawn(ecs)

	data := components.EffectData{Kind: fx.Kind, X: fx.At.X, Y: fx.At.Y}
	switch fx.Kind {
	case rules.EffectExplosion:
		data.Tween = gween.New(0, 1, cfg.Effects.ExplosionDuration, ease.OutQuad)
	case rules.EffectCelebration:
		data.Tween = gween.New(0, 1, cfg.Effects.ConfettiDuration, ease.Linear)
		data.Pieces = confetti(cfg.Effects.ConfettiPieces, float64(cfg.C.Width))
	}
	components.Effect.SetValue(effect, data)

	return effect
}

func confetti(n int, width float64) []components.ConfettiPiece {
	pieces := make([]components.ConfettiPiece, n)
	for i := range pieces {
		pieces[i] = components.ConfettiPiece{
			X:     rand.Float64() * width,
			Y:     -rand.Float64() * 40,
			VX:    rand.Float64()*2 - 1,
			VY:    1 + rand.Float64()*3,
			Color: confettiColors[i%len(confettiColors)],
		}
	}
	return pieces
}
