package components

import (
	"image/color"

	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ConfettiPiece is one falling scrap of a celebration.
type ConfettiPiece struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
}

// EffectData is a cosmetic one-shot. Progress runs 0..1 over the tween and the
// entity is destroyed when the tween finishes.
type EffectData struct {
	Kind     rules.EffectKind
	X, Y     float64
	Tween    *gween.Tween
	Progress float32
	Pieces   []ConfettiPiece
}

var Effect = donburi.NewComponentType[EffectData]()
