package systems

import (
	"fmt"

	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 faces are only used by the overlay
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	livesIconSize = 10
	livesIconGap  = 4
)

// DrawHUD renders score, high score, lives and the level name.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	snap := GetSnapshot(ecs)
	face := fonts.HUD.Get()
	margin := int(cfg.UI.HUDMargin)
	lineHeight := face.Metrics().Height.Ceil()
	width := screen.Bounds().Dx()

	score := fmt.Sprintf("SCORE %06d", snap.Score)
	text.Draw(screen, score, face, margin, margin+lineHeight, cfg.UI.HUDTextColor)

	high := fmt.Sprintf("HIGH %06d", snap.HighScore)
	highWidth := font.MeasureString(face, high).Ceil()
	text.Draw(screen, high, face, (width-highWidth)/2, margin+lineHeight, cfg.UI.HUDTextColor)

	level := snap.Level
	levelWidth := font.MeasureString(face, level).Ceil()
	text.Draw(screen, level, face, width-margin-levelWidth, margin+lineHeight, cfg.UI.HUDTextColor)

	livesY := float32(margin + lineHeight + livesIconGap*2)
	for i := 0; i < snap.Lives; i++ {
		x := float32(margin + i*(livesIconSize+livesIconGap))
		vector.FillRect(screen, x, livesY, livesIconSize, livesIconSize, cfg.UI.PlayerColor, false)
	}
}
