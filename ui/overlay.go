package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/shared/rules"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// RoundOverlay is the panel shown whenever the round is not being played:
// start screen, pause, level complete and game over.
type RoundOverlay struct {
	UI *ebitenui.UI

	// Callbacks
	OnPrimary func(state rules.RoundState)
	OnRestart func()

	// Widget references for updates
	titleLabel    *widget.Label
	detailLabel   *widget.Label
	primaryButton *widget.Button
	restartButton *widget.Button

	titleFace  text.Face
	normalFace text.Face

	// Gamepad switches the start hint to controller buttons.
	Gamepad bool

	state rules.RoundState
}

// NewRoundOverlay builds the overlay. onPrimary receives the state the
// overlay was showing when its main button was clicked.
func NewRoundOverlay(onPrimary func(rules.RoundState), onRestart func()) (*RoundOverlay, error) {
	o := &RoundOverlay{
		OnPrimary: onPrimary,
		OnRestart: onRestart,
	}
	if err := o.loadFonts(); err != nil {
		return nil, err
	}
	o.buildUI()
	return o, nil
}

func (o *RoundOverlay) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}
	o.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.OverlayFontSize}
	o.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.HUDFontSize}
	return nil
}

func (o *RoundOverlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Overlay.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	o.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.StartTitle, &o.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(o.titleLabel)

	o.detailLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.Overlay.StartHint, &o.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(o.detailLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	o.primaryButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(primaryButtonImage()),
		widget.ButtonOpts.Text(cfg.Overlay.StartLabel, &o.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if o.OnPrimary != nil {
				o.OnPrimary(o.state)
			}
		}),
	)
	buttons.AddChild(o.primaryButton)

	o.restartButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(cfg.Overlay.RestartLabel, &o.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if o.OnRestart != nil {
				o.OnRestart()
			}
		}),
	)
	buttons.AddChild(o.restartButton)

	contentContainer.AddChild(buttons)
	rootContainer.AddChild(contentContainer)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func primaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// Shown reports whether the overlay should cover the playfield.
func Shown(snap *rules.Snapshot) bool {
	return snap.State != rules.StatePlaying || snap.Paused
}

// Content returns the title, detail line and primary button label for a
// snapshot.
func Content(snap *rules.Snapshot) (title, detail, primary string) {
	switch {
	case snap.State == rules.StateStart:
		return cfg.Overlay.StartTitle, cfg.Overlay.StartHint, cfg.Overlay.StartLabel
	case snap.State == rules.StateLevelComplete:
		return cfg.Overlay.CompleteTitle, scoreLine(snap), cfg.Overlay.ContinueLabel
	case snap.State == rules.StateGameOver:
		return cfg.Overlay.GameOverTitle, scoreLine(snap), cfg.Overlay.RestartLabel
	default:
		return cfg.Overlay.PausedTitle, scoreLine(snap), cfg.Overlay.ResumeLabel
	}
}

func scoreLine(snap *rules.Snapshot) string {
	return fmt.Sprintf("Score %d   High %d   Lives %d", snap.Score, snap.HighScore, snap.Lives)
}

// Update refreshes the labels from the snapshot and runs the UI.
func (o *RoundOverlay) Update(snap *rules.Snapshot) {
	o.state = snap.State

	title, detail, primary := Content(snap)
	if snap.State == rules.StateStart && o.Gamepad {
		detail = cfg.Overlay.StartHintGamepad
	}
	o.titleLabel.Label = title
	o.detailLabel.Label = detail
	if textWidget := o.primaryButton.Text(); textWidget != nil {
		textWidget.Label = primary
	}
	o.restartButton.GetWidget().Disabled = snap.State == rules.StateStart

	o.UI.Update()
}

func (o *RoundOverlay) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}
