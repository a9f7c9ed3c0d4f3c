package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical input the game reacts to.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionPause
	ActionConfirm
	ActionRestart
	ActionMute
	ActionCount // array size, keep last
)

// InputBinding lists the keys and standard-layout gamepad buttons that
// trigger an action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Left stick values inside the deadzone count as centered.
	AnalogDeadzone float64
}

var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func buttons(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {keys(ebiten.KeyLeft, ebiten.KeyA), buttons(ebiten.StandardGamepadButtonLeftLeft)},
			ActionMoveRight: {keys(ebiten.KeyRight, ebiten.KeyD), buttons(ebiten.StandardGamepadButtonLeftRight)},
			ActionMoveUp:    {keys(ebiten.KeyUp, ebiten.KeyW), buttons(ebiten.StandardGamepadButtonLeftTop)},
			ActionMoveDown:  {keys(ebiten.KeyDown, ebiten.KeyS), buttons(ebiten.StandardGamepadButtonLeftBottom)},
			// A / Cross jumps and confirms.
			ActionJump:    {keys(ebiten.KeySpace, ebiten.KeyX), buttons(ebiten.StandardGamepadButtonRightBottom)},
			ActionConfirm: {keys(ebiten.KeyEnter), buttons(ebiten.StandardGamepadButtonRightBottom)},
			// Start / Options
			ActionPause: {keys(ebiten.KeyEscape, ebiten.KeyP), buttons(ebiten.StandardGamepadButtonCenterRight)},
			// Select / Share
			ActionRestart: {keys(ebiten.KeyR), buttons(ebiten.StandardGamepadButtonCenterLeft)},
			ActionMute:    {keys(ebiten.KeyM), nil},
		},
	}
}
