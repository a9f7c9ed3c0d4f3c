package components

import (
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/yohamta/donburi"
)

// InputMethod is the device the player touched last.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState is one action's edge state for the current frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the input singleton: this frame's and last frame's pressed
// actions. Edges come from comparing the two.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
