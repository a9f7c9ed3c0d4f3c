package systems

import (
	cfg "github.com/automoto/ladderclimb/config"
	"github.com/automoto/ladderclimb/components"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// gamepadIDs is reused across frames.
var gamepadIDs []ebiten.GamepadID

// UpdateInput samples keyboard and gamepads into the input singleton. It runs
// before anything that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	var keyboardUsed, gamepadUsed bool

	for id, binding := range cfg.Input.Bindings {
		kb, pad := bindingPressed(binding, gamepadIDs)
		input.Current[id] = kb || pad
		keyboardUsed = keyboardUsed || kb
		gamepadUsed = gamepadUsed || pad
	}

	stick := leftStick(gamepadIDs)
	for id, held := range stick {
		if held {
			input.Current[id] = true
			gamepadUsed = true
		}
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

func bindingPressed(b cfg.InputBinding, pads []ebiten.GamepadID) (keyboard, gamepad bool) {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			keyboard = true
			break
		}
	}
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return keyboard, true
			}
		}
	}
	return keyboard, false
}

// leftStick maps the left analog stick of every pad onto the move actions.
func leftStick(pads []ebiten.GamepadID) map[cfg.ActionID]bool {
	dz := cfg.Input.AnalogDeadzone
	held := make(map[cfg.ActionID]bool, 4)
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		held[cfg.ActionMoveLeft] = held[cfg.ActionMoveLeft] || h < -dz
		held[cfg.ActionMoveRight] = held[cfg.ActionMoveRight] || h > dz
		held[cfg.ActionMoveUp] = held[cfg.ActionMoveUp] || v < -dz
		held[cfg.ActionMoveDown] = held[cfg.ActionMoveDown] || v > dz
	}
	return held
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// UsingGamepad reports whether the last input came from a controller.
func UsingGamepad(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).LastInputMethod == components.InputGamepad
}

// GetAction reports an action's state this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PlayerIntent converts the action state into the simulation's intent. Jump
// is edge-triggered so holding the button does not chain jumps.
func PlayerIntent(input *components.InputData) physics.Intent {
	return physics.Intent{
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
		Up:    input.Current[cfg.ActionMoveUp],
		Down:  input.Current[cfg.ActionMoveDown],
		Jump:  GetAction(input, cfg.ActionJump).JustPressed,
	}
}
