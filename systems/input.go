package systems

import (
	"math"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the global input singleton and
// into every fencer's input source. Must run BEFORE UpdateFencers.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for actionID, binding := range cfg.Input.Global {
		input.Current[actionID] = bindingPressed(binding, gamepadIDs)
	}

	bindGamepads(ecs, gamepadIDs)
	tags.Fencer.Each(ecs.World, func(entry *donburi.Entry) {
		pollFencerInput(components.FencerInput.Get(entry))
	})
}

// bindGamepads gives the n-th connected gamepad to slot n. A fencer whose
// gamepad disconnects falls back to its keyboard scheme.
func bindGamepads(ecs *ecs.ECS, gamepads []ebiten.GamepadID) {
	tags.Fencer.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.FencerInput.Get(entry)
		slot := components.Fencer.Get(entry).Slot
		if slot < len(gamepads) && ebiten.IsStandardGamepadLayoutAvailable(gamepads[slot]) {
			id := gamepads[slot]
			input.BoundGamepadID = &id
			return
		}
		input.BoundGamepadID = nil
	})
}

// pollFencerInput reads the fencer's keyboard scheme and, if bound, its gamepad.
// Attack and parry fire on the press edge only.
func pollFencerInput(input *components.FencerInputData) {
	if input.Scheme < 0 || input.Scheme >= len(cfg.Input.Schemes) {
		return
	}
	scheme := cfg.Input.Schemes[input.Scheme]

	var pads []ebiten.GamepadID
	if input.BoundGamepadID != nil {
		pads = []ebiten.GamepadID{*input.BoundGamepadID}
	}

	var current [cfg.ActionCount]bool
	for actionID, binding := range scheme.Bindings {
		current[actionID] = keysPressed(binding.Keys) || buttonsPressed(binding.StandardGamepadButtons, pads)
	}

	axis := 0.0
	if current[cfg.ActionMoveRight] {
		axis++
	}
	if current[cfg.ActionMoveLeft] {
		axis--
	}
	if current[cfg.ActionCareful] {
		axis *= cfg.Input.CarefulAxis
	}
	if input.BoundGamepadID != nil {
		stick := ebiten.StandardGamepadAxisValue(*input.BoundGamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(stick) > cfg.Input.AnalogDeadzone && math.Abs(stick) > math.Abs(axis) {
			axis = stick
		}
	}

	input.Axis = math.Max(-1, math.Min(1, axis))
	input.DashHeld = current[cfg.ActionDash]
	// Edges accumulate until UpdateFencers consumes them.
	input.Attack = input.Attack || (current[cfg.ActionAttack] && !input.Previous[cfg.ActionAttack])
	input.Parry = input.Parry || (current[cfg.ActionParry] && !input.Previous[cfg.ActionParry])
	input.Previous = current
}

func bindingPressed(binding cfg.InputBinding, gamepads []ebiten.GamepadID) bool {
	return keysPressed(binding.Keys) || buttonsPressed(binding.StandardGamepadButtons, gamepads)
}

func keysPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func buttonsPressed(buttons []ebiten.StandardGamepadButton, gamepads []ebiten.GamepadID) bool {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
