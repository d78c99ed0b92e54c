package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical fencer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionCareful // halves keyboard axis for moderate steps
	ActionDash
	ActionAttack
	ActionParry

	// Global actions, not bound to a fencer
	ActionPause
	ActionToggleDebug
	ActionToggleFullscreen
	ActionCycleResolution
	ActionCycleSpeedTier
	ActionCycleParryPolicy
	ActionToggleMute

	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// ControlScheme maps every action of one fencer to its bindings.
type ControlScheme struct {
	Name     string
	Bindings map[ActionID]InputBinding
}

// InputConfig holds all input mappings
type InputConfig struct {
	// One scheme per slot: slot 0 fences on the left half of the keyboard.
	Schemes [2]ControlScheme
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Axis value produced by a held direction key together with ActionCareful
	CarefulAxis float64
	// Bindings read by UpdateInput regardless of slot
	Global map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	gamepadDash := []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}
	gamepadAttack := []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}
	gamepadParry := []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}
	gamepadCareful := []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}

	Input = InputConfig{
		AnalogDeadzone: 0.1,
		CarefulAxis:    0.5,
		Global: map[ActionID]InputBinding{
			ActionPause: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionToggleDebug:      {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionToggleFullscreen: {Keys: []ebiten.Key{ebiten.KeyF11}},
			ActionCycleResolution:  {Keys: []ebiten.Key{ebiten.KeyF4}},
			ActionCycleSpeedTier:   {Keys: []ebiten.Key{ebiten.KeyF5}},
			ActionCycleParryPolicy: {Keys: []ebiten.Key{ebiten.KeyF6}},
			ActionToggleMute:       {Keys: []ebiten.Key{ebiten.KeyF7}},
		},
		Schemes: [2]ControlScheme{
			{
				Name: "WASD",
				Bindings: map[ActionID]InputBinding{
					ActionMoveLeft: {
						Keys:                   []ebiten.Key{ebiten.KeyA},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
					},
					ActionMoveRight: {
						Keys:                   []ebiten.Key{ebiten.KeyD},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
					},
					ActionCareful: {Keys: []ebiten.Key{ebiten.KeyControlLeft}, StandardGamepadButtons: gamepadCareful},
					ActionDash:    {Keys: []ebiten.Key{ebiten.KeyShiftLeft}, StandardGamepadButtons: gamepadDash},
					ActionAttack:  {Keys: []ebiten.Key{ebiten.KeyF}, StandardGamepadButtons: gamepadAttack},
					ActionParry:   {Keys: []ebiten.Key{ebiten.KeyG}, StandardGamepadButtons: gamepadParry},
				},
			},
			{
				Name: "Arrows",
				Bindings: map[ActionID]InputBinding{
					ActionMoveLeft: {
						Keys:                   []ebiten.Key{ebiten.KeyArrowLeft},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
					},
					ActionMoveRight: {
						Keys:                   []ebiten.Key{ebiten.KeyArrowRight},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
					},
					ActionCareful: {Keys: []ebiten.Key{ebiten.KeyControlRight}, StandardGamepadButtons: gamepadCareful},
					ActionDash:    {Keys: []ebiten.Key{ebiten.KeyShiftRight}, StandardGamepadButtons: gamepadDash},
					ActionAttack:  {Keys: []ebiten.Key{ebiten.KeyK}, StandardGamepadButtons: gamepadAttack},
					ActionParry:   {Keys: []ebiten.Key{ebiten.KeyL}, StandardGamepadButtons: gamepadParry},
				},
			},
		},
	}
}
