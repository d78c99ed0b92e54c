package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// FencerInputData is the input source of one fencer for the current tick.
// Attack and Parry are edge-triggered and consumed by the fencer update.
type FencerInputData struct {
	Axis     float64 // horizontal intensity in [-1, 1]
	DashHeld bool
	Attack   bool
	Parry    bool

	// Device binding, used by the polling system only.
	Scheme         int
	BoundGamepadID *ebiten.GamepadID
	Previous       [cfg.ActionCount]bool
}

var FencerInput = donburi.NewComponentType[FencerInputData]()

// ActionState is the per-tick state of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the singleton holding global actions (pause, toggles).
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
