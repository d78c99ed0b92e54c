package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FencerData holds the per-match identity of a combatant.
type FencerData struct {
	Slot   int     // 0 = left, 1 = right
	Name   string  // "Player1", "Player2"
	Facing float64 // +1 faces right, -1 faces left; fixed for the match
	Spawn  math.Vec2

	// Bout is injected by the bout on registration; nil while unregistered.
	Bout *donburi.Entry
}

var Fencer = donburi.NewComponentType[FencerData]()

// TransformData is the position/facing sink of a fencer.
// Position is the centre of the fencer's feet.
type TransformData struct {
	Position math.Vec2
	Scale    float64 // facing sign applied to the sprite
}

var Transform = donburi.NewComponentType[TransformData]()
