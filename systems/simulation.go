package systems

import "github.com/yohamta/donburi/ecs"

// Simulation lists the device-independent systems in tick order.
// Input must already be in each fencer's FencerInputData.
var Simulation = []ecs.System{
	UpdateClock,
	UpdateFencers,
	UpdatePhysics,
	UpdateBlades,
	UpdateHits,
	UpdateBout,
	UpdateCue,
	UpdateCamera,
	UpdateEffects,
	UpdateBoutEvents,
}
