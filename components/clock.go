package components

import "github.com/yohamta/donburi"

// ClockData is the simulation time shared by every system.
// Deadlines (stun, parry, cooldowns, sequence steps) are compared against Now.
type ClockData struct {
	Now   float64 // seconds since the world was created
	Delta float64 // seconds advanced per tick
	Tick  int
}

var Clock = donburi.NewComponentType[ClockData]()
