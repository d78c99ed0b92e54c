package components

import "github.com/yohamta/donburi"

// PhysicsData is the velocity sink of a fencer.
type PhysicsData struct {
	VelocityX float64
	VelocityY float64
	Angular   float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
