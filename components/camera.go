package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData frames every tracked subject.
type CameraData struct {
	Position math.Vec2
	Subjects []*donburi.Entry
}

var Camera = donburi.NewComponentType[CameraData]()
