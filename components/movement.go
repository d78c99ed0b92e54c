package components

import "github.com/yohamta/donburi"

// MovementData tracks the one outstanding step or dash of a fencer.
type MovementData struct {
	Stepping bool
	TargetX  float64
	Speed    float64 // px/s towards TargetX

	NextStepAt float64
	NextDashAt float64

	DashHeld    bool // dash button seen held; a new dash needs a release first
	FastLatched bool // latched speed tier policy only

	ReportedWindow int // countdown window of the last early-movement report
}

var Movement = donburi.NewComponentType[MovementData]()
