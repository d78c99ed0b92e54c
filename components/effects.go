package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a fencer's body flash (touched, parried)
type FlashData struct {
	Duration int // frames remaining
	Color    color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// SparkData is a short-lived burst where two blades or a blade and a body met.
type SparkData struct {
	X, Y   float64
	Frames int // total lifetime, for the fade
	Color  color.RGBA
}

var Spark = donburi.NewComponentType[SparkData]()
