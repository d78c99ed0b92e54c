package components

import "github.com/yohamta/donburi"

// PauseData freezes the bout clock while set.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
