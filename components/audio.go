package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
