package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
)

// CombatData holds parry and stun state. Attack state lives in BladeData.
type CombatData struct {
	Parrying    bool
	ParryUntil  float64
	NextParryAt float64

	Stunned      bool
	StunnedUntil float64

	Presentation cfg.PresentationState
}

var Combat = donburi.NewComponentType[CombatData]()
