package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores the user toggles that survive restarts.
type SettingsData struct {
	Fullscreen      bool
	ResolutionIndex int
	ShowHitboxes    bool
	SpeedTier       cfg.SpeedTierPolicy
	Parry           cfg.ParryPolicy
	Muted           bool
}

var Settings = donburi.NewComponentType[SettingsData]()
