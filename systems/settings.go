package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSettings handles the function-key toggles and saves every change.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowHitboxes = !settings.ShowHitboxes
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		changed = true
	}
	if GetAction(input, cfg.ActionCycleResolution).JustPressed {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		changed = true
	}
	if GetAction(input, cfg.ActionCycleSpeedTier).JustPressed {
		settings.SpeedTier = nextSpeedTier(settings.SpeedTier)
		changed = true
	}
	if GetAction(input, cfg.ActionCycleParryPolicy).JustPressed {
		settings.Parry = nextParryPolicy(settings.Parry)
		changed = true
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		changed = true
	}
	if !changed {
		return
	}

	ApplyGameplaySettings(settings)
	ApplyWindowSettings(settings)
	ApplyAudioSettings(settings)
	SaveCurrentSettings(settings)
	logging.L().Info("settings changed",
		zap.Stringer("speed_tier", settings.SpeedTier),
		zap.Stringer("parry_policy", settings.Parry),
		zap.Bool("hitboxes", settings.ShowHitboxes),
		zap.Bool("muted", settings.Muted))
}

// GetOrCreateSettings returns the settings singleton, creating it from the
// current configuration if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, SettingsFromSaved(nil))
	}
	return components.Settings.Get(entry)
}

// ApplyGameplaySettings pushes the toggles that change bout rules into config.
// Call it again after a tuning reload so the user's choice wins.
func ApplyGameplaySettings(s *components.SettingsData) {
	cfg.Movement.SpeedTier = s.SpeedTier
	cfg.Combat.Parry = s.Parry
	cfg.Debug.ShowHitboxes = s.ShowHitboxes
}

// ApplyWindowSettings applies fullscreen and, when windowed, the resolution.
func ApplyWindowSettings(s *components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen && s.ResolutionIndex >= 0 && s.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// ApplyAudioSettings mutes or restores sound effects.
func ApplyAudioSettings(s *components.SettingsData) {
	if s.Muted {
		SetSFXVolume(0)
		return
	}
	SetSFXVolume(cfg.Audio.DefaultSFXVol)
}

func nextSpeedTier(p cfg.SpeedTierPolicy) cfg.SpeedTierPolicy {
	if p == cfg.SpeedTierThreshold {
		return cfg.SpeedTierLatched
	}
	return cfg.SpeedTierThreshold
}

func nextParryPolicy(p cfg.ParryPolicy) cfg.ParryPolicy {
	if p == cfg.ParryStunsAttacker {
		return cfg.ParryNoEffect
	}
	return cfg.ParryStunsAttacker
}
