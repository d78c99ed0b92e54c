package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool   `json:"fullscreen"`
	ResolutionIndex int    `json:"resolutionIndex"`
	ShowHitboxes    bool   `json:"showHitboxes"`
	SpeedTier       string `json:"speedTier"`
	ParryPolicy     string `json:"parryPolicy"`
	Muted           bool   `json:"muted"`
}

// settingsStore is the part of *gdata.Manager the settings use.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. A missing store or item yields nil.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Settings.StoreKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(cfg.Settings.StoreKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the settings singleton, logging failures.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		ShowHitboxes:    s.ShowHitboxes,
		SpeedTier:       s.SpeedTier.String(),
		ParryPolicy:     s.Parry.String(),
		Muted:           s.Muted,
	}
	if err := SaveSettings(saved); err != nil {
		logging.L().Warn("could not save settings", zap.Error(err))
	}
}

// SettingsFromSaved merges saved values over the current configuration.
// Unknown policy names keep the configured policy.
func SettingsFromSaved(saved *SavedSettings) components.SettingsData {
	s := components.SettingsData{
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
		ShowHitboxes:    cfg.Debug.ShowHitboxes,
		SpeedTier:       cfg.Movement.SpeedTier,
		Parry:           cfg.Combat.Parry,
	}
	if saved == nil {
		return s
	}

	s.Fullscreen = saved.Fullscreen
	s.Muted = saved.Muted
	s.ShowHitboxes = s.ShowHitboxes || saved.ShowHitboxes
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}
	if p, ok := cfg.ParseSpeedTierPolicy(saved.SpeedTier); ok {
		s.SpeedTier = p
	}
	if p, ok := cfg.ParseParryPolicy(saved.ParryPolicy); ok {
		s.Parry = p
	}
	return s
}
