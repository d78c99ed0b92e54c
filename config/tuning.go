package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML file.
type Tuning struct {
	Movement MovementConfig `yaml:"movement"`
	Combat   CombatConfig   `yaml:"combat"`
	Blade    BladeConfig    `yaml:"blade"`
	Bout     BoutConfig     `yaml:"bout"`
}

// CurrentTuning returns a copy of the active tuning values.
func CurrentTuning() Tuning {
	return Tuning{
		Movement: Movement,
		Combat:   Combat,
		Blade:    Blade,
		Bout:     Bout,
	}
}

// ApplyTuning replaces the active tuning values.
func ApplyTuning(t Tuning) {
	Movement = t.Movement
	Combat = t.Combat
	Blade = t.Blade
	Bout = t.Bout
}

// ParseTuning overlays data onto base. Keys absent from data keep base's values.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads path and overlays it onto the active tuning.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("config: load %s: %w", path, err)
	}
	return ParseTuning(data, CurrentTuning())
}

func (t Tuning) validate() error {
	switch {
	case t.Movement.Deadzone < 0 || t.Movement.Deadzone >= 1:
		return fmt.Errorf("config: deadzone %.2f outside [0,1)", t.Movement.Deadzone)
	case t.Movement.FullStickThreshold < t.Movement.Deadzone:
		return fmt.Errorf("config: full stick threshold %.2f below deadzone", t.Movement.FullStickThreshold)
	case t.Movement.MinDashDuration <= 0 || t.Movement.FastStepMinDuration <= 0:
		return fmt.Errorf("config: minimum motion durations must be positive")
	case t.Movement.ModerateSpeed <= 0 || t.Movement.FastSpeed <= 0:
		return fmt.Errorf("config: step speeds must be positive")
	case t.Blade.ThrustOutTime <= 0 || t.Blade.ThrustBackTime <= 0:
		return fmt.Errorf("config: thrust times must be positive")
	case t.Combat.ParryWindow < 0 || t.Combat.ParryCooldown < 0:
		return fmt.Errorf("config: parry timings must not be negative")
	case t.Combat.Friction < 0:
		return fmt.Errorf("config: friction %.0f must not be negative", t.Combat.Friction)
	}
	return nil
}

func (p *SpeedTierPolicy) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "threshold":
		*p = SpeedTierThreshold
	case "latched":
		*p = SpeedTierLatched
	default:
		return fmt.Errorf("config: unknown speed tier policy %q", value.Value)
	}
	return nil
}

func (p SpeedTierPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *ParryPolicy) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "stun_attacker":
		*p = ParryStunsAttacker
	case "none":
		*p = ParryNoEffect
	default:
		return fmt.Errorf("config: unknown parry policy %q", value.Value)
	}
	return nil
}

func (p ParryPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// ParseSpeedTierPolicy maps a saved setting back to a policy.
func ParseSpeedTierPolicy(s string) (SpeedTierPolicy, bool) {
	switch s {
	case "threshold":
		return SpeedTierThreshold, true
	case "latched":
		return SpeedTierLatched, true
	}
	return SpeedTierThreshold, false
}

// ParseParryPolicy maps a saved setting back to a policy.
func ParseParryPolicy(s string) (ParryPolicy, bool) {
	switch s {
	case "stun_attacker":
		return ParryStunsAttacker, true
	case "none":
		return ParryNoEffect, true
	}
	return ParryStunsAttacker, false
}
