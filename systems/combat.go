package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartAttack begins a thrust. Rejected while stunned or already attacking.
func StartAttack(e *ecs.ECS, fencerEntry *donburi.Entry) bool {
	combat := components.Combat.Get(fencerEntry)
	blade := components.Blade.Get(fencerEntry)
	if combat.Stunned || blade.IsAttacking() {
		return false
	}

	beginThrust(blade)
	refreshPresentation(combat)
	return true
}

// TriggerParry opens a parry window. Rejected while stunned, attacking, or
// before the cooldown measured from the previous parry has elapsed.
func TriggerParry(e *ecs.ECS, fencerEntry *donburi.Entry) bool {
	combat := components.Combat.Get(fencerEntry)
	blade := components.Blade.Get(fencerEntry)
	t := now(e.World)
	if combat.Stunned || blade.IsAttacking() || t < combat.NextParryAt {
		return false
	}

	combat.Parrying = true
	combat.ParryUntil = t + cfg.Combat.ParryWindow
	combat.NextParryAt = t + cfg.Combat.ParryCooldown
	refreshPresentation(combat)
	return true
}

// ApplyStun overrides parry and attack and disables every action for duration seconds.
func ApplyStun(e *ecs.ECS, fencerEntry *donburi.Entry, duration float64) {
	combat := components.Combat.Get(fencerEntry)

	CancelAttack(fencerEntry)
	combat.Parrying = false
	combat.Stunned = true
	combat.StunnedUntil = now(e.World) + duration

	components.Movement.Get(fencerEntry).Stepping = false
	refreshPresentation(combat)
}

// IsInParryWindow reports whether a hit landing now would be deflected.
func IsInParryWindow(e *ecs.ECS, fencerEntry *donburi.Entry) bool {
	combat := components.Combat.Get(fencerEntry)
	return combat.Parrying && now(e.World) < combat.ParryUntil
}

// updateCombatTimers clears an expired stun, then an expired parry.
func updateCombatTimers(combat *components.CombatData, t float64) {
	changed := false
	if combat.Stunned && t >= combat.StunnedUntil {
		combat.Stunned = false
		changed = true
	}
	if combat.Parrying && t >= combat.ParryUntil {
		combat.Parrying = false
		changed = true
	}
	if changed {
		refreshPresentation(combat)
	}
}

func handleCombatInput(e *ecs.ECS, fencerEntry *donburi.Entry, input *components.FencerInputData) {
	if input.Attack {
		StartAttack(e, fencerEntry)
	}
	if input.Parry {
		TriggerParry(e, fencerEntry)
	}
}

// refreshPresentation derives the visual stance; stunned supersedes parrying.
func refreshPresentation(combat *components.CombatData) {
	switch {
	case combat.Stunned:
		combat.Presentation = cfg.PresentationStunned
	case combat.Parrying:
		combat.Presentation = cfg.PresentationParrying
	default:
		combat.Presentation = cfg.PresentationNormal
	}
}
