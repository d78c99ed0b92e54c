package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFencers runs the per-fencer tick. For each fencer the order is fixed:
// stun and parry expiry, then the phase gate, then input. A stun that expires
// this tick therefore lets input through on the same tick.
func UpdateFencers(e *ecs.ECS) {
	t := now(e.World)
	dt := delta(e.World)

	tags.Fencer.Each(e.World, func(entry *donburi.Entry) {
		combat := components.Combat.Get(entry)
		input := components.FencerInput.Get(entry)
		defer consumeTriggers(input)

		updateCombatTimers(combat, t)

		boutEntry := components.Fencer.Get(entry).Bout
		if boutEntry == nil || !CanFencersMove(boutEntry) || combat.Stunned {
			components.Movement.Get(entry).Stepping = false
			return
		}

		if components.Bout.Get(boutEntry).Phase == cfg.PhaseFencing {
			handleCombatInput(e, entry, input)
		}
		updateMovement(e, entry, boutEntry, input, t, dt)
		syncBody(entry)
	})
}

// Attack and parry are edge events; a press not handled this tick is dropped.
func consumeTriggers(input *components.FencerInputData) {
	input.Attack = false
	input.Parry = false
}

// ResetFencer returns a fencer to its round-start baseline: idle, not
// attacking, parrying or stunned, at rest on its spawn point with its facing
// reapplied.
func ResetFencer(e *ecs.ECS, entry *donburi.Entry) {
	fencer := components.Fencer.Get(entry)

	mv := components.Movement.Get(entry)
	mv.Stepping = false
	mv.TargetX = fencer.Spawn.X
	mv.Speed = 0
	mv.NextStepAt = 0
	mv.NextDashAt = 0
	mv.FastLatched = false
	// A dash held through the reset needs a fresh press.
	mv.DashHeld = components.FencerInput.Get(entry).DashHeld

	combat := components.Combat.Get(entry)
	combat.Parrying = false
	combat.ParryUntil = 0
	combat.NextParryAt = 0
	combat.Stunned = false
	combat.StunnedUntil = 0
	refreshPresentation(combat)

	ZeroVelocity(entry)

	tr := components.Transform.Get(entry)
	tr.Position = fencer.Spawn
	tr.Scale = fencer.Facing

	CancelAttack(entry)
	syncBody(entry)
}

// syncBody mirrors the transform onto the resolv body.
func syncBody(entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	pos := components.Transform.Get(entry).Position
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H
	obj.Update()
}
