package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const maxFencers = 2

// RegisterFencer adds a fencer to the bout and hands it the bout reference.
// Registering twice, or past two fencers, is a no-op. The countdown starts
// when the second fencer arrives.
func RegisterFencer(e *ecs.ECS, boutEntry, fencerEntry *donburi.Entry) bool {
	bout := components.Bout.Get(boutEntry)
	if bout.IsRegistered(fencerEntry) || len(bout.Fencers) >= maxFencers {
		return false
	}

	bout.Fencers = append(bout.Fencers, fencerEntry)
	fencer := components.Fencer.Get(fencerEntry)
	fencer.Bout = boutEntry
	AddCameraSubject(e, fencerEntry)

	logging.L().Debug("fencer registered",
		zap.String("name", fencer.Name),
		zap.Int("slot", fencer.Slot),
		zap.Int("registered", len(bout.Fencers)))

	if len(bout.Fencers) == maxFencers {
		StartCountdown(e, boutEntry)
	}
	return true
}

// CanFencersMove is true during the countdown and while fencing.
func CanFencersMove(boutEntry *donburi.Entry) bool {
	switch components.Bout.Get(boutEntry).Phase {
	case cfg.PhaseCountdown, cfg.PhaseFencing:
		return true
	}
	return false
}

// OnEarlyMovement calls a false start on offender. Only the first report of a
// countdown counts; later ones are ignored until the bout is fencing again.
func OnEarlyMovement(e *ecs.ECS, boutEntry, offender *donburi.Entry) bool {
	bout := components.Bout.Get(boutEntry)
	if bout.Phase != cfg.PhaseCountdown || bout.FalseStartBy != nil {
		return false
	}

	bout.FalseStartBy = offender
	slot := components.Fencer.Get(offender).Slot
	FalseStart.Publish(e.World, FalseStartEvent{Slot: slot})

	startFalseStart(e, boutEntry, slot)
	return true
}

// OnFencerHit stops the bout and scores a touch for attacker.
func OnFencerHit(e *ecs.ECS, boutEntry, attacker *donburi.Entry) bool {
	bout := components.Bout.Get(boutEntry)
	if bout.Phase != cfg.PhaseFencing || bout.FalseStartBy != nil || bout.Running(cfg.SequenceHaltAndScore) {
		return false
	}

	startHaltAndScore(e, boutEntry, components.Fencer.Get(attacker).Slot)
	return true
}

// OnSuccessfulParry punishes the attacker according to the parry policy.
// Score and phase are untouched.
func OnSuccessfulParry(e *ecs.ECS, boutEntry, attacker, defender *donburi.Entry) {
	policy := cfg.Combat.Parry
	if policy == cfg.ParryStunsAttacker {
		ApplyStun(e, attacker, cfg.Combat.ParryStunDuration)
		pushAway(attacker, components.Transform.Get(defender).Position.X, cfg.Combat.ParryPushback)
	}

	ParryLanded.Publish(e.World, ParryLandedEvent{
		AttackerSlot: components.Fencer.Get(attacker).Slot,
		DefenderSlot: components.Fencer.Get(defender).Slot,
		Policy:       policy,
	})
}

// UpdateBout advances the running bout sequence.
func UpdateBout(e *ecs.ECS) {
	boutEntry, ok := components.Bout.First(e.World)
	if !ok {
		return
	}
	bout := components.Bout.Get(boutEntry)
	task := bout.Sequence
	if task == nil {
		return
	}

	// A step may start the next sequence; only clear the one we advanced.
	if task.Advance(now(e.World)) && bout.Sequence == task {
		bout.Sequence = nil
		bout.SequenceKind = cfg.SequenceNone
	}
}

func setPhase(e *ecs.ECS, boutEntry *donburi.Entry, phase cfg.BoutPhase) {
	bout := components.Bout.Get(boutEntry)
	if bout.Phase == phase {
		return
	}
	from := bout.Phase
	bout.Phase = phase
	PhaseChanged.Publish(e.World, PhaseChangedEvent{From: from, To: phase})
}
