package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitOutcome is the verdict on an armed blade touching a body.
type HitOutcome int

const (
	HitIgnored HitOutcome = iota
	HitLanded
	HitParried
)

// UpdateHits checks every armed blade against the fencer bodies in the space.
func UpdateHits(e *ecs.ECS) {
	tags.Fencer.Each(e.World, func(attacker *donburi.Entry) {
		blade := components.Blade.Get(attacker)
		if !blade.Armed || blade.Hitbox == nil {
			return
		}

		check := blade.Hitbox.Check(0, 0, tags.ResolvBody)
		if check == nil {
			return
		}
		for _, obj := range check.Objects {
			victim, ok := obj.Data.(*donburi.Entry)
			if !ok || victim == attacker {
				continue
			}
			if blade.Hitbox.Shape.Intersection(0, 0, obj.Shape) == nil {
				continue
			}
			if ResolveHit(e, attacker, victim) != HitIgnored {
				return
			}
		}
	})
}

// ResolveHit decides what an armed blade touching victim means.
// A parried or landed hit consumes the swing.
func ResolveHit(e *ecs.ECS, attacker, victim *donburi.Entry) HitOutcome {
	if attacker == victim {
		return HitIgnored
	}

	boutEntry := components.Fencer.Get(attacker).Bout
	if boutEntry == nil || components.Bout.Get(boutEntry).Phase != cfg.PhaseFencing {
		return HitIgnored
	}

	components.Blade.Get(attacker).Armed = false

	outcome := HitLanded
	if IsInParryWindow(e, victim) {
		outcome = HitParried
	}

	// Read the tip before a parry stun retracts the blade.
	x, y := BladeTip(attacker)
	BladeContact.Publish(e.World, BladeContactEvent{
		Attacker: attacker,
		Victim:   victim,
		X:        x,
		Y:        y,
		Outcome:  outcome,
	})

	if outcome == HitParried {
		OnSuccessfulParry(e, boutEntry, attacker, victim)
	} else {
		OnFencerHit(e, boutEntry, attacker)
	}
	return outcome
}
