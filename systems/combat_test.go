package systems

import (
	"testing"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
)

func TestParryCooldownBoundary(t *testing.T) {
	tb := newTestBout(t)
	e, f := tb.ecs, tb.fencers[0]
	combat := components.Combat.Get(f)

	tb.setNow(1)
	if !TriggerParry(e, f) {
		t.Fatalf("first parry rejected")
	}
	if !IsInParryWindow(e, f) || combat.Presentation != cfg.PresentationParrying {
		t.Fatalf("parry window not open")
	}

	tb.setNow(1 + cfg.Combat.ParryWindow)
	updateCombatTimers(combat, tb.now())
	if combat.Parrying || IsInParryWindow(e, f) {
		t.Fatalf("parry window still open at its deadline")
	}
	if combat.Presentation != cfg.PresentationNormal {
		t.Fatalf("presentation not restored after parry")
	}

	cases := []struct {
		at   float64
		want bool
	}{
		{1 + cfg.Combat.ParryWindow, false},
		{1 + cfg.Combat.ParryCooldown - testDelta, false},
		{1 + cfg.Combat.ParryCooldown, true},
	}
	for _, c := range cases {
		tb.setNow(c.at)
		if got := TriggerParry(e, f); got != c.want {
			t.Fatalf("parry at %.4f = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestStartAttackGuards(t *testing.T) {
	tb := newTestBout(t)
	e, f := tb.ecs, tb.fencers[0]

	if !StartAttack(e, f) {
		t.Fatalf("attack rejected from idle")
	}
	if StartAttack(e, f) {
		t.Fatalf("attack accepted while attacking")
	}
	if TriggerParry(e, f) {
		t.Fatalf("parry accepted while attacking")
	}

	CancelAttack(f)
	if !TriggerParry(e, f) {
		t.Fatalf("parry rejected after the attack was canceled")
	}
}

func TestApplyStun(t *testing.T) {
	tb := newTestBout(t)
	e, f := tb.ecs, tb.fencers[0]
	combat := components.Combat.Get(f)
	blade := components.Blade.Get(f)

	StartAttack(e, f)
	combat.Parrying = true
	combat.ParryUntil = 10
	components.Movement.Get(f).Stepping = true

	tb.setNow(2)
	ApplyStun(e, f, 1)

	if !combat.Stunned || combat.Parrying || blade.IsAttacking() || blade.Armed {
		t.Fatalf("stun did not override attack and parry: %+v state=%d", combat, blade.State)
	}
	if components.Movement.Get(f).Stepping {
		t.Fatalf("stun did not stop the step")
	}
	if combat.Presentation != cfg.PresentationStunned {
		t.Fatalf("presentation %d, want stunned", combat.Presentation)
	}

	tb.setNow(2.5)
	updateCombatTimers(combat, tb.now())
	if StartAttack(e, f) || TriggerParry(e, f) {
		t.Fatalf("action accepted while stunned")
	}
	if combat.Parrying || blade.IsAttacking() {
		t.Fatalf("stunned fencer changed attack or parry state")
	}

	tb.setNow(3)
	updateCombatTimers(combat, tb.now())
	if combat.Stunned {
		t.Fatalf("stun did not clear at its deadline")
	}
	if !TriggerParry(e, f) {
		t.Fatalf("parry rejected after the stun")
	}
	if combat.Presentation != cfg.PresentationParrying {
		t.Fatalf("presentation %d, want parrying", combat.Presentation)
	}
}

func TestStunExpiryReenablesInputSameTick(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	e, f := tb.ecs, tb.fencers[0]

	ApplyStun(e, f, 0.5)

	// Attack pressed on the tick that reaches the stun deadline.
	tb.setNow(0.5 - testDelta)
	tb.input(0).Attack = true
	tb.tick()

	if components.Combat.Get(f).Stunned {
		t.Fatalf("stun did not expire at %.4f", tb.now())
	}
	if !components.Blade.Get(f).IsAttacking() {
		t.Fatalf("attack on the expiry tick was dropped")
	}
}

func TestCombatInputOnlyWhileFencing(t *testing.T) {
	for _, phase := range []cfg.BoutPhase{cfg.PhaseCountdown, cfg.PhaseResolving, cfg.PhaseSettling} {
		t.Run(phase.String(), func(t *testing.T) {
			tb := newTestBout(t)
			tb.startFencing()
			tb.state().Phase = phase

			tb.input(0).Attack = true
			tb.input(1).Parry = true
			tb.tick()

			if components.Blade.Get(tb.fencers[0]).IsAttacking() {
				t.Fatalf("attack accepted during %s", phase)
			}
			if components.Combat.Get(tb.fencers[1]).Parrying {
				t.Fatalf("parry accepted during %s", phase)
			}
			if tb.input(0).Attack || tb.input(1).Parry {
				t.Fatalf("triggers not consumed")
			}
		})
	}
}

func TestParryScenario(t *testing.T) {
	tb := newTestBout(t)

	parries := 0
	ParryLanded.Subscribe(tb.ecs.World, func(w donburi.World, ev ParryLandedEvent) {
		parries++
		if ev.AttackerSlot != 0 || ev.DefenderSlot != 1 || ev.Policy != cfg.ParryStunsAttacker {
			t.Errorf("unexpected parry event %+v", ev)
		}
	})

	tb.register()
	tb.runUntilPhase(3, cfg.PhaseFencing)
	tb.place(0, 300)
	tb.place(1, 400)

	tb.input(1).Parry = true
	tb.tick()
	if !IsInParryWindow(tb.ecs, tb.fencers[1]) {
		t.Fatalf("parry window not open")
	}

	attacker := tb.fencers[0]
	tb.input(0).Attack = true
	tb.runUntil(cfg.Combat.ParryWindow, "parry", func() bool { return components.Combat.Get(attacker).Stunned })

	if tb.state().Scores != [2]int{} || tb.state().Phase != cfg.PhaseFencing {
		t.Fatalf("parry changed the bout: score=%v phase=%s", tb.state().Scores, tb.state().Phase)
	}
	if components.Combat.Get(tb.fencers[1]).Stunned {
		t.Fatalf("defender was stunned")
	}
	if blade := components.Blade.Get(attacker); blade.IsAttacking() || blade.Armed {
		t.Fatalf("attacker's thrust not canceled")
	}
	if v := components.Physics.Get(attacker).VelocityX; v >= 0 {
		t.Fatalf("attacker not pushed away from the defender, vx=%.2f", v)
	}
	if parries != 1 {
		t.Fatalf("expected 1 parry event, got %d", parries)
	}

	tb.input(0).Attack = true
	tb.tick()
	if components.Blade.Get(attacker).IsAttacking() {
		t.Fatalf("stunned attacker started a thrust")
	}

	tb.run(0.5)
	if tb.x(0) >= 300 {
		t.Fatalf("pushback did not move the attacker, x=%.2f", tb.x(0))
	}
	if v := components.Physics.Get(attacker).VelocityX; v != 0 {
		t.Fatalf("friction did not stop the pushback, vx=%.2f", v)
	}

	tb.runUntil(cfg.Combat.ParryStunDuration, "stun expiry", func() bool { return !components.Combat.Get(attacker).Stunned })
	tb.input(0).Attack = true
	tb.tick()
	if !components.Blade.Get(attacker).IsAttacking() {
		t.Fatalf("attack rejected after the stun expired")
	}
}

func TestParryWithoutEffect(t *testing.T) {
	tb := newTestBout(t)
	cfg.Combat.Parry = cfg.ParryNoEffect

	parries := 0
	ParryLanded.Subscribe(tb.ecs.World, func(w donburi.World, ev ParryLandedEvent) {
		parries++
		if ev.Policy != cfg.ParryNoEffect {
			t.Errorf("parry event carries policy %s", ev.Policy)
		}
	})

	tb.startFencing()
	tb.place(0, 300)
	tb.place(1, 400)

	tb.input(1).Parry = true
	tb.tick()

	attacker := tb.fencers[0]
	tb.input(0).Attack = true
	tb.runUntil(cfg.Combat.ParryWindow, "parry", func() bool { return parries > 0 })

	if tb.state().Scores != [2]int{} || tb.state().Phase != cfg.PhaseFencing {
		t.Fatalf("parry changed the bout: score=%v phase=%s", tb.state().Scores, tb.state().Phase)
	}
	if components.Combat.Get(attacker).Stunned {
		t.Fatalf("attacker stunned without the stun policy")
	}
	if v := components.Physics.Get(attacker).VelocityX; v != 0 {
		t.Fatalf("attacker pushed back without the stun policy, vx=%.2f", v)
	}
	blade := components.Blade.Get(attacker)
	if blade.Armed || !blade.IsAttacking() {
		t.Fatalf("parried thrust should finish disarmed: state=%d armed=%v", blade.State, blade.Armed)
	}

	tb.runUntil(0.5, "thrust end", func() bool { return !blade.IsAttacking() })
	if tb.state().Scores != [2]int{} || parries != 1 {
		t.Fatalf("disarmed blade touched again: score=%v parries=%d", tb.state().Scores, parries)
	}
	if !StartAttack(tb.ecs, attacker) {
		t.Fatalf("attacker could not thrust again")
	}
}

func TestPushbackDroppedWhenBoutHalts(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	f := tb.fencers[1]

	components.Physics.Get(f).VelocityX = -cfg.Combat.ParryPushback
	tb.tick()
	if tb.x(1) >= 560 {
		t.Fatalf("pushback did not move the fencer while fencing, x=%.2f", tb.x(1))
	}

	tb.state().Phase = cfg.PhaseResolving
	x := tb.x(1)
	tb.tick()
	if tb.x(1) != x {
		t.Fatalf("pushback moved the fencer during resolving: %.2f -> %.2f", x, tb.x(1))
	}
	if v := components.Physics.Get(f).VelocityX; v != 0 {
		t.Fatalf("velocity kept across the halt, vx=%.2f", v)
	}
}
