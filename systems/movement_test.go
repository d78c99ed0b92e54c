package systems

import (
	"testing"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
)

func TestStepTiers(t *testing.T) {
	cases := []struct {
		name       string
		axis       float64
		wantTarget float64
		wantSpeed  float64
	}{
		{"deadzone", 0.15, 80, 0},
		{"moderate", 0.5, 96, 140},
		{"moderate below threshold", -0.84, 64, 140},
		{"fast at threshold", 0.85, 104, 220},
		{"fast full stick", 1, 104, 220},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := newTestBout(t)
			tb.startFencing()
			mv := components.Movement.Get(tb.fencers[0])

			tb.input(0).Axis = c.axis
			tb.tick()
			tb.input(0).Axis = 0

			if c.wantSpeed == 0 {
				if mv.Stepping {
					t.Fatalf("input inside the deadzone started a step")
				}
				tb.run(0.25)
				if tb.x(0) != 80 {
					t.Fatalf("fencer moved to %.2f", tb.x(0))
				}
				return
			}

			if !mv.Stepping || mv.TargetX != c.wantTarget || mv.Speed != c.wantSpeed {
				t.Fatalf("step target=%.2f speed=%.2f, want %.2f at %.2f", mv.TargetX, mv.Speed, c.wantTarget, c.wantSpeed)
			}
			tb.run(0.25)
			if mv.Stepping || tb.x(0) != c.wantTarget {
				t.Fatalf("step did not end on its target: x=%.4f stepping=%v", tb.x(0), mv.Stepping)
			}
		})
	}
}

func TestFastStepSpeedCappedByMinDuration(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	cfg.Movement.FastSpeed = 1000

	tb.input(0).Axis = 1
	tb.tick()

	want := cfg.Movement.FastStepDistance / cfg.Movement.FastStepMinDuration
	if got := components.Movement.Get(tb.fencers[0]).Speed; got != want {
		t.Fatalf("fast speed %.2f, want %.2f", got, want)
	}
}

func TestStepIgnoresInputUntilTargetReached(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	mv := components.Movement.Get(tb.fencers[0])

	tb.input(0).Axis = 0.5
	tb.tick()
	tb.input(0).Axis = -1
	tb.tick()

	if mv.TargetX != 96 {
		t.Fatalf("new input changed the target to %.2f", mv.TargetX)
	}
	tb.runUntil(1, "step end", func() bool { return !mv.Stepping })
	if tb.x(0) != 96 {
		t.Fatalf("fencer stopped at %.4f, want 96", tb.x(0))
	}
}

func TestLatchedSpeedTier(t *testing.T) {
	cases := []struct {
		name       string
		policy     cfg.SpeedTierPolicy
		wantSecond float64
	}{
		{"threshold", cfg.SpeedTierThreshold, 16},
		{"latched", cfg.SpeedTierLatched, 24},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := newTestBout(t)
			tb.startFencing()
			cfg.Movement.SpeedTier = c.policy
			mv := components.Movement.Get(tb.fencers[0])

			tb.input(0).Axis = 1
			tb.tick()
			first := mv.TargetX

			// Ease off the stick without leaving the deadzone.
			tb.input(0).Axis = 0.5
			tb.runUntil(1, "second step", func() bool { return mv.Stepping && mv.TargetX != first })
			if got := mv.TargetX - first; got != c.wantSecond {
				t.Fatalf("second step distance %.2f, want %.2f", got, c.wantSecond)
			}

			// Releasing the stick clears the latch.
			tb.input(0).Axis = 0
			tb.runUntil(1, "idle", func() bool { return !mv.Stepping })
			tb.run(cfg.Movement.StepCooldown)
			if mv.FastLatched {
				t.Fatalf("latch survived a release")
			}

			start := tb.x(0)
			tb.input(0).Axis = 0.5
			tb.tick()
			if got := mv.TargetX - start; got != 16 {
				t.Fatalf("step after release %.2f, want 16", got)
			}
		})
	}
}

func TestDash(t *testing.T) {
	cases := []struct {
		name       string
		slot       int
		axis       float64
		wantTarget float64
	}{
		{"along the stick", 0, 0.5, 180},
		{"facing without stick", 0, 0, 180},
		{"facing left without stick", 1, 0, 460},
		{"backwards", 1, 0.3, 600},
		{"clamped to the piste", 0, -1, 40},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := newTestBout(t)
			tb.startFencing()
			mv := components.Movement.Get(tb.fencers[c.slot])

			tb.input(c.slot).Axis = c.axis
			tb.input(c.slot).DashHeld = true
			tb.tick()
			tb.input(c.slot).Axis = 0

			want := cfg.Movement.DashDistance / cfg.Movement.MinDashDuration
			if mv.TargetX != c.wantTarget || mv.Speed != want {
				t.Fatalf("dash target=%.2f speed=%.2f, want %.2f at %.2f", mv.TargetX, mv.Speed, c.wantTarget, want)
			}
			tb.runUntil(1, "dash end", func() bool { return !mv.Stepping })
			if got := tb.x(c.slot); got != c.wantTarget {
				t.Fatalf("dash ended at %.4f", got)
			}
		})
	}
}

func TestDashIsEdgeTriggeredWithCooldown(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	mv := components.Movement.Get(tb.fencers[0])
	in := tb.input(0)

	in.DashHeld = true
	tb.tick()
	tb.run(0.5)
	if tb.x(0) != 180 {
		t.Fatalf("holding dash moved the fencer to %.2f", tb.x(0))
	}

	// Release then press again once the cooldown has passed.
	in.DashHeld = false
	tb.tick()
	in.DashHeld = true
	tb.tick()
	if mv.TargetX != 280 {
		t.Fatalf("second press did not dash, target %.2f", mv.TargetX)
	}
	tb.runUntil(1, "dash end", func() bool { return !mv.Stepping })

	// The cooldown runs from the start of the dash and outlasts it.
	in.DashHeld = false
	tb.tick()
	in.DashHeld = true
	tb.tick()
	if mv.Stepping {
		t.Fatalf("dash accepted during its cooldown")
	}
}

func TestDashOverridesStep(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	mv := components.Movement.Get(tb.fencers[0])

	tb.input(0).Axis = 0.5
	tb.tick()
	tb.input(0).DashHeld = true
	tb.tick()

	if mv.TargetX != 80+cfg.Movement.DashDistance {
		t.Fatalf("dash did not replace the step target, got %.2f", mv.TargetX)
	}
	if mv.Speed != cfg.Movement.DashDistance/cfg.Movement.MinDashDuration {
		t.Fatalf("dash speed not applied, got %.2f", mv.Speed)
	}
}

func TestMovementSuppressed(t *testing.T) {
	cases := []struct {
		name  string
		setup func(tb *testBout)
	}{
		{"settling", func(tb *testBout) { tb.state().Phase = cfg.PhaseSettling }},
		{"resolving", func(tb *testBout) { tb.state().Phase = cfg.PhaseResolving }},
		{"waiting", func(tb *testBout) { tb.state().Phase = cfg.PhaseWaitingForPlayers }},
		{"stunned", func(tb *testBout) { ApplyStun(tb.ecs, tb.fencers[0], 10) }},
		{"unregistered", func(tb *testBout) { components.Fencer.Get(tb.fencers[0]).Bout = nil }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := newTestBout(t)
			tb.startFencing()
			c.setup(tb)

			tb.input(0).Axis = 1
			tb.input(0).DashHeld = true
			tb.run(0.5)

			if tb.x(0) != 80 {
				t.Fatalf("fencer moved to %.2f", tb.x(0))
			}
			if components.Movement.Get(tb.fencers[0]).Stepping {
				t.Fatalf("fencer left stepping while suppressed")
			}
		})
	}
}

func TestSuppressionStopsStepInProgress(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()

	tb.input(0).Axis = 1
	tb.tick()
	tb.input(0).Axis = 0
	tb.tick()
	x := tb.x(0)

	tb.state().Phase = cfg.PhaseResolving
	tb.run(0.25)
	if tb.x(0) != x {
		t.Fatalf("step continued outside a movement phase: %.2f -> %.2f", x, tb.x(0))
	}
}

func TestResetFencer(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	e := tb.ecs

	for slot, f := range tb.fencers {
		tb.input(slot).Axis = 1
		tb.tick()
		tb.tick()
		StartAttack(e, f)
		tb.tick()

		combat := components.Combat.Get(f)
		combat.Parrying = true
		combat.ParryUntil = 99
		combat.Stunned = true
		combat.StunnedUntil = 99
		combat.NextParryAt = 99
		components.Physics.Get(f).VelocityX = 300
		components.Physics.Get(f).Angular = 2
		components.Transform.Get(f).Scale = 0
		components.Movement.Get(f).FastLatched = true
	}

	for slot, f := range tb.fencers {
		ResetFencer(e, f)

		fencer := components.Fencer.Get(f)
		tr := components.Transform.Get(f)
		mv := components.Movement.Get(f)
		combat := components.Combat.Get(f)
		blade := components.Blade.Get(f)

		if mv.Stepping || mv.FastLatched {
			t.Errorf("slot %d: motion not cleared", slot)
		}
		if blade.IsAttacking() || blade.Armed || blade.Reach != cfg.Blade.RestOffsetX {
			t.Errorf("slot %d: blade not at rest", slot)
		}
		if combat.Parrying || combat.Stunned || combat.Presentation != cfg.PresentationNormal {
			t.Errorf("slot %d: combat flags not cleared: %+v", slot, combat)
		}
		if tr.Position != fencer.Spawn || tr.Scale != fencer.Facing {
			t.Errorf("slot %d: transform %+v, want spawn %+v facing %.0f", slot, tr, fencer.Spawn, fencer.Facing)
		}
		if p := components.Physics.Get(f); *p != (components.PhysicsData{}) {
			t.Errorf("slot %d: velocity not zeroed: %+v", slot, p)
		}
		if obj := components.Object.Get(f); obj.X != fencer.Spawn.X-obj.W/2 {
			t.Errorf("slot %d: body not moved with the fencer", slot)
		}
		if !TriggerParry(e, f) {
			t.Errorf("slot %d: parry cooldown survived the reset", slot)
		}
	}
}
