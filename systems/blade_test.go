package systems

import (
	"testing"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
)

func TestThrustCycle(t *testing.T) {
	tb := newTestBout(t)
	f := tb.fencers[0]
	blade := components.Blade.Get(f)

	if !StartAttack(tb.ecs, f) {
		t.Fatalf("attack rejected")
	}

	last := blade.Reach
	extendTicks := 0
	for blade.State == cfg.BladeExtending {
		if !blade.Armed {
			t.Fatalf("blade disarmed while extending, reach %.2f", blade.Reach)
		}
		tb.tick()
		extendTicks++
		if blade.Reach < last || blade.Reach > cfg.Blade.ThrustOffsetX {
			t.Fatalf("reach went from %.2f to %.2f", last, blade.Reach)
		}
		last = blade.Reach
		if extendTicks > 10 {
			t.Fatalf("thrust never reached full extension")
		}
	}

	if blade.State != cfg.BladeRetracting || blade.Armed {
		t.Fatalf("after extension: state=%d armed=%v", blade.State, blade.Armed)
	}
	if blade.Reach != cfg.Blade.ThrustOffsetX {
		t.Fatalf("full extension reach %.2f", blade.Reach)
	}

	tb.runUntil(0.5, "blade at rest", func() bool { return !blade.IsAttacking() })
	if blade.Armed || blade.Reach != cfg.Blade.RestOffsetX || blade.Tween != nil {
		t.Fatalf("blade not back at rest: %+v", blade)
	}
	if !StartAttack(tb.ecs, f) {
		t.Fatalf("attack rejected after the thrust finished")
	}
}

func TestCancelAttackSnapsHitbox(t *testing.T) {
	cases := []struct {
		slot  int
		wantX float64
	}{
		// Left fencer faces right: the hitbox ends at the tip.
		{0, 80 + 60 - 24},
		// Right fencer faces left: the hitbox starts at the tip.
		{1, 560 - 60},
	}

	for _, c := range cases {
		tb := newTestBout(t)
		f := tb.fencers[c.slot]
		blade := components.Blade.Get(f)

		StartAttack(tb.ecs, f)
		tb.tick()
		tb.tick()
		if blade.Reach <= cfg.Blade.RestOffsetX {
			t.Fatalf("slot %d: blade did not extend", c.slot)
		}

		CancelAttack(f)
		if blade.IsAttacking() || blade.Armed {
			t.Fatalf("slot %d: thrust not canceled", c.slot)
		}
		if blade.Hitbox.X != c.wantX {
			t.Fatalf("slot %d: hitbox at %.2f, want %.2f", c.slot, blade.Hitbox.X, c.wantX)
		}
		if wantY := 280 - cfg.Blade.OffsetY - cfg.Blade.HitboxHeight/2; blade.Hitbox.Y != wantY {
			t.Fatalf("slot %d: hitbox y %.2f, want %.2f", c.slot, blade.Hitbox.Y, wantY)
		}

		tipX, _ := BladeTip(f)
		if want := 80.0 + 60; c.slot == 0 && tipX != want {
			t.Fatalf("tip at %.2f, want %.2f", tipX, want)
		}
	}
}

func TestRestingBladeNeverHits(t *testing.T) {
	tb := newTestBout(t)
	tb.startFencing()
	tb.place(0, 300)
	tb.place(1, 400)

	tb.run(0.5)
	if tb.state().Scores != [2]int{} || tb.state().Phase != cfg.PhaseFencing {
		t.Fatalf("resting blades scored: %v %s", tb.state().Scores, tb.state().Phase)
	}
}
