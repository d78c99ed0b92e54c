package systems

import (
	"testing"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// A power of two keeps accumulated simulation time exact.
const testDelta = 1.0 / 64

type testBout struct {
	t       *testing.T
	ecs     *ecs.ECS
	bout    *donburi.Entry
	fencers [2]*donburi.Entry
	cue     *donburi.Entry
	scores  [2]*donburi.Entry
}

// newTestBout builds a world with a 40..600 piste and two unregistered
// fencers standing at 80 and 560.
func newTestBout(t *testing.T) *testBout {
	t.Helper()
	restoreConfig(t)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e, testDelta)
	factory.CreateSpace(e, 640, 360, 16, 16)
	factory.CreatePiste(e, components.PisteData{MinX: 40, MaxX: 600, FloorY: 280, Width: 640, Height: 360})
	factory.CreateCamera(e, 320, 180)

	tb := &testBout{t: t, ecs: e}
	tb.cue = factory.CreateCueDisplay(e)
	tb.scores = factory.CreateScoreDisplays(e)
	tb.bout = factory.CreateBout(e)
	tb.fencers[0] = factory.CreateFencer(e, 0, math.Vec2{X: 80, Y: 280})
	tb.fencers[1] = factory.CreateFencer(e, 1, math.Vec2{X: 560, Y: 280})
	return tb
}

// restoreConfig undoes config changes made by a test.
func restoreConfig(t *testing.T) {
	saved := cfg.CurrentTuning()
	debug := cfg.Debug
	t.Cleanup(func() {
		cfg.ApplyTuning(saved)
		cfg.Debug = debug
	})
}

func (tb *testBout) register() {
	for _, f := range tb.fencers {
		RegisterFencer(tb.ecs, tb.bout, f)
	}
}

// startFencing skips the countdown: both fencers join the bout, which is put
// straight into the fencing phase.
func (tb *testBout) startFencing() {
	b := tb.state()
	for _, f := range tb.fencers {
		b.Fencers = append(b.Fencers, f)
		components.Fencer.Get(f).Bout = tb.bout
	}
	b.Phase = cfg.PhaseFencing
}

func (tb *testBout) state() *components.BoutData {
	return components.Bout.Get(tb.bout)
}

func (tb *testBout) tick() {
	for _, system := range Simulation {
		system(tb.ecs)
	}
}

// run advances the simulation by the given number of seconds.
func (tb *testBout) run(seconds float64) {
	n := int(seconds/testDelta + 0.5)
	for i := 0; i < n; i++ {
		tb.tick()
	}
}

// runUntil ticks until cond holds, failing after limit seconds.
func (tb *testBout) runUntil(limit float64, what string, cond func() bool) {
	tb.t.Helper()
	for i := 0; i < int(limit/testDelta); i++ {
		if cond() {
			return
		}
		tb.tick()
	}
	if !cond() {
		tb.t.Fatalf("timed out after %.2fs waiting for %s", limit, what)
	}
}

func (tb *testBout) runUntilPhase(limit float64, phase cfg.BoutPhase) {
	tb.t.Helper()
	tb.runUntil(limit, phase.String(), func() bool { return tb.state().Phase == phase })
}

func (tb *testBout) now() float64 {
	return now(tb.ecs.World)
}

func (tb *testBout) setNow(t float64) {
	entry, _ := components.Clock.First(tb.ecs.World)
	components.Clock.Get(entry).Now = t
}

func (tb *testBout) input(slot int) *components.FencerInputData {
	return components.FencerInput.Get(tb.fencers[slot])
}

func (tb *testBout) x(slot int) float64 {
	return components.Transform.Get(tb.fencers[slot]).Position.X
}

// place moves a fencer without going through the movement resolver.
func (tb *testBout) place(slot int, x float64) {
	f := tb.fencers[slot]
	components.Transform.Get(f).Position.X = x
	syncBody(f)
	syncHitbox(f)
}

func (tb *testBout) cueState() *components.CueData {
	return components.Cue.Get(tb.cue)
}
