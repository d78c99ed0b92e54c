package systems

import (
	"fmt"
	"strconv"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/sequence"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartCountdown resets every fencer and runs the pre-fence countdown,
// canceling whatever sequence was running.
//
//	settle → on guard → ready → go (fencing) → grace → cue cleared
func StartCountdown(e *ecs.ECS, boutEntry *donburi.Entry) {
	bout := components.Bout.Get(boutEntry)
	bout.CountdownWindow++

	resetAllFencers(e, bout)
	setPhase(e, boutEntry, cfg.PhaseSettling)
	hideCue(e)

	startSequence(e, bout, cfg.SequenceCountdown,
		sequence.Step{Wait: cfg.Bout.SettleDelay, Do: func() {
			setPhase(e, boutEntry, cfg.PhaseCountdown)
			showCue(e, cfg.CueOnGuard)
		}},
		sequence.Step{Wait: cfg.Bout.OnGuardDelay, Do: func() {
			showCue(e, cfg.CueReady)
		}},
		sequence.Step{Wait: cfg.Bout.ReadyDelay, Do: func() {
			showCue(e, cfg.CueGo)
			setPhase(e, boutEntry, cfg.PhaseFencing)
		}},
		sequence.Step{Wait: cfg.Bout.GoGrace, Do: func() {
			hideCue(e)
		}},
	)
}

//	halt → offending side → reset → latch cleared, countdown restarted
func startFalseStart(e *ecs.ECS, boutEntry *donburi.Entry, offenderSlot int) {
	bout := components.Bout.Get(boutEntry)

	setPhase(e, boutEntry, cfg.PhaseResolving)
	showCue(e, cfg.CueHalt)

	startSequence(e, bout, cfg.SequenceFalseStart,
		sequence.Step{Wait: cfg.Bout.HaltDelay, Do: func() {
			showCue(e, cfg.CueFalseStart, sideName(offenderSlot))
		}},
		sequence.Step{Wait: cfg.Bout.FalseStartMessageDelay, Do: func() {
			resetAllFencers(e, bout)
		}},
		sequence.Step{Wait: cfg.Bout.FalseStartResetDelay, Do: func() {
			bout.FalseStartBy = nil
			StartCountdown(e, boutEntry)
		}},
	)
}

//	halt → touch scored and shown → reset → countdown restarted
func startHaltAndScore(e *ecs.ECS, boutEntry *donburi.Entry, scorerSlot int) {
	bout := components.Bout.Get(boutEntry)

	setPhase(e, boutEntry, cfg.PhaseResolving)
	showCue(e, cfg.CueHalt)

	startSequence(e, bout, cfg.SequenceHaltAndScore,
		sequence.Step{Wait: cfg.Bout.ScoreHaltDelay, Do: func() {
			bout.Scores[scorerSlot]++
			bout.LastTouch = scorerSlot
			showCue(e, cfg.CueTouch, sideName(scorerSlot))
			pushScores(e, bout)
			TouchScored.Publish(e.World, TouchScoredEvent{Slot: scorerSlot, Scores: bout.Scores})
		}},
		sequence.Step{Wait: cfg.Bout.ScoreDisplayDelay, Do: func() {
			resetAllFencers(e, bout)
		}},
		sequence.Step{Wait: cfg.Bout.ScoreResetDelay, Do: func() {
			StartCountdown(e, boutEntry)
		}},
	)
}

// startSequence replaces the running sequence. At most one runs per bout.
func startSequence(e *ecs.ECS, bout *components.BoutData, kind cfg.SequenceKind, steps ...sequence.Step) {
	if bout.Sequence != nil {
		bout.Sequence.Cancel()
	}
	bout.Sequence = sequence.Start(now(e.World), steps...)
	bout.SequenceKind = kind
}

func resetAllFencers(e *ecs.ECS, bout *components.BoutData) {
	for _, f := range bout.Fencers {
		ResetFencer(e, f)
	}
}

func sideName(slot int) string {
	if slot < 0 || slot >= len(cfg.Cues.SideNames) {
		return "?"
	}
	return cfg.Cues.SideNames[slot]
}

// showCue displays a cue, fading it in. Without a cue display nothing happens.
func showCue(e *ecs.ECS, id cfg.CueID, args ...any) {
	entry, ok := components.Cue.First(e.World)
	if !ok {
		return
	}
	text := cfg.Cues.Text[id]
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	cue := components.Cue.Get(entry)
	cue.Cue = id
	cue.Text = text
	cue.Visible = true
	cue.Alpha = 0
	cue.Fade = gween.New(0, 1, float32(cfg.Bout.CueFadeIn), ease.OutQuad)
}

func hideCue(e *ecs.ECS) {
	entry, ok := components.Cue.First(e.World)
	if !ok {
		return
	}
	components.Cue.SetValue(entry, components.CueData{Cue: cfg.CueNone})
}

// pushScores writes the bout score into every score display.
func pushScores(e *ecs.ECS, bout *components.BoutData) {
	components.ScoreDisplay.Each(e.World, func(entry *donburi.Entry) {
		d := components.ScoreDisplay.Get(entry)
		if d.Slot < 0 || d.Slot >= len(bout.Scores) {
			return
		}
		d.Text = strconv.Itoa(bout.Scores[d.Slot])
	})
}

// UpdateCue fades the visible cue in.
func UpdateCue(e *ecs.ECS) {
	entry, ok := components.Cue.First(e.World)
	if !ok {
		return
	}
	cue := components.Cue.Get(entry)
	if !cue.Visible || cue.Fade == nil {
		return
	}
	alpha, finished := cue.Fade.Update(float32(delta(e.World)))
	cue.Alpha = float64(alpha)
	if finished {
		cue.Alpha = 1
		cue.Fade = nil
	}
}
