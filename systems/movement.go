package systems

import (
	"math"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// updateMovement turns the fencer's axis into steps and dashes.
// Only called once the bout allows motion and the fencer is not stunned.
func updateMovement(e *ecs.ECS, fencerEntry, boutEntry *donburi.Entry, input *components.FencerInputData, t, dt float64) {
	mv := components.Movement.Get(fencerEntry)
	tr := components.Transform.Get(fencerEntry)

	axis := input.Axis
	absAxis := math.Abs(axis)
	if absAxis < cfg.Movement.Deadzone {
		mv.FastLatched = false
	}

	tryDash(e, fencerEntry, boutEntry, mv, tr, input, t)

	if advanceStep(mv, tr, dt) {
		return
	}
	if t < mv.NextStepAt {
		return
	}

	// Ignore small input
	if absAxis < cfg.Movement.Deadzone {
		return
	}

	reportEarlyMovement(e, fencerEntry, boutEntry, mv)
	startStep(e, mv, tr, math.Copysign(1, axis), isFastStep(mv, absAxis), t)
}

// tryDash starts a dash on a fresh press of the dash button, overriding any
// step in progress. Without a direction the fencer dashes the way it faces.
func tryDash(e *ecs.ECS, fencerEntry, boutEntry *donburi.Entry, mv *components.MovementData, tr *components.TransformData, input *components.FencerInputData, t float64) {
	if !input.DashHeld {
		mv.DashHeld = false
		return
	}
	if mv.DashHeld || t < mv.NextDashAt {
		return
	}

	direction := components.Fencer.Get(fencerEntry).Facing
	if math.Abs(input.Axis) >= cfg.Movement.Deadzone {
		direction = math.Copysign(1, input.Axis)
	}

	mv.TargetX = clampToPiste(e, tr.Position.X+direction*cfg.Movement.DashDistance)
	mv.Speed = math.Max(cfg.Movement.DashSpeed, cfg.Movement.DashDistance/cfg.Movement.MinDashDuration)
	mv.Stepping = true
	mv.NextDashAt = t + cfg.Movement.DashCooldown
	mv.DashHeld = true

	reportEarlyMovement(e, fencerEntry, boutEntry, mv)
}

func startStep(e *ecs.ECS, mv *components.MovementData, tr *components.TransformData, direction float64, fast bool, t float64) {
	distance := cfg.Movement.StepDistance
	speed := cfg.Movement.ModerateSpeed
	if fast {
		distance = cfg.Movement.FastStepDistance
		speed = math.Min(cfg.Movement.FastSpeed, distance/cfg.Movement.FastStepMinDuration)
	}

	mv.TargetX = clampToPiste(e, tr.Position.X+direction*distance)
	mv.Speed = speed
	mv.Stepping = true
	mv.NextStepAt = t + cfg.Movement.StepCooldown
}

// advanceStep moves towards the target at constant speed and reports whether
// a motion was in progress this tick.
func advanceStep(mv *components.MovementData, tr *components.TransformData, dt float64) bool {
	if !mv.Stepping {
		return false
	}

	remaining := mv.TargetX - tr.Position.X
	maxDelta := mv.Speed * dt
	if math.Abs(remaining) <= maxDelta {
		tr.Position.X = mv.TargetX
	} else {
		tr.Position.X += math.Copysign(maxDelta, remaining)
	}

	if tr.Position.X == mv.TargetX {
		mv.Stepping = false
	}
	return true
}

func isFastStep(mv *components.MovementData, absAxis float64) bool {
	fullStick := absAxis >= cfg.Movement.FullStickThreshold
	if cfg.Movement.SpeedTier != cfg.SpeedTierLatched {
		return fullStick
	}
	if fullStick {
		mv.FastLatched = true
	}
	return mv.FastLatched
}

// reportEarlyMovement flags motion during the countdown once per countdown
// window. The motion itself is not blocked.
func reportEarlyMovement(e *ecs.ECS, fencerEntry, boutEntry *donburi.Entry, mv *components.MovementData) {
	bout := components.Bout.Get(boutEntry)
	if bout.Phase != cfg.PhaseCountdown || mv.ReportedWindow == bout.CountdownWindow {
		return
	}
	mv.ReportedWindow = bout.CountdownWindow
	OnEarlyMovement(e, boutEntry, fencerEntry)
}

func clampToPiste(e *ecs.ECS, x float64) float64 {
	entry, ok := components.Piste.First(e.World)
	if !ok {
		return x
	}
	piste := components.Piste.Get(entry)
	return math.Max(piste.MinX, math.Min(piste.MaxX, x))
}
