package systems

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

type PhaseChangedEvent struct {
	From, To cfg.BoutPhase
}

type TouchScoredEvent struct {
	Slot   int
	Scores [2]int
}

type ParryLandedEvent struct {
	AttackerSlot int
	DefenderSlot int
	Policy       cfg.ParryPolicy
}

type FalseStartEvent struct {
	Slot int
}

// BladeContactEvent is raised where an armed blade met a body, landed or parried.
type BladeContactEvent struct {
	Attacker, Victim *donburi.Entry
	X, Y             float64
	Outcome          HitOutcome
}

var (
	PhaseChanged = events.NewEventType[PhaseChangedEvent]()
	TouchScored  = events.NewEventType[TouchScoredEvent]()
	ParryLanded  = events.NewEventType[ParryLandedEvent]()
	FalseStart   = events.NewEventType[FalseStartEvent]()
	BladeContact = events.NewEventType[BladeContactEvent]()
)

// UpdateBoutEvents delivers the events published during this tick.
func UpdateBoutEvents(e *ecs.ECS) {
	PhaseChanged.ProcessEvents(e.World)
	TouchScored.ProcessEvents(e.World)
	ParryLanded.ProcessEvents(e.World)
	FalseStart.ProcessEvents(e.World)
	BladeContact.ProcessEvents(e.World)
}

// SubscribeBoutLog logs every bout event.
func SubscribeBoutLog(w donburi.World) {
	PhaseChanged.Subscribe(w, func(w donburi.World, ev PhaseChangedEvent) {
		logging.L().Debug("phase changed",
			zap.Stringer("from", ev.From),
			zap.Stringer("to", ev.To))
	})
	TouchScored.Subscribe(w, func(w donburi.World, ev TouchScoredEvent) {
		logging.L().Info("touch scored",
			zap.Int("slot", ev.Slot),
			zap.Ints("score", ev.Scores[:]))
	})
	ParryLanded.Subscribe(w, func(w donburi.World, ev ParryLandedEvent) {
		logging.L().Info("parry",
			zap.Int("attacker", ev.AttackerSlot),
			zap.Int("defender", ev.DefenderSlot),
			zap.Stringer("policy", ev.Policy))
	})
	FalseStart.Subscribe(w, func(w donburi.World, ev FalseStartEvent) {
		logging.L().Info("false start", zap.Int("slot", ev.Slot))
	})
}
