package factory

import (
	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBout spawns the bout singleton in the waiting phase.
func CreateBout(ecs *ecs.ECS) *donburi.Entry {
	bout := archetypes.Bout.Spawn(ecs)
	components.Bout.SetValue(bout, components.BoutData{
		Phase:     cfg.PhaseWaitingForPlayers,
		LastTouch: -1,
	})
	return bout
}

// CreateClock spawns the simulation clock advancing delta seconds per tick.
func CreateClock(ecs *ecs.ECS, delta float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Delta: delta})
	return clock
}

// CreatePiste spawns the strip the fencers are confined to.
func CreatePiste(ecs *ecs.ECS, data components.PisteData) *donburi.Entry {
	piste := archetypes.Piste.Spawn(ecs)
	components.Piste.SetValue(piste, data)
	return piste
}

// CreateCueDisplay spawns the match-phase message display.
func CreateCueDisplay(ecs *ecs.ECS) *donburi.Entry {
	cue := archetypes.Cue.Spawn(ecs)
	components.Cue.SetValue(cue, components.CueData{Cue: cfg.CueNone})
	return cue
}

// CreateScoreDisplays spawns one score display per slot.
func CreateScoreDisplays(ecs *ecs.ECS) [2]*donburi.Entry {
	var displays [2]*donburi.Entry
	for slot := range displays {
		d := archetypes.ScoreDisplay.Spawn(ecs)
		components.ScoreDisplay.SetValue(d, components.ScoreDisplayData{Slot: slot, Text: "0"})
		displays[slot] = d
	}
	return displays
}
