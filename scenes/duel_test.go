package scenes

import (
	"testing"

	"github.com/automoto/riposte/arena"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/systems"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBuildDuel(t *testing.T) {
	embedded, err := arena.LoadEmbedded(cfg.Arena.MapPath)
	if err != nil {
		t.Fatalf("embedded map: %v", err)
	}

	for name, layout := range map[string]*arena.Layout{
		"embedded": embedded,
		"fallback": FallbackLayout(),
	} {
		t.Run(name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			boutEntry := BuildDuel(e, layout)
			bout := components.Bout.Get(boutEntry)

			if len(bout.Fencers) != 2 {
				t.Fatalf("%d fencers registered, want 2", len(bout.Fencers))
			}
			if bout.Phase != cfg.PhaseSettling || !bout.Running(cfg.SequenceCountdown) {
				t.Fatalf("registration did not start the countdown: phase %s", bout.Phase)
			}

			count := 0
			tags.Fencer.Each(e.World, func(entry *donburi.Entry) {
				count++
				fencer := components.Fencer.Get(entry)
				spawn := layout.Spawns[fencer.Slot]
				if pos := components.Transform.Get(entry).Position; pos.X != spawn.X || pos.Y != spawn.Y {
					t.Errorf("slot %d at %+v, want %+v", fencer.Slot, pos, spawn)
				}
				if fencer.Bout != boutEntry {
					t.Errorf("slot %d not bound to the bout", fencer.Slot)
				}
			})
			if count != 2 {
				t.Fatalf("%d fencers spawned", count)
			}

			limit := int((cfg.Bout.SettleDelay + cfg.Bout.OnGuardDelay + cfg.Bout.ReadyDelay + 1) * float64(cfg.C.TPS))
			for i := 0; i < limit && bout.Phase != cfg.PhaseFencing; i++ {
				for _, system := range systems.Simulation {
					system(e)
				}
			}
			if bout.Phase != cfg.PhaseFencing {
				t.Fatalf("bout never reached fencing, phase %s", bout.Phase)
			}
		})
	}
}

func TestFallbackLayoutMatchesConfig(t *testing.T) {
	l := FallbackLayout()
	if l.Spawns[0].X >= l.Spawns[1].X {
		t.Fatalf("left spawn %.0f is not left of right spawn %.0f", l.Spawns[0].X, l.Spawns[1].X)
	}
	if l.MinX > l.Spawns[0].X || l.Spawns[1].X > l.MaxX {
		t.Fatalf("spawns outside the piste: %+v", l)
	}
}
