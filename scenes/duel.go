package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/riposte/arena"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/logging"
	"github.com/automoto/riposte/systems"
	"github.com/automoto/riposte/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// DuelScene runs one bout between two local fencers.
type DuelScene struct {
	ecs     *ecs.ECS
	layout  *arena.Layout
	saved   *systems.SavedSettings
	watcher *cfg.TuningWatcher
	once    sync.Once
}

// NewDuelScene creates the scene. watcher and saved may be nil.
func NewDuelScene(layout *arena.Layout, saved *systems.SavedSettings, watcher *cfg.TuningWatcher) *DuelScene {
	return &DuelScene{layout: layout, saved: saved, watcher: watcher}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.applyTuningUpdates()
	ds.ecs.Update()
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Device polling and global toggles
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Bout simulation, frozen while paused
	for _, system := range systems.Simulation {
		ecs.AddSystem(systems.WithPauseCheck(system))
	}
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawPiste)
	ecs.AddRenderer(cfg.Default, systems.DrawFencers)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawBoutHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	settings := systems.GetOrCreateSettings(ecs)
	*settings = systems.SettingsFromSaved(ds.saved)
	systems.ApplyGameplaySettings(settings)
	systems.ApplyAudioSettings(settings)

	BuildDuel(ecs, ds.layout)
	systems.SubscribeBoutSounds(ecs)
	ds.ecs = ecs
}

// BuildDuel spawns the bout, its displays and both fencers, then registers
// the fencers, which starts the first countdown.
func BuildDuel(e *ecs.ECS, layout *arena.Layout) *donburi.Entry {
	factory.CreateClock(e, 1/float64(cfg.C.TPS))
	factory.CreateSpace(e, layout.Width, layout.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreatePiste(e, components.PisteData{
		MinX:   layout.MinX,
		MaxX:   layout.MaxX,
		FloorY: layout.FloorY,
		Width:  float64(layout.Width),
		Height: float64(layout.Height),
	})
	factory.CreateCamera(e, (layout.MinX+layout.MaxX)/2, float64(cfg.C.Height)/2)
	factory.CreateCueDisplay(e)
	factory.CreateScoreDisplays(e)

	systems.SubscribeBoutLog(e.World)
	systems.SubscribeCameraShake(e)
	systems.SubscribeBladeEffects(e)

	bout := factory.CreateBout(e)
	for slot, spawn := range layout.Spawns {
		fencer := factory.CreateFencer(e, slot, math.Vec2{X: spawn.X, Y: spawn.Y})
		systems.RegisterFencer(e, bout, fencer)
	}
	return bout
}

// FallbackLayout builds a piste from the built-in arena configuration.
func FallbackLayout() *arena.Layout {
	a := cfg.Arena
	return &arena.Layout{
		Width:  a.Width,
		Height: a.Height,
		MinX:   a.MinX,
		MaxX:   a.MaxX,
		FloorY: a.FloorY,
		Spawns: [2]arena.Spawn{
			{X: a.LeftSpawnX, Y: a.FloorY},
			{X: a.RightSpawnX, Y: a.FloorY},
		},
	}
}

// applyTuningUpdates applies a reloaded tuning file between ticks. The
// user's saved toggles are reapplied on top.
func (ds *DuelScene) applyTuningUpdates() {
	if ds.watcher == nil {
		return
	}
	select {
	case t := <-ds.watcher.Updates:
		cfg.ApplyTuning(t)
		systems.ApplyGameplaySettings(systems.GetOrCreateSettings(ds.ecs))
		logging.L().Info("tuning reloaded")
	case err := <-ds.watcher.Errors:
		logging.L().Warn("tuning reload failed", zap.Error(err))
	default:
	}
}
