package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/riposte/arena"
	"github.com/automoto/riposte/config"
	"github.com/automoto/riposte/fonts"
	"github.com/automoto/riposte/logging"
	"github.com/automoto/riposte/scenes"
	"github.com/automoto/riposte/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding movement, combat, blade and bout timings; reloaded on change")
	arenaPath := flag.String("arena", "", "TMX piste map (defaults to the embedded piste)")
	soundDir := flag.String("sounds", "", "directory of .wav/.ogg files replacing the synthesized sounds")
	flag.BoolVar(&config.Debug.Verbose, "debug", false, "verbose development logging")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", false, "draw collision boxes")
	flag.Parse()

	if err := logging.Init(config.Debug.Verbose); err != nil {
		log.Fatalf("init logging: %v", err)
	}
	defer logging.Sync()
	logger := logging.L()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	var watcher *config.TuningWatcher
	if *tuningPath != "" {
		base := config.CurrentTuning()
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			logger.Warn("using default tuning", zap.Error(err))
		} else {
			config.ApplyTuning(t)
		}
		// Reloads overlay the defaults, not the first load, so removed keys revert.
		w, err := config.NewTuningWatcher(*tuningPath, base)
		if err != nil {
			logger.Warn("tuning hot reload disabled", zap.Error(err))
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	layout := loadArena(*arenaPath, logger)

	if *soundDir != "" {
		systems.SetSoundDir(os.DirFS(*soundDir))
	}
	systems.PreloadAllSFX()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("settings will not persist", zap.Error(err))
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		logger.Warn("ignoring saved settings", zap.Error(err))
	}
	settings := systems.SettingsFromSaved(saved)

	ebiten.SetWindowTitle("Riposte")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)
	systems.ApplyWindowSettings(&settings)

	if err := ebiten.RunGame(NewGame(scenes.NewDuelScene(layout, saved, watcher))); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func loadArena(path string, logger *zap.Logger) *arena.Layout {
	if path != "" {
		layout, err := arena.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err == nil {
			return layout
		}
		logger.Warn("falling back to the embedded piste", zap.Error(err))
	}

	layout, err := arena.LoadEmbedded(config.Arena.MapPath)
	if err != nil {
		logger.Error("embedded piste is unreadable, using built-in bounds", zap.Error(err))
		return scenes.FallbackLayout()
	}
	return layout
}
