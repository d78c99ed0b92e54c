package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/riposte/assets"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once, on the first UpdateAudio
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalSoundDir     fs.FS
	audioInitOnce      sync.Once
)

// SetSoundDir sets where override sound files are read from.
// Must be called before audio is first used.
func SetSoundDir(fsys fs.FS) {
	globalSoundDir = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalSoundDir)
	})
}

// PreloadAllSFX decodes or synthesizes every sound effect up front.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			logging.L().Warn("sound unavailable", zap.Int("sound", int(id)), zap.Error(err))
		}
	}
}

// UpdateAudio plays the sound effects queued since the last tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// SubscribeBoutSounds queues the referee's calls and blade sounds on bout events.
func SubscribeBoutSounds(e *ecs.ECS) {
	PhaseChanged.Subscribe(e.World, func(w donburi.World, ev PhaseChangedEvent) {
		if ev.To == cfg.PhaseFencing {
			PlaySFX(e, cfg.SoundAllez)
		}
	})
	FalseStart.Subscribe(e.World, func(w donburi.World, ev FalseStartEvent) {
		PlaySFX(e, cfg.SoundHalt)
	})
	TouchScored.Subscribe(e.World, func(w donburi.World, ev TouchScoredEvent) {
		PlaySFX(e, cfg.SoundTouch)
	})
	ParryLanded.Subscribe(e.World, func(w donburi.World, ev ParryLandedEvent) {
		PlaySFX(e, cfg.SoundParry)
	})
}
