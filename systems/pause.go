package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/fonts"
	"github.com/automoto/riposte/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause. Must run AFTER UpdateInput.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if !pause.IsPaused {
		return
	}

	// Presses made while paused are dropped.
	tags.Fencer.Each(ecs.World, func(entry *donburi.Entry) {
		consumeTriggers(components.FencerInput.Get(entry))
	})
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	face := fonts.Bold.Get()
	msg := "PAUSED"
	x := int(width/2) - text.BoundString(face, msg).Dx()/2
	text.Draw(screen, msg, face, x, int(height/2), cfg.White)

	small := fonts.Small.Get()
	hints := []string{
		"Esc/P: resume   F3 hitboxes   F4 window   F11 fullscreen",
		"F5 speed tier   F6 parry rule   F7 mute",
	}
	for i, hint := range hints {
		hx := int(width/2) - text.BoundString(small, hint).Dx()/2
		text.Draw(screen, hint, small, hx, int(height)-12-(len(hints)-1-i)*14, cfg.Gray)
	}
}

// GetOrCreatePause returns the pause singleton, creating it if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}
