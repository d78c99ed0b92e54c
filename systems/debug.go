package systems

import (
	"fmt"
	"image/color"

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

// DrawDebug outlines every collision object and prints the bout state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	camX, camY := cameraOffset(ecs, screen)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvBlade) {
				c = color.RGBA{100, 100, 100, 255}
				if entry, ok := obj.Data.(*donburi.Entry); ok && components.Blade.Get(entry).Armed {
					c = color.RGBA{255, 0, 0, 255}
				}
			} else if obj.HasTags(tags.ResolvBody) {
				c = color.RGBA{0, 0, 255, 255}
			}

			x := obj.X + camX
			y := obj.Y + camY
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	boutEntry, ok := components.Bout.First(ecs.World)
	if !ok {
		return
	}
	bout := components.Bout.Get(boutEntry)
	line := fmt.Sprintf("%s  seq=%s  t=%.2f  tier=%s  parry=%s",
		bout.Phase, bout.SequenceKind, now(ecs.World), cfg.Movement.SpeedTier, cfg.Combat.Parry)
	text.Draw(screen, line, fonts.Small.Get(), 4, screen.Bounds().Dy()-4, cfg.Yellow)
}
