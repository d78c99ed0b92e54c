package systems

import (
	"image/color"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}

// DrawPiste draws the strip and its end lines.
func DrawPiste(ecs *ecs.ECS, screen *ebiten.Image) {
	pisteEntry, ok := components.Piste.First(ecs.World)
	if !ok {
		return
	}
	piste := components.Piste.Get(pisteEntry)
	camX, camY := cameraOffset(ecs, screen)

	x := float32(piste.MinX + camX)
	y := float32(piste.FloorY + camY)
	w := float32(piste.MaxX - piste.MinX)
	vector.FillRect(screen, x, y, w, 6, cfg.PisteColor, false)
	vector.StrokeLine(screen, x, y-12, x, y+6, 2, cfg.White, false)
	vector.StrokeLine(screen, x+w, y-12, x+w, y+6, 2, cfg.White, false)
	mid := x + w/2
	vector.StrokeLine(screen, mid, y, mid, y+6, 1, cfg.Gray, false)
}

// DrawFencers draws every fencer body tinted by its presentation state, and its blade.
func DrawFencers(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen)

	tags.Fencer.Each(ecs.World, func(entry *donburi.Entry) {
		fencer := components.Fencer.Get(entry)
		tr := components.Transform.Get(entry)
		combat := components.Combat.Get(entry)

		w, h := cfg.Fencer.BodyWidth, cfg.Fencer.BodyHeight
		x := tr.Position.X - w/2 + camX
		y := tr.Position.Y - h + camY
		tint := fencerTint(fencer.Slot, combat.Presentation)
		if flash := components.Flash.Get(entry); flash.Duration > 0 && flash.Duration%4 < 2 {
			tint = flash.Color
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), tint, false)

		// Mask, on the facing side
		maskX := x + w/2 + tr.Scale*w/4 - 6
		vector.FillRect(screen, float32(maskX), float32(y+6), 12, 14, cfg.Gray, false)

		tipX, tipY := BladeTip(entry)
		guardX := tr.Position.X + tr.Scale*w/2
		vector.StrokeLine(screen,
			float32(guardX+camX), float32(tipY+camY),
			float32(tipX+camX), float32(tipY+camY),
			2, cfg.Fencer.BladeColor, false)
	})
}

func fencerTint(slot int, state cfg.PresentationState) color.RGBA {
	switch state {
	case cfg.PresentationParrying:
		return cfg.Fencer.ParryingColor
	case cfg.PresentationStunned:
		return cfg.Fencer.StunnedColor
	}
	return cfg.Fencer.SlotColors[slot%len(cfg.Fencer.SlotColors)]
}
