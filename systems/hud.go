package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBoutHUD renders the score displays and the current cue.
func DrawBoutHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawScores(ecs, screen)
	drawCue(ecs, screen)
	drawWaiting(ecs, screen)
}

func drawScores(ecs *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	fontFace := fonts.Bold.Get()

	lastTouch := -1
	if boutEntry, ok := components.Bout.First(ecs.World); ok {
		lastTouch = components.Bout.Get(boutEntry).LastTouch
	}

	components.ScoreDisplay.Each(ecs.World, func(entry *donburi.Entry) {
		d := components.ScoreDisplay.Get(entry)

		// Background box
		boxW, boxH := float32(48), float32(28)
		boxX := float32(width/2) - boxW - 8
		if d.Slot == 1 {
			boxX = float32(width/2) + 8
		}
		vector.FillRect(screen, boxX, 6, boxW, boxH, cfg.BlackOverlay, false)
		if d.Slot == lastTouch {
			vector.StrokeRect(screen, boxX, 6, boxW, boxH, 1, cfg.BrightGreen, false)
		}

		c := cfg.Fencer.SlotColors[d.Slot%len(cfg.Fencer.SlotColors)]
		x := int(boxX+boxW/2) - text.BoundString(fontFace, d.Text).Dx()/2
		text.Draw(screen, d.Text, fontFace, x, 28, c)
	})
}

func drawCue(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cue.First(ecs.World)
	if !ok {
		return
	}
	cue := components.Cue.Get(entry)
	if !cue.Visible || cue.Text == "" {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	fontFace := fonts.Cue.Get()

	c := cfg.Cues.Color
	switch cue.Cue {
	case cfg.CueHalt, cfg.CueFalseStart:
		c = cfg.Cues.HaltColor
	case cfg.CueGo:
		c = cfg.BrightGreen
	}
	c = fade(c, cue.Alpha)

	bounds := text.BoundString(fontFace, cue.Text)
	x := int(width/2) - bounds.Dx()/2
	y := int(height / 3)
	text.Draw(screen, cue.Text, fontFace, x, y, c)
}

func drawWaiting(ecs *ecs.ECS, screen *ebiten.Image) {
	boutEntry, ok := components.Bout.First(ecs.World)
	if !ok {
		return
	}
	bout := components.Bout.Get(boutEntry)
	if bout.Phase != cfg.PhaseWaitingForPlayers {
		return
	}
	msg := fmt.Sprintf("WAITING FOR FENCERS (%d/2)", len(bout.Fencers))
	fontFace := fonts.Regular.Get()
	x := screen.Bounds().Dx()/2 - text.BoundString(fontFace, msg).Dx()/2
	text.Draw(screen, msg, fontFace, x, screen.Bounds().Dy()/2, cfg.White)
}

func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	// Premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
