package systems

import (
	"image/color"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateAutoDestroy removes entities whose countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// TriggerFlash starts or restarts a body flash on a fencer.
func TriggerFlash(entry *donburi.Entry, frames int, c color.RGBA) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(entry, components.FlashData{Duration: frames, Color: c})
}

// SubscribeBladeEffects spawns a spark where a blade met its target and
// flashes the fencer that was touched or parried.
func SubscribeBladeEffects(e *ecs.ECS) {
	BladeContact.Subscribe(e.World, func(w donburi.World, ev BladeContactEvent) {
		switch ev.Outcome {
		case HitLanded:
			factory.CreateSpark(e, ev.X, ev.Y, cfg.Effects.TouchSparkColor)
			TriggerFlash(ev.Victim, cfg.Effects.TouchFlashFrames, cfg.Effects.TouchFlashColor)
		case HitParried:
			factory.CreateSpark(e, ev.X, ev.Y, cfg.Effects.ParrySparkColor)
			TriggerFlash(ev.Attacker, cfg.Effects.ParryFlashFrames, cfg.Effects.ParryFlashColor)
		}
	})
}

// DrawEffects draws the sparks as crosses that grow while fading out.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs, screen)

	components.Spark.Each(ecs.World, func(e *donburi.Entry) {
		spark := components.Spark.Get(e)
		remaining := components.AutoDestroy.Get(e).FramesRemaining
		life := float64(remaining) / float64(max(spark.Frames, 1))

		size := float32(cfg.Effects.SparkSize * (1.5 - life/2))
		x := float32(spark.X + camX)
		y := float32(spark.Y + camY)
		c := fade(spark.Color, life)
		vector.StrokeLine(screen, x-size, y, x+size, y, 2, c, false)
		vector.StrokeLine(screen, x, y-size, x, y+size, 2, c, false)
		vector.StrokeLine(screen, x-size/2, y-size/2, x+size/2, y+size/2, 1, c, false)
		vector.StrokeLine(screen, x-size/2, y+size/2, x+size/2, y-size/2, 1, c, false)
	})
}
