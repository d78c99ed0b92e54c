package factory

import (
	"image/color"

	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpark spawns a spark at the given world position. It destroys itself
// after cfg.Effects.SparkFrames.
func CreateSpark(ecs *ecs.ECS, x, y float64, c color.RGBA) *donburi.Entry {
	entry := archetypes.Spark.Spawn(ecs)
	components.Spark.SetValue(entry, components.SparkData{
		X:      x,
		Y:      y,
		Frames: cfg.Effects.SparkFrames,
		Color:  c,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining: cfg.Effects.SparkFrames,
	})
	return entry
}
