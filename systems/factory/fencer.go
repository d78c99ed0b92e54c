package factory

import (
	"fmt"

	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateFencer spawns the fencer for slot. Slot 0 stands on the left facing
// right, slot 1 on the right facing left.
func CreateFencer(ecs *ecs.ECS, slot int, spawn math.Vec2) *donburi.Entry {
	fencer := archetypes.Fencer.Spawn(ecs)

	facing := cfg.DirectionRight
	if slot == 1 {
		facing = cfg.DirectionLeft
	}

	components.Fencer.SetValue(fencer, components.FencerData{
		Slot:   slot,
		Name:   fmt.Sprintf("Player%d", slot+1),
		Facing: facing,
		Spawn:  spawn,
	})
	components.Transform.SetValue(fencer, components.TransformData{
		Position: spawn,
		Scale:    facing,
	})
	components.FencerInput.SetValue(fencer, components.FencerInputData{
		Scheme: slot,
	})

	w, h := cfg.Fencer.BodyWidth, cfg.Fencer.BodyHeight
	body := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvBody)
	body.SetShape(resolv.NewRectangle(0, 0, w, h))
	body.Data = fencer
	components.Object.SetValue(fencer, components.ObjectData{Object: body})

	hw, hh := cfg.Blade.HitboxWidth, cfg.Blade.HitboxHeight
	hitbox := resolv.NewObject(spawn.X, spawn.Y-cfg.Blade.OffsetY, hw, hh, tags.ResolvBlade)
	hitbox.SetShape(resolv.NewRectangle(0, 0, hw, hh))
	hitbox.Data = fencer
	components.Blade.SetValue(fencer, components.BladeData{
		State:  cfg.BladeResting,
		Reach:  cfg.Blade.RestOffsetX,
		Hitbox: hitbox,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(body, hitbox)
	}

	return fencer
}
