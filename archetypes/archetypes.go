package archetypes

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fencer = newArchetype(
		tags.Fencer,
		components.Fencer,
		components.Transform,
		components.Movement,
		components.Combat,
		components.Blade,
		components.Physics,
		components.FencerInput,
		components.Object,
		components.Flash,
	)
	Bout = newArchetype(
		tags.Bout,
		components.Bout,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Space = newArchetype(
		components.Space,
	)
	Piste = newArchetype(
		components.Piste,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Cue = newArchetype(
		components.Cue,
	)
	ScoreDisplay = newArchetype(
		components.ScoreDisplay,
	)
	Spark = newArchetype(
		components.Spark,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
