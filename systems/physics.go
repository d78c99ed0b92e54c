package systems

import (
	"math"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates external velocity (parry pushback) and decays it
// with friction. Steps and dashes move the transform directly and are not
// velocity driven. Outside the movement phases any velocity is dropped.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := delta(ecs.World)
	friction := cfg.Combat.Friction * dt

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.VelocityX == 0 {
			return
		}
		if e.HasComponent(components.Fencer) {
			if bout := components.Fencer.Get(e).Bout; bout == nil || !CanFencersMove(bout) {
				ZeroVelocity(e)
				return
			}
		}

		tr := components.Transform.Get(e)
		tr.Position.X = clampToPiste(ecs, tr.Position.X+physics.VelocityX*dt)

		if physics.VelocityX > friction {
			physics.VelocityX -= friction
		} else if physics.VelocityX < -friction {
			physics.VelocityX += friction
		} else {
			physics.VelocityX = 0
		}

		syncBody(e)
	})
}

// ZeroVelocity stops linear and angular motion.
func ZeroVelocity(e *donburi.Entry) {
	components.Physics.SetValue(e, components.PhysicsData{})
}

// pushAway sets a velocity moving e away from x.
func pushAway(e *donburi.Entry, x, speed float64) {
	tr := components.Transform.Get(e)
	dir := tr.Position.X - x
	if dir == 0 {
		dir = -components.Fencer.Get(e).Facing
	}
	components.Physics.Get(e).VelocityX = math.Copysign(speed, dir)
}
