package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBlades advances every thrust and moves the hitboxes with their owners.
func UpdateBlades(e *ecs.ECS) {
	dt := float32(delta(e.World))
	tags.Fencer.Each(e.World, func(entry *donburi.Entry) {
		blade := components.Blade.Get(entry)
		advanceThrust(blade, dt)
		syncHitbox(entry)
	})
}

func beginThrust(blade *components.BladeData) {
	blade.State = cfg.BladeExtending
	blade.Armed = true
	blade.Reach = cfg.Blade.RestOffsetX
	blade.Tween = gween.New(
		float32(cfg.Blade.RestOffsetX),
		float32(cfg.Blade.ThrustOffsetX),
		float32(cfg.Blade.ThrustOutTime),
		ease.Linear,
	)
}

// advanceThrust moves the blade along the current leg. The hitbox is disarmed
// as soon as the blade starts retracting.
func advanceThrust(blade *components.BladeData, dt float32) {
	if blade.Tween == nil {
		return
	}

	reach, finished := blade.Tween.Update(dt)
	blade.Reach = float64(reach)
	if !finished {
		return
	}

	switch blade.State {
	case cfg.BladeExtending:
		blade.Reach = cfg.Blade.ThrustOffsetX
		blade.State = cfg.BladeRetracting
		blade.Armed = false
		blade.Tween = gween.New(
			float32(cfg.Blade.ThrustOffsetX),
			float32(cfg.Blade.RestOffsetX),
			float32(cfg.Blade.ThrustBackTime),
			ease.Linear,
		)
	default:
		restBlade(blade)
	}
}

// CancelAttack aborts a thrust at any point and snaps the blade to rest.
func CancelAttack(fencerEntry *donburi.Entry) {
	restBlade(components.Blade.Get(fencerEntry))
	syncHitbox(fencerEntry)
}

func restBlade(blade *components.BladeData) {
	blade.State = cfg.BladeResting
	blade.Armed = false
	blade.Tween = nil
	blade.Reach = cfg.Blade.RestOffsetX
}

// syncHitbox places the hitbox so that its far edge is the blade tip.
func syncHitbox(fencerEntry *donburi.Entry) {
	blade := components.Blade.Get(fencerEntry)
	if blade.Hitbox == nil {
		return
	}
	tr := components.Transform.Get(fencerEntry)
	facing := components.Fencer.Get(fencerEntry).Facing

	tipX := tr.Position.X + facing*blade.Reach
	x := tipX
	if facing > 0 {
		x = tipX - blade.Hitbox.W
	}
	blade.Hitbox.X = x
	blade.Hitbox.Y = tr.Position.Y - cfg.Blade.OffsetY - blade.Hitbox.H/2
	blade.Hitbox.Update()
}

// BladeTip returns the world position of the blade tip, for drawing.
func BladeTip(fencerEntry *donburi.Entry) (float64, float64) {
	blade := components.Blade.Get(fencerEntry)
	tr := components.Transform.Get(fencerEntry)
	facing := components.Fencer.Get(fencerEntry).Facing
	return tr.Position.X + facing*blade.Reach, tr.Position.Y - cfg.Blade.OffsetY
}
