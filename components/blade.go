package components

import (
	cfg "github.com/automoto/riposte/config"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BladeData is a fencer's weapon. The hitbox is armed only while extending.
type BladeData struct {
	State  cfg.BladeState
	Armed  bool
	Reach  float64      // current local x offset of the tip, before facing
	Tween  *gween.Tween // drives Reach for the current thrust leg
	Hitbox *resolv.Object
}

var Blade = donburi.NewComponentType[BladeData]()

// IsAttacking is true for the whole thrust-and-retract sequence.
func (b *BladeData) IsAttacking() bool {
	return b.State != cfg.BladeResting
}
