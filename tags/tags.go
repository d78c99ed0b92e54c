package tags

import "github.com/yohamta/donburi"

var (
	Fencer = donburi.NewTag().SetName("Fencer")
	Bout   = donburi.NewTag().SetName("Bout")
)

// Resolv tags for collision
const (
	ResolvBody  = "body"
	ResolvBlade = "blade"
)
