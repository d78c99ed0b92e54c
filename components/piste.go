package components

import "github.com/yohamta/donburi"

// PisteData bounds lateral motion. Width and Height are the full arena size.
type PisteData struct {
	MinX   float64
	MaxX   float64
	FloorY float64

	Width  float64
	Height float64
}

var Piste = donburi.NewComponentType[PisteData]()
