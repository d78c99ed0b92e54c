// Package arena parses piste maps authored in Tiled.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package arena

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed maps/*.tmx
var mapsFS embed.FS

// DefaultMap is the path of the embedded piste map.
const DefaultMap = "maps/piste.tmx"

// Layout is the geometry of one piste.
type Layout struct {
	Width  int // full map size in pixels
	Height int

	MinX   float64 // lateral bounds for the fencers' feet
	MaxX   float64
	FloorY float64

	Spawns [2]Spawn // indexed by slot: 0 = left, 1 = right
}

// Spawn is a fencer's on-guard position.
type Spawn struct {
	X, Y float64
}

// LoadEmbedded loads a map shipped with the binary.
func LoadEmbedded(path string) (*Layout, error) {
	return Load(mapsFS, path)
}

// Load parses a TMX file. The map needs a "Piste" object group whose first
// object is the strip, and a "FencerSpawn" group with one object per side,
// told apart by a "side" property of "left" or "right".
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	var havePiste bool
	var haveSpawn [2]bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Piste":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			layout.MinX = o.X
			layout.MaxX = o.X + o.Width
			layout.FloorY = o.Y
			havePiste = true
		case "FencerSpawn":
			for _, o := range og.Objects {
				slot, ok := sideSlot(o.Properties.GetString("side"))
				if !ok {
					return nil, fmt.Errorf("%s: spawn %q has no valid side", tmxPath, o.Name)
				}
				layout.Spawns[slot] = Spawn{X: o.X, Y: o.Y}
				haveSpawn[slot] = true
			}
		}
	}

	if !havePiste {
		return nil, fmt.Errorf("%s: missing Piste object group", tmxPath)
	}
	if !haveSpawn[0] || !haveSpawn[1] {
		return nil, fmt.Errorf("%s: need a left and a right FencerSpawn", tmxPath)
	}
	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return layout, nil
}

func (l *Layout) validate() error {
	if l.MaxX <= l.MinX {
		return fmt.Errorf("empty piste [%.0f, %.0f]", l.MinX, l.MaxX)
	}
	for slot, s := range l.Spawns {
		if s.X < l.MinX || s.X > l.MaxX {
			return fmt.Errorf("spawn %d at x=%.0f outside the piste", slot, s.X)
		}
	}
	if l.Spawns[0].X >= l.Spawns[1].X {
		return fmt.Errorf("left spawn is not left of the right spawn")
	}
	return nil
}

func sideSlot(side string) (int, bool) {
	switch strings.ToLower(side) {
	case "left":
		return 0, true
	case "right":
		return 1, true
	}
	return 0, false
}
