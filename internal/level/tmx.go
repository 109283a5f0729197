package level

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/Faultbox/stickfight/pkg/math"
)

// Object group names read from TMX maps.
const (
	WallsGroup = "walls"
	SpawnGroup = "spawn"
)

// DefaultWallHeight is used for TMX walls without a "height" property.
const DefaultWallHeight = 2.0

// LoadTMX reads a level drawn top-down in Tiled. The map's X axis is world X
// and its Y axis is world Z. Rectangles in the "walls" object group become
// boxes; each may set float properties "y" (bottom elevation) and "height".
// A point in the "spawn" group sets the player spawn, at elevation "y".
//
// Map properties: "unit" is pixels per world unit and defaults to the tile
// width; "name" overrides the level name.
func LoadTMX(fsys fs.FS, name string) (*Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}

	unit := float64(m.TileWidth)
	l := &Level{Name: strings.TrimSuffix(path.Base(name), path.Ext(name))}
	if m.Properties != nil {
		if u := m.Properties.GetFloat("unit"); u > 0 {
			unit = u
		}
		if n := m.Properties.GetString("name"); n != "" {
			l.Name = n
		}
	}
	if unit <= 0 {
		unit = 1
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("TMX %s: wall object %d has no area", name, o.ID)
				}
				bottom, height := 0.0, DefaultWallHeight
				if o.Properties != nil {
					bottom = o.Properties.GetFloat("y")
					if h := o.Properties.GetFloat("height"); h > 0 {
						height = h
					}
				}
				l.Boxes = append(l.Boxes, Box{
					Name: o.Name,
					Position: math.Vec3{
						X: float32((o.X + o.Width/2) / unit),
						Y: float32(bottom + height/2),
						Z: float32((o.Y + o.Height/2) / unit),
					},
					Scale: math.Vec3{
						X: float32(o.Width / unit),
						Y: float32(height),
						Z: float32(o.Height / unit),
					},
				})
			}
		case SpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			var y float64
			if o.Properties != nil {
				y = o.Properties.GetFloat("y")
			}
			l.Spawn = &math.Vec3{
				X: float32(o.X / unit),
				Y: float32(y),
				Z: float32(o.Y / unit),
			}
		}
	}

	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("TMX %s: %w", name, err)
	}
	return l, nil
}
