// Package level loads static level geometry: a list of axis-aligned boxes
// plus an optional player spawn point.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Faultbox/stickfight/internal/physics"
	"github.com/Faultbox/stickfight/pkg/math"
)

var (
	// ErrNoWalls is returned when a level file holds no geometry.
	ErrNoWalls = errors.New("level has no walls")
	// ErrUnknownFormat is returned for file extensions no loader handles.
	ErrUnknownFormat = errors.New("unknown level format")
)

// Box is one piece of static geometry.
type Box struct {
	Name     string    `yaml:"name,omitempty"`
	Position math.Vec3 `yaml:"position"` // center
	Scale    math.Vec3 `yaml:"scale"`    // full size
}

// Level is loaded level geometry.
type Level struct {
	Name  string     `yaml:"name"`
	Spawn *math.Vec3 `yaml:"spawn,omitempty"`
	Boxes []Box      `yaml:"walls"`
}

// Walls converts the boxes into collision walls, in file order.
func (l *Level) Walls() []physics.Wall {
	walls := make([]physics.Wall, len(l.Boxes))
	for i, b := range l.Boxes {
		walls[i] = physics.Wall{Position: b.Position, Scale: b.Scale}
	}
	return walls
}

// Bounds returns the corners of the box enclosing every wall.
func (l *Level) Bounds() (lo, hi math.Vec3) {
	for i, w := range l.Walls() {
		wlo, whi := w.Min(), w.Max()
		if i == 0 {
			lo, hi = wlo, whi
			continue
		}
		lo = math.Vec3{X: min32(lo.X, wlo.X), Y: min32(lo.Y, wlo.Y), Z: min32(lo.Z, wlo.Z)}
		hi = math.Vec3{X: max32(hi.X, whi.X), Y: max32(hi.Y, whi.Y), Z: max32(hi.Z, whi.Z)}
	}
	return lo, hi
}

func (l *Level) validate() error {
	if len(l.Boxes) == 0 {
		return ErrNoWalls
	}
	for i, b := range l.Boxes {
		if b.Scale.X <= 0 || b.Scale.Y <= 0 || b.Scale.Z <= 0 {
			return fmt.Errorf("wall %d (%s): scale must be positive on every axis, got %+v", i, b.Name, b.Scale)
		}
	}
	return nil
}

// Load reads a level from fsys, picking the loader by file extension.
func Load(fsys fs.FS, name string) (*Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return LoadYAML(fsys, name)
	case ".tmx":
		return LoadTMX(fsys, name)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
}

// Default returns the built-in arena: a ground slab wide enough for the
// enemy spawn range and a few raised platforms.
func Default() *Level {
	return &Level{
		Name: "arena",
		Boxes: []Box{
			{Name: "ground", Position: math.Vec3{Y: -1}, Scale: math.Vec3{X: 120, Y: 2, Z: 120}},
			{Name: "step", Position: math.Vec3{X: 10, Y: 0.5, Z: 0}, Scale: math.Vec3{X: 6, Y: 1, Z: 6}},
			{Name: "ledge", Position: math.Vec3{X: -15, Y: 2, Z: 12}, Scale: math.Vec3{X: 8, Y: 4, Z: 4}},
			{Name: "pillar", Position: math.Vec3{X: 0, Y: 5, Z: -20}, Scale: math.Vec3{X: 3, Y: 10, Z: 3}},
		},
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
