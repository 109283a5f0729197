package physics

import (
	"fmt"

	"github.com/Faultbox/stickfight/pkg/math"
)

// Axis is a push-out direction. The order is the tie-break order.
type Axis uint8

const (
	Up      Axis = iota // +Y
	Down                // -Y
	Left                // -X
	Right               // +X
	Forward             // -Z
	Back                // +Z
	numAxes
)

func (a Axis) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Forward:
		return "forward"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Push is a signed displacement along one axis.
type Push struct {
	Axis  Axis
	Depth float32
}

// Offset returns the push as a displacement vector.
func (p Push) Offset() math.Vec3 {
	switch p.Axis {
	case Up, Down:
		return math.Vec3{Y: p.Depth}
	case Left, Right:
		return math.Vec3{X: p.Depth}
	default:
		return math.Vec3{Z: p.Depth}
	}
}

// Depths returns, for a box overlapping a wall, the signed distance the box
// must move along each axis to clear the wall, in Axis order.
func Depths(center, half math.Vec3, w Wall) [numAxes]float32 {
	boxMin, boxMax := center.Sub(half), center.Add(half)
	wallMin, wallMax := w.Min(), w.Max()

	return [numAxes]float32{
		Up:      wallMax.Y - boxMin.Y,
		Down:    wallMin.Y - boxMax.Y,
		Left:    wallMin.X - boxMax.X,
		Right:   wallMax.X - boxMin.X,
		Forward: wallMin.Z - boxMax.Z,
		Back:    wallMax.Z - boxMin.Z,
	}
}

// Shallowest picks the push with the smallest magnitude. Ties go to the
// earliest axis.
func Shallowest(depths [numAxes]float32) Push {
	best := Push{Axis: Up, Depth: depths[Up]}
	bestMag := abs(depths[Up])
	for a := Down; a < numAxes; a++ {
		if m := abs(depths[a]); m < bestMag {
			best = Push{Axis: a, Depth: depths[a]}
			bestMag = m
		}
	}
	return best
}

// Apply moves the body by the push and stops it from pressing further into
// the surface. Landing on top grounds the body and applies friction.
func Apply(b *Body, p Push, friction float32) {
	b.Position = b.Position.Add(p.Offset())

	v := &b.Velocity
	switch p.Axis {
	case Up:
		if v.Y < 0 {
			v.Y = 0
		}
		b.Grounded = true
		v.X *= friction
		v.Z *= friction
	case Down:
		if v.Y > 0 {
			v.Y = 0
		}
	case Left:
		if v.X > 0 {
			v.X = 0
		}
	case Right:
		if v.X < 0 {
			v.X = 0
		}
	case Forward:
		if v.Z > 0 {
			v.Z = 0
		}
	case Back:
		if v.Z < 0 {
			v.Z = 0
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
