// Package camera provides the orbit camera that frames the player and turns
// move and aim intents into world directions.
package camera

import (
	gomath "math"

	"github.com/Faultbox/stickfight/pkg/math"
)

// OrbitCamera orbits a target point on a sphere.
type OrbitCamera struct {
	// Target is the point orbited, usually the player's head.
	Target math.Vec3

	// Offset is the camera position relative to Target. Theta is the yaw
	// around +Y, Phi the angle down from straight overhead.
	Offset math.Spherical

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPhi      float32
	MaxPhi      float32

	// Sensitivity is radians turned per unit of look intent.
	Sensitivity     float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a camera behind the target (looking towards -Z),
// slightly above it.
func NewOrbitCamera(distance float32) *OrbitCamera {
	return &OrbitCamera{
		Offset: math.Spherical{
			Radius: distance,
			Theta:  0,
			Phi:    1.2,
		},
		MinDistance:     4,
		MaxDistance:     40,
		MinPhi:          0.1,
		MaxPhi:          gomath.Pi - 0.1,
		Sensitivity:     0.05,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	return c.Target.Add(c.Offset.ToVec3())
}

// Follow moves the orbit center.
func (c *OrbitCamera) Follow(target math.Vec3) {
	c.Target = target
}

// Look turns the camera. Positive yaw turns right, positive pitch looks up.
func (c *OrbitCamera) Look(yaw, pitch float32) {
	c.Offset.Theta -= yaw * c.Sensitivity
	c.Offset.Phi += pitch * c.Sensitivity

	if c.Offset.Phi < c.MinPhi {
		c.Offset.Phi = c.MinPhi
	}
	if c.Offset.Phi > c.MaxPhi {
		c.Offset.Phi = c.MaxPhi
	}

	// Keep theta bounded so long runs do not lose float precision.
	const tau = 2 * gomath.Pi
	for c.Offset.Theta > gomath.Pi {
		c.Offset.Theta -= tau
	}
	for c.Offset.Theta < -gomath.Pi {
		c.Offset.Theta += tau
	}
}

// Zoom changes the orbit radius by a fraction of itself.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Offset.Radius -= delta * c.Offset.Radius * c.ZoomSensitivity
	if c.Offset.Radius < c.MinDistance {
		c.Offset.Radius = c.MinDistance
	}
	if c.Offset.Radius > c.MaxDistance {
		c.Offset.Radius = c.MaxDistance
	}
}

// Forward returns the unit direction the camera faces, flattened onto the
// XZ plane.
func (c *OrbitCamera) Forward() math.Vec3 {
	sin, cos := gomath.Sincos(float64(c.Offset.Theta))
	return math.Vec3{X: -float32(sin), Z: -float32(cos)}
}

// Right returns the unit direction to the camera's right on the XZ plane.
func (c *OrbitCamera) Right() math.Vec3 {
	return c.Forward().Cross(math.Vec3Y)
}

// MoveDir converts forward/right intent into a world direction on the XZ
// plane. Diagonal input is normalized so it is not faster than straight.
func (c *OrbitCamera) MoveDir(forward, right float32) math.Vec3 {
	dir := c.Forward().XZ().Scale(forward).Add(c.Right().XZ().Scale(right))
	if dir.Length() > 1 {
		dir = dir.Normalize()
	}
	return dir.XZ(0)
}

// Aim returns the unit direction from the camera through the target.
func (c *OrbitCamera) Aim() math.Vec3 {
	return c.Offset.ToVec3().Neg().Normalize()
}
