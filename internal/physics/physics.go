// Package physics integrates body motion and resolves axis-aligned box
// collisions against static level geometry.
package physics

import (
	"github.com/Faultbox/stickfight/pkg/math"
)

// Default tuning.
const (
	// GravityStep is subtracted from velocity.y once per tick.
	GravityStep = 0.5
	// GroundFriction scales horizontal velocity when resting on a surface.
	GroundFriction = 0.9
)

// Hitbox is an axis-aligned box in body-local space.
type Hitbox struct {
	Offset math.Vec3 // center relative to the body position
	Half   math.Vec3 // half extents
}

// Body is a moving entity.
type Body struct {
	Position math.Vec3
	Velocity math.Vec3
	Hitboxes []Hitbox
	Grounded bool
}

// Center returns the world-space center of hitbox i.
func (b *Body) Center(i int) math.Vec3 {
	return b.Position.Add(b.Hitboxes[i].Offset)
}

// Wall is a static box of level geometry.
type Wall struct {
	Position math.Vec3 // center
	Scale    math.Vec3 // full size along each axis
}

// Half returns the wall's half extents.
func (w Wall) Half() math.Vec3 {
	return w.Scale.Scale(0.5)
}

// Min returns the wall's minimum corner.
func (w Wall) Min() math.Vec3 {
	return w.Position.Sub(w.Half())
}

// Max returns the wall's maximum corner.
func (w Wall) Max() math.Vec3 {
	return w.Position.Add(w.Half())
}

// Overlaps reports whether two boxes given by center and half extents touch
// or intersect on all three axes.
func Overlaps(aCenter, aHalf, bCenter, bHalf math.Vec3) bool {
	d := aCenter.Sub(bCenter).Abs()
	return d.X <= aHalf.X+bHalf.X &&
		d.Y <= aHalf.Y+bHalf.Y &&
		d.Z <= aHalf.Z+bHalf.Z
}

// ApplyGravity pulls the body down by a flat per-tick step.
func ApplyGravity(b *Body, step float32) {
	b.Velocity.Y -= step
}

// Integrate moves the body by its velocity over dt seconds.
func Integrate(b *Body, dt float32) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}
