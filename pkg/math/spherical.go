package math

import "math"

// Spherical holds spherical coordinates with Y up: Theta is the azimuth
// measured from +Z towards +X, Phi the polar angle from +Y.
type Spherical struct {
	Radius float32
	Theta  float32
	Phi    float32
}

// SphericalFromVec3 converts a cartesian vector. The zero vector maps to
// all-zero coordinates.
func SphericalFromVec3(v Vec3) Spherical {
	radius := v.Length()
	if radius == 0 {
		return Spherical{}
	}
	cosPhi := v.Y / radius
	if cosPhi > 1 {
		cosPhi = 1
	} else if cosPhi < -1 {
		cosPhi = -1
	}
	return Spherical{
		Radius: radius,
		Theta:  float32(math.Atan2(float64(v.X), float64(v.Z))),
		Phi:    float32(math.Acos(float64(cosPhi))),
	}
}

// ToVec3 converts back to cartesian coordinates.
func (s Spherical) ToVec3() Vec3 {
	sinPhiRadius := float32(math.Sin(float64(s.Phi))) * s.Radius
	return Vec3{
		X: sinPhiRadius * float32(math.Sin(float64(s.Theta))),
		Y: float32(math.Cos(float64(s.Phi))) * s.Radius,
		Z: sinPhiRadius * float32(math.Cos(float64(s.Theta))),
	}
}
