package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/stickfight/pkg/math"
)

const eps = 1e-5

func TestDefaultLooksDownNegativeZ(t *testing.T) {
	c := NewOrbitCamera(10)

	if !c.Forward().ApproxEqual(math.Vec3{Z: -1}, eps) {
		t.Errorf("expected forward -Z, got %+v", c.Forward())
	}
	if !c.Right().ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("expected right +X, got %+v", c.Right())
	}

	pos := c.Position()
	if pos.Z <= 0 || pos.Y <= 0 {
		t.Errorf("camera should sit behind and above the target, got %+v", pos)
	}
	if d := pos.Length(); d < 10-eps || d > 10+eps {
		t.Errorf("expected distance 10, got %f", d)
	}
}

func TestFollowMovesOrbitCenter(t *testing.T) {
	c := NewOrbitCamera(10)
	before := c.Position()

	target := math.Vec3{X: 3, Y: 4, Z: 5}
	c.Follow(target)

	if !c.Position().ApproxEqual(before.Add(target), eps) {
		t.Errorf("expected position offset by target, got %+v", c.Position())
	}
}

func TestLookYawTurnsForward(t *testing.T) {
	c := NewOrbitCamera(10)
	c.Sensitivity = 1

	c.Look(gomath.Pi/2, 0)

	// A quarter turn right faces +X.
	if !c.Forward().ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("expected forward +X after turning right, got %+v", c.Forward())
	}
	if !c.Right().ApproxEqual(math.Vec3{Z: 1}, eps) {
		t.Errorf("expected right +Z, got %+v", c.Right())
	}
}

func TestLookClampsPhi(t *testing.T) {
	c := NewOrbitCamera(10)
	c.Sensitivity = 1

	c.Look(0, 100)
	if c.Offset.Phi != c.MaxPhi {
		t.Errorf("expected phi clamped to %f, got %f", c.MaxPhi, c.Offset.Phi)
	}
	c.Look(0, -100)
	if c.Offset.Phi != c.MinPhi {
		t.Errorf("expected phi clamped to %f, got %f", c.MinPhi, c.Offset.Phi)
	}
}

func TestLookWrapsTheta(t *testing.T) {
	c := NewOrbitCamera(10)
	c.Sensitivity = 1

	for i := 0; i < 100; i++ {
		c.Look(1, 0)
	}
	if c.Offset.Theta < -gomath.Pi || c.Offset.Theta > gomath.Pi {
		t.Errorf("theta escaped [-pi, pi]: %f", c.Offset.Theta)
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewOrbitCamera(10)

	c.Zoom(100)
	if c.Offset.Radius != c.MinDistance {
		t.Errorf("expected radius %f, got %f", c.MinDistance, c.Offset.Radius)
	}
	for i := 0; i < 100; i++ {
		c.Zoom(-5)
	}
	if c.Offset.Radius != c.MaxDistance {
		t.Errorf("expected radius %f, got %f", c.MaxDistance, c.Offset.Radius)
	}
}

func TestMoveDir(t *testing.T) {
	c := NewOrbitCamera(10)

	tests := []struct {
		name           string
		forward, right float32
		want           math.Vec3
	}{
		{"none", 0, 0, math.Vec3{}},
		{"forward", 1, 0, math.Vec3{Z: -1}},
		{"back", -1, 0, math.Vec3{Z: 1}},
		{"right", 0, 1, math.Vec3{X: 1}},
		{"half forward", 0.5, 0, math.Vec3{Z: -0.5}},
		{"diagonal", 1, 1, math.Vec3{X: 1, Z: -1}.Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.MoveDir(tt.forward, tt.right)
			if !got.ApproxEqual(tt.want, eps) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got.Y != 0 {
				t.Errorf("move direction should be horizontal, got %+v", got)
			}
		})
	}
}

func TestAimPointsAtTarget(t *testing.T) {
	c := NewOrbitCamera(10)
	c.Follow(math.Vec3{X: 1, Y: 2, Z: 3})

	aim := c.Aim()
	want := c.Target.Sub(c.Position()).Normalize()
	if !aim.ApproxEqual(want, eps) {
		t.Errorf("expected aim %+v, got %+v", want, aim)
	}
	if aim.Y >= 0 {
		t.Errorf("camera above target should aim downward, got %+v", aim)
	}
}
