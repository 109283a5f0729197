package anim

import (
	"github.com/Faultbox/stickfight/pkg/math"
)

// AnimPos brackets the interpolation segment a limb is currently on.
type AnimPos struct {
	Start math.Vec3
	End   math.Vec3
}

// Current returns the position amount of the way through the segment.
func (p AnimPos) Current(amount float32) math.Vec3 {
	return p.Start.Lerp(p.End, amount)
}

// Retarget replaces both ends of the segment.
func (p *AnimPos) Retarget(start, end math.Vec3) {
	p.Start = start
	p.End = end
}

// Advance starts the next segment from where the current one ends.
func (p *AnimPos) Advance(end math.Vec3) {
	p.Start = p.End
	p.End = end
}

// AnimInfo is the per-skeleton animation driver.
type AnimInfo struct {
	State    PlayerState
	Elapsed  float32 // fraction of the current segment, 0..1
	Frame    int     // keyframe index within State, always < State.Frames()
	Duration float32 // seconds per segment
}

// LimbPose is the animation state of one limb plus the local transform the
// animator writes for it.
type LimbPose struct {
	Limb      Limb
	Pos       AnimPos
	Transform math.Transform
}

// Pose is everything the animator mutates for one skeleton.
type Pose struct {
	Info  AnimInfo
	Limbs [NumLimbs]LimbPose
}

// NewPose returns an idle pose with every limb resting on the idle frame-0
// target, so the first rendered frame does not pop.
func NewPose() Pose {
	p := Pose{
		Info: AnimInfo{
			State:    Idle,
			Duration: Idle.Duration(),
		},
	}
	for i, limb := range Limbs {
		target := Idle.TargetPos(limb, 0)
		p.Limbs[i] = LimbPose{
			Limb:      limb,
			Pos:       AnimPos{Start: target, End: target},
			Transform: TransformFromPos(limb, target),
		}
	}
	return p
}
