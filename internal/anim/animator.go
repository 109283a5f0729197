package anim

import (
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/pkg/math"
)

// SelectState picks the movement state for a velocity and grounded flag.
func SelectState(velocity math.Vec3, grounded bool) PlayerState {
	if !grounded {
		return Jumping
	}
	speed2 := velocity.LengthSquared()
	switch {
	case speed2 > RunThreshold:
		return Running
	case speed2 > WalkThreshold:
		return Walking
	default:
		return Idle
	}
}

// Animator blends limb poses. It holds no per-skeleton state.
type Animator struct {
	curve ease.TweenFunc
	log   *zap.Logger
}

// NewAnimator creates an animator. curve shapes the blend within a segment;
// nil means linear. log may be nil.
func NewAnimator(curve ease.TweenFunc, log *zap.Logger) *Animator {
	if curve == nil {
		curve = ease.Linear
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Animator{curve: curve, log: log}
}

// amount maps elapsed segment time onto the blend curve.
func (a *Animator) amount(elapsed float32) float32 {
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= 1:
		return 1
	}
	return a.curve(elapsed, 0, 1, 1)
}

// Rendered returns the limb's current interpolated position.
func (a *Animator) Rendered(p *Pose, limb int) math.Vec3 {
	return p.Limbs[limb].Pos.Current(a.amount(p.Info.Elapsed))
}

// SetState switches the pose to a new movement state. Every limb blends from
// where it is currently drawn towards the new state's first keyframe.
// Returns false when the pose is already in that state.
func (a *Animator) SetState(p *Pose, state PlayerState) bool {
	if p.Info.State == state {
		return false
	}

	table := state.Table()
	for i := range p.Limbs {
		l := &p.Limbs[i]
		l.Pos.Retarget(a.Rendered(p, i), table.TargetPos(l.Limb, 0))
	}

	a.log.Debug("state change",
		zap.Stringer("from", p.Info.State),
		zap.Stringer("to", state))

	p.Info = AnimInfo{
		State:    state,
		Elapsed:  0,
		Frame:    table.Frames() - 1,
		Duration: table.Duration(),
	}
	return true
}

// Update selects the state from physics and switches to it.
func (a *Animator) Update(p *Pose, velocity math.Vec3, grounded bool) bool {
	return a.SetState(p, SelectState(velocity, grounded))
}

// Advance moves the pose forward by dt seconds and rewrites every limb
// transform. It runs every tick, so looping states keep playing.
func (a *Animator) Advance(p *Pose, dt float32) {
	if dt > 0 {
		p.Info.Elapsed += dt / p.Info.Duration
	}

	if p.Info.Elapsed > 1 {
		p.Info.Elapsed -= 1

		table := p.Info.State.Table()
		p.Info.Frame = (p.Info.Frame + 1) % table.Frames()
		for i := range p.Limbs {
			l := &p.Limbs[i]
			l.Pos.Advance(table.TargetPos(l.Limb, p.Info.Frame))
		}
	}

	for i := range p.Limbs {
		p.Limbs[i].Transform = TransformFromPos(p.Limbs[i].Limb, a.Rendered(p, i))
	}
}

// RestPos returns the limb's rest position and joint pivot in torso space.
// Arms pivot at the shoulder, legs at the hip; both rest pointing up.
func RestPos(limb Limb) (rest, pivot math.Vec3) {
	if limb.Kind == Arm {
		return math.Vec3{Y: ArmPos + MinorHeight/2}, math.Vec3{Y: ArmPos}
	}
	return math.Vec3{Y: -MajorHeight/2 + MinorHeight/2}, math.Vec3{Y: -MajorHeight / 2}
}

// TransformFromPos builds the limb's local transform for a target position.
// The limb stays at its rest placement and swings about its pivot so its
// up axis points from the rest position towards the target.
func TransformFromPos(limb Limb, pos math.Vec3) math.Transform {
	rest, pivot := RestPos(limb)

	t := math.TransformFromTranslation(rest)
	dir := pos.Sub(rest).Normalize()
	t.RotateAround(pivot, math.QuatFromRotationArc(math.Vec3Y, dir))
	return t
}
