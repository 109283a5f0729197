// Package anim drives the procedural limb animation of stick-figure skeletons.
//
// Each skeleton has four limbs. A discrete movement state selects a keyframe
// table; limbs blend between consecutive keyframe targets and the blended
// target is turned into a rotation about the shoulder or hip.
package anim

// NumLimbs is the number of animated limbs per skeleton.
const NumLimbs = 4

// Keyframe slot of each limb within a frame.
const (
	LeftArmIndex  = 0
	RightArmIndex = 1
	LeftLegIndex  = 2
	RightLegIndex = 3
)

// Skeleton proportions, in world units.
const (
	MajorHeight = 3.0 // torso length
	MinorHeight = 2.0 // limb length
	ArmPos      = 1.1 // shoulder height above the torso center
	StickSize   = 0.2 // stick thickness
)

// Kind distinguishes arms from legs.
type Kind uint8

const (
	Arm Kind = iota
	Leg
)

// Side distinguishes left from right.
type Side uint8

const (
	Left Side = iota
	Right
)

// Limb identifies one of the four animated limbs.
type Limb struct {
	Kind Kind
	Side Side
}

// The four limbs, in keyframe slot order.
var (
	LeftArm  = Limb{Arm, Left}
	RightArm = Limb{Arm, Right}
	LeftLeg  = Limb{Leg, Left}
	RightLeg = Limb{Leg, Right}
)

// Limbs lists every limb in keyframe slot order.
var Limbs = [NumLimbs]Limb{LeftArm, RightArm, LeftLeg, RightLeg}

// Index returns the limb's slot within a keyframe.
func (l Limb) Index() int {
	switch {
	case l.Kind == Arm && l.Side == Left:
		return LeftArmIndex
	case l.Kind == Arm:
		return RightArmIndex
	case l.Side == Left:
		return LeftLegIndex
	default:
		return RightLegIndex
	}
}

func (l Limb) String() string {
	return [NumLimbs]string{"left_arm", "right_arm", "left_leg", "right_leg"}[l.Index()]
}
