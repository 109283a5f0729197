package anim

import (
	"fmt"

	"github.com/Faultbox/stickfight/pkg/math"
)

// PlayerState is a discrete movement state. Each state owns a keyframe table.
type PlayerState uint8

const (
	Idle PlayerState = iota
	Walking
	Running
	Jumping
	Spin
	Cheering
)

// Speed² thresholds used by SelectState.
const (
	WalkThreshold = 0.5
	RunThreshold  = 3.0
)

// Table layout per frame: left arm, right arm, left leg, right leg.
var tables = [...]*Table{
	Idle: NewTable(2, []float32{
		-1.0, -0.5, -0.3,
		1.0, -0.4, 0.3,
		-0.5, -3.4, -0.2,
		0.7, -3.3, 0.2,

		-1.1, -0.3, -0.2,
		1.1, -0.2, 0.2,
		-0.5, -3.4, -0.2,
		0.7, -3.3, 0.2,
	}, 1.0),

	Walking: NewTable(2, []float32{
		-1.4, 0.0, 1.0,
		0.5, -0.4, -1.0,
		-0.6, -3.3, 0.6,
		0.6, -3.4, -0.2,

		-1.7, 0.3, -0.5,
		1.2, -0.3, 0.5,
		-1.0, -3.1, -0.2,
		1.1, -3.2, 0.3,
	}, 0.4),

	Running: NewTable(4, []float32{
		-1.3, 0.6, 1.5,
		1.3, 0.2, -1.5,
		-0.5, -3.0, 1.2,
		0.5, -3.3, -1.0,

		-1.5, -0.3, 0.4,
		1.5, -0.3, -0.4,
		-0.6, -3.5, 0.2,
		0.6, -3.1, -0.4,

		-1.3, 0.2, -1.5,
		1.3, 0.6, 1.5,
		-0.5, -3.3, -1.0,
		0.5, -3.0, 1.2,

		-1.5, -0.3, -0.4,
		1.5, -0.3, 0.4,
		-0.6, -3.1, -0.4,
		0.6, -3.5, 0.2,
	}, 0.2),

	Jumping: NewTable(1, []float32{
		-1.6, 1.5, 0.2,
		1.6, 1.5, 0.2,
		-0.8, -2.6, 0.8,
		0.8, -3.2, -0.3,
	}, 0.25),

	Spin: NewTable(4, []float32{
		-2.0, 0.8, 0.0,
		2.0, 0.8, 0.0,
		-0.7, -3.3, 0.0,
		0.7, -3.3, 0.0,

		0.0, 0.8, 2.0,
		0.0, 0.8, -2.0,
		0.0, -3.3, 0.7,
		0.0, -3.3, -0.7,

		2.0, 0.8, 0.0,
		-2.0, 0.8, 0.0,
		0.7, -3.3, 0.0,
		-0.7, -3.3, 0.0,

		0.0, 0.8, -2.0,
		0.0, 0.8, 2.0,
		0.0, -3.3, -0.7,
		0.0, -3.3, 0.7,
	}, 1.0),

	Cheering: NewTable(2, []float32{
		-0.8, 3.5, 0.2,
		0.8, 3.5, 0.2,
		-0.5, -3.4, -0.2,
		0.7, -3.3, 0.2,

		-1.4, 3.0, -0.2,
		1.4, 3.0, -0.2,
		-0.5, -3.4, -0.2,
		0.7, -3.3, 0.2,
	}, 0.35),
}

// Table returns the state's keyframe table.
func (s PlayerState) Table() *Table {
	if int(s) >= len(tables) {
		panic(fmt.Sprintf("anim: unknown player state %d", s))
	}
	return tables[s]
}

// Frames returns the number of keyframes of the state.
func (s PlayerState) Frames() int {
	return s.Table().Frames()
}

// Duration returns the seconds per frame-to-frame segment of the state.
func (s PlayerState) Duration() float32 {
	return s.Table().Duration()
}

// TargetPos returns the limb's target position in the given frame.
func (s PlayerState) TargetPos(limb Limb, frame int) math.Vec3 {
	return s.Table().TargetPos(limb, frame)
}

func (s PlayerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Running:
		return "running"
	case Jumping:
		return "jumping"
	case Spin:
		return "spin"
	case Cheering:
		return "cheering"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
