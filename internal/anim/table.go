package anim

import (
	"fmt"

	"github.com/Faultbox/stickfight/pkg/math"
)

// floatsPerFrame is the stride of one keyframe: 4 limbs × xyz.
const floatsPerFrame = NumLimbs * 3

// Table is a keyframe table: frames × [left arm, right arm, left leg, right leg]
// target positions, flattened xyz.
type Table struct {
	frames   int
	values   []float32
	duration float32
}

// NewTable validates and wraps a flat keyframe table. duration is the time in
// seconds of one frame-to-frame segment. Malformed tables are authoring bugs
// and panic.
func NewTable(frames int, values []float32, duration float32) *Table {
	if frames <= 0 {
		panic(fmt.Sprintf("anim: table needs at least one frame, got %d", frames))
	}
	if len(values) != floatsPerFrame*frames {
		panic(fmt.Sprintf("anim: table has %d values, want %d for %d frames",
			len(values), floatsPerFrame*frames, frames))
	}
	if !(duration > 0) {
		panic(fmt.Sprintf("anim: table duration must be positive, got %v", duration))
	}
	return &Table{frames: frames, values: values, duration: duration}
}

// Frames returns the number of keyframes.
func (t *Table) Frames() int {
	return t.frames
}

// Duration returns the seconds per frame-to-frame segment.
func (t *Table) Duration() float32 {
	return t.duration
}

// TargetPos returns the limb's target position in the given frame.
func (t *Table) TargetPos(limb Limb, frame int) math.Vec3 {
	i := frame*floatsPerFrame + limb.Index()*3
	return math.Vec3{X: t.values[i], Y: t.values[i+1], Z: t.values[i+2]}
}
