package feed

import (
	"github.com/Faultbox/stickfight/internal/anim"
	"github.com/Faultbox/stickfight/internal/game/entity"
	"github.com/Faultbox/stickfight/internal/game/states"
	"github.com/Faultbox/stickfight/internal/game/world"
	"github.com/Faultbox/stickfight/pkg/math"
)

// Transform is a world-space pose in wire form. Matrix is the same pose as
// a column-major model matrix, ready for a renderer.
type Transform struct {
	Position [3]float32  `json:"position"`
	Rotation [4]float32  `json:"rotation"` // x, y, z, w
	Matrix   [16]float32 `json:"matrix"`
}

// SkeletonState is one skeleton in a snapshot.
type SkeletonState struct {
	ID     uint32    `json:"id"`
	Team   string    `json:"team"`
	Colour string    `json:"colour"`
	Anim   string    `json:"anim"`
	Health int       `json:"health,omitempty"`
	Head   Transform `json:"head"`
	Torso  Transform `json:"torso"`

	// Limbs are in limb order: left arm, right arm, left leg, right leg.
	Limbs [anim.NumLimbs]Transform `json:"limbs"`
}

// ShotState is one projectile in a snapshot.
type ShotState struct {
	ID       uint32     `json:"id"`
	Team     string     `json:"team"`
	Position [3]float32 `json:"position"`
}

// Snapshot is the message broadcast to viewers.
type Snapshot struct {
	Type        string          `json:"type"`
	Tick        int             `json:"tick"`
	Phase       string          `json:"phase"`
	Outcome     string          `json:"outcome"`
	EnemiesLeft int             `json:"enemiesLeft"`
	Skeletons   []SkeletonState `json:"skeletons"`
	Shots       []ShotState     `json:"shots"`
}

// BuildSnapshot captures the world as seen during phase.
func BuildSnapshot(phase states.Phase, w *world.World) Snapshot {
	snap := Snapshot{
		Type:        "state",
		Tick:        w.CurrentTick(),
		Phase:       phase.String(),
		Outcome:     w.Outcome().String(),
		EnemiesLeft: w.EnemiesLeft(),
		Skeletons:   make([]SkeletonState, 0, w.Skeletons.Count()),
		Shots:       make([]ShotState, 0, w.Shots.Count()),
	}

	for _, s := range w.Skeletons.All() {
		snap.Skeletons = append(snap.Skeletons, skeletonState(s))
	}
	for _, s := range w.Shots.Shots() {
		snap.Shots = append(snap.Shots, ShotState{
			ID:       s.ID,
			Team:     s.Team.String(),
			Position: vec(s.Position),
		})
	}
	return snap
}

func skeletonState(s *entity.Skeleton) SkeletonState {
	st := SkeletonState{
		ID:     s.ID,
		Team:   s.Team.String(),
		Colour: s.Colour.String(),
		Anim:   s.Pose.Info.State.String(),
		Health: s.Health,
		Head:   transform(s.Head),
		Torso:  transform(s.Torso()),
	}
	for i, limb := range s.WorldLimbs() {
		st.Limbs[i] = transform(limb)
	}
	return st
}

func transform(t math.Transform) Transform {
	return Transform{
		Position: vec(t.Translation),
		Rotation: [4]float32{t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W},
		Matrix:   t.Matrix(),
	}
}

func vec(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
