package physics

import (
	"go.uber.org/zap"
)

// Contact describes one collision resolved during a step.
type Contact struct {
	Wall   int // index into the wall slice
	Hitbox int // index into the body's hitboxes
	Push   Push
}

// Resolver owns the tuning shared by every body and the static walls.
type Resolver struct {
	Gravity  float32
	Friction float32
	// MaxResolutions caps how many walls are resolved per body per step.
	// 1 resolves only the first overlap found in wall order. A body resting
	// on a floor touches it every step, so with 1 it is never pushed out of
	// any later wall and walks through it. Levels with walls standing on a
	// floor need at least 2.
	MaxResolutions int

	walls []Wall
	log   *zap.Logger
}

// NewResolver creates a resolver over a fixed set of walls. log may be nil.
func NewResolver(walls []Wall, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		Gravity:        GravityStep,
		Friction:       GroundFriction,
		MaxResolutions: 1,
		walls:          walls,
		log:            log,
	}
}

// Walls returns the static geometry. Callers must not modify it.
func (r *Resolver) Walls() []Wall {
	return r.walls
}

// ApplyGravity applies the resolver's gravity step to b.
func (r *Resolver) ApplyGravity(b *Body) {
	ApplyGravity(b, r.Gravity)
}

// Step integrates b over dt and resolves its collisions.
//
// Walls are scanned in order and, for each wall, hitboxes in order; the first
// overlapping pair is pushed out along its shallowest axis. The scan then
// restarts, skipping walls already resolved, until MaxResolutions is reached.
func (r *Resolver) Step(b *Body, dt float32) []Contact {
	Integrate(b, dt)
	b.Grounded = false

	limit := r.MaxResolutions
	if limit < 1 {
		limit = 1
	}

	var contacts []Contact
	for len(contacts) < limit {
		c, ok := r.firstOverlap(b, contacts)
		if !ok {
			break
		}
		Apply(b, c.Push, r.Friction)
		contacts = append(contacts, c)

		r.log.Debug("collision",
			zap.Int("wall", c.Wall),
			zap.Int("hitbox", c.Hitbox),
			zap.Stringer("axis", c.Push.Axis),
			zap.Float32("depth", c.Push.Depth))
	}
	return contacts
}

func (r *Resolver) firstOverlap(b *Body, done []Contact) (Contact, bool) {
walls:
	for wi, w := range r.walls {
		for _, c := range done {
			if c.Wall == wi {
				continue walls
			}
		}
		for hi, hb := range b.Hitboxes {
			center := b.Center(hi)
			if !Overlaps(center, hb.Half, w.Position, w.Half()) {
				continue
			}
			return Contact{
				Wall:   wi,
				Hitbox: hi,
				Push:   Shallowest(Depths(center, hb.Half, w)),
			}, true
		}
	}
	return Contact{}, false
}
