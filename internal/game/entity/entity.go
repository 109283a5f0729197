// Package entity implements the stick-figure skeletons (player and enemies).
package entity

import (
	"sort"

	"github.com/Faultbox/stickfight/internal/anim"
	"github.com/Faultbox/stickfight/internal/physics"
	"github.com/Faultbox/stickfight/pkg/math"
)

// Team decides which shots can hit a skeleton.
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// Opposes reports whether shots fired by t can hit other.
func (t Team) Opposes(other Team) bool {
	return t != other
}

// Colour tints a skeleton.
type Colour uint8

const (
	White Colour = iota
	Red
	Green
	Blue
)

// EnemyColours is the spawn order of enemy tints.
var EnemyColours = [...]Colour{Red, Green, Blue}

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "white"
	}
}

// Body layout relative to the head.
var (
	// TorsoOffset places the torso center below the head.
	TorsoOffset = math.Vec3{Y: -anim.MajorHeight/2 - 1}
	// HitboxOffset and HitboxSize give the box shots are tested against.
	// The box is slightly wider than the sticks so hits are forgiving.
	HitboxOffset = math.Vec3{Y: -3.5}
	HitboxSize   = math.Vec3{X: 0.8, Y: 6, Z: 0.8}
)

// SpawnHeight is the head height enemies float at and the default player
// spawn height: feet resting on y=0.
const SpawnHeight = anim.MajorHeight + anim.MinorHeight + 1

// bodyHitboxes are the player's collision boxes: the head, then the torso
// and legs down to the feet.
var bodyHitboxes = []physics.Hitbox{
	{Offset: math.Vec3{}, Half: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
	{Offset: math.Vec3{Y: -3.25}, Half: math.Vec3{X: 0.4, Y: 2.75, Z: 0.4}},
}

// Skeleton is one stick figure: a head, a torso hanging below it and four
// animated limbs attached to the torso.
type Skeleton struct {
	ID     uint32
	Team   Team
	Colour Colour
	Head   math.Transform
	Pose   anim.Pose

	// Body is set for skeletons driven by physics. Its position is the
	// head position.
	Body *physics.Body

	Health    int
	MaxHealth int
}

// NewPlayer creates the physics-driven player skeleton at pos.
func NewPlayer(id uint32, pos math.Vec3) *Skeleton {
	hitboxes := make([]physics.Hitbox, len(bodyHitboxes))
	copy(hitboxes, bodyHitboxes)

	return &Skeleton{
		ID:     id,
		Team:   TeamPlayer,
		Colour: White,
		Head:   math.TransformFromTranslation(pos),
		Pose:   anim.NewPose(),
		Body: &physics.Body{
			Position: pos,
			Hitboxes: hitboxes,
		},
	}
}

// NewEnemy creates a floating enemy skeleton at pos.
func NewEnemy(id uint32, pos math.Vec3, health int, colour Colour) *Skeleton {
	return &Skeleton{
		ID:        id,
		Team:      TeamEnemy,
		Colour:    colour,
		Head:      math.TransformFromTranslation(pos),
		Pose:      anim.NewPose(),
		Health:    health,
		MaxHealth: health,
	}
}

// Position returns the head position.
func (s *Skeleton) Position() math.Vec3 {
	if s.Body != nil {
		return s.Body.Position
	}
	return s.Head.Translation
}

// SetPosition moves the skeleton's head.
func (s *Skeleton) SetPosition(p math.Vec3) {
	if s.Body != nil {
		s.Body.Position = p
	}
	s.Head.Translation = p
}

// SyncHead copies the physics position into the head transform.
func (s *Skeleton) SyncHead() {
	if s.Body != nil {
		s.Head.Translation = s.Body.Position
	}
}

// Velocity returns the physics velocity, zero for skeletons without a body.
func (s *Skeleton) Velocity() math.Vec3 {
	if s.Body != nil {
		return s.Body.Velocity
	}
	return math.Vec3{}
}

// Grounded reports whether the skeleton rested on a surface last step.
// Skeletons without a body never touch the ground.
func (s *Skeleton) Grounded() bool {
	return s.Body != nil && s.Body.Grounded
}

// Hitbox returns the world-space center and half extents of the box shots
// are tested against.
func (s *Skeleton) Hitbox() (center, half math.Vec3) {
	return s.Position().Add(HitboxOffset), HitboxSize.Scale(0.5)
}

// Torso returns the torso transform in world space.
func (s *Skeleton) Torso() math.Transform {
	return s.Head.Mul(math.TransformFromTranslation(TorsoOffset))
}

// WorldLimbs returns every limb transform in world space, in keyframe slot
// order.
func (s *Skeleton) WorldLimbs() [anim.NumLimbs]math.Transform {
	torso := s.Torso()
	var out [anim.NumLimbs]math.Transform
	for i, l := range s.Pose.Limbs {
		out[i] = torso.Mul(l.Transform)
	}
	return out
}

// TakeHit removes one point of health and reports whether the skeleton died.
func (s *Skeleton) TakeHit() bool {
	if s.Health > 0 {
		s.Health--
	}
	return s.Health == 0
}

// IsAlive reports whether the skeleton still has health. The player has no
// health and is always alive.
func (s *Skeleton) IsAlive() bool {
	return s.Team == TeamPlayer || s.Health > 0
}

// Manager owns every skeleton. Iteration order is spawn order so that a
// seeded run replays identically.
type Manager struct {
	skeletons map[uint32]*Skeleton
	order     []uint32
	player    *Skeleton
	nextID    uint32
}

// NewManager creates a new skeleton manager.
func NewManager() *Manager {
	return &Manager{
		skeletons: make(map[uint32]*Skeleton),
		nextID:    1,
	}
}

// NextID reserves a fresh skeleton id.
func (m *Manager) NextID() uint32 {
	id := m.nextID
	m.nextID++
	return id
}

// Add adds a skeleton. Re-adding an id replaces it in place.
func (m *Manager) Add(s *Skeleton) {
	if _, ok := m.skeletons[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.skeletons[s.ID] = s
	if s.ID >= m.nextID {
		m.nextID = s.ID + 1
	}
}

// Remove removes a skeleton.
func (m *Manager) Remove(id uint32) {
	if _, ok := m.skeletons[id]; !ok {
		return
	}
	delete(m.skeletons, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.player != nil && m.player.ID == id {
		m.player = nil
	}
}

// Get returns a skeleton by id.
func (m *Manager) Get(id uint32) *Skeleton {
	return m.skeletons[id]
}

// SetPlayer sets and adds the player skeleton.
func (m *Manager) SetPlayer(s *Skeleton) {
	m.player = s
	m.Add(s)
}

// Player returns the player skeleton.
func (m *Manager) Player() *Skeleton {
	return m.player
}

// All returns every skeleton in spawn order.
func (m *Manager) All() []*Skeleton {
	result := make([]*Skeleton, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.skeletons[id])
	}
	return result
}

// ByTeam returns the skeletons of one team in spawn order.
func (m *Manager) ByTeam(team Team) []*Skeleton {
	var result []*Skeleton
	for _, id := range m.order {
		if s := m.skeletons[id]; s.Team == team {
			result = append(result, s)
		}
	}
	return result
}

// Count returns the total number of skeletons.
func (m *Manager) Count() int {
	return len(m.skeletons)
}

// CountByTeam returns the number of skeletons on a team.
func (m *Manager) CountByTeam(team Team) int {
	count := 0
	for _, s := range m.skeletons {
		if s.Team == team {
			count++
		}
	}
	return count
}

// IDs returns every skeleton id in ascending order.
func (m *Manager) IDs() []uint32 {
	ids := make([]uint32, 0, len(m.skeletons))
	for id := range m.skeletons {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear removes every skeleton.
func (m *Manager) Clear() {
	m.skeletons = make(map[uint32]*Skeleton)
	m.order = nil
	m.player = nil
	m.nextID = 1
}
