// Package shot simulates projectiles and their hits on skeletons.
package shot

import (
	"github.com/Faultbox/stickfight/internal/game/entity"
	"github.com/Faultbox/stickfight/internal/physics"
	"github.com/Faultbox/stickfight/pkg/math"
)

const (
	// Size is the full width of a shot's hit box.
	Size = 0.3
	// Drop is subtracted from velocity.y once per tick.
	Drop = 0.1
	// DespawnY removes shots that fall this low.
	DespawnY = -20.0
)

// Shot is one projectile.
type Shot struct {
	ID       uint32
	Team     entity.Team // team that fired it
	Position math.Vec3
	Velocity math.Vec3
}

// Hit records a shot striking a skeleton.
type Hit struct {
	Shot   Shot
	Target *entity.Skeleton
}

// Manager owns every live shot, in firing order.
type Manager struct {
	shots  []*Shot
	nextID uint32
}

// NewManager creates an empty shot manager.
func NewManager() *Manager {
	return &Manager{nextID: 1}
}

// Fire spawns a shot.
func (m *Manager) Fire(team entity.Team, pos, vel math.Vec3) *Shot {
	s := &Shot{ID: m.nextID, Team: team, Position: pos, Velocity: vel}
	m.nextID++
	m.shots = append(m.shots, s)
	return s
}

// Shots returns the live shots. Callers must not modify the slice.
func (m *Manager) Shots() []*Shot {
	return m.shots
}

// Count returns the number of live shots.
func (m *Manager) Count() int {
	return len(m.shots)
}

// Update moves every shot, applies the drop and removes shots that fell
// below DespawnY. Returns how many were removed.
func (m *Manager) Update(dt float32) int {
	kept := m.shots[:0]
	for _, s := range m.shots {
		s.Position = s.Position.Add(s.Velocity.Scale(dt))
		s.Velocity.Y -= Drop
		if s.Position.Y <= DespawnY {
			continue
		}
		kept = append(kept, s)
	}
	removed := len(m.shots) - len(kept)
	clearTail(m.shots, len(kept))
	m.shots = kept
	return removed
}

// Hits tests live shots against skeletons. Each skeleton takes at most one
// shot per call, the earliest fired that overlaps it; that shot is consumed.
// Shots never hit their own team.
func (m *Manager) Hits(targets []*entity.Skeleton) []Hit {
	var hits []Hit
	half := math.Vec3{X: Size / 2, Y: Size / 2, Z: Size / 2}

	for _, target := range targets {
		center, targetHalf := target.Hitbox()
		for i, s := range m.shots {
			if !s.Team.Opposes(target.Team) {
				continue
			}
			if !physics.Overlaps(center, targetHalf, s.Position, half) {
				continue
			}
			hits = append(hits, Hit{Shot: *s, Target: target})
			m.remove(i)
			break
		}
	}
	return hits
}

// Clear removes every shot.
func (m *Manager) Clear() {
	clearTail(m.shots, 0)
	m.shots = m.shots[:0]
}

func (m *Manager) remove(i int) {
	copy(m.shots[i:], m.shots[i+1:])
	m.shots[len(m.shots)-1] = nil
	m.shots = m.shots[:len(m.shots)-1]
}

func clearTail(s []*Shot, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
