package shot

import (
	"testing"

	"github.com/Faultbox/stickfight/internal/game/entity"
	"github.com/Faultbox/stickfight/pkg/math"
)

const eps = 1e-5

func TestUpdateIntegratesThenDrops(t *testing.T) {
	m := NewManager()
	s := m.Fire(entity.TeamPlayer, math.Vec3{Y: 10}, math.Vec3{X: 6, Y: 0, Z: -3})

	m.Update(0.5)

	if !s.Position.ApproxEqual(math.Vec3{X: 3, Y: 10, Z: -1.5}, eps) {
		t.Errorf("unexpected position %+v", s.Position)
	}
	if s.Velocity.Y != -Drop {
		t.Errorf("expected vy -%f, got %f", Drop, s.Velocity.Y)
	}

	m.Update(1)
	if !s.Position.ApproxEqual(math.Vec3{X: 9, Y: 10 - Drop, Z: -4.5}, eps) {
		t.Errorf("drop should apply to the next move, got %+v", s.Position)
	}
}

func TestUpdateDespawnsLowShots(t *testing.T) {
	m := NewManager()
	keep := m.Fire(entity.TeamPlayer, math.Vec3{Y: 0}, math.Vec3{})
	m.Fire(entity.TeamEnemy, math.Vec3{Y: -19.5}, math.Vec3{Y: -1})
	m.Fire(entity.TeamEnemy, math.Vec3{Y: DespawnY}, math.Vec3{})

	removed := m.Update(1)

	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if m.Count() != 1 || m.Shots()[0] != keep {
		t.Errorf("expected only the high shot to remain, got %d shots", m.Count())
	}
}

func TestShotsFallEventually(t *testing.T) {
	m := NewManager()
	m.Fire(entity.TeamPlayer, math.Vec3{Y: 5}, math.Vec3{X: 40, Y: 10})

	for tick := 0; tick < 10000 && m.Count() > 0; tick++ {
		m.Update(1.0 / 60)
	}
	if m.Count() != 0 {
		t.Error("shot never despawned")
	}
}

func TestHitsOpposingTeamOnly(t *testing.T) {
	enemy := entity.NewEnemy(2, math.Vec3{Y: 6}, 3, entity.Red)
	player := entity.NewPlayer(1, math.Vec3{X: 20, Y: 6})

	m := NewManager()
	// Inside the enemy's hitbox, fired by an enemy: ignored.
	friendly := m.Fire(entity.TeamEnemy, math.Vec3{Y: 3}, math.Vec3{})
	// Inside the enemy's hitbox, fired by the player: hits.
	m.Fire(entity.TeamPlayer, math.Vec3{Y: 3}, math.Vec3{})

	hits := m.Hits([]*entity.Skeleton{player, enemy})

	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Target != enemy || hits[0].Shot.Team != entity.TeamPlayer {
		t.Errorf("unexpected hit %+v", hits[0])
	}
	if m.Count() != 1 || m.Shots()[0] != friendly {
		t.Error("only the hitting shot should be consumed")
	}
}

func TestOneHitPerTargetPerCall(t *testing.T) {
	enemy := entity.NewEnemy(2, math.Vec3{Y: 6}, 3, entity.Red)

	m := NewManager()
	first := m.Fire(entity.TeamPlayer, math.Vec3{Y: 2}, math.Vec3{})
	m.Fire(entity.TeamPlayer, math.Vec3{Y: 4}, math.Vec3{})

	hits := m.Hits([]*entity.Skeleton{enemy})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Shot.ID != first.ID {
		t.Errorf("expected the earliest shot to hit, got id %d", hits[0].Shot.ID)
	}
	if m.Count() != 1 {
		t.Errorf("expected the second shot to survive, got %d", m.Count())
	}

	if hits = m.Hits([]*entity.Skeleton{enemy}); len(hits) != 1 {
		t.Errorf("expected the second shot to hit on the next call, got %d", len(hits))
	}
}

func TestHitboxEdges(t *testing.T) {
	// Hitbox spans y 0.5..6.5 and x -0.4..0.4 for a head at y 7.
	enemy := entity.NewEnemy(2, math.Vec3{Y: 7}, 3, entity.Red)

	tests := []struct {
		name string
		pos  math.Vec3
		hit  bool
	}{
		{"center", math.Vec3{Y: 3.5}, true},
		{"near top", math.Vec3{Y: 6.6}, true},
		{"above", math.Vec3{Y: 6.7}, false},
		{"near side", math.Vec3{X: 0.5, Y: 3}, true},
		{"beside", math.Vec3{X: 0.6, Y: 3}, false},
		{"below", math.Vec3{Y: 0.2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			m.Fire(entity.TeamPlayer, tt.pos, math.Vec3{})
			got := len(m.Hits([]*entity.Skeleton{enemy})) == 1
			if got != tt.hit {
				t.Errorf("expected hit=%v at %+v", tt.hit, tt.pos)
			}
		})
	}
}

func TestClear(t *testing.T) {
	m := NewManager()
	m.Fire(entity.TeamPlayer, math.Vec3{}, math.Vec3{})
	m.Clear()
	if m.Count() != 0 {
		t.Errorf("expected no shots, got %d", m.Count())
	}
}
