package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/game/world"
	"github.com/Faultbox/stickfight/internal/logger"
	"github.com/Faultbox/stickfight/internal/results"
)

// PlayingState ticks the world until the run is won, lost or out of time.
type PlayingState struct {
	session *Session
	manager *Manager
}

// NewPlayingState creates a new playing state.
func NewPlayingState(session *Session, manager *Manager) *PlayingState {
	return &PlayingState{session: session, manager: manager}
}

// Phase implements State.
func (s *PlayingState) Phase() Phase { return Playing }

// Enter implements State.
func (s *PlayingState) Enter() error {
	logger.Info("entering PlayingState", zap.Int("enemies", s.session.World.EnemiesLeft()))
	return nil
}

// Exit implements State.
func (s *PlayingState) Exit() error { return nil }

// Update runs one world tick.
func (s *PlayingState) Update(dt float64) error {
	w := s.session.World
	src := s.session.Input
	if src == nil {
		src = input.Idle{}
	}
	in := src.Next(w.CurrentTick())
	rep := w.Tick(float32(dt), in)
	s.session.observe(Playing)

	for _, h := range rep.Hits {
		logger.Debug("hit",
			zap.Int("tick", rep.Tick),
			zap.Stringer("shooter", h.Shot.Team),
			zap.Uint32("target", h.Target.ID))
	}

	switch rep.Outcome {
	case world.Lost:
		s.manager.Change(NewGameOverState(s.session, s.manager))
	case world.Won:
		s.manager.Change(NewWinState(s.session, s.manager))
	default:
		if s.session.MaxTicks > 0 && rep.Tick >= s.session.MaxTicks {
			s.session.record(results.TimedOut)
			s.manager.Finish()
		}
	}
	return nil
}
