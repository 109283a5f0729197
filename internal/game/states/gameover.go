package states

import (
	"github.com/Faultbox/stickfight/internal/logger"
	"github.com/Faultbox/stickfight/internal/results"
)

// GameOverState records a loss and ends the run.
type GameOverState struct {
	session *Session
	manager *Manager
}

// NewGameOverState creates a new game over state.
func NewGameOverState(session *Session, manager *Manager) *GameOverState {
	return &GameOverState{session: session, manager: manager}
}

// Phase implements State.
func (s *GameOverState) Phase() Phase { return GameOver }

// Enter records the loss.
func (s *GameOverState) Enter() error {
	logger.Info("entering GameOverState")
	s.session.record(results.Lost)
	return nil
}

// Exit implements State.
func (s *GameOverState) Exit() error { return nil }

// Update publishes the final state and ends the run.
func (s *GameOverState) Update(dt float64) error {
	s.session.observe(GameOver)
	s.manager.Finish()
	return nil
}
