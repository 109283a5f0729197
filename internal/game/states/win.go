package states

import (
	"github.com/Faultbox/stickfight/internal/logger"
	"github.com/Faultbox/stickfight/internal/results"
)

// WinState records a win and lets the player cheer before ending the run.
type WinState struct {
	session *Session
	manager *Manager
	cheered int
}

// NewWinState creates a new win state.
func NewWinState(session *Session, manager *Manager) *WinState {
	return &WinState{session: session, manager: manager}
}

// Phase implements State.
func (s *WinState) Phase() Phase { return Win }

// Enter records the win.
func (s *WinState) Enter() error {
	logger.Info("entering WinState")
	s.session.record(results.Won)
	s.cheered = 0
	return nil
}

// Exit implements State.
func (s *WinState) Exit() error { return nil }

// Update plays one tick of cheering.
func (s *WinState) Update(dt float64) error {
	s.session.World.Celebrate(float32(dt))
	s.session.observe(Win)

	s.cheered++
	if s.cheered >= s.session.CheerTicks {
		s.manager.Finish()
	}
	return nil
}
