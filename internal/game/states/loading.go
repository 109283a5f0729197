package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/game/world"
	"github.com/Faultbox/stickfight/internal/level"
	"github.com/Faultbox/stickfight/internal/logger"
)

// LoadingState loads the level and spawns the world.
type LoadingState struct {
	session *Session
	manager *Manager
}

// NewLoadingState creates a new loading state.
func NewLoadingState(session *Session, manager *Manager) *LoadingState {
	return &LoadingState{session: session, manager: manager}
}

// Phase implements State.
func (s *LoadingState) Phase() Phase { return Loading }

// Enter loads the level and builds the world.
func (s *LoadingState) Enter() error {
	lvl := level.Default()
	if s.session.LevelPath != "" {
		var err error
		lvl, err = level.Load(s.session.LevelFS, s.session.LevelPath)
		if err != nil {
			return fmt.Errorf("loading level: %w", err)
		}
	}

	logger.Info("entering LoadingState",
		zap.String("level", lvl.Name),
		zap.Int("walls", len(lvl.Boxes)),
		zap.Int64("seed", s.session.Seed))

	s.session.World = world.New(s.session.Options, lvl, s.session.Seed, logger.Named("world"))
	return nil
}

// Exit implements State.
func (s *LoadingState) Exit() error { return nil }

// Update starts play once loading is done.
func (s *LoadingState) Update(dt float64) error {
	s.session.observe(Loading)
	s.manager.Change(NewPlayingState(s.session, s.manager))
	return nil
}
