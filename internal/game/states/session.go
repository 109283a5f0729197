package states

import (
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/game/world"
	"github.com/Faultbox/stickfight/internal/logger"
	"github.com/Faultbox/stickfight/internal/results"
)

// Observer is told about every tick, for example to publish snapshots.
type Observer interface {
	Observe(phase Phase, w *world.World)
}

// Session is the data shared by the states of one run.
type Session struct {
	Options    world.Options
	LevelFS    fs.FS
	LevelPath  string // empty uses the built-in arena
	Seed       int64
	MaxTicks   int // 0 plays until the run ends
	CheerTicks int // ticks of cheering after a win

	Input    input.Source
	History  *results.History // optional
	Observer Observer         // optional

	// Set while running.
	World  *world.World
	Result *results.Record
}

func (s *Session) observe(phase Phase) {
	if s.Observer != nil && s.World != nil {
		s.Observer.Observe(phase, s.World)
	}
}

// record stores the outcome of the run. Failing to persist it is logged,
// not fatal: the run itself is over either way.
func (s *Session) record(outcome results.Outcome) {
	r := results.Record{
		Finished:    time.Now(),
		Level:       s.World.Level().Name,
		Seed:        s.Seed,
		Outcome:     outcome,
		Ticks:       s.World.CurrentTick(),
		EnemiesLeft: s.World.EnemiesLeft(),
	}
	s.Result = &r

	logger.Info("run finished",
		zap.String("outcome", string(outcome)),
		zap.Int("ticks", r.Ticks),
		zap.Int("enemiesLeft", r.EnemiesLeft),
		zap.Int64("seed", r.Seed))

	if s.History == nil {
		return
	}
	if err := s.History.Add(r); err != nil {
		logger.Warn("could not save run", zap.Error(err))
	}
}
