// Package game implements the main simulation loop.
package game

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/config"
	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/game/states"
	"github.com/Faultbox/stickfight/internal/game/world"
	"github.com/Faultbox/stickfight/internal/logger"
	"github.com/Faultbox/stickfight/internal/results"
)

// cheerSeconds is how long the player cheers after a win.
const cheerSeconds = 2

// Deps are the optional collaborators of a run.
type Deps struct {
	Input    input.Source // overrides sim.script when set
	History  *results.History
	Observer states.Observer
}

// Game is one run of the simulation.
type Game struct {
	tickRate int
	realtime bool
	session  *states.Session
	manager  *states.Manager
}

// New prepares a run from the configuration.
func New(cfg *config.Config, deps Deps) (*Game, error) {
	opts, err := world.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src := deps.Input
	if src == nil {
		src, err = scriptSource(cfg.Sim.Script)
		if err != nil {
			return nil, err
		}
	}

	session := &states.Session{
		Options:    opts,
		Seed:       seed,
		MaxTicks:   cfg.Sim.MaxTicks,
		CheerTicks: cfg.Sim.TickRate * cheerSeconds,
		Input:      src,
		History:    deps.History,
		Observer:   deps.Observer,
	}
	if cfg.Level.Path != "" {
		session.LevelFS = os.DirFS(filepath.Dir(cfg.Level.Path))
		session.LevelPath = filepath.Base(cfg.Level.Path)
	}

	logger.Info("initializing game",
		zap.String("level", cfg.Level.Path),
		zap.Int64("seed", seed),
		zap.Int("tickRate", cfg.Sim.TickRate),
		zap.Int("maxTicks", cfg.Sim.MaxTicks),
		zap.Bool("realtime", cfg.Sim.Realtime))

	g := &Game{
		tickRate: cfg.Sim.TickRate,
		realtime: cfg.Sim.Realtime,
		session:  session,
		manager:  states.NewManager(),
	}
	g.manager.Change(states.NewLoadingState(session, g.manager))
	return g, nil
}

func scriptSource(path string) (input.Source, error) {
	if path == "" {
		return input.Idle{}, nil
	}
	s, err := input.LoadScript(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("input script: %w", err)
	}
	return s, nil
}

// Run steps the simulation at a fixed rate until the run ends or ctx is
// cancelled. Headless runs go as fast as possible; realtime runs pace each
// tick against the wall clock. The result is nil when the run was cancelled
// before it finished.
func (g *Game) Run(ctx context.Context) (*results.Record, error) {
	dt := 1.0 / float64(g.tickRate)

	var tick <-chan time.Time
	if g.realtime {
		ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
		defer ticker.Stop()
		tick = ticker.C
	}

	logger.Info("starting game loop")
	start := time.Now()

	for !g.manager.Done() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return g.session.Result, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return g.session.Result, err
		}

		if err := g.manager.Update(dt); err != nil {
			return nil, fmt.Errorf("update error: %w", err)
		}
	}

	ticks := 0
	if w := g.session.World; w != nil {
		ticks = w.CurrentTick()
	}
	logger.Info("game loop finished",
		zap.Int("ticks", ticks),
		zap.Duration("elapsed", time.Since(start)))
	return g.session.Result, nil
}

// Seed returns the seed the run uses.
func (g *Game) Seed() int64 {
	return g.session.Seed
}

// World returns the running world, nil before loading.
func (g *Game) World() *world.World {
	return g.session.World
}
