// Package main is the entry point for the stickfight simulation.
//
// Exit status is 0 for a win, 2 for a loss or timeout, 1 on errors and 130
// when interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/config"
	"github.com/Faultbox/stickfight/internal/feed"
	"github.com/Faultbox/stickfight/internal/game"
	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/logger"
	"github.com/Faultbox/stickfight/internal/results"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Stickfight ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var deps game.Deps

	if cfg.Results.Enabled {
		store, err := results.OpenGdata(cfg.Results.AppName)
		if err != nil {
			logger.Warn("run history disabled", zap.Error(err))
		} else {
			deps.History = results.NewHistory(store, cfg.Results.Keep)
		}
	}

	if cfg.Feed.Addr != "" {
		var intents *input.Latest
		if cfg.Sim.Script == "" {
			intents = &input.Latest{}
			deps.Input = intents
		}
		hub := feed.NewHub(cfg.Feed.Every, intents, logger.Named("feed"))
		srv, err := feed.Listen(cfg.Feed.Addr, hub, logger.Named("feed"))
		if err != nil {
			logger.Error("failed to start feed", zap.Error(err))
			return 1
		}
		go func() {
			if err := srv.Serve(); err != nil {
				logger.Error("feed stopped", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		deps.Observer = hub
	}

	g, err := game.New(cfg, deps)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}

	rec, err := g.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("interrupted")
		return 130
	case err != nil:
		logger.Error("game error", zap.Error(err))
		return 1
	}

	if deps.History != nil {
		if best, err := deps.History.Best(); err == nil {
			logger.Info("best run",
				zap.String("outcome", string(best.Outcome)),
				zap.Int("ticks", best.Ticks),
				zap.String("level", best.Level))
		}
	}

	if rec != nil && rec.Outcome == results.Won {
		return 0
	}
	return 2
}
