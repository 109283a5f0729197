package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLevel    = flag.String("level", "", "Level file (.yaml or .tmx)")
	flagTicks    = flag.Int("ticks", -1, "Stop after this many ticks (0 = until the game ends)")
	flagSeed     = flag.Int64("seed", 0, "Random seed (0 = from clock)")
	flagFeed     = flag.String("feed", "", "Serve snapshots over websocket on this address")
	flagRealtime = flag.Bool("realtime", false, "Pace ticks against the wall clock")
	flagScript   = flag.String("script", "", "Input script file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLevel != "" {
		cfg.Level.Path = *flagLevel
	}
	if *flagTicks >= 0 {
		cfg.Sim.MaxTicks = *flagTicks
	}
	if *flagSeed != 0 {
		cfg.Sim.Seed = *flagSeed
	}
	if *flagFeed != "" {
		cfg.Feed.Addr = *flagFeed
	}
	if *flagRealtime {
		cfg.Sim.Realtime = true
	}
	if *flagScript != "" {
		cfg.Sim.Script = *flagScript
	}
}
