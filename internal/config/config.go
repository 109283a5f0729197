// Package config handles simulation configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stickfight/internal/anim"
	"github.com/Faultbox/stickfight/pkg/math"
)

// Config holds all simulation settings.
type Config struct {
	Sim       SimConfig       `yaml:"sim"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Level     LevelConfig     `yaml:"level"`
	Player    PlayerConfig    `yaml:"player"`
	Camera    CameraConfig    `yaml:"camera"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Feed      FeedConfig      `yaml:"feed"`
	Results   ResultsConfig   `yaml:"results"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SimConfig holds the fixed-step loop settings.
type SimConfig struct {
	TickRate int    `yaml:"tick_rate"` // ticks per simulated second
	MaxTicks int    `yaml:"max_ticks"` // 0 runs until the game ends
	Seed     int64  `yaml:"seed"`      // 0 picks a seed from the clock
	Realtime bool   `yaml:"realtime"`  // pace ticks against the wall clock
	Script   string `yaml:"script"`    // optional input script, empty means idle
}

// PhysicsConfig holds collision tuning.
type PhysicsConfig struct {
	Gravity        float32 `yaml:"gravity"`         // velocity.y lost per tick
	Friction       float32 `yaml:"friction"`        // horizontal scale on landing
	MaxResolutions int     `yaml:"max_resolutions"` // walls resolved per body per tick
	LoseY          float32 `yaml:"lose_y"`          // player head height that ends the game
}

// AnimationConfig holds limb blending settings.
type AnimationConfig struct {
	Easing string `yaml:"easing"`
}

// LevelConfig points at the level geometry. An empty path uses the built-in
// arena.
type LevelConfig struct {
	Path string `yaml:"path"`
}

// PlayerConfig holds player movement tuning.
type PlayerConfig struct {
	Spawn        math.Vec3 `yaml:"spawn"`
	WalkSpeed    float32   `yaml:"walk_speed"`
	SprintSpeed  float32   `yaml:"sprint_speed"`
	JumpVelocity float32   `yaml:"jump_velocity"`
	ShotSpeed    float32   `yaml:"shot_speed"`
	ShotCooldown int       `yaml:"shot_cooldown"` // ticks between player shots
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	Sensitivity float32 `yaml:"sensitivity"` // radians per unit of look intent
}

// EnemiesConfig holds enemy settings.
type EnemiesConfig struct {
	Count      int     `yaml:"count"`
	Health     int     `yaml:"health"`
	FireChance float32 `yaml:"fire_chance"` // per enemy per tick
	Range      float32 `yaml:"range"`       // spawn and relocation half-width
}

// FeedConfig holds the snapshot websocket feed settings.
type FeedConfig struct {
	Addr  string `yaml:"addr"`  // listen address, empty disables the feed
	Every int    `yaml:"every"` // broadcast every N ticks
}

// ResultsConfig holds run history settings.
type ResultsConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
	Keep    int    `yaml:"keep"` // most recent runs kept
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate: 60,
			MaxTicks: 60 * 60 * 10,
		},
		Physics: PhysicsConfig{
			Gravity:        0.5,
			Friction:       0.9,
			MaxResolutions: 2, // floor plus one standing wall
			LoseY:          -50,
		},
		Animation: AnimationConfig{
			Easing: "linear",
		},
		Player: PlayerConfig{
			Spawn:        math.Vec3{Y: anim.MajorHeight + anim.MinorHeight + 1},
			WalkSpeed:    1.2,
			SprintSpeed:  3,
			JumpVelocity: 15,
			ShotSpeed:    40,
			ShotCooldown: 15,
		},
		Camera: CameraConfig{
			Distance:    12,
			MinDistance: 4,
			MaxDistance: 40,
			Sensitivity: 0.05,
		},
		Enemies: EnemiesConfig{
			Count:      3,
			Health:     3,
			FireChance: 0.002,
			Range:      50,
		},
		Feed: FeedConfig{
			Every: 2,
		},
		Results: ResultsConfig{
			Enabled: true,
			AppName: "stickfight",
			Keep:    50,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot run.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Sim.TickRate > 0, "sim.tick_rate must be positive, got %d", c.Sim.TickRate)
	check(c.Sim.MaxTicks >= 0, "sim.max_ticks must not be negative, got %d", c.Sim.MaxTicks)
	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %g", c.Physics.Gravity)
	check(c.Physics.Friction >= 0 && c.Physics.Friction <= 1,
		"physics.friction must be within [0, 1], got %g", c.Physics.Friction)
	check(c.Physics.MaxResolutions >= 1,
		"physics.max_resolutions must be at least 1, got %d", c.Physics.MaxResolutions)
	if _, err := anim.CurveByName(c.Animation.Easing); err != nil {
		errs = append(errs, fmt.Errorf("animation.easing: %w", err))
	}
	check(c.Player.WalkSpeed >= 0 && c.Player.SprintSpeed >= 0,
		"player speeds must not be negative")
	check(c.Player.ShotCooldown >= 0, "player.shot_cooldown must not be negative")
	check(c.Camera.MinDistance > 0 && c.Camera.MinDistance <= c.Camera.MaxDistance,
		"camera distances must satisfy 0 < min_distance <= max_distance")
	check(c.Enemies.Count >= 1, "enemies.count must be at least 1, got %d", c.Enemies.Count)
	check(c.Enemies.Health >= 1, "enemies.health must be at least 1, got %d", c.Enemies.Health)
	check(c.Enemies.FireChance >= 0 && c.Enemies.FireChance <= 1,
		"enemies.fire_chance must be within [0, 1], got %g", c.Enemies.FireChance)
	check(c.Enemies.Range >= 0, "enemies.range must not be negative")
	check(c.Feed.Every >= 1, "feed.every must be at least 1, got %d", c.Feed.Every)
	check(!c.Results.Enabled || c.Results.AppName != "",
		"results.app_name is required when results are enabled")

	return errors.Join(errs...)
}
