package world

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/Faultbox/stickfight/internal/anim"
	"github.com/Faultbox/stickfight/internal/config"
	"github.com/Faultbox/stickfight/internal/game/entity"
	"github.com/Faultbox/stickfight/pkg/math"
)

// Options tunes a world. OptionsFromConfig builds one from the loaded
// configuration; tests build them directly.
type Options struct {
	Gravity        float32
	Friction       float32
	MaxResolutions int
	LoseY          float32
	Curve          ease.TweenFunc

	Spawn        math.Vec3 // used when the level sets none
	WalkSpeed    float32
	SprintSpeed  float32
	JumpVelocity float32
	ShotSpeed    float32
	ShotCooldown int

	CameraDistance    float32
	CameraMinDistance float32
	CameraMaxDistance float32
	CameraSensitivity float32

	EnemyCount  int
	EnemyHealth int
	FireChance  float32
	EnemyRange  float32
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	opts, err := OptionsFromConfig(config.Default())
	if err != nil {
		panic(err)
	}
	return opts
}

// OptionsFromConfig copies the simulation settings out of cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	curve, err := anim.CurveByName(cfg.Animation.Easing)
	if err != nil {
		return Options{}, fmt.Errorf("animation: %w", err)
	}

	spawn := cfg.Player.Spawn
	if spawn == (math.Vec3{}) {
		spawn = math.Vec3{Y: entity.SpawnHeight}
	}

	return Options{
		Gravity:        cfg.Physics.Gravity,
		Friction:       cfg.Physics.Friction,
		MaxResolutions: cfg.Physics.MaxResolutions,
		LoseY:          cfg.Physics.LoseY,
		Curve:          curve,

		Spawn:        spawn,
		WalkSpeed:    cfg.Player.WalkSpeed,
		SprintSpeed:  cfg.Player.SprintSpeed,
		JumpVelocity: cfg.Player.JumpVelocity,
		ShotSpeed:    cfg.Player.ShotSpeed,
		ShotCooldown: cfg.Player.ShotCooldown,

		CameraDistance:    cfg.Camera.Distance,
		CameraMinDistance: cfg.Camera.MinDistance,
		CameraMaxDistance: cfg.Camera.MaxDistance,
		CameraSensitivity: cfg.Camera.Sensitivity,

		EnemyCount:  cfg.Enemies.Count,
		EnemyHealth: cfg.Enemies.Health,
		FireChance:  cfg.Enemies.FireChance,
		EnemyRange:  cfg.Enemies.Range,
	}, nil
}
