// Package world runs the simulation: the player, the enemies, their shots
// and the static level they move through.
package world

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/anim"
	"github.com/Faultbox/stickfight/internal/game/camera"
	"github.com/Faultbox/stickfight/internal/game/entity"
	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/game/shot"
	"github.com/Faultbox/stickfight/internal/level"
	"github.com/Faultbox/stickfight/internal/physics"
	"github.com/Faultbox/stickfight/pkg/math"
)

// Outcome is how a run stands.
type Outcome uint8

const (
	Playing Outcome = iota
	Lost            // the player fell out of the level
	Won             // every enemy died
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// Knockback applied to the player per enemy hit.
const (
	KnockbackSpread = 10 // horizontal, centered on zero
	KnockbackLift   = 30
)

// muzzleOffset keeps player shots from starting inside the head.
const muzzleOffset = 1

// Report summarizes one tick.
type Report struct {
	Tick      int
	Contacts  []physics.Contact
	Fired     int
	Despawned int
	Hits      []shot.Hit
	Outcome   Outcome
}

// World owns all simulation state. It is not safe for concurrent use.
type World struct {
	opts     Options
	level    *level.Level
	resolver *physics.Resolver
	animator *anim.Animator

	Skeletons *entity.Manager
	Shots     *shot.Manager
	Camera    *camera.OrbitCamera

	rng *rand.Rand
	log *zap.Logger

	tick        int
	cooldown    int
	enemiesLeft int
	outcome     Outcome
	center      math.Vec3 // enemy spawn and relocation center
}

// New builds a world on lvl and spawns the player and enemies. The same
// seed, options, level and intents replay the same run. log may be nil.
func New(opts Options, lvl *level.Level, seed int64, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}

	resolver := physics.NewResolver(lvl.Walls(), log.Named("physics"))
	resolver.Gravity = opts.Gravity
	resolver.Friction = opts.Friction
	resolver.MaxResolutions = opts.MaxResolutions

	cam := camera.NewOrbitCamera(opts.CameraDistance)
	if opts.CameraMinDistance > 0 {
		cam.MinDistance = opts.CameraMinDistance
	}
	if opts.CameraMaxDistance > 0 {
		cam.MaxDistance = opts.CameraMaxDistance
	}
	if opts.CameraSensitivity > 0 {
		cam.Sensitivity = opts.CameraSensitivity
	}

	lo, hi := lvl.Bounds()
	w := &World{
		opts:      opts,
		level:     lvl,
		resolver:  resolver,
		animator:  anim.NewAnimator(opts.Curve, log.Named("anim")),
		Skeletons: entity.NewManager(),
		Shots:     shot.NewManager(),
		Camera:    cam,
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
		center:    math.Vec3{X: (lo.X + hi.X) / 2, Z: (lo.Z + hi.Z) / 2},
	}
	w.spawn()
	return w
}

func (w *World) spawn() {
	pos := w.opts.Spawn
	if w.level.Spawn != nil {
		pos = *w.level.Spawn
	}
	player := entity.NewPlayer(w.Skeletons.NextID(), pos)
	w.Skeletons.SetPlayer(player)
	// A zero-length step settles contacts so a player spawned on the
	// ground starts grounded.
	w.resolver.Step(player.Body, 0)
	player.SyncHead()
	w.Camera.Follow(player.Position())

	for i := 0; i < w.opts.EnemyCount; i++ {
		colour := entity.EnemyColours[i%len(entity.EnemyColours)]
		e := entity.NewEnemy(w.Skeletons.NextID(), w.randomSpot(entity.SpawnHeight), w.opts.EnemyHealth, colour)
		w.animator.SetState(&e.Pose, anim.Spin)
		w.Skeletons.Add(e)
	}
	w.enemiesLeft = w.opts.EnemyCount

	w.log.Info("world spawned",
		zap.String("level", w.level.Name),
		zap.Int("walls", len(w.resolver.Walls())),
		zap.Int("enemies", w.enemiesLeft))
}

// randomSpot picks a point around the spawn center at height y.
func (w *World) randomSpot(y float32) math.Vec3 {
	return math.Vec3{
		X: w.center.X + (w.rng.Float32()-0.5)*2*w.opts.EnemyRange,
		Y: y,
		Z: w.center.Z + (w.rng.Float32()-0.5)*2*w.opts.EnemyRange,
	}
}

// Tick advances the world by one fixed step of dt seconds. Once the run has
// an outcome the world is frozen and Tick only reports it.
func (w *World) Tick(dt float32, in input.Intent) Report {
	if w.outcome != Playing {
		return Report{Tick: w.tick, Outcome: w.outcome}
	}
	w.tick++
	rep := Report{Tick: w.tick}

	player := w.Skeletons.Player()
	in = in.Clamped()

	w.look(in)
	w.move(player, in)
	if w.shoot(player, in) {
		rep.Fired++
	}

	// Animation state comes from the motion decided this tick and the
	// contacts of the last one.
	w.animator.Update(&player.Pose, player.Velocity(), player.Grounded())

	w.resolver.ApplyGravity(player.Body)
	rep.Contacts = w.resolver.Step(player.Body, dt)
	player.SyncHead()
	w.Camera.Follow(player.Position())

	for _, s := range w.Skeletons.All() {
		w.animator.Advance(&s.Pose, dt)
	}

	rep.Fired += w.enemiesFire(player)
	rep.Despawned = w.Shots.Update(dt)
	rep.Hits = w.Shots.Hits(w.Skeletons.All())
	for _, h := range rep.Hits {
		w.applyHit(h)
	}

	if w.outcome == Playing && player.Position().Y < w.opts.LoseY {
		w.outcome = Lost
		w.log.Info("player fell", zap.Int("tick", w.tick), zap.Float32("y", player.Position().Y))
	}

	rep.Outcome = w.outcome
	return rep
}

func (w *World) look(in input.Intent) {
	if in.Yaw != 0 || in.Pitch != 0 {
		w.Camera.Look(in.Yaw, in.Pitch)
	}
	if in.Zoom != 0 {
		w.Camera.Zoom(in.Zoom)
	}
}

// move turns the intent into player velocity. Horizontal input replaces
// horizontal velocity; without input, friction on landing slows the player.
func (w *World) move(player *entity.Skeleton, in input.Intent) {
	body := player.Body
	if in.Moving() {
		speed := w.opts.WalkSpeed
		if in.Sprint {
			speed = w.opts.SprintSpeed
		}
		dir := w.Camera.MoveDir(in.Forward, in.Right).Scale(speed)
		body.Velocity.X = dir.X
		body.Velocity.Z = dir.Z
	}
	if in.Jump && body.Grounded {
		body.Velocity.Y = w.opts.JumpVelocity
	}
}

func (w *World) shoot(player *entity.Skeleton, in input.Intent) bool {
	if w.cooldown > 0 {
		w.cooldown--
	}
	if !in.Shoot || w.cooldown > 0 {
		return false
	}
	aim := w.Camera.Aim()
	w.Shots.Fire(entity.TeamPlayer, player.Position().Add(aim.Scale(muzzleOffset)), aim.Scale(w.opts.ShotSpeed))
	w.cooldown = w.opts.ShotCooldown
	return true
}

// enemiesFire lets each enemy take a shot at the player's current position.
func (w *World) enemiesFire(player *entity.Skeleton) int {
	fired := 0
	target := player.Position()
	for _, e := range w.Skeletons.ByTeam(entity.TeamEnemy) {
		if w.rng.Float32() >= w.opts.FireChance {
			continue
		}
		from := e.Position()
		w.Shots.Fire(entity.TeamEnemy, from, target.Sub(from))
		fired++
	}
	return fired
}

func (w *World) applyHit(h shot.Hit) {
	target := h.Target

	if target.Team == entity.TeamPlayer {
		v := &target.Body.Velocity
		v.X += (w.rng.Float32() - 0.5) * KnockbackSpread
		v.Y += KnockbackLift
		v.Z += (w.rng.Float32() - 0.5) * KnockbackSpread
		w.log.Debug("player hit", zap.Int("tick", w.tick), zap.Uint32("shot", h.Shot.ID))
		return
	}

	if !target.TakeHit() {
		target.SetPosition(w.randomSpot(target.Position().Y))
		w.log.Debug("enemy hit",
			zap.Int("tick", w.tick),
			zap.Uint32("enemy", target.ID),
			zap.Int("health", target.Health))
		return
	}

	w.Skeletons.Remove(target.ID)
	w.enemiesLeft--
	w.log.Info("enemy down",
		zap.Int("tick", w.tick),
		zap.Uint32("enemy", target.ID),
		zap.Stringer("colour", target.Colour),
		zap.Int("left", w.enemiesLeft))

	if w.enemiesLeft == 0 {
		w.outcome = Won
		w.log.Info("all enemies down", zap.Int("tick", w.tick))
	}
}

// Celebrate plays the player's cheering animation without simulating
// anything else.
func (w *World) Celebrate(dt float32) {
	player := w.Skeletons.Player()
	w.animator.SetState(&player.Pose, anim.Cheering)
	for _, s := range w.Skeletons.All() {
		w.animator.Advance(&s.Pose, dt)
	}
}

// CurrentTick returns the number of ticks simulated.
func (w *World) CurrentTick() int {
	return w.tick
}

// Outcome returns how the run stands.
func (w *World) Outcome() Outcome {
	return w.outcome
}

// EnemiesLeft returns the number of enemies still alive.
func (w *World) EnemiesLeft() int {
	return w.enemiesLeft
}

// Player returns the player skeleton.
func (w *World) Player() *entity.Skeleton {
	return w.Skeletons.Player()
}

// Level returns the level the world was built on.
func (w *World) Level() *level.Level {
	return w.level
}
