package world

import (
	"testing"

	"github.com/Faultbox/stickfight/internal/anim"
	"github.com/Faultbox/stickfight/internal/config"
	"github.com/Faultbox/stickfight/internal/game/entity"
	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/level"
	"github.com/Faultbox/stickfight/internal/physics"
	"github.com/Faultbox/stickfight/pkg/math"
)

const dt = float32(1.0 / 60)

// quietOptions returns default options with enemy fire disabled, so tests
// control every shot.
func quietOptions() Options {
	opts := DefaultOptions()
	opts.FireChance = 0
	return opts
}

func flatLevel() *level.Level {
	return &level.Level{
		Name: "flat",
		Boxes: []level.Box{
			{Name: "ground", Position: math.Vec3{Y: -1}, Scale: math.Vec3{X: 200, Y: 2, Z: 200}},
		},
	}
}

func run(w *World, ticks int, in input.Intent) Report {
	var rep Report
	for i := 0; i < ticks; i++ {
		rep = w.Tick(dt, in)
	}
	return rep
}

func TestNewSpawns(t *testing.T) {
	w := New(quietOptions(), level.Default(), 1, nil)

	player := w.Player()
	if player == nil {
		t.Fatal("expected a player")
	}
	if !player.Grounded() {
		t.Error("player spawned on the ground should start grounded")
	}
	if got := player.Position(); got != (math.Vec3{Y: entity.SpawnHeight}) {
		t.Errorf("unexpected spawn %+v", got)
	}

	enemies := w.Skeletons.ByTeam(entity.TeamEnemy)
	if len(enemies) != 3 || w.EnemiesLeft() != 3 {
		t.Fatalf("expected 3 enemies, got %d (%d left)", len(enemies), w.EnemiesLeft())
	}
	for i, e := range enemies {
		if e.Health != 3 {
			t.Errorf("enemy %d: expected health 3, got %d", i, e.Health)
		}
		if e.Colour != entity.EnemyColours[i] {
			t.Errorf("enemy %d: expected colour %v, got %v", i, entity.EnemyColours[i], e.Colour)
		}
		if e.Pose.Info.State != anim.Spin {
			t.Errorf("enemy %d: expected spin, got %v", i, e.Pose.Info.State)
		}
		p := e.Position()
		if p.Y != entity.SpawnHeight || p.X < -50 || p.X > 50 || p.Z < -50 || p.Z > 50 {
			t.Errorf("enemy %d spawned out of range: %+v", i, p)
		}
	}
}

func TestLevelSpawnOverridesOptions(t *testing.T) {
	lvl := flatLevel()
	lvl.Spawn = &math.Vec3{X: 4, Y: entity.SpawnHeight, Z: -3}

	w := New(quietOptions(), lvl, 1, nil)
	if got := w.Player().Position(); got != *lvl.Spawn {
		t.Errorf("expected level spawn %+v, got %+v", *lvl.Spawn, got)
	}
}

func TestIdleStandsStill(t *testing.T) {
	w := New(quietOptions(), flatLevel(), 1, nil)

	rep := run(w, 120, input.Intent{})

	player := w.Player()
	if !player.Grounded() {
		t.Error("expected player to stay grounded")
	}
	if y := player.Position().Y; y < entity.SpawnHeight-0.01 || y > entity.SpawnHeight+0.01 {
		t.Errorf("expected head height %f, got %f", entity.SpawnHeight, y)
	}
	if player.Pose.Info.State != anim.Idle {
		t.Errorf("expected idle, got %v", player.Pose.Info.State)
	}
	if len(rep.Contacts) != 1 || rep.Contacts[0].Push.Axis != physics.Up {
		t.Errorf("expected one upward contact per tick, got %+v", rep.Contacts)
	}
	if rep.Tick != 120 || w.CurrentTick() != 120 {
		t.Errorf("expected tick 120, got %d", rep.Tick)
	}
}

func TestWalkAndRun(t *testing.T) {
	tests := []struct {
		name  string
		in    input.Intent
		state anim.PlayerState
	}{
		{"walk", input.Intent{Forward: 1}, anim.Walking},
		{"run", input.Intent{Forward: 1, Sprint: true}, anim.Running},
		{"strafe", input.Intent{Right: -1}, anim.Walking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(quietOptions(), flatLevel(), 1, nil)
			start := w.Player().Position()

			run(w, 30, tt.in)

			player := w.Player()
			if player.Pose.Info.State != tt.state {
				t.Errorf("expected %v, got %v", tt.state, player.Pose.Info.State)
			}
			moved := player.Position().Sub(start)
			want := w.Camera.MoveDir(tt.in.Forward, tt.in.Right)
			if moved.Dot(want) <= 0 {
				t.Errorf("expected movement along %+v, moved %+v", want, moved)
			}
		})
	}
}

func TestJump(t *testing.T) {
	w := New(quietOptions(), flatLevel(), 1, nil)

	w.Tick(dt, input.Intent{Jump: true})
	player := w.Player()
	if player.Grounded() {
		t.Fatal("player should leave the ground")
	}
	if player.Position().Y <= entity.SpawnHeight {
		t.Errorf("expected to rise, got y %f", player.Position().Y)
	}

	w.Tick(dt, input.Intent{Jump: true})
	if player.Pose.Info.State != anim.Jumping {
		t.Errorf("expected jumping, got %v", player.Pose.Info.State)
	}

	// Airborne jump input does nothing; the player comes back down.
	landed := false
	for i := 0; i < 600 && !landed; i++ {
		w.Tick(dt, input.Intent{Jump: i < 10})
		landed = player.Grounded()
	}
	if !landed {
		t.Fatal("player never landed")
	}
}

func TestFallingOffLoses(t *testing.T) {
	lvl := &level.Level{
		Name:  "void",
		Boxes: []level.Box{{Position: math.Vec3{X: 500}, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}},
	}
	w := New(quietOptions(), lvl, 1, nil)

	var rep Report
	for i := 0; i < 1000 && rep.Outcome == Playing; i++ {
		rep = w.Tick(dt, input.Intent{})
	}
	if rep.Outcome != Lost || w.Outcome() != Lost {
		t.Fatalf("expected lost, got %v", rep.Outcome)
	}
	if y := w.Player().Position().Y; y >= -50 {
		t.Errorf("expected player below -50, got %f", y)
	}

	// The world is frozen afterwards.
	tick := w.CurrentTick()
	pos := w.Player().Position()
	rep = w.Tick(dt, input.Intent{Forward: 1})
	if rep.Tick != tick || w.Player().Position() != pos {
		t.Error("world kept simulating after the run ended")
	}
}

func TestShootingLastEnemyWins(t *testing.T) {
	opts := quietOptions()
	opts.EnemyCount = 1
	opts.EnemyHealth = 1
	w := New(opts, flatLevel(), 1, nil)

	enemy := w.Skeletons.ByTeam(entity.TeamEnemy)[0]
	center, _ := enemy.Hitbox()
	w.Shots.Fire(entity.TeamPlayer, center, math.Vec3{})

	rep := w.Tick(dt, input.Intent{})

	if len(rep.Hits) != 1 || rep.Hits[0].Target != enemy {
		t.Fatalf("expected a hit on the enemy, got %+v", rep.Hits)
	}
	if rep.Outcome != Won {
		t.Errorf("expected won, got %v", rep.Outcome)
	}
	if w.EnemiesLeft() != 0 || w.Skeletons.Get(enemy.ID) != nil {
		t.Error("dead enemy should be removed")
	}
}

func TestEnemyHitRelocates(t *testing.T) {
	opts := quietOptions()
	opts.EnemyCount = 1
	w := New(opts, flatLevel(), 1, nil)

	enemy := w.Skeletons.ByTeam(entity.TeamEnemy)[0]
	before := enemy.Position()
	center, _ := enemy.Hitbox()
	w.Shots.Fire(entity.TeamPlayer, center, math.Vec3{})

	rep := w.Tick(dt, input.Intent{})

	if rep.Outcome != Playing {
		t.Fatalf("expected the run to continue, got %v", rep.Outcome)
	}
	if enemy.Health != 2 {
		t.Errorf("expected health 2, got %d", enemy.Health)
	}
	after := enemy.Position()
	if after == before {
		t.Error("expected the enemy to relocate")
	}
	if after.Y != before.Y {
		t.Errorf("relocation should keep height, %f -> %f", before.Y, after.Y)
	}
	if after.X < -50 || after.X > 50 || after.Z < -50 || after.Z > 50 {
		t.Errorf("relocated out of range: %+v", after)
	}
}

func TestPlayerHitKnockback(t *testing.T) {
	w := New(quietOptions(), flatLevel(), 1, nil)
	player := w.Player()

	center, _ := player.Hitbox()
	w.Shots.Fire(entity.TeamEnemy, center, math.Vec3{})

	rep := w.Tick(dt, input.Intent{})

	if len(rep.Hits) != 1 || rep.Hits[0].Target != player {
		t.Fatalf("expected a hit on the player, got %+v", rep.Hits)
	}
	v := player.Body.Velocity
	if v.Y != KnockbackLift {
		t.Errorf("expected vy %d, got %f", KnockbackLift, v.Y)
	}
	if v.X < -5 || v.X > 5 || v.Z < -5 || v.Z > 5 {
		t.Errorf("horizontal knockback out of range: %+v", v)
	}

	w.Tick(dt, input.Intent{})
	if player.Grounded() {
		t.Error("knockback should lift the player off the ground")
	}
}

func TestEnemiesFireAtPlayer(t *testing.T) {
	opts := quietOptions()
	opts.FireChance = 1
	w := New(opts, flatLevel(), 1, nil)

	rep := w.Tick(dt, input.Intent{})
	if rep.Fired != 3 {
		t.Fatalf("expected 3 enemy shots, got %d", rep.Fired)
	}

	target := w.Player().Position()
	enemies := w.Skeletons.ByTeam(entity.TeamEnemy)
	for i, s := range w.Shots.Shots() {
		if s.Team != entity.TeamEnemy {
			t.Errorf("shot %d: expected enemy team", i)
		}
		// One tick of flight: velocity was player - enemy, then dropped.
		want := target.Sub(enemies[i].Position())
		want.Y -= 0.1
		if !s.Velocity.ApproxEqual(want, 1e-3) {
			t.Errorf("shot %d: expected velocity %+v, got %+v", i, want, s.Velocity)
		}
	}
}

func TestPlayerShotCooldown(t *testing.T) {
	opts := quietOptions()
	opts.ShotCooldown = 15
	w := New(opts, flatLevel(), 1, nil)

	fired := 0
	for i := 0; i < 31; i++ {
		fired += w.Tick(dt, input.Intent{Shoot: true}).Fired
	}
	if fired != 3 {
		t.Errorf("expected 3 shots in 31 ticks, got %d", fired)
	}
}

func TestSameSeedReplays(t *testing.T) {
	opts := DefaultOptions()
	opts.FireChance = 0.05

	script, err := input.NewScript(true,
		input.Segment{Ticks: 40, Intent: input.Intent{Forward: 1}},
		input.Segment{Ticks: 5, Intent: input.Intent{Shoot: true, Yaw: 1}},
		input.Segment{Ticks: 20, Intent: input.Intent{Right: 1, Jump: true}},
	)
	if err != nil {
		t.Fatalf("NewScript failed: %v", err)
	}

	a := New(opts, level.Default(), 99, nil)
	b := New(opts, level.Default(), 99, nil)
	for tick := 0; tick < 600; tick++ {
		in := script.Next(tick)
		ra, rb := a.Tick(dt, in), b.Tick(dt, in)
		if ra.Fired != rb.Fired || len(ra.Hits) != len(rb.Hits) || ra.Outcome != rb.Outcome {
			t.Fatalf("tick %d: runs diverged", tick)
		}
	}

	if a.Player().Position() != b.Player().Position() {
		t.Errorf("player positions diverged: %+v vs %+v", a.Player().Position(), b.Player().Position())
	}
	ea, eb := a.Skeletons.All(), b.Skeletons.All()
	if len(ea) != len(eb) {
		t.Fatalf("skeleton counts diverged: %d vs %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i].Position() != eb[i].Position() {
			t.Errorf("skeleton %d diverged", i)
		}
	}
}

func TestCelebrate(t *testing.T) {
	w := New(quietOptions(), flatLevel(), 1, nil)
	w.Celebrate(dt)

	if got := w.Player().Pose.Info.State; got != anim.Cheering {
		t.Errorf("expected cheering, got %v", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Spawn = math.Vec3{}
	cfg.Enemies.Count = 7

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("OptionsFromConfig failed: %v", err)
	}
	if opts.Spawn != (math.Vec3{Y: entity.SpawnHeight}) {
		t.Errorf("zero spawn should fall back to the standing height, got %+v", opts.Spawn)
	}
	if opts.EnemyCount != 7 {
		t.Errorf("expected 7 enemies, got %d", opts.EnemyCount)
	}
	if opts.Curve == nil {
		t.Error("expected a blend curve")
	}

	cfg.Animation.Easing = "wobble"
	if _, err := OptionsFromConfig(cfg); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestPillarStopsWalking(t *testing.T) {
	pillar := -1
	for i, b := range level.Default().Boxes {
		if b.Name == "pillar" {
			pillar = i
		}
	}
	if pillar < 0 {
		t.Fatal("built-in arena has no pillar")
	}
	lvl := level.Default()
	face := lvl.Boxes[pillar].Position.Z + lvl.Boxes[pillar].Scale.Z/2 // near face, z = -18.5

	tests := []struct {
		name        string
		resolutions int
		blocked     bool
	}{
		{"default options", DefaultOptions().MaxResolutions, true},
		{"single resolution", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := quietOptions()
			opts.MaxResolutions = tt.resolutions
			w := New(opts, level.Default(), 1, nil)
			player := w.Player()

			hitPillar := false
			for i := 0; i < 600; i++ {
				rep := w.Tick(dt, input.Intent{Forward: 1, Sprint: true})
				for _, c := range rep.Contacts {
					if c.Wall == pillar {
						hitPillar = true
					}
				}
			}

			// The head hitbox (half width 0.5) leads the body.
			z := player.Position().Z
			if tt.blocked {
				if !hitPillar {
					t.Error("expected the pillar to be resolved")
				}
				if z < face+0.5-1e-3 {
					t.Errorf("player entered the pillar: z %f, face %f", z, face)
				}
				if !player.Grounded() {
					t.Error("player should stay grounded against the pillar")
				}
				return
			}
			if hitPillar {
				t.Error("with one resolution the floor should shadow the pillar")
			}
			if z > face-3 {
				t.Errorf("expected to pass through the pillar, stopped at z %f", z)
			}
		})
	}
}

func TestWinBeatsFallSameTick(t *testing.T) {
	opts := quietOptions()
	opts.EnemyCount = 1
	opts.EnemyHealth = 1
	w := New(opts, flatLevel(), 1, nil)

	player := w.Player()
	player.SetPosition(math.Vec3{Y: -60})

	enemy := w.Skeletons.ByTeam(entity.TeamEnemy)[0]
	center, _ := enemy.Hitbox()
	w.Shots.Fire(entity.TeamPlayer, center, math.Vec3{})

	rep := w.Tick(dt, input.Intent{})

	if player.Position().Y >= opts.LoseY {
		t.Fatalf("player should be below the lose height, got %f", player.Position().Y)
	}
	if rep.Outcome != Won || w.Outcome() != Won {
		t.Errorf("expected won, got %v", rep.Outcome)
	}
}
