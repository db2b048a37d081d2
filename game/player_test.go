package game

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/hopper/config"
	"github.com/pthm-cable/hopper/geom"
	"github.com/pthm-cable/hopper/neural"
)

func testEnvironment(t *testing.T) Environment {
	t.Helper()
	config.MustInit("")
	return newEnvironment(config.Cfg())
}

func testPlayer(t *testing.T, env *Environment) Player {
	t.Helper()
	rng := rand.New(rand.NewSource(99))
	brain := neural.New(rng, NumInputs, 4, 1)
	return newPlayer(brain, env.spawnPos, env.playerSize)
}

func TestPlayerSpawnsOnFloor(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)

	if p.State != Running || !p.Alive || p.Score != 0 {
		t.Errorf("fresh player = %+v", p)
	}
	if want := env.Floor.Box.Min.Y - p.Size.Y; p.Pos.Y != want {
		t.Errorf("spawn y = %v, want resting on floor at %v", p.Pos.Y, want)
	}
}

func TestPlayerVelocityXForcedZero(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)
	p.Vel.X = 123 // no horizontal control exists

	p.update(1.0/30.0, &env)

	if p.Vel.X != 0 {
		t.Errorf("velocity.x = %v after update, want 0", p.Vel.X)
	}
}

func TestPlayerScoreAccumulates(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)

	dt := float32(1.0 / 30.0)
	for i := 0; i < 10; i++ {
		p.update(dt, &env)
	}

	want := 10 * dt
	if diff := p.Score - want; diff < -1e-5 || diff > 1e-5 {
		t.Errorf("score = %v, want %v", p.Score, want)
	}
}

func TestPlayerDiesOnObstacleContact(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)

	// Park the obstacle on top of the player.
	env.Obstacle.Pos = p.Pos

	posBefore := p.Pos
	scoreBefore := p.Score
	p.update(1.0/30.0, &env)

	if p.Alive {
		t.Fatal("player overlapping the obstacle should die")
	}
	// Death stops the tick: no motion, no score.
	if p.Pos != posBefore {
		t.Errorf("dead player moved from %+v to %+v", posBefore, p.Pos)
	}
	if p.Score != scoreBefore {
		t.Errorf("dead player scored: %v -> %v", scoreBefore, p.Score)
	}
}

func TestDeadPlayerIsInert(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)
	p.Alive = false
	p.Score = 3.5
	before := p

	p.update(1.0/30.0, &env)

	if p != before {
		t.Errorf("dead player changed: %+v -> %+v", before, p)
	}
}

func TestPlayerLandsExactlyOnFloor(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)

	// Falling fast enough that the next tick's predicted box reaches
	// the floor.
	p.State = Jumping
	p.Pos.Y = env.Floor.Box.Min.Y - p.Size.Y - 5
	p.Vel.Y = 300

	p.update(1.0/30.0, &env)

	if p.State != Running {
		t.Errorf("state = %v, want Running after landing", p.State)
	}
	if p.Vel.Y != 0 {
		t.Errorf("velocity.y = %v, want 0 after landing", p.Vel.Y)
	}
	if want := env.Floor.Box.Min.Y - p.Size.Y; p.Pos.Y != want {
		t.Errorf("landed at y = %v, want exactly %v", p.Pos.Y, want)
	}
}

func TestPlayerGravityWhileJumping(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)

	// High in the air, moving up; gravity must pull the velocity down.
	p.State = Jumping
	p.Pos.Y = 100
	p.Vel.Y = env.JumpVelocity

	dt := float32(1.0 / 30.0)
	p.update(dt, &env)

	want := env.JumpVelocity + env.Gravity*dt
	if diff := p.Vel.Y - want; diff < -1e-3 || diff > 1e-3 {
		t.Errorf("velocity.y = %v, want %v", p.Vel.Y, want)
	}
	if p.State != Jumping {
		t.Error("player should still be airborne")
	}
}

func TestJumpOnlyFromRunning(t *testing.T) {
	env := testEnvironment(t)
	p := testPlayer(t, &env)

	p.State = Jumping
	p.Vel.Y = -100
	p.jump(&env)
	if p.Vel.Y != -100 {
		t.Error("jump while airborne should be a no-op")
	}

	p.State = Running
	p.Vel.Y = 0
	p.jump(&env)
	if p.Vel.Y != env.JumpVelocity || p.State != Jumping {
		t.Errorf("jump from running: vel.y = %v, state = %v", p.Vel.Y, p.State)
	}
}

func TestPlayerBox(t *testing.T) {
	p := Player{Pos: geom.V(100, 575), Size: geom.V(25, 25)}
	b := p.Box()
	if b.Min != geom.V(100, 575) || b.Max != geom.V(125, 600) {
		t.Errorf("Box = %+v", b)
	}
}
