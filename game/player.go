package game

import (
	"github.com/pthm-cable/hopper/geom"
	"github.com/pthm-cable/hopper/matrix"
	"github.com/pthm-cable/hopper/neural"
)

// MovementState is the player's state machine. Death is not a state; it
// is tracked by the Alive flag.
type MovementState uint8

const (
	// Running is the grounded state.
	Running MovementState = iota

	// Jumping is airborne; gravity applies until the player lands.
	Jumping
)

// Player is one individual of the population: a rectangle controlled by
// its own neural network. Velocity is in pixels per second.
type Player struct {
	Pos   geom.Vec2
	Size  geom.Vec2
	Vel   geom.Vec2
	State MovementState
	Alive bool
	Score float32
	Brain *neural.Network
}

// newPlayer creates a live player at the canonical spawn.
func newPlayer(brain *neural.Network, pos, size geom.Vec2) Player {
	return Player{
		Pos:   pos,
		Size:  size,
		State: Running,
		Alive: true,
		Brain: brain,
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() geom.AABB {
	return geom.Box(p.Pos, p.Size)
}

// update advances the player by one tick. The environment is read-only;
// the player writes only its own state, which makes the per-player pass
// safe to run in parallel.
func (p *Player) update(dt float32, env *Environment) {
	if !p.Alive {
		return
	}

	// Death check comes first: a player touching the obstacle does not
	// move again this tick.
	if p.Box().Intersects(env.Obstacle.Box()) {
		p.Alive = false
		return
	}

	p.think(env)

	if p.State == Jumping {
		p.Vel.Y += env.Gravity * dt

		// Predict the collision one tick in advance so the player never
		// overlaps the floor for a single rendered frame after landing.
		future := p.Pos.AddScaled(p.Vel, dt)
		if geom.Box(future, p.Size).Intersects(env.Floor.Box) {
			p.Vel.Y = 0
			p.Pos.Y = env.Floor.Box.Min.Y - p.Size.Y
			p.State = Running
		}
	}

	p.Score += dt

	// No horizontal control exists; never accumulate x velocity.
	p.Vel.X = 0
	p.Pos = p.Pos.AddScaled(p.Vel, dt)
}

// think feeds the sensors through the network and jumps when the output
// clears the threshold.
func (p *Player) think(env *Environment) {
	input := matrix.FromRows([][]float32{{
		p.Pos.Y,
		env.Obstacle.Pos.X - p.Pos.X,
		p.Score,
	}})

	out, err := p.Brain.Feed(input)
	if err != nil {
		// The network topology is fixed at spawn; a shape mismatch here
		// is unreachable.
		return
	}

	if out.At(0, 0) > env.JumpThreshold {
		p.jump(env)
	}
}

func (p *Player) jump(env *Environment) {
	if p.State == Running {
		p.Vel.Y = env.JumpVelocity
		p.State = Jumping
	}
}
