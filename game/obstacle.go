package game

import (
	"github.com/pthm-cable/hopper/config"
	"github.com/pthm-cable/hopper/geom"
)

// Obstacle is the single shared hazard. It scrolls leftward and wraps
// back to the right edge once fully off-screen.
type Obstacle struct {
	Pos  geom.Vec2
	Size geom.Vec2

	// VelX is the horizontal speed in pixels per second, negative
	// because the obstacle moves left.
	VelX float32

	startSpeed float32
	ramp       rampPolicy
}

// rampPolicy makes the obstacle progressively faster each tick until a
// floor speed is reached. It is configurable because both behaviors are
// legitimate difficulty settings.
type rampPolicy struct {
	enabled  bool
	rate     float32
	minSpeed float32
}

// newObstacle places the obstacle at the right edge, resting on the
// floor.
func newObstacle(cfg *config.Config) Obstacle {
	return Obstacle{
		Pos: geom.V(
			cfg.Derived.WorldW32,
			cfg.Derived.FloorTop-float32(cfg.Obstacle.Height),
		),
		Size:       geom.V(float32(cfg.Obstacle.Width), float32(cfg.Obstacle.Height)),
		VelX:       float32(cfg.Obstacle.StartSpeed),
		startSpeed: float32(cfg.Obstacle.StartSpeed),
		ramp: rampPolicy{
			enabled:  cfg.Obstacle.Ramp.Enabled,
			rate:     float32(cfg.Obstacle.Ramp.Rate),
			minSpeed: float32(cfg.Obstacle.Ramp.MinSpeed),
		},
	}
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() geom.AABB {
	return geom.Box(o.Pos, o.Size)
}

// update moves the obstacle and applies the wrap and ramp policies.
func (o *Obstacle) update(dt, fieldWidth float32) {
	o.Pos.X += o.VelX * dt

	// Wrap only once the obstacle is fully past the left edge.
	if o.Pos.X+o.Size.X < 0 {
		o.Pos.X = fieldWidth
	}

	if o.ramp.enabled && o.VelX > o.ramp.minSpeed {
		o.VelX -= o.ramp.rate * dt
	}
}

// reset returns the obstacle to its spawn position and initial speed,
// undoing any ramp.
func (o *Obstacle) reset(fieldWidth float32) {
	o.Pos.X = fieldWidth
	o.VelX = o.startSpeed
}
