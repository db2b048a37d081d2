// Package game drives the neuro-evolution jump game: a population of
// network-controlled players, a shared obstacle, and the generational
// turnover that breeds each new population.
package game

import (
	"math/rand"
	"time"

	"github.com/pthm-cable/hopper/config"
	"github.com/pthm-cable/hopper/geom"
	"github.com/pthm-cable/hopper/neural"
	"github.com/pthm-cable/hopper/telemetry"
)

// NumInputs is the number of sensors fed to every brain: the player's
// height, the horizontal distance to the obstacle, and the current
// score.
const NumInputs = 3

// Floor is the immutable ground collider.
type Floor struct {
	Box geom.AABB
}

// Environment is the shared world state every player reads each tick.
// It is mutated only between player passes, never during one.
type Environment struct {
	Floor    Floor
	Obstacle Obstacle

	Width         float32 // playfield width, used for obstacle wrap
	Gravity       float32
	JumpVelocity  float32
	JumpThreshold float32

	spawnPos   geom.Vec2
	playerSize geom.Vec2
}

// newEnvironment builds the playfield from config: a full-width floor
// strip, the obstacle at the right edge, and the canonical player spawn
// resting on the floor.
func newEnvironment(cfg *config.Config) Environment {
	width := cfg.Derived.WorldW32
	floorTop := cfg.Derived.FloorTop
	size := float32(cfg.Player.Size)

	return Environment{
		Floor: Floor{
			Box: geom.AABB{
				Min: geom.V(0, floorTop),
				Max: geom.V(width, floorTop+float32(cfg.Floor.Thickness)),
			},
		},
		Obstacle:      newObstacle(cfg),
		Width:         width,
		Gravity:       cfg.Derived.Gravity32,
		JumpVelocity:  float32(cfg.Player.JumpVelocity),
		JumpThreshold: float32(cfg.Player.JumpThreshold),
		spawnPos:      geom.V(float32(cfg.Player.SpawnX), floorTop-size),
		playerSize:    geom.V(size, size),
	}
}

// Options configures a new game instance.
type Options struct {
	Seed      int64  // 0 = time-based
	LogStats  bool   // emit slog records at each generation turnover
	OutputDir string // write CSV telemetry and a config snapshot here

	// Config overrides the global config for this instance. Used by the
	// optimizer to run many parameterizations concurrently.
	Config *config.Config
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	players []Player
	env     Environment

	generation uint32
	tick       int64
	genStart   int64 // tick at which the current generation spawned
	aliveCount int

	paused      bool
	quit        bool
	speed       float32 // time multiplier applied to elapsed frame time
	accumulator float32 // leftover simulation time, in seconds

	parallel  *parallelState
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
}

// New creates a game with a fresh random population.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		env:       newEnvironment(cfg),
		speed:     float32(cfg.Speed.Initial),
		parallel:  newParallelState(),
		collector: telemetry.NewCollector(cfg.Telemetry.History),
		logStats:  opts.LogStats,
	}

	g.players = make([]Player, cfg.Population.Size)
	for i := range g.players {
		brain := neural.New(g.rng, NumInputs, cfg.Neural.Hidden, cfg.Neural.Outputs)
		g.players[i] = newPlayer(brain, g.env.spawnPos, g.env.playerSize)
	}
	g.aliveCount = len(g.players)

	if opts.OutputDir != "" {
		out, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		if err := out.WriteConfig(cfg); err != nil {
			return nil, err
		}
		g.output = out
	}

	return g, nil
}

// Update runs input handling and as many fixed ticks as the elapsed
// frame time covers. The leftover fraction stays in the accumulator and
// is used as the render interpolation.
func (g *Game) Update(frameTime float32) {
	g.handleInput(frameTime)

	if g.paused {
		return
	}

	elapsed := frameTime * g.speed
	if max := float32(g.cfg.Physics.MaxFrameTime); elapsed > max {
		elapsed = max
	}
	g.accumulator += elapsed

	dt := g.cfg.Derived.DT32
	for g.accumulator > dt {
		g.step(dt)
		g.accumulator -= dt
	}
}

// UpdateHeadless advances exactly one tick with no input or rendering.
func (g *Game) UpdateHeadless() {
	g.step(g.cfg.Derived.DT32)
}

// step is a single simulation tick: every live player updates (in
// parallel when the population is large enough), then the shared state
// advances sequentially - either the obstacle moves, or the generation
// turns over when nobody is left alive.
func (g *Game) step(dt float32) {
	g.updatePlayers(dt)

	alive := 0
	for i := range g.players {
		if g.players[i].Alive {
			alive++
		}
	}
	g.aliveCount = alive

	if alive > 0 {
		g.env.Obstacle.update(dt, g.env.Width)
	} else {
		g.nextGeneration()
		g.resetEnvironment()
	}

	g.tick++
}

// resetEnvironment returns the shared obstacle to its spawn state for
// the next generation.
func (g *Game) resetEnvironment() {
	g.env.Obstacle.reset(g.env.Width)
	g.genStart = g.tick
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// Generation returns the current generation counter.
func (g *Game) Generation() uint32 {
	return g.generation
}

// AliveCount returns the number of live players after the last tick.
func (g *Game) AliveCount() int {
	return g.aliveCount
}

// BestScore returns the best score seen across all completed
// generations.
func (g *Game) BestScore() float64 {
	best, ok := g.collector.Best()
	if !ok {
		return 0
	}
	return best.BestScore
}

// BestLivingScore returns the highest score among players still alive
// in the current generation.
func (g *Game) BestLivingScore() float32 {
	var score float32
	for i := range g.players {
		p := &g.players[i]
		if p.Alive && p.Score > score {
			score = p.Score
		}
	}
	return score
}

// History exposes the recorded generation stats.
func (g *Game) History() []telemetry.GenerationStats {
	return g.collector.History()
}

// ShouldClose reports whether the player asked to quit.
func (g *Game) ShouldClose() bool {
	return g.quit
}

// Unload releases workers and flushes telemetry output.
func (g *Game) Unload() {
	g.parallel.stopWorkers()
	if g.output != nil {
		g.output.Close()
	}
}
