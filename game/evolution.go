package game

import (
	"log/slog"
	"sort"

	"github.com/pthm-cable/hopper/telemetry"
)

// nextGeneration breeds a replacement population from the two fittest
// individuals of the one that just died out, and advances the
// generation counter.
func (g *Game) nextGeneration() {
	// Rank by fitness. The sort is stable so equal scores keep their
	// relative order.
	sort.SliceStable(g.players, func(i, j int) bool {
		return g.players[i].Score > g.players[j].Score
	})

	g.recordGeneration()

	// One seed child from the two best parents; every slot in the new
	// population is an independently mutated clone of it.
	seed := g.players[0].Brain
	if len(g.players) > 1 {
		child, err := seed.Crossover(g.rng, g.players[1].Brain)
		if err != nil {
			// All brains share one topology, so this is unreachable;
			// fall back to the best parent rather than dying mid-run.
			slog.Error("crossover failed", "error", err)
			child = seed.Clone()
		}
		seed = child
	}

	prob := float32(g.cfg.Mutation.Probability)
	for i := range g.players {
		brain := seed.Clone()
		brain.Mutate(g.rng, prob)
		g.players[i] = newPlayer(brain, g.env.spawnPos, g.env.playerSize)
	}

	g.aliveCount = len(g.players)
	g.generation++
}

// recordGeneration summarizes the finished generation into telemetry.
// Called after ranking, before the population is replaced.
func (g *Game) recordGeneration() {
	scores := make([]float64, len(g.players))
	for i := range g.players {
		scores[i] = float64(g.players[i].Score)
	}

	stats := telemetry.Summarize(
		g.generation,
		scores,
		g.tick-g.genStart,
		float64(g.env.Obstacle.VelX),
	)

	g.collector.Record(stats)

	if g.output != nil {
		if err := g.output.WriteGeneration(stats); err != nil {
			slog.Error("writing generation record", "error", err)
		}
	}
	if g.logStats {
		g.logGeneration(stats)
	}
}
