package game

import (
	"log/slog"

	"github.com/pthm-cable/hopper/telemetry"
)

// logGeneration emits a structured record for a finished generation.
func (g *Game) logGeneration(stats telemetry.GenerationStats) {
	slog.Info("generation complete",
		"generation", stats.Generation,
		"best", stats.BestScore,
		"mean", stats.MeanScore,
		"stddev", stats.StdDev,
		"ticks", stats.Ticks,
		"obstacle_speed", stats.ObstacleSpeed,
	)
}
