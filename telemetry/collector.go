// Package telemetry records per-generation statistics and writes them
// to structured experiment output.
package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes one completed generation.
type GenerationStats struct {
	Generation    uint32  `csv:"generation"`
	BestScore     float64 `csv:"best_score"`
	MeanScore     float64 `csv:"mean_score"`
	StdDev        float64 `csv:"std_dev"`
	Ticks         int64   `csv:"ticks"`
	ObstacleSpeed float64 `csv:"obstacle_speed"`
}

// Summarize computes generation statistics from the final scores of a
// wiped-out population. ObstacleSpeed is the obstacle's velocity when
// the last player died, which captures how far the ramp got.
func Summarize(generation uint32, scores []float64, ticks int64, obstacleSpeed float64) GenerationStats {
	s := GenerationStats{
		Generation:    generation,
		Ticks:         ticks,
		ObstacleSpeed: obstacleSpeed,
	}
	if len(scores) == 0 {
		return s
	}

	s.BestScore = floats.Max(scores)
	s.MeanScore = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}
	return s
}

// Collector keeps a bounded history of generation records and tracks
// the best generation seen.
type Collector struct {
	history []GenerationStats
	max     int

	best    GenerationStats
	hasBest bool
}

// NewCollector creates a collector keeping at most max records. A max
// of zero or less means unbounded.
func NewCollector(max int) *Collector {
	return &Collector{max: max}
}

// Record appends a generation record, dropping the oldest once the
// history limit is reached.
func (c *Collector) Record(s GenerationStats) {
	c.history = append(c.history, s)
	if c.max > 0 && len(c.history) > c.max {
		c.history = c.history[1:]
	}

	if !c.hasBest || s.BestScore > c.best.BestScore {
		c.best = s
		c.hasBest = true
	}
}

// History returns the retained records, oldest first.
func (c *Collector) History() []GenerationStats {
	return c.history
}

// Last returns the most recent record.
func (c *Collector) Last() (GenerationStats, bool) {
	if len(c.history) == 0 {
		return GenerationStats{}, false
	}
	return c.history[len(c.history)-1], true
}

// Best returns the record with the highest best score seen so far, even
// if it has already been dropped from the history window.
func (c *Collector) Best() (GenerationStats, bool) {
	return c.best, c.hasBest
}
