package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	scores := []float64{1, 2, 3, 4, 5}
	s := Summarize(7, scores, 150, -430)

	if s.Generation != 7 || s.Ticks != 150 || s.ObstacleSpeed != -430 {
		t.Errorf("metadata not carried through: %+v", s)
	}
	if s.BestScore != 5 {
		t.Errorf("best = %v, want 5", s.BestScore)
	}
	if math.Abs(s.MeanScore-3) > 1e-9 {
		t.Errorf("mean = %v, want 3", s.MeanScore)
	}
	// Sample standard deviation of 1..5 is sqrt(2.5).
	if math.Abs(s.StdDev-math.Sqrt(2.5)) > 1e-9 {
		t.Errorf("stddev = %v, want %v", s.StdDev, math.Sqrt(2.5))
	}
}

func TestSummarizeDegenerate(t *testing.T) {
	empty := Summarize(0, nil, 0, 0)
	if empty.BestScore != 0 || empty.MeanScore != 0 || empty.StdDev != 0 {
		t.Errorf("empty scores should summarize to zeros: %+v", empty)
	}

	single := Summarize(0, []float64{4.2}, 10, -400)
	if single.BestScore != 4.2 || single.MeanScore != 4.2 {
		t.Errorf("single score: %+v", single)
	}
	if single.StdDev != 0 {
		t.Errorf("stddev of a single sample = %v, want 0", single.StdDev)
	}
}

func TestCollectorHistoryBound(t *testing.T) {
	c := NewCollector(3)
	for i := 0; i < 5; i++ {
		c.Record(GenerationStats{Generation: uint32(i), BestScore: float64(i)})
	}

	h := c.History()
	if len(h) != 3 {
		t.Fatalf("history length = %d, want 3", len(h))
	}
	if h[0].Generation != 2 || h[2].Generation != 4 {
		t.Errorf("history window = [%d..%d], want [2..4]", h[0].Generation, h[2].Generation)
	}

	last, ok := c.Last()
	if !ok || last.Generation != 4 {
		t.Errorf("Last = %+v, %v", last, ok)
	}
}

func TestCollectorBestSurvivesEviction(t *testing.T) {
	c := NewCollector(2)
	c.Record(GenerationStats{Generation: 0, BestScore: 9})
	c.Record(GenerationStats{Generation: 1, BestScore: 1})
	c.Record(GenerationStats{Generation: 2, BestScore: 2})

	best, ok := c.Best()
	if !ok || best.Generation != 0 || best.BestScore != 9 {
		t.Errorf("Best = %+v, %v; want generation 0 with score 9", best, ok)
	}
}

func TestCollectorEmpty(t *testing.T) {
	c := NewCollector(8)
	if _, ok := c.Last(); ok {
		t.Error("Last on empty collector should report false")
	}
	if _, ok := c.Best(); ok {
		t.Error("Best on empty collector should report false")
	}
}
