package main

import (
	"log"
	"math"
	"sync"

	"github.com/pthm-cable/hopper/config"
	"github.com/pthm-cable/hopper/game"
	"github.com/pthm-cable/hopper/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
// Fitness is the negated best score reached within the generation
// budget, so lower is better.
type FitnessEvaluator struct {
	params         *ParamVector
	maxGenerations int
	maxTicks       int64
	seeds          []int64
	baseConfig     *config.Config

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestHistory []telemetry.GenerationStats
	lastBest    float64 // best score from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxGenerations int, maxTicks int64, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:         params,
		maxGenerations: maxGenerations,
		maxTicks:       maxTicks,
		seeds:          seeds,
		baseConfig:     baseCfg,
		bestFitness:    math.Inf(1),
	}
}

// BestHistory returns the generation history from the best evaluation.
func (fe *FitnessEvaluator) BestHistory() []telemetry.GenerationStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestHistory
}

// LastBest returns the mean best score from the most recent evaluation.
func (fe *FitnessEvaluator) LastBest() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastBest
}

// runResult holds the results from a single simulation run.
type runResult struct {
	bestScore float64
	history   []telemetry.GenerationStats
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	// Run all seeds in parallel
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	// Aggregate: mean best score across seeds, and keep the history of
	// the strongest seed for reporting.
	var total float64
	bestSeedScore := math.Inf(-1)
	var bestSeedHistory []telemetry.GenerationStats

	for _, r := range results {
		total += r.bestScore
		if r.bestScore > bestSeedScore {
			bestSeedScore = r.bestScore
			bestSeedHistory = r.history
		}
	}

	meanBest := total / float64(len(fe.seeds))
	fitness := -meanBest

	fe.mu.Lock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
		fe.bestHistory = bestSeedHistory
	}
	fe.lastBest = meanBest
	fe.mu.Unlock()

	return fitness
}

// runSimulation executes a single headless run: a fixed budget of
// generations (with a tick cap so a run that never dies still ends).
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	g, err := game.New(game.Options{
		Seed:   seed,
		Config: cfg,
	})
	if err != nil {
		// Only output-dir setup can fail and none is requested, but a
		// silently zero-scored run would skew the search.
		log.Printf("failed to create game (seed %d): %v", seed, err)
		return runResult{}
	}
	defer g.Unload()

	for int(g.Generation()) < fe.maxGenerations && g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}

	out := runResult{
		history:   append([]telemetry.GenerationStats(nil), g.History()...),
		bestScore: g.BestScore(),
	}

	// A run that hit the tick cap mid-generation still has living
	// players; count their progress too.
	if living := float64(g.BestLivingScore()); living > out.bestScore {
		out.bestScore = living
	}
	return out
}

// copyConfig creates a copy of the base config safe to mutate per run.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
