// Package main provides CMA-ES optimization for evolution parameters.
package main

import (
	"github.com/pthm-cable/hopper/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Evolution
			{Name: "mutation_probability", Path: "mutation.probability", Min: 0.01, Max: 0.30, Default: 0.10},
			// Control
			{Name: "jump_threshold", Path: "player.jump_threshold", Min: 0.50, Max: 0.95, Default: 0.75},
			{Name: "jump_velocity", Path: "player.jump_velocity", Min: -500, Max: -250, Default: -350},
			// Difficulty (ramp rate 0 effectively disables the ramp)
			{Name: "ramp_rate", Path: "obstacle.ramp.rate", Min: 0, Max: 120, Default: 30},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Mutation.Probability = clamped[0]
	cfg.Player.JumpThreshold = clamped[1]
	cfg.Player.JumpVelocity = clamped[2]
	cfg.Obstacle.Ramp.Rate = clamped[3]
	cfg.Obstacle.Ramp.Enabled = clamped[3] > 0
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Mutation.Probability,
		cfg.Player.JumpThreshold,
		cfg.Player.JumpVelocity,
		cfg.Obstacle.Ramp.Rate,
	}
}
