// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Floor      FloorConfig      `yaml:"floor"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Population PopulationConfig `yaml:"population"`
	Neural     NeuralConfig     `yaml:"neural"`
	Mutation   MutationConfig   `yaml:"mutation"`
	Speed      SpeedConfig      `yaml:"speed"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The playfield spans the screen.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the fixed-timestep parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`             // seconds per tick
	Gravity      float64 `yaml:"gravity"`        // px/s^2, downward positive
	MaxFrameTime float64 `yaml:"max_frame_time"` // clamp for elapsed frame time
}

// PlayerConfig holds player spawn and control parameters.
type PlayerConfig struct {
	SpawnX        float64 `yaml:"spawn_x"`
	Size          float64 `yaml:"size"`           // players are square
	JumpVelocity  float64 `yaml:"jump_velocity"`  // initial vertical speed, negative = up
	JumpThreshold float64 `yaml:"jump_threshold"` // network output above this triggers a jump
}

// FloorConfig holds the static floor geometry.
type FloorConfig struct {
	Top       float64 `yaml:"top"`
	Thickness float64 `yaml:"thickness"`
}

// ObstacleConfig holds obstacle geometry and motion parameters.
type ObstacleConfig struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	StartSpeed float64    `yaml:"start_speed"` // px/s, negative = leftward
	Ramp       RampConfig `yaml:"ramp"`
}

// RampConfig holds the increasing-difficulty policy: while enabled, the
// obstacle speeds up every tick until it reaches min_speed.
type RampConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Rate     float64 `yaml:"rate"`      // px/s^2 added to leftward speed
	MinSpeed float64 `yaml:"min_speed"` // most negative speed reachable
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Size int `yaml:"size"`
}

// NeuralConfig holds network topology parameters. The input layer is
// fixed at three sensors (height, obstacle distance, score).
type NeuralConfig struct {
	Hidden  int `yaml:"hidden"`
	Outputs int `yaml:"outputs"`
}

// MutationConfig holds mutation parameters.
type MutationConfig struct {
	Probability float64 `yaml:"probability"`
}

// SpeedConfig holds the time-multiplier control parameters.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Step    float64 `yaml:"step"` // change per second of key held
	Min     float64 `yaml:"min"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	History int `yaml:"history"` // generation records kept in memory
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	Gravity32 float32
	WorldW32  float32 // playfield width as float32
	WorldH32  float32
	FloorTop  float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from the loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.Gravity32 = float32(c.Physics.Gravity)
	c.Derived.WorldW32 = float32(c.Screen.Width)
	c.Derived.WorldH32 = float32(c.Screen.Height)
	c.Derived.FloorTop = float32(c.Floor.Top)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
