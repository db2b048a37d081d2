package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/hopper/config"
)

// OutputManager handles structured experiment output with CSV logging.
// A nil manager is valid and discards everything, so callers don't need
// to guard every write.
type OutputManager struct {
	dir     string
	genFile *os.File

	genHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	genPath := filepath.Join(dir, "generations.csv")
	f, err := os.Create(genPath)
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}

	return &OutputManager{dir: dir, genFile: f}, nil
}

// WriteConfig saves the current configuration as YAML alongside the
// CSV output, so a run is reproducible from its output directory.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteGeneration appends one generation record to generations.csv.
func (om *OutputManager) WriteGeneration(stats GenerationStats) error {
	if om == nil {
		return nil
	}

	records := []GenerationStats{stats}

	if !om.genHeaderWritten {
		if err := gocsv.Marshal(records, om.genFile); err != nil {
			return fmt.Errorf("writing generation record: %w", err)
		}
		om.genHeaderWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, om.genFile); err != nil {
		return fmt.Errorf("writing generation record: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.genFile == nil {
		return nil
	}
	return om.genFile.Close()
}
