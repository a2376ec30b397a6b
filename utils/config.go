package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Size        int           `json:"size"`
	Probability float64       `json:"probability"`
	FrameRate   time.Duration `json:"frame_rate"`
	Seed        int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:        20,
		Probability: 30, // percent of cells seeded alive
		FrameRate:   time.Second,
		Seed:        0, // 0 means seed from the wall clock
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configured values against their documented ranges.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Probability < 0 || c.Probability > 100 {
		return errors.Errorf("probability must be in [0, 100], got %v", c.Probability)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	}
	return nil
}
