package enumeration

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/mitchellh/mapstructure"
)

const defaultChunkSize = 1 << 14

var validColors = []string{"auto", "always", "never"}

type Config struct {
	Workers   int    `mapstructure:"workers"`   // Jobs running at once
	ChunkSize int    `mapstructure:"chunkSize"` // Configurations per job
	Color     string `mapstructure:"color"`     // "auto", "always" or "never"
}

func DefaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		ChunkSize: defaultChunkSize,
		Color:     "auto",
	}
}

// LoadConfig reads a JSON config file on top of the defaults; an empty path or a missing file yields the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(configJson); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config Config) Validate() error {
	if config.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0: %v", config.Workers)
	} else if config.ChunkSize <= 0 {
		return fmt.Errorf("chunkSize must be greater than 0: %v", config.ChunkSize)
	} else if !slices.Contains(validColors, config.Color) {
		return fmt.Errorf("%v is not a valid color mode", config.Color)
	}
	return nil
}
