package experiments

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config describes a fairness experiment: which board sizes and
// Thue-Morse override values to test and how many games to play per
// pairing. A TM value of 0 (the plain-alternation baseline) is always
// included.
type Config struct {
	Name       string `yaml:"name"`
	BoardSizes []int  `yaml:"board_sizes"`
	TMValues   []int  `yaml:"tm_values"`
	NumGames   int    `yaml:"num_games"`
	Workers    int    `yaml:"workers"`
	OutputDir  string `yaml:"output_dir"`
}

// DefaultConfig mirrors the defaults of the original test harness.
func DefaultConfig() Config {
	return Config{
		Name:       "tm_fairness",
		BoardSizes: []int{9, 13, 19},
		TMValues:   []int{8},
		NumGames:   1000,
		Workers:    runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML config file, filling unset fields from the
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if cfg.NumGames <= 0 {
		cfg.NumGames = DefaultConfig().NumGames
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if len(cfg.BoardSizes) == 0 {
		cfg.BoardSizes = DefaultConfig().BoardSizes
	}
	return cfg, nil
}
