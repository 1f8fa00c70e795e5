// Package config loads the optional YAML settings file. API credentials are
// read from the environment by the entrypoints, not here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Addr        string  `yaml:"addr"`
	Model       string  `yaml:"model"`
	MaxTokens   int64   `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	MaxSteps    int     `yaml:"max_steps"`
}

func Defaults() Settings {
	return Settings{
		Addr:        ":8000",
		MaxTokens:   8096,
		Temperature: 0.7,
		MaxSteps:    15,
	}
}

// Load reads settings from path, applying defaults for anything unset.
// An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	if s.Addr == "" {
		s.Addr = ":8000"
	}
	if s.MaxTokens <= 0 {
		return Settings{}, fmt.Errorf("max_tokens must be positive, got %d", s.MaxTokens)
	}
	if s.Temperature < 0 || s.Temperature > 1 {
		return Settings{}, fmt.Errorf("temperature must be within [0, 1], got %g", s.Temperature)
	}
	if s.MaxSteps <= 0 {
		return Settings{}, fmt.Errorf("max_steps must be positive, got %d", s.MaxSteps)
	}
	return s, nil
}
