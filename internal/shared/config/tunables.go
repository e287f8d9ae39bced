package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"creator-backend/internal/scoring"
)

// Tunables are the engine's heuristic knobs: provider rates, routing
// thresholds and affinity, scoring lexicons, and platform length bands.
// Every field is optional; zero values keep the built-in defaults.
type Tunables struct {
	// Rates maps provider id to per-token USD rate.
	Rates map[string]float64 `yaml:"rates"`
	// CheapThresholdUSD is the cost ceiling below which routing always
	// picks the cheapest provider.
	CheapThresholdUSD float64 `yaml:"cheapThresholdUsd"`
	// Affinity maps task type to provider id.
	Affinity map[string]string `yaml:"affinity"`
	// Lexicon overrides the scoring word lists.
	Lexicon *scoring.Lexicon `yaml:"lexicon"`
	// Bands overrides per-platform length bands.
	Bands map[string]scoring.LengthBand `yaml:"bands"`
}

// LoadTunables parses the YAML tunables file. An empty path returns zero
// Tunables so callers fall back to defaults.
func LoadTunables(path string) (Tunables, error) {
	if path == "" {
		return Tunables{}, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("resolve tunables path: %w", err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return Tunables{}, fmt.Errorf("read tunables file %q: %w", absPath, err)
	}
	var t Tunables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parse tunables file %q: %w", absPath, err)
	}
	if err := t.validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

func (t Tunables) validate() error {
	for provider, rate := range t.Rates {
		if rate < 0 {
			return fmt.Errorf("tunables: rate for provider %q must not be negative", provider)
		}
	}
	if t.CheapThresholdUSD < 0 {
		return fmt.Errorf("tunables: cheapThresholdUsd must not be negative")
	}
	for platform, band := range t.Bands {
		if band.Min < 0 || band.Max < band.Min {
			return fmt.Errorf("tunables: band for platform %q must satisfy 0 <= min <= max", platform)
		}
	}
	return nil
}
