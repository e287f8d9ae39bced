package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTunables(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write tunables: %v", err)
	}
	return path
}

func TestLoadTunablesEmptyPath(t *testing.T) {
	got, err := LoadTunables("")
	if err != nil {
		t.Fatalf("LoadTunables: %v", err)
	}
	if got.Rates != nil || got.CheapThresholdUSD != 0 {
		t.Fatalf("expected zero tunables, got %+v", got)
	}
}

func TestLoadTunablesParsesOverrides(t *testing.T) {
	path := writeTunables(t, `
rates:
  openai: 0.00005
  gemini: 0.000002
cheapThresholdUsd: 0.02
affinity:
  coding: openai
  social: gemini
bands:
  youtube:
    min: 200
    max: 400
    optimal: 300
lexicon:
  powerWords: [secret, proven]
  ctaVerbs: [subscribe]
`)

	got, err := LoadTunables(path)
	if err != nil {
		t.Fatalf("LoadTunables: %v", err)
	}
	if got.Rates["openai"] != 0.00005 {
		t.Fatalf("openai rate = %f", got.Rates["openai"])
	}
	if got.CheapThresholdUSD != 0.02 {
		t.Fatalf("threshold = %f", got.CheapThresholdUSD)
	}
	if got.Affinity["coding"] != "openai" {
		t.Fatalf("affinity = %+v", got.Affinity)
	}
	band, ok := got.Bands["youtube"]
	if !ok || band.Min != 200 || band.Max != 400 || band.Optimal != 300 {
		t.Fatalf("band = %+v", got.Bands)
	}
	if got.Lexicon == nil || len(got.Lexicon.PowerWords) != 2 {
		t.Fatalf("lexicon = %+v", got.Lexicon)
	}
}

func TestLoadTunablesRejectsNegativeRate(t *testing.T) {
	path := writeTunables(t, "rates:\n  openai: -1\n")
	if _, err := LoadTunables(path); err == nil {
		t.Fatalf("expected validation error for negative rate")
	}
}

func TestLoadTunablesRejectsInvertedBand(t *testing.T) {
	path := writeTunables(t, "bands:\n  tiktok:\n    min: 100\n    max: 50\n")
	if _, err := LoadTunables(path); err == nil {
		t.Fatalf("expected validation error for inverted band")
	}
}

func TestLoadTunablesMissingFile(t *testing.T) {
	if _, err := LoadTunables(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
