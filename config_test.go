package sift

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sift.yaml")
	partial := []byte("engine:\n  max_txns: 50\nfeed:\n  rate: 3.5\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Engine.MaxTxns != 50 {
		t.Errorf("MaxTxns = %d, want override 50", cfg.Engine.MaxTxns)
	}
	if cfg.Feed.Rate != 3.5 {
		t.Errorf("Feed.Rate = %v, want override 3.5", cfg.Feed.Rate)
	}
	// Untouched keys keep their defaults.
	if cfg.Engine.SpawnDur != DefaultSpawnDur {
		t.Errorf("SpawnDur = %v, want default %v", cfg.Engine.SpawnDur, DefaultSpawnDur)
	}
	if cfg.Window.Width != 960 {
		t.Errorf("Window.Width = %d, want default 960", cfg.Window.Width)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("feed:\n  threat_ratio: 1.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for threat_ratio > 1")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.yaml")

	cfg := DefaultConfig()
	cfg.Engine.MaxBlooms = 12
	cfg.Window.Title = "roundtrip"

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.SpawnDur = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative duration")
	}

	cfg = DefaultConfig()
	cfg.Engine.MaxTxns = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative ceiling")
	}

	cfg = DefaultConfig()
	cfg.Feed.MinDwell = 5
	cfg.Feed.MaxDwell = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for max_dwell below min_dwell")
	}
}

func TestNormalizedFillsZeroFields(t *testing.T) {
	got := EngineConfig{MaxTxns: 7}.normalized()
	if got.MaxTxns != 7 {
		t.Errorf("MaxTxns = %d, explicit value must survive", got.MaxTxns)
	}
	if got.SpawnDur != DefaultSpawnDur || got.GardenColumns != DefaultGardenColumns {
		t.Errorf("zero fields not defaulted: %+v", got)
	}
}
