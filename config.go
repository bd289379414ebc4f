package sift

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default tuning. Durations are in seconds; ceilings are entity counts.
const (
	DefaultSpawnDur     = 1.2
	DefaultShakeDur     = 0.4
	DefaultExitDur      = 0.8
	DefaultClearDur     = 1.2
	DefaultLandDur      = 0.5
	DefaultGrowthPeriod = 60.0
	DefaultPulseLife    = 0.6
	DefaultBurstLife    = 0.8
	DefaultMaxStep      = 0.1

	DefaultMaxTxns       = 80
	DefaultGardenColumns = 6
	DefaultMaxBlooms     = DefaultGardenColumns * GardenRows
)

// EngineConfig holds the engine's tunable durations and ceilings.
// Zero values are replaced with defaults by [EngineConfig.normalized].
type EngineConfig struct {
	SpawnDur     float64 `yaml:"spawn_dur"`
	ShakeDur     float64 `yaml:"shake_dur"`
	ExitDur      float64 `yaml:"exit_dur"`
	ClearDur     float64 `yaml:"clear_dur"`
	LandDur      float64 `yaml:"land_dur"`
	GrowthPeriod float64 `yaml:"growth_period"`
	PulseLife    float64 `yaml:"pulse_life"`
	BurstLife    float64 `yaml:"burst_life"`

	// MaxStep bounds the clock advance of a single tick so a stalled or
	// backgrounded frame driver cannot skip time-critical transitions.
	MaxStep float64 `yaml:"max_step"`

	MaxTxns       int `yaml:"max_txns"`
	MaxBlooms     int `yaml:"max_blooms"`
	GardenColumns int `yaml:"garden_columns"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// FeedConfig tunes the simulated upstream feed used by cmd/sift.
type FeedConfig struct {
	Rate        float64 `yaml:"rate"`         // transactions per second
	ThreatRatio float64 `yaml:"threat_ratio"` // fraction classified as threats
	MinDwell    float64 `yaml:"min_dwell"`    // seconds before classification
	MaxDwell    float64 `yaml:"max_dwell"`
	Seed        uint64  `yaml:"seed"` // 0 means time-derived
}

// Config is the top-level configuration document.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Window WindowConfig `yaml:"window"`
	Feed   FeedConfig   `yaml:"feed"`
}

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			SpawnDur:      DefaultSpawnDur,
			ShakeDur:      DefaultShakeDur,
			ExitDur:       DefaultExitDur,
			ClearDur:      DefaultClearDur,
			LandDur:       DefaultLandDur,
			GrowthPeriod:  DefaultGrowthPeriod,
			PulseLife:     DefaultPulseLife,
			BurstLife:     DefaultBurstLife,
			MaxStep:       DefaultMaxStep,
			MaxTxns:       DefaultMaxTxns,
			MaxBlooms:     DefaultMaxBlooms,
			GardenColumns: DefaultGardenColumns,
		},
		Window: WindowConfig{
			Title:  "sift",
			Width:  960,
			Height: 540,
		},
		Feed: FeedConfig{
			Rate:        1.5,
			ThreatRatio: 0.15,
			MinDwell:    1.0,
			MaxDwell:    4.0,
		},
	}
}

// LoadConfig reads a yaml config file over the defaults, so partial files
// only override the keys they mention.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as yaml.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	e := c.Engine
	for _, d := range []struct {
		name string
		val  float64
	}{
		{"spawn_dur", e.SpawnDur},
		{"shake_dur", e.ShakeDur},
		{"exit_dur", e.ExitDur},
		{"clear_dur", e.ClearDur},
		{"land_dur", e.LandDur},
		{"growth_period", e.GrowthPeriod},
		{"pulse_life", e.PulseLife},
		{"burst_life", e.BurstLife},
		{"max_step", e.MaxStep},
	} {
		if d.val < 0 {
			return fmt.Errorf("engine.%s must not be negative, got %v", d.name, d.val)
		}
	}
	if e.MaxTxns < 0 {
		return fmt.Errorf("engine.max_txns must not be negative, got %d", e.MaxTxns)
	}
	if e.MaxBlooms < 0 {
		return fmt.Errorf("engine.max_blooms must not be negative, got %d", e.MaxBlooms)
	}
	if c.Feed.Rate < 0 {
		return fmt.Errorf("feed.rate must not be negative, got %v", c.Feed.Rate)
	}
	if c.Feed.ThreatRatio < 0 || c.Feed.ThreatRatio > 1 {
		return fmt.Errorf("feed.threat_ratio must be in [0, 1], got %v", c.Feed.ThreatRatio)
	}
	if c.Feed.MaxDwell < c.Feed.MinDwell {
		return fmt.Errorf("feed.max_dwell (%v) must not be below feed.min_dwell (%v)",
			c.Feed.MaxDwell, c.Feed.MinDwell)
	}
	return nil
}

// normalized fills zero-valued fields with defaults so a partially
// constructed EngineConfig (common in tests) behaves sensibly.
func (c EngineConfig) normalized() EngineConfig {
	d := DefaultConfig().Engine
	if c.SpawnDur == 0 {
		c.SpawnDur = d.SpawnDur
	}
	if c.ShakeDur == 0 {
		c.ShakeDur = d.ShakeDur
	}
	if c.ExitDur == 0 {
		c.ExitDur = d.ExitDur
	}
	if c.ClearDur == 0 {
		c.ClearDur = d.ClearDur
	}
	if c.LandDur == 0 {
		c.LandDur = d.LandDur
	}
	if c.GrowthPeriod == 0 {
		c.GrowthPeriod = d.GrowthPeriod
	}
	if c.PulseLife == 0 {
		c.PulseLife = d.PulseLife
	}
	if c.BurstLife == 0 {
		c.BurstLife = d.BurstLife
	}
	if c.MaxStep == 0 {
		c.MaxStep = d.MaxStep
	}
	if c.MaxTxns == 0 {
		c.MaxTxns = d.MaxTxns
	}
	if c.MaxBlooms == 0 {
		c.MaxBlooms = d.MaxBlooms
	}
	if c.GardenColumns == 0 {
		c.GardenColumns = d.GardenColumns
	}
	return c
}
