// Package config loads the guildmaster settings file and its environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/example/guildmaster/internal/core/offline"
)

// FileName is the settings file inside the data directory.
const FileName = "config.yaml"

// Config represents the guildmaster configuration. Values come from
// config.yaml and are then overridden by GUILDMASTER_* environment variables.
type Config struct {
	DataDir   string `yaml:"data_dir" env:"GUILDMASTER_DATA_DIR"`
	DBPath    string `yaml:"db_path" env:"GUILDMASTER_DB_PATH"`
	ExportDir string `yaml:"export_dir" env:"GUILDMASTER_EXPORT_DIR"`
	Slot      string `yaml:"slot" env:"GUILDMASTER_SLOT"`
	KeepSaves int    `yaml:"keep_saves" env:"GUILDMASTER_KEEP_SAVES"`

	// Seed fixes adventurer generation. 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"GUILDMASTER_SEED"`

	TickInterval     time.Duration `yaml:"tick_interval" env:"GUILDMASTER_TICK_INTERVAL"`
	AutosaveInterval time.Duration `yaml:"autosave_interval" env:"GUILDMASTER_AUTOSAVE_INTERVAL"`
	TimeScale        float64       `yaml:"time_scale" env:"GUILDMASTER_TIME_SCALE"`

	Offline Offline `yaml:"offline"`
}

// Offline holds the offline-earnings settings applied to new games.
type Offline struct {
	Enabled     bool          `yaml:"enabled" env:"GUILDMASTER_OFFLINE_ENABLED"`
	MaxDuration time.Duration `yaml:"max_duration" env:"GUILDMASTER_OFFLINE_MAX_DURATION"`
	Rate        float64       `yaml:"rate" env:"GUILDMASTER_OFFLINE_RATE"`
}

// Default returns the configuration used when no file exists.
func Default(dir string) *Config {
	return &Config{
		DataDir:          dir,
		DBPath:           filepath.Join(dir, "guildmaster.db"),
		ExportDir:        ".",
		Slot:             "default",
		KeepSaves:        20,
		TickInterval:     100 * time.Millisecond,
		AutosaveInterval: 30 * time.Second,
		TimeScale:        1,
		Offline: Offline{
			Enabled:     false,
			MaxDuration: time.Duration(offline.DefaultMaxDurationMs) * time.Millisecond,
			Rate:        offline.DefaultRate,
		},
	}
}

// DefaultDir returns ~/.guildmaster.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".guildmaster"), nil
}

// LoadConfig reads config.yaml from dir and applies environment overrides.
// A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "guildmaster.db")
	}

	return cfg, cfg.Validate()
}

// SaveConfig writes config.yaml to dir.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the game loop cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	case c.AutosaveInterval < 0:
		return fmt.Errorf("autosave_interval must not be negative, got %s", c.AutosaveInterval)
	case c.TimeScale <= 0:
		return fmt.Errorf("time_scale must be positive, got %g", c.TimeScale)
	case c.Offline.Rate < 0:
		return fmt.Errorf("offline.rate must not be negative, got %g", c.Offline.Rate)
	case c.Slot == "":
		return errors.New("slot must not be empty")
	}
	return nil
}

// OfflineConfig converts the offline settings to the game-state form.
func (c *Config) OfflineConfig() offline.Config {
	return offline.Config{
		Enabled:     c.Offline.Enabled,
		MaxDuration: c.Offline.MaxDuration.Milliseconds(),
		Rate:        c.Offline.Rate,
	}
}
