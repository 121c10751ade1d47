// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rotina/internal/clock"
)

// Config holds the application configuration.
type Config struct {
	Planner PlannerConfig `toml:"planner"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// PlannerConfig holds schedule pipeline settings.
type PlannerConfig struct {
	MinFreeMinutes     int    `toml:"min_free_minutes"`     // shortest reported free slot
	EarlyMorningCutoff string `toml:"early_morning_cutoff"` // e.g. "12:00"
	DefaultHydrationML int    `toml:"default_hydration_ml"` // 0 keeps the plan's own goal
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Planner: PlannerConfig{
			MinFreeMinutes:     15,
			EarlyMorningCutoff: "12:00",
			DefaultHydrationML: 0,
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(dataDir(), "rotina.db"),
		},
		Log: LogConfig{
			Dir: filepath.Join(dataDir(), "logs"),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "rotina")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rotina", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("ROTINA_MIN_FREE_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ROTINA_MIN_FREE_MINUTES: %w", err)
		}
		cfg.Planner.MinFreeMinutes = n
	}
	if v := os.Getenv("ROTINA_EARLY_MORNING_CUTOFF"); v != "" {
		cfg.Planner.EarlyMorningCutoff = v
	}
	if v := os.Getenv("ROTINA_HYDRATION_ML"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ROTINA_HYDRATION_ML: %w", err)
		}
		cfg.Planner.DefaultHydrationML = n
	}

	if v := os.Getenv("ROTINA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("ROTINA_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ROTINA_DEBUG: %w", err)
		}
		cfg.Log.Debug = debug
	}
	if v := os.Getenv("ROTINA_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}

	if v := os.Getenv("ROTINA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Planner.MinFreeMinutes < 1 {
		return errors.New("min_free_minutes must be at least 1")
	}
	if _, err := clock.ToMinutes(c.Planner.EarlyMorningCutoff); err != nil {
		return fmt.Errorf("early_morning_cutoff: %w", err)
	}
	if c.Planner.DefaultHydrationML < 0 {
		return errors.New("default_hydration_ml must not be negative")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Log.Dir == "" {
		return errors.New("log dir must be set")
	}
	return nil
}

// CutoffMinutes returns the early-morning cutoff in minutes since midnight.
// Call only on a validated config.
func (c *Config) CutoffMinutes() int {
	m, err := clock.ToMinutes(c.Planner.EarlyMorningCutoff)
	if err != nil {
		return clock.Noon
	}
	return m
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
