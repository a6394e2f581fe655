package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete dilemma configuration
type Config struct {
	Game    GameConfig    `mapstructure:"game" yaml:"game"`
	Teams   TeamsConfig   `mapstructure:"teams" yaml:"teams"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GameConfig controls the shape of a tournament
type GameConfig struct {
	// MaxRounds is the number of rounds in a tournament (default: 20)
	MaxRounds int `mapstructure:"max_rounds" yaml:"max_rounds"`
	// RoundTimeLimit is how long both sides have to choose before undecided
	// sides default to Deny (default: 10s)
	RoundTimeLimit time.Duration `mapstructure:"round_time_limit" yaml:"round_time_limit"`
}

// TeamsConfig names the two competing sides
type TeamsConfig struct {
	// A is the label of the first side (default: "A")
	A string `mapstructure:"a" yaml:"a"`
	// B is the label of the second side (default: "B")
	B string `mapstructure:"b" yaml:"b"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "dracula", "nord", "high-contrast"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// TickIntervalMs is how often the round timer is checked and redrawn (default: 100)
	TickIntervalMs int `mapstructure:"tick_interval_ms" yaml:"tick_interval_ms"`
	// HistoryRows is how many of the most recent rounds the final screen lists (default: 10)
	HistoryRows int `mapstructure:"history_rows" yaml:"history_rows"`
	// RevealChoices shows each side's pick while the other side is still
	// deciding (default: false)
	RevealChoices bool `mapstructure:"reveal_choices" yaml:"reveal_choices"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// TickInterval returns the tick interval as a time.Duration
func (c *TUIConfig) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MaxRounds:      20,
			RoundTimeLimit: 10 * time.Second,
		},
		Teams: TeamsConfig{
			A: "A",
			B: "B",
		},
		TUI: TUIConfig{
			Theme:          "default",
			TickIntervalMs: 100,
			HistoryRows:    10,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("game.max_rounds", defaults.Game.MaxRounds)
	viper.SetDefault("game.round_time_limit", defaults.Game.RoundTimeLimit)

	viper.SetDefault("teams.a", defaults.Teams.A)
	viper.SetDefault("teams.b", defaults.Teams.B)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.tick_interval_ms", defaults.TUI.TickIntervalMs)
	viper.SetDefault("tui.history_rows", defaults.TUI.HistoryRows)
	viper.SetDefault("tui.reveal_choices", defaults.TUI.RevealChoices)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if the
// loaded values do not validate
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dilemma")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dilemma"
	}
	return filepath.Join(home, ".config", "dilemma")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the directory debug logs are written to
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}
