package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Iron-Ham/dilemma/internal/config"
	"github.com/Iron-Ham/dilemma/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify dilemma configuration",
	Long: `View or modify dilemma configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  dilemma config set game.max_rounds 10
  dilemma config set game.round_time_limit 15s
  dilemma config set teams.a Red

Valid keys:
  game.max_rounds         - Rounds per tournament (1-999)
  game.round_time_limit   - Time to choose each round (e.g. 10s)
  teams.a                 - Label of the first side
  teams.b                 - Label of the second side
  tui.theme               - Color theme
                            Options: default, dracula, nord, high-contrast
  tui.tick_interval_ms    - Timer refresh interval in milliseconds
  tui.history_rows        - Rounds listed on the final screen
  tui.reveal_choices      - Show picks before both sides decide (true/false)
  logging.enabled         - Write a debug log (true/false)
  logging.level           - Options: debug, info, warn, error
  logging.max_size_mb     - Log size before rotation
  logging.max_backups     - Rotated log files to keep`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/dilemma/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

// validKeys lists the keys accepted by "config set" with their value types.
var validKeys = map[string]string{
	"game.max_rounds":       "int",
	"game.round_time_limit": "duration",
	"teams.a":               "string",
	"teams.b":               "string",
	"tui.theme":             "string",
	"tui.tick_interval_ms":  "int",
	"tui.history_rows":      "int",
	"tui.reveal_choices":    "bool",
	"logging.enabled":       "bool",
	"logging.level":         "string",
	"logging.max_size_mb":   "int",
	"logging.max_backups":   "int",
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := config.Get()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "Config file: (none - using defaults)")
	}
	fmt.Fprintln(out)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// parseConfigValue converts a command-line value to the type expected by key.
func parseConfigValue(key, value string) (any, error) {
	keyType, ok := validKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'dilemma config set --help' to see valid keys", key)
	}

	switch keyType {
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		return intVal, nil
	case "duration":
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a duration such as 10s", key)
		}
		return d.String(), nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	typedValue, err := parseConfigValue(key, value)
	if err != nil {
		return err
	}

	previous := viper.Get(key)
	viper.Set(key, typedValue)

	// Reject values the game would refuse to start with
	if _, err := config.Load(); err != nil {
		viper.Set(key, previous)
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				if v.Field == key {
					return fmt.Errorf("invalid value for %s: %s", key, v.Message)
				}
			}
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to config file
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'dilemma config set' to modify values", configFile)
	}

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigTemplate()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created config file at %s\n", configFile)
	fmt.Fprintln(out, "Edit this file to customize the tournament.")

	return nil
}

// defaultConfigTemplate renders the default configuration as commented YAML.
func defaultConfigTemplate() string {
	d := config.Default()
	return fmt.Sprintf(`# Dilemma Configuration

# Tournament shape
game:
  # Number of rounds in a tournament
  max_rounds: %d
  # Time both representatives have to choose; undecided ones deny
  round_time_limit: %s

# Labels of the two competing sides
teams:
  a: %q
  b: %q

# TUI (terminal user interface) settings
tui:
  # Options: %s
  theme: %s
  # How often the round timer is refreshed in milliseconds
  tick_interval_ms: %d
  # Rounds listed in the history table on the final screen
  history_rows: %d
  # Show each side's pick before both have chosen
  reveal_choices: %t

# Debug logging (written to %s)
logging:
  enabled: %t
  # Options: %s
  level: %s
  # Rotate the log after this many megabytes
  max_size_mb: %d
  # Rotated files to keep
  max_backups: %d
`,
		d.Game.MaxRounds, d.Game.RoundTimeLimit,
		d.Teams.A, d.Teams.B,
		strings.Join(config.ValidThemes(), ", "), d.TUI.Theme,
		d.TUI.TickIntervalMs, d.TUI.HistoryRows, d.TUI.RevealChoices,
		config.LogDir(), d.Logging.Enabled,
		strings.Join(config.ValidLogLevels(), ", "), d.Logging.Level,
		d.Logging.MaxSizeMB, d.Logging.MaxBackups)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/dilemma/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: DILEMMA_* (e.g., DILEMMA_GAME_MAX_ROUNDS)")
	fmt.Fprintf(out, "Debug log: %s\n", filepath.Join(config.LogDir(), logging.FileName))

	return nil
}
