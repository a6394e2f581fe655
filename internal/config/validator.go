package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "game.max_rounds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Limits enforced by Validate.
const (
	MinRounds         = 1
	MaxRounds         = 999
	MinRoundTimeLimit = time.Second
	MaxRoundTimeLimit = 10 * time.Minute
	MaxTeamLabelRunes = 15
	MinTickIntervalMs = 10
	MaxTickIntervalMs = 1000
	MaxHistoryRows    = 100
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of built-in theme names
func ValidThemes() []string {
	return []string{"default", "dracula", "nord", "high-contrast"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateGame()...)
	errors = append(errors, c.validateTeams()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateGame() []ValidationError {
	var errors []ValidationError

	if c.Game.MaxRounds < MinRounds || c.Game.MaxRounds > MaxRounds {
		errors = append(errors, ValidationError{
			Field:   "game.max_rounds",
			Value:   c.Game.MaxRounds,
			Message: fmt.Sprintf("must be between %d and %d", MinRounds, MaxRounds),
		})
	}

	if c.Game.RoundTimeLimit < MinRoundTimeLimit || c.Game.RoundTimeLimit > MaxRoundTimeLimit {
		errors = append(errors, ValidationError{
			Field:   "game.round_time_limit",
			Value:   c.Game.RoundTimeLimit,
			Message: fmt.Sprintf("must be between %s and %s", MinRoundTimeLimit, MaxRoundTimeLimit),
		})
	}

	return errors
}

func (c *Config) validateTeams() []ValidationError {
	var errors []ValidationError

	labels := []struct {
		field string
		value string
	}{
		{"teams.a", c.Teams.A},
		{"teams.b", c.Teams.B},
	}
	for _, l := range labels {
		switch {
		case strings.TrimSpace(l.value) == "":
			errors = append(errors, ValidationError{
				Field:   l.field,
				Value:   l.value,
				Message: "must not be empty",
			})
		case utf8.RuneCountInString(l.value) > MaxTeamLabelRunes:
			errors = append(errors, ValidationError{
				Field:   l.field,
				Value:   l.value,
				Message: fmt.Sprintf("must be at most %d characters", MaxTeamLabelRunes),
			})
		}
	}

	if c.Teams.A != "" && strings.EqualFold(strings.TrimSpace(c.Teams.A), strings.TrimSpace(c.Teams.B)) {
		errors = append(errors, ValidationError{
			Field:   "teams.b",
			Value:   c.Teams.B,
			Message: "must differ from teams.a",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.TickIntervalMs < MinTickIntervalMs || c.TUI.TickIntervalMs > MaxTickIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_interval_ms",
			Value:   c.TUI.TickIntervalMs,
			Message: fmt.Sprintf("must be between %d and %d", MinTickIntervalMs, MaxTickIntervalMs),
		})
	}

	if c.TUI.HistoryRows < 1 || c.TUI.HistoryRows > MaxHistoryRows {
		errors = append(errors, ValidationError{
			Field:   "tui.history_rows",
			Value:   c.TUI.HistoryRows,
			Message: fmt.Sprintf("must be between 1 and %d", MaxHistoryRows),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
