package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Iron-Ham/dilemma/internal/config"
	"github.com/Iron-Ham/dilemma/internal/event"
	"github.com/Iron-Ham/dilemma/internal/logging"
	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui"
	"github.com/charmbracelet/x/term"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a tournament",
	Long: `Start a Prisoner's Dilemma tournament in the terminal.

Flags override the matching configuration values for this run only.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// errNoTerminal is returned when stdout is not attached to a terminal.
var errNoTerminal = errors.New("dilemma needs an interactive terminal")

// playOverrides maps play flags to the configuration keys they replace.
var playOverrides = map[string]string{
	"rounds":     "game.max_rounds",
	"time-limit": "game.round_time_limit",
	"team-a":     "teams.a",
	"team-b":     "teams.b",
	"theme":      "tui.theme",
}

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int("rounds", 0, "number of rounds (overrides game.max_rounds)")
	cmd.Flags().Duration("time-limit", 0, "time each round allows for choosing (overrides game.round_time_limit)")
	cmd.Flags().String("team-a", "", "label of the first side (overrides teams.a)")
	cmd.Flags().String("team-b", "", "label of the second side (overrides teams.b)")
	cmd.Flags().String("theme", "", "color theme (overrides tui.theme)")
}

// applyPlayOverrides copies explicitly set flags into viper so they take
// precedence over the config file and environment.
func applyPlayOverrides(cmd *cobra.Command) error {
	for flag, key := range playOverrides {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		switch flag {
		case "rounds":
			v, err := cmd.Flags().GetInt(flag)
			if err != nil {
				return err
			}
			viper.Set(key, v)
		case "time-limit":
			v, err := cmd.Flags().GetDuration(flag)
			if err != nil {
				return err
			}
			viper.Set(key, v)
		default:
			viper.Set(key, f.Value.String())
		}
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := applyPlayOverrides(cmd); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	logger := newPlayLogger(cmd, cfg)
	defer func() { _ = logger.Close() }()

	bus := event.NewBus()
	bus.OnPanic(func(eventType string, recovered any, stack []byte) {
		logger.Error("event handler panicked",
			"event_type", eventType,
			"panic", fmt.Sprint(recovered),
			"stack", string(stack))
	})
	bus.SubscribeAll(eventLogger(logger))

	engine := tournament.New(tournament.Options{
		MaxRounds:      cfg.Game.MaxRounds,
		RoundTimeLimit: cfg.Game.RoundTimeLimit,
		SideALabel:     cfg.Teams.A,
		SideBLabel:     cfg.Teams.B,
		Publisher:      bus,
	})
	logger.Info("tournament created",
		"match_id", engine.MatchID(),
		"max_rounds", engine.MaxRounds(),
		"round_time_limit", engine.RoundTimeLimit().String())

	opts := tui.Options{
		TickInterval:  cfg.TUI.TickInterval(),
		HistoryRows:   cfg.TUI.HistoryRows,
		RevealChoices: cfg.TUI.RevealChoices,
		Logger:        logger,
		Theme:         cfg.TUI.Theme,
	}
	if width, _, err := term.GetSize(os.Stdout.Fd()); err == nil {
		opts.Width = width
	}

	app := tui.New(engine, opts)

	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			reloaded, err := config.Load()
			if err != nil {
				logger.Warn("ignoring invalid config change", "file", e.Name, "error", err.Error())
				return
			}
			logger.Info("config reloaded", "file", e.Name, "theme", reloaded.TUI.Theme)
			app.SetTheme(reloaded.TUI.Theme)
		})
		viper.WatchConfig()
	}

	start := time.Now()
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Info("session ended", "duration", time.Since(start).Round(time.Second).String())

	return nil
}

// newPlayLogger opens the debug log. Failing to open it is not fatal: the
// game runs without logging.
func newPlayLogger(cmd *cobra.Command, cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(config.LogDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: debug logging disabled: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}
