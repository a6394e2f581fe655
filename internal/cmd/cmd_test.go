package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/dilemma/internal/config"
	"github.com/Iron-Ham/dilemma/internal/event"
	"github.com/Iron-Ham/dilemma/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// setupTestEnvironment points the config directory at a temp dir and clears
// viper and flag state left behind by earlier commands.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	reset := func() {
		viper.Reset()
		for _, c := range []*cobra.Command{rootCmd, playCmd} {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	}
	reset()
	t.Cleanup(reset)

	return filepath.Join(dir, "dilemma")
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "dilemma" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "dilemma")
	}

	expectedCmds := []string{"play", "rules", "config"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, flag := range []string{"rounds", "time-limit", "team-a", "team-b", "theme"} {
		if rootCmd.Flags().Lookup(flag) == nil {
			t.Errorf("root command missing play flag --%s", flag)
		}
		if playCmd.Flags().Lookup(flag) == nil {
			t.Errorf("play command missing flag --%s", flag)
		}
	}
}

func TestRulesCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := executeCommand(rootCmd, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}

	for _, want := range []string{
		"20 rounds",
		"within 10s",
		"If A confesses and B denies: A 1 year, B 10 years",
		"If both deny: 2 years each",
		"A confesses",
		"B denies",
		`"Representative A <round>"`,
		"least total prison time",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("rules output missing %q\n%s", want, output)
		}
	}
}

func TestRulesCommand_UsesConfiguredTeams(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("DILEMMA_TEAMS_A", "Red")
	t.Setenv("DILEMMA_TEAMS_B", "Blue")

	output, err := executeCommand(rootCmd, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	if !strings.Contains(output, "If Red confesses and Blue denies: Red 1 year, Blue 10 years") {
		t.Errorf("rules output should use team labels from the environment\n%s", output)
	}
}

func TestConfigPath(t *testing.T) {
	configDir := setupTestEnvironment(t)

	output, err := executeCommand(rootCmd, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(output, filepath.Join(configDir, "config.yaml")+" (not created)") {
		t.Errorf("output should show the default path\n%s", output)
	}
	if !strings.Contains(output, "DILEMMA_GAME_MAX_ROUNDS") {
		t.Errorf("output should mention environment overrides\n%s", output)
	}
}

func TestConfigInit(t *testing.T) {
	configDir := setupTestEnvironment(t)

	output, err := executeCommand(rootCmd, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(output, "Created config file") {
		t.Errorf("unexpected output: %s", output)
	}

	data, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	for _, want := range []string{"max_rounds: 20", "round_time_limit: 10s", "theme: default", "history_rows: 10"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config template missing %q", want)
		}
	}

	// The template must load back as the defaults
	viper.SetConfigFile(filepath.Join(configDir, "config.yaml"))
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("template does not validate: %v", err)
	}
	if cfg.Game.RoundTimeLimit != 10*time.Second || cfg.Teams.A != "A" || cfg.Teams.B != "B" {
		t.Errorf("template loaded as %+v", cfg)
	}

	if _, err := executeCommand(rootCmd, "config", "init"); err == nil {
		t.Error("second config init should fail because the file exists")
	}
}

func TestConfigShow(t *testing.T) {
	setupTestEnvironment(t)
	t.Setenv("DILEMMA_GAME_MAX_ROUNDS", "7")

	output, err := executeCommand(rootCmd, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"(none - using defaults)", "max_rounds: 7", "round_time_limit: 10s", "reveal_choices: false"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show missing %q\n%s", want, output)
		}
	}
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
		wantIn  string
	}{
		{name: "int", key: "game.max_rounds", value: "12", wantIn: "max_rounds: 12"},
		{name: "duration", key: "game.round_time_limit", value: "15s", wantIn: "round_time_limit: 15s"},
		{name: "bool", key: "tui.reveal_choices", value: "true", wantIn: "reveal_choices: true"},
		{name: "string", key: "tui.theme", value: "nord", wantIn: "theme: nord"},
		{name: "unknown key", key: "game.payoff", value: "1", wantErr: "unknown configuration key"},
		{name: "bad bool", key: "logging.enabled", value: "yes", wantErr: "expected true or false"},
		{name: "bad int", key: "tui.history_rows", value: "many", wantErr: "expected integer"},
		{name: "bad duration", key: "game.round_time_limit", value: "soon", wantErr: "expected a duration"},
		{name: "out of range", key: "game.max_rounds", value: "0", wantErr: "must be between"},
		{name: "unknown theme", key: "tui.theme", value: "neon", wantErr: "must be one of"},
		{name: "duplicate team", key: "teams.b", value: "A", wantErr: "must differ from teams.a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := setupTestEnvironment(t)
			configFile := filepath.Join(configDir, "config.yaml")

			output, err := executeCommand(rootCmd, "config", "set", tt.key, tt.value)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want it to contain %q", err, tt.wantErr)
				}
				if _, statErr := os.Stat(configFile); statErr == nil {
					t.Error("config file should not be written for a rejected value")
				}
				return
			}
			if err != nil {
				t.Fatalf("config set failed: %v", err)
			}
			if !strings.Contains(output, "Config saved to "+configFile) {
				t.Errorf("unexpected output: %s", output)
			}
			data, err := os.ReadFile(configFile)
			if err != nil {
				t.Fatalf("config file not written: %v", err)
			}
			if !strings.Contains(string(data), tt.wantIn) {
				t.Errorf("config file missing %q\n%s", tt.wantIn, data)
			}
		})
	}
}

func TestPlay_RejectsInvalidOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero rounds", []string{"play", "--rounds", "0"}, "game.max_rounds"},
		{"short time limit", []string{"play", "--time-limit", "500ms"}, "game.round_time_limit"},
		{"same teams", []string{"play", "--team-a", "X", "--team-b", "x"}, "teams.b"},
		{"unknown theme", []string{"--theme", "neon"}, "tui.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnvironment(t)

			_, err := executeCommand(rootCmd, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), "invalid configuration") || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want invalid configuration naming %s", err, tt.want)
			}
		})
	}
}

func TestPlay_RequiresTerminal(t *testing.T) {
	setupTestEnvironment(t)

	// go test never attaches stdout to a terminal
	_, err := executeCommand(rootCmd, "play", "--rounds", "3")
	if !errors.Is(err, errNoTerminal) {
		t.Fatalf("error = %v, want errNoTerminal", err)
	}
	if got := viper.GetInt("game.max_rounds"); got != 3 {
		t.Errorf("--rounds should override game.max_rounds, got %d", got)
	}
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := eventLogger(logging.NewWriterLogger(&buf, "debug"))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	handler(event.NewRoundStartedEvent(at, "m1", 1, "ana", "bia", at.Add(10*time.Second)))
	handler(event.NewRoundCompletedEvent(at, "m1", 1, "Confess", "Deny", 1, 10, 1, 10, false))
	handler(event.NewTournamentFinishedEvent("m1", 1, 1, 10, "A"))
	handler(event.NewTournamentRestartedEvent("m1", "m2"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d log lines, want 4:\n%s", len(lines), buf.String())
	}

	wantMsgs := []string{"round started", "round completed", "tournament finished", "tournament restarted"}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if entry["msg"] != wantMsgs[i] {
			t.Errorf("line %d msg = %v, want %q", i, entry["msg"], wantMsgs[i])
		}
	}

	var completed map[string]any
	_ = json.Unmarshal([]byte(lines[1]), &completed)
	if completed["match_id"] != "m1" || completed["round"] != float64(1) || completed["penalty_b"] != float64(10) {
		t.Errorf("round completed entry = %v", completed)
	}

	var restarted map[string]any
	_ = json.Unmarshal([]byte(lines[3]), &restarted)
	if restarted["match_id"] != "m2" || restarted["previous_match_id"] != "m1" {
		t.Errorf("tournament restarted entry = %v", restarted)
	}
}
