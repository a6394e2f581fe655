package cmd

import (
	"strings"

	"github.com/Iron-Ham/dilemma/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "dilemma",
	Short: "Two-party Prisoner's Dilemma tournament for the terminal",
	Long: `Dilemma runs a Prisoner's Dilemma tournament between two sides sharing
one keyboard. Each round both sides name a representative, then each
representative confesses or denies before the timer runs out. The side
with the least total prison time after the last round wins.

Running dilemma without a subcommand starts a tournament.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/dilemma/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	addPlayFlags(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/dilemma")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DILEMMA")
	// Replace dots with underscores for nested keys in env vars
	// e.g., DILEMMA_GAME_MAX_ROUNDS for game.max_rounds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
