package cmd

import (
	"fmt"

	"github.com/Iron-Ham/dilemma/internal/config"
	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/view"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the payoff matrix and tournament rules",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	labels := [2]string{cfg.Teams.A, cfg.Teams.B}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Prisoner's Dilemma")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d rounds. Each round both sides name a representative, who then\n", cfg.Game.MaxRounds)
	fmt.Fprintf(out, "confesses or denies within %s. An undecided representative denies.\n", cfg.Game.RoundTimeLimit)
	fmt.Fprintln(out)
	fmt.Fprintln(out, view.PayoffTable(labels))
	fmt.Fprintln(out)
	for _, line := range view.RuleLines(labels) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Blank names become %q.\n",
		fmt.Sprintf("Representative %s <round>", labels[tournament.SideA]))
	fmt.Fprintln(out, "The side with the least total prison time wins.")

	return nil
}
