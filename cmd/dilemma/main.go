// Command dilemma runs a two-party Prisoner's Dilemma tournament in the terminal.
package main

import (
	"os"

	"github.com/Iron-Ham/dilemma/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
