package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/dilemma/internal/tournament"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application for the given engine.
func New(engine *tournament.Engine, opts Options) *App {
	model := NewModel(engine, opts)
	return &App{
		model:   model,
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Run starts the TUI application and blocks until the user quits.
func (a *App) Run() error {
	// Translate termination signals into a normal quit so the terminal
	// is restored before the process exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// SetTheme switches the color theme of the running program. Safe to call
// from any goroutine.
func (a *App) SetTheme(name string) {
	a.program.Send(themeChangedMsg{name: name})
}
