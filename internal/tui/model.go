package tui

import (
	"time"

	"github.com/Iron-Ham/dilemma/internal/logging"
	"github.com/Iron-Ham/dilemma/internal/tournament"
	"github.com/Iron-Ham/dilemma/internal/tui/styles"
	"github.com/Iron-Ham/dilemma/internal/tui/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is how often the round timer is checked.
const DefaultTickInterval = 100 * time.Millisecond

// Options configures a Model.
type Options struct {
	TickInterval  time.Duration
	HistoryRows   int
	RevealChoices bool
	Logger        *logging.Logger

	// Theme is applied before the first frame when set.
	Theme string

	// Width is the initial terminal width, used until the first
	// WindowSizeMsg arrives.
	Width int

	// Now is the clock used for round deadlines. Defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model driving a tournament. All engine access
// happens inside Update, one message at a time.
type Model struct {
	engine *tournament.Engine
	keys   keyMap
	help   help.Model
	logger *logging.Logger
	now    func() time.Time

	tickInterval  time.Duration
	historyRows   int
	revealChoices bool

	width    int
	height   int
	quitting bool

	namesView    *view.NamesView
	choosingView *view.ChoosingView
	resultView   *view.ResultView
	finalView    *view.FinalView
}

// NewModel creates a Model around an engine.
func NewModel(engine *tournament.Engine, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.HistoryRows <= 0 {
		opts.HistoryRows = view.DefaultHistoryRows
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Theme != "" {
		styles.SetActiveTheme(styles.ThemeName(opts.Theme))
	}

	labels := [2]string{engine.Label(tournament.SideA), engine.Label(tournament.SideB)}
	m := Model{
		engine:        engine,
		keys:          defaultKeyMap().withLabels(labels),
		help:          help.New(),
		logger:        opts.Logger,
		now:           opts.Now,
		tickInterval:  opts.TickInterval,
		historyRows:   opts.HistoryRows,
		revealChoices: opts.RevealChoices,
		width:         opts.Width,
		namesView:     view.NewNamesView(),
		choosingView:  view.NewChoosingView(),
		resultView:    view.NewResultView(),
		finalView:     view.NewFinalView(),
	}
	m.help.Width = m.width
	m.applyHelpStyles()
	return m
}

// Messages

type tickMsg time.Time

// themeChangedMsg asks the running program to switch color themes.
type themeChangedMsg struct {
	name string
}

// Commands

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the round timer ticks.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.engine.Tick(time.Time(msg)) {
			m.logger.WithMatch(m.engine.MatchID()).Debug("round timer expired",
				"round", m.engine.Round())
		}
		return m, m.tick()

	case themeChangedMsg:
		styles.SetActiveTheme(styles.ThemeName(msg.name))
		m.applyHelpStyles()
		m.logger.Info("theme changed", "theme", msg.name)
		return m, nil
	}

	return m, nil
}

// handleKeypress routes a key to the handler for the current state. The
// round timer is checked first so a key pressed after the deadline cannot
// change a round that has already run out.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.engine.Tick(m.now()) {
		m.logger.WithMatch(m.engine.MatchID()).Debug("round timer expired",
			"round", m.engine.Round(),
			"key", msg.String())
	}

	switch m.engine.State() {
	case tournament.StateCollectingNames:
		return m.handleNamesKey(msg)
	case tournament.StateChoosing:
		return m.handleChoosingKey(msg)
	case tournament.StateShowingResult:
		return m.handleResultKey(msg)
	case tournament.StateFinished:
		return m.handleFinishedKey(msg)
	}
	return m, nil
}

// handleNamesKey treats every printable key as text, so only non-rune keys
// act as commands here.
func (m Model) handleNamesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focus := m.engine.Focused()

	switch {
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.engine.ToggleFocus()
	case key.Matches(msg, m.keys.Confirm):
		if focus == tournament.SideA {
			m.engine.Focus(tournament.SideB)
			return m, nil
		}
		m.engine.ConfirmNames(m.now())
	case key.Matches(msg, m.keys.Backspace):
		m.engine.Backspace(focus)
	case msg.Type == tea.KeySpace:
		m.engine.AppendRune(focus, ' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.engine.AppendRune(focus, r)
		}
	}
	return m, nil
}

func (m Model) handleChoosingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.AConfess):
		m.engine.Select(tournament.SideA, tournament.ChoiceConfess, now)
	case key.Matches(msg, m.keys.ADeny):
		m.engine.Select(tournament.SideA, tournament.ChoiceDeny, now)
	case key.Matches(msg, m.keys.BConfess):
		m.engine.Select(tournament.SideB, tournament.ChoiceConfess, now)
	case key.Matches(msg, m.keys.BDeny):
		m.engine.Select(tournament.SideB, tournament.ChoiceDeny, now)
	default:
		return m.handleCommonKey(msg)
	}
	return m, nil
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Next) {
		m.engine.Advance()
		return m, nil
	}
	return m.handleCommonKey(msg)
}

func (m Model) handleFinishedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Restart) {
		m.engine.Restart()
		return m, nil
	}
	return m.handleCommonKey(msg)
}

// handleCommonKey handles the keys shared by every screen except name entry.
func (m Model) handleCommonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.WithMatch(m.engine.MatchID()).Info("quit requested",
		"state", m.engine.State().String(),
		"round", m.engine.Round())
	return m, tea.Quit
}

func (m *Model) applyHelpStyles() {
	st := styles.GetActiveTheme()
	m.help.Styles.ShortKey = st.HelpKey
	m.help.Styles.FullKey = st.HelpKey
	m.help.Styles.ShortDesc = st.Muted
	m.help.Styles.FullDesc = st.Muted
	m.help.Styles.ShortSeparator = st.Muted
	m.help.Styles.FullSeparator = st.Muted
	m.help.Styles.Ellipsis = st.Muted
}

// View renders the screen for the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot(m.now())

	var body string
	switch snap.State {
	case tournament.StateCollectingNames:
		body = m.namesView.Render(snap, m.width)
	case tournament.StateChoosing:
		body = m.choosingView.Render(snap, m.width, view.ChoosingState{
			Keys:          m.choiceKeys(),
			RevealChoices: m.revealChoices,
		})
	case tournament.StateShowingResult:
		body = m.resultView.Render(snap, m.width)
	case tournament.StateFinished:
		body = m.finalView.Render(snap, m.width, m.historyRows)
	}

	footer := styles.GetActiveTheme().HelpBar.Render(m.help.View(stateHelp{keys: m.keys, state: snap.State}))
	return body + "\n" + footer
}

func (m Model) choiceKeys() view.ChoiceKeys {
	return view.ChoiceKeys{
		AConfess: m.keys.AConfess.Help().Key,
		ADeny:    m.keys.ADeny.Help().Key,
		BConfess: m.keys.BConfess.Help().Key,
		BDeny:    m.keys.BDeny.Help().Key,
	}
}
