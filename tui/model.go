// Package tui is the Bubble Tea front end: it maps key events onto explorer
// commands and renders the visible slice of the layout.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/sqwxl/jx/explorer"
	"github.com/sqwxl/jx/extract"
	"github.com/sqwxl/jx/logging"
)

// statusBarHeight is the chrome reserved below the document viewport.
const statusBarHeight = 1

// Model is the Bubble Tea model for the explorer.
type Model struct {
	state  *explorer.State
	keys   KeyMap
	theme  *Theme
	source string // file path or "stdin", for the status bar

	searchInput textinput.Model
	searching   bool

	help     help.Model
	showHelp bool

	statusMessage string
	lastGPress    time.Time // for detecting the gg sequence

	width  int
	height int
	ready  bool

	// output is printed to stdout after the program exits, so the
	// alternate screen is restored first.
	output   string
	quitting bool

	log *logrus.Entry
}

// NewModel builds the TUI model around a prepared explorer state.
func NewModel(state *explorer.State, source, themeName string, keyOverrides map[string][]string) Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 200

	keys := DefaultKeyMap()
	ApplyOverrides(&keys, keyOverrides)

	h := help.New()
	h.ShowAll = true

	return Model{
		state:       state,
		keys:        keys,
		theme:       NewTheme(themeName),
		source:      source,
		searchInput: ti,
		help:        h,
		log:         logging.NewLogger("tui"),
	}
}

// Output returns the text selected for stdout, if any.
func (m Model) Output() string { return m.output }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.state.Resize(msg.Width, msg.Height-statusBarHeight)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.showHelp {
			return m.updateHelp(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.state.SearchCommit(m.searchInput.Value())
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.searchInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// updateHelp handles keys while the help view covers the document. Quit
// still works; help or Esc returns to the tree.
func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
		m.showHelp = false
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// gg sequence: two g presses within the window jump to the top.
	if keyStr == "g" {
		if time.Since(m.lastGPress) < 500*time.Millisecond {
			m.lastGPress = time.Time{}
			m.state.GotoTop()
			return m, nil
		}
		m.lastGPress = time.Now()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		// Esc clears an active search first, then quits.
		if m.state.Search.Active {
			m.state.SearchClear()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.state.MoveNext()
	case key.Matches(msg, m.keys.Up):
		m.state.MovePrev()
	case key.Matches(msg, m.keys.In):
		m.state.MoveIn()
	case key.Matches(msg, m.keys.Out):
		m.state.MoveOut()
	case key.Matches(msg, m.keys.Top):
		// Only "home" lands here; "g" is handled above.
		m.state.GotoTop()
	case key.Matches(msg, m.keys.End):
		m.state.GotoBottom()

	case key.Matches(msg, m.keys.Fold):
		m.state.ToggleFold()
	case key.Matches(msg, m.keys.FoldAll):
		m.state.ToggleFoldAll()

	case key.Matches(msg, m.keys.ScrollDown):
		m.state.ScrollLines(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.state.ScrollLines(-1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.state.ScrollHalfPage(1)
	case key.Matches(msg, m.keys.HalfPageUp):
		m.state.ScrollHalfPage(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.state.ScrollFullPage(1)
	case key.Matches(msg, m.keys.PageUp):
		m.state.ScrollFullPage(-1)
	case key.Matches(msg, m.keys.ScrollRight):
		m.state.ScrollHorizontal(1)
	case key.Matches(msg, m.keys.ScrollLeft):
		m.state.ScrollHorizontal(-1)

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.NextResult):
		m.state.SearchNext()
	case key.Matches(msg, m.keys.PrevResult):
		m.state.SearchPrev()

	case key.Matches(msg, m.keys.ToggleWrap):
		m.state.ToggleWrap()
	case key.Matches(msg, m.keys.ToggleNumbers):
		m.state.ToggleNumbers()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.OutputEntryPretty):
		return m.quitWithOutput(extract.ModeEntry, extract.OutputPretty)
	case key.Matches(msg, m.keys.OutputEntryRaw):
		return m.quitWithOutput(extract.ModeEntry, extract.OutputRaw)
	case key.Matches(msg, m.keys.OutputValuePretty):
		return m.quitWithOutput(extract.ModeValue, extract.OutputPretty)
	case key.Matches(msg, m.keys.OutputValueRaw):
		return m.quitWithOutput(extract.ModeValue, extract.OutputRaw)

	case key.Matches(msg, m.keys.CopyEntryPretty):
		return m.copySelection(extract.ModeEntry, extract.OutputPretty)
	case key.Matches(msg, m.keys.CopyValuePretty):
		return m.copySelection(extract.ModeValue, extract.OutputPretty)
	case key.Matches(msg, m.keys.CopyEntryRaw):
		return m.copySelection(extract.ModeEntry, extract.OutputRaw)
	case key.Matches(msg, m.keys.CopyValueRaw):
		return m.copySelection(extract.ModeValue, extract.OutputRaw)
	}

	return m, nil
}

func (m Model) quitWithOutput(mode extract.Mode, out extract.Output) (tea.Model, tea.Cmd) {
	m.output = m.state.Extract(mode, out)
	m.quitting = true
	return m, tea.Quit
}

func (m Model) copySelection(mode extract.Mode, out extract.Output) (tea.Model, tea.Cmd) {
	text := m.state.Extract(mode, out)
	if err := copyToClipboard(text); err != nil {
		m.log.WithError(err).Warn("clipboard copy failed")
		m.statusMessage = "Copy failed: clipboard unavailable"
	} else {
		m.statusMessage = "Copied to clipboard"
	}
	return m, clearStatusAfter()
}

// clearStatusMsg is sent to clear the status message after a delay.
type clearStatusMsg struct{}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
