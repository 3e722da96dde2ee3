package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/sqwxl/jx/explorer"
)

// Run starts the interactive explorer on the alternate screen and blocks
// until the user quits. It returns any text the user selected for stdout,
// to be printed after the terminal is restored.
func Run(state *explorer.State, source, themeName string, keyOverrides map[string][]string) (string, error) {
	m := NewModel(state, source, themeName, keyOverrides)

	opts := []tea.ProgramOption{tea.WithAltScreen()}

	// When the document came in on a pipe, stdin is not a terminal; read
	// key events from the controlling TTY instead.
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return "", err
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	if fm, ok := final.(Model); ok {
		return fm.Output(), nil
	}
	return "", nil
}
