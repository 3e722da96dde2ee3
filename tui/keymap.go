package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the explorer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	In      key.Binding
	Out     key.Binding
	Top     key.Binding
	End     key.Binding
	Fold    key.Binding
	FoldAll key.Binding

	ScrollUp     key.Binding
	ScrollDown   key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	ScrollLeft   key.Binding
	ScrollRight  key.Binding

	Search     key.Binding
	NextResult key.Binding
	PrevResult key.Binding

	ToggleWrap    key.Binding
	ToggleNumbers key.Binding

	OutputEntryPretty key.Binding
	OutputEntryRaw    key.Binding
	OutputValuePretty key.Binding
	OutputValueRaw    key.Binding
	CopyEntryPretty   key.Binding
	CopyValuePretty   key.Binding
	CopyEntryRaw      key.Binding
	CopyValueRaw      key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "previous node"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "next node"),
		),
		In: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/→", "into node"),
		),
		Out: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/←", "to parent"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("gg", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Fold: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle fold"),
		),
		FoldAll: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "fold/unfold all"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "scroll down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+b", "pgup"),
			key.WithHelp("ctrl+b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+f", "pgdown"),
			key.WithHelp("ctrl+f", "page down"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("<", "shift+left"),
			key.WithHelp("<", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys(">", "shift+right"),
			key.WithHelp(">", "scroll right"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextResult: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		PrevResult: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous match"),
		),
		ToggleWrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle wrap"),
		),
		ToggleNumbers: key.NewBinding(
			key.WithKeys("#"),
			key.WithHelp("#", "toggle line numbers"),
		),
		OutputEntryPretty: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "print selection"),
		),
		OutputEntryRaw: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "print selection (compact)"),
		),
		OutputValuePretty: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "print value"),
		),
		OutputValueRaw: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "print value (compact)"),
		),
		CopyEntryPretty: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
		CopyValuePretty: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy value"),
		),
		CopyEntryRaw: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "copy selection (compact)"),
		),
		CopyValueRaw: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "copy value (compact)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Fold, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap; it feeds the full-screen help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.In, k.Out, k.Top, k.End},
		{k.Fold, k.FoldAll, k.ToggleWrap, k.ToggleNumbers},
		{k.Search, k.NextResult, k.PrevResult},
		{k.OutputEntryPretty, k.OutputEntryRaw, k.OutputValuePretty, k.OutputValueRaw},
		{k.CopyEntryPretty, k.CopyEntryRaw, k.CopyValuePretty, k.CopyValueRaw},
		{k.Help, k.Quit},
	}
}
