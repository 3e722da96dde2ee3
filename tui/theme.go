package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sqwxl/jx/layout"
)

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaGreen      = "#98BB6C"
	kanagawaYellow     = "#FF9E3B"
	kanagawaRed        = "#FF5D62"
	kanagawaCyan       = "#7E9CD8"
	kanagawaBlue       = "#7FB4CA"
	kanagawaViolet     = "#957FB8"
	kanagawaLightText  = "#DCD7BA"
	kanagawaMutedText  = "#727169"
	kanagawaDarkText   = "#1D1C19"
	kanagawaSelectedBg = "#223249"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen      = "2"
	terminalYellow     = "3"
	terminalRed        = "1"
	terminalCyan       = "6"
	terminalBlue       = "4"
	terminalViolet     = "5"
	terminalLightText  = "7"
	terminalMutedText  = "8"
	terminalDarkText   = "0"
	terminalSelectedBg = "8"
)

// Colors encapsulates the palette used by a theme.
type Colors struct {
	Green      lipgloss.TerminalColor
	Yellow     lipgloss.TerminalColor
	Red        lipgloss.TerminalColor
	Cyan       lipgloss.TerminalColor
	Blue       lipgloss.TerminalColor
	Violet     lipgloss.TerminalColor
	LightText  lipgloss.TerminalColor
	MutedText  lipgloss.TerminalColor
	DarkText   lipgloss.TerminalColor
	SelectedBg lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for the viewer.
type Theme struct {
	Colors Colors

	// Per-segment syntax styles
	Key       lipgloss.Style
	String    lipgloss.Style
	Number    lipgloss.Style
	Bool      lipgloss.Style
	Null      lipgloss.Style
	Punct     lipgloss.Style
	FoldCount lipgloss.Style
	Gutter    lipgloss.Style

	// Selection and search
	Selected     lipgloss.Style
	Match        lipgloss.Style
	CurrentMatch lipgloss.Style

	// Chrome
	StatusBar lipgloss.Style
	StatusMsg lipgloss.Style
	Title     lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"terminal": newTerminalColors,
}

func newKanagawaColors() Colors {
	return Colors{
		Green:      lipgloss.Color(kanagawaGreen),
		Yellow:     lipgloss.Color(kanagawaYellow),
		Red:        lipgloss.Color(kanagawaRed),
		Cyan:       lipgloss.Color(kanagawaCyan),
		Blue:       lipgloss.Color(kanagawaBlue),
		Violet:     lipgloss.Color(kanagawaViolet),
		LightText:  lipgloss.Color(kanagawaLightText),
		MutedText:  lipgloss.Color(kanagawaMutedText),
		DarkText:   lipgloss.Color(kanagawaDarkText),
		SelectedBg: lipgloss.Color(kanagawaSelectedBg),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:      lipgloss.Color(terminalGreen),
		Yellow:     lipgloss.Color(terminalYellow),
		Red:        lipgloss.Color(terminalRed),
		Cyan:       lipgloss.Color(terminalCyan),
		Blue:       lipgloss.Color(terminalBlue),
		Violet:     lipgloss.Color(terminalViolet),
		LightText:  lipgloss.Color(terminalLightText),
		MutedText:  lipgloss.Color(terminalMutedText),
		DarkText:   lipgloss.Color(terminalDarkText),
		SelectedBg: lipgloss.Color(terminalSelectedBg),
	}
}

// NewTheme constructs a theme from a palette name, falling back to kanagawa
// for unknown names.
func NewTheme(name string) *Theme {
	factory, ok := themeRegistry[name]
	if !ok {
		factory = newKanagawaColors
	}
	colors := factory()

	return &Theme{
		Colors: colors,

		Key:       lipgloss.NewStyle().Foreground(colors.Cyan),
		String:    lipgloss.NewStyle().Foreground(colors.Green),
		Number:    lipgloss.NewStyle().Foreground(colors.Yellow),
		Bool:      lipgloss.NewStyle().Foreground(colors.Violet),
		Null:      lipgloss.NewStyle().Foreground(colors.Red).Faint(true),
		Punct:     lipgloss.NewStyle().Foreground(colors.MutedText),
		FoldCount: lipgloss.NewStyle().Foreground(colors.MutedText).Italic(true),
		Gutter:    lipgloss.NewStyle().Foreground(colors.MutedText),

		Selected: lipgloss.NewStyle().Background(colors.SelectedBg),
		Match: lipgloss.NewStyle().
			Background(colors.Yellow).
			Foreground(colors.DarkText),
		CurrentMatch: lipgloss.NewStyle().
			Background(colors.Blue).
			Foreground(colors.DarkText).
			Bold(true),

		StatusBar: lipgloss.NewStyle().Foreground(colors.MutedText),
		StatusMsg: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(colors.LightText).Bold(true),
	}
}

// SegmentStyle returns the syntax style for a segment kind.
func (t *Theme) SegmentStyle(kind layout.SegmentKind) lipgloss.Style {
	switch kind {
	case layout.SegKey:
		return t.Key
	case layout.SegString:
		return t.String
	case layout.SegNumber:
		return t.Number
	case layout.SegBool:
		return t.Bool
	case layout.SegNull:
		return t.Null
	case layout.SegFoldCount:
		return t.FoldCount
	case layout.SegIndex:
		return t.Gutter
	default:
		return t.Punct
	}
}
