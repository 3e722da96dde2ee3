package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqwxl/jx/document"
	"github.com/sqwxl/jx/explorer"
)

func newTestModel(t *testing.T, src string) Model {
	t.Helper()
	root, err := document.ParseBytes([]byte(src))
	require.NoError(t, err)

	m := NewModel(explorer.New(root), "test.json", "terminal", nil)
	return sendMsg(m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func sendMsg(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, `{"a": 1}`)
	require.NotContains(t, m.View(), "toggle fold")

	m = sendMsg(m, runeKey('?'))
	view := m.View()
	assert.Contains(t, view, "previous node")
	assert.Contains(t, view, "toggle fold")
	assert.NotContains(t, view, `"a"`, "help covers the document")

	// A second ? returns to the tree.
	m = sendMsg(m, runeKey('?'))
	assert.Contains(t, m.View(), `"a"`)
	assert.NotContains(t, m.View(), "toggle fold")
}

func TestHelpClosesOnEsc(t *testing.T) {
	m := newTestModel(t, `{"a": 1}`)

	m = sendMsg(m, runeKey('?'))
	m = sendMsg(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), `"a"`)
}

func TestHelpSwallowsOtherKeys(t *testing.T) {
	m := newTestModel(t, `{"a": 1, "b": 2}`)

	m = sendMsg(m, runeKey('?'))
	m = sendMsg(m, runeKey('j'))
	assert.Equal(t, 0, m.state.Cursor, "navigation is inert while help is open")
}

func TestQuitFromHelp(t *testing.T) {
	m := newTestModel(t, `{"a": 1}`)

	m = sendMsg(m, runeKey('?'))
	updated, cmd := m.Update(runeKey('q'))
	m = updated.(Model)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.Equal(t, "", m.View())
}

func TestApplySelectionUsesThemeStyle(t *testing.T) {
	m := Model{theme: NewTheme("kanagawa")}

	sel := m.applySelection(m.theme.Key, true)
	assert.Equal(t, m.theme.Selected.GetBackground(), sel.GetBackground())
	assert.Equal(t, m.theme.Key.GetForeground(), sel.GetForeground())

	plain := m.applySelection(m.theme.Key, false)
	assert.Equal(t, m.theme.Key.GetBackground(), plain.GetBackground())
}
