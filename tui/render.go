package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sqwxl/jx/document"
	"github.com/sqwxl/jx/layout"
)

// styledRun is a piece of line text with its resolved style.
type styledRun struct {
	text  string
	style lipgloss.Style
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.quitting {
		return ""
	}
	if m.showHelp {
		return m.help.View(m.keys)
	}
	if m.state.View.Degenerate() {
		// Resize to a usable size resumes rendering.
		return ""
	}

	lay := m.state.Layout
	view := &m.state.View

	gutterW := 0
	if m.state.Numbers {
		gutterW = digits(lay.Len()) + 1
	}
	contentW := m.width - gutterW
	if contentW < 1 {
		contentW = 1
	}

	var sb strings.Builder
	bottom := view.YOffset + view.Height
	if bottom > lay.Len() {
		bottom = lay.Len()
	}

	for i := view.YOffset; i < bottom; i++ {
		if i > view.YOffset {
			sb.WriteByte('\n')
		}
		m.renderLine(&sb, lay.Line(i), gutterW, contentW)
	}
	// Pad so the status bar stays on the last row.
	for i := bottom; i < view.YOffset+view.Height; i++ {
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(m.statusBar())
	return sb.String()
}

func (m Model) renderLine(sb *strings.Builder, line *layout.Line, gutterW, contentW int) {
	if line == nil {
		return
	}

	if gutterW > 0 {
		sb.WriteString(m.theme.Gutter.Render(fmt.Sprintf("%*d ", gutterW-1, line.Number)))
	}

	runs := m.lineRuns(line)
	runs = clipRuns(runs, m.state.View.XOffset, contentW)
	for _, r := range runs {
		sb.WriteString(r.style.Render(r.text))
	}
}

// lineRuns resolves the line's segments into styled runs, applying the
// selection background and search highlights.
func (m Model) lineRuns(line *layout.Line) []styledRun {
	selected := m.underCursor(line.NodeID)

	runs := make([]styledRun, 0, len(line.Segments)+1)
	if line.Indent > 0 {
		runs = append(runs, styledRun{
			text:  strings.Repeat(" ", line.Indent),
			style: m.applySelection(m.theme.Punct, selected),
		})
	}

	highlight := m.state.Search.Active && m.state.Search.NodeMatched(line.NodeID)
	current, hasCurrent := m.state.Search.CurrentMatch()

	for _, seg := range line.Segments {
		base := m.applySelection(m.theme.SegmentStyle(seg.Kind), selected)

		if highlight && searchable(seg.Kind) {
			matchStyle := m.theme.Match
			if hasCurrent && current.NodeID == line.NodeID {
				matchStyle = m.theme.CurrentMatch
			}
			runs = append(runs, splitMatches(seg.Text, m.state.Search.Pattern, base, matchStyle)...)
			continue
		}
		runs = append(runs, styledRun{text: seg.Text, style: base})
	}
	return runs
}

func searchable(kind layout.SegmentKind) bool {
	switch kind {
	case layout.SegKey, layout.SegString, layout.SegNumber, layout.SegBool, layout.SegNull:
		return true
	default:
		return false
	}
}

func (m Model) applySelection(style lipgloss.Style, selected bool) lipgloss.Style {
	if !selected {
		return style
	}
	return style.Inherit(m.theme.Selected)
}

// underCursor reports whether the node is the cursor node or one of its
// descendants; the whole selected subtree is highlighted, matching the
// extraction scope.
func (m Model) underCursor(nodeID int) bool {
	cursor := m.state.Cursor
	for id := nodeID; id != document.NoParent; {
		if id == cursor {
			return true
		}
		n := m.state.Tree.Node(id)
		if n == nil {
			return false
		}
		id = n.Parent
	}
	return false
}

// splitMatches splits text around case-insensitive occurrences of pattern,
// styling the matched spans.
func splitMatches(text, pattern string, base, match lipgloss.Style) []styledRun {
	if pattern == "" {
		return []styledRun{{text: text, style: base}}
	}

	lowerText := strings.ToLower(text)
	lowerPat := strings.ToLower(pattern)

	var runs []styledRun
	start := 0
	for {
		i := strings.Index(lowerText[start:], lowerPat)
		if i < 0 {
			if start < len(text) {
				runs = append(runs, styledRun{text: text[start:], style: base})
			}
			break
		}
		at := start + i
		if at > start {
			runs = append(runs, styledRun{text: text[start:at], style: base})
		}
		end := at + len(lowerPat)
		runs = append(runs, styledRun{text: text[at:end], style: match})
		start = end
	}
	if runs == nil {
		runs = []styledRun{{text: text, style: base}}
	}
	return runs
}

// clipRuns cuts a run sequence to the column window [skip, skip+take).
func clipRuns(runs []styledRun, skip, take int) []styledRun {
	var out []styledRun
	for _, r := range runs {
		text := r.text
		if skip > 0 {
			head, rest := splitColumns(text, skip)
			skip -= runewidth.StringWidth(head)
			text = rest
			if text == "" {
				continue
			}
		}
		if take <= 0 {
			break
		}
		head, _ := splitColumns(text, take)
		if head == "" {
			break
		}
		take -= runewidth.StringWidth(head)
		out = append(out, styledRun{text: head, style: r.style})
	}
	return out
}

// splitColumns splits s so the head occupies at most width display columns.
func splitColumns(s string, width int) (head, rest string) {
	used := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			return s[:i], s[i:]
		}
		used += w
	}
	return s, ""
}

func (m Model) statusBar() string {
	if m.searching {
		return m.searchInput.View()
	}
	if m.statusMessage != "" {
		return m.theme.StatusMsg.Render(m.statusMessage)
	}

	left := m.theme.Title.Render(m.source)
	pointer := m.state.Pointer()
	if pointer == "" {
		pointer = "/"
	}
	parts := []string{left, m.theme.StatusBar.Render(pointer)}

	var flags []string
	if m.state.Wrap {
		flags = append(flags, "wrap")
	}
	if m.state.Numbers {
		flags = append(flags, "nums")
	}
	if len(flags) > 0 {
		parts = append(parts, m.theme.StatusBar.Render("["+strings.Join(flags, ",")+"]"))
	}

	if m.state.Search.Active {
		parts = append(parts, m.theme.StatusBar.Render(
			fmt.Sprintf("/%s [%s]", m.state.Search.Pattern, m.state.Search.StatusText())))
	}

	return strings.Join(parts, "  ")
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
