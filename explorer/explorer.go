// Package explorer owns the application state: the document tree, the
// current layout, the viewport, the cursor and the search state. Every user
// command is one synchronous transition on a State value; the TUI layer maps
// key events onto these methods and renders the result.
package explorer

import (
	"github.com/sqwxl/jx/document"
	"github.com/sqwxl/jx/extract"
	"github.com/sqwxl/jx/layout"
	"github.com/sqwxl/jx/search"
	"github.com/sqwxl/jx/viewport"
)

// State is the single mutable value owned by the event loop.
type State struct {
	Tree   *document.Tree
	Layout *layout.Layout
	View   viewport.Viewport
	Search *search.State

	// Cursor is the id of the selected node. It always owns at least one
	// line in the current layout.
	Cursor int

	// SelectionMode is the scope used by the most recent extraction.
	SelectionMode extract.Mode

	Wrap    bool
	Numbers bool
	Indent  int

	allFolded bool
}

// New builds the state for a parsed document. The viewport has no size
// until Resize is called; rendering is suppressed until then.
func New(root *document.Value) *State {
	s := &State{
		Tree:   document.NewTree(root),
		Search: search.New(),
		Indent: layout.DefaultIndent,
	}
	s.Relayout()
	return s
}

// Relayout recomputes the line layout against the current fold state and
// options, re-clamps the viewport and restores the cursor invariant.
func (s *State) Relayout() {
	s.Layout = layout.Compute(s.Tree, layout.Options{
		Width:   s.View.Width,
		Wrap:    s.Wrap,
		Numbers: s.Numbers,
		Indent:  s.Indent,
	})
	s.View.SetContent(s.Layout.Len(), s.Layout.MaxWidth)

	// If a fold hid the cursor's node, relocate to the folding ancestor.
	if !s.Tree.Visible(s.Cursor) {
		s.Cursor = s.Tree.HiddenBy(s.Cursor)
	}
	s.scrollToCursor()
}

// Resize records a new window size and relays out (wrapping depends on the
// width).
func (s *State) Resize(width, height int) {
	s.View.SetSize(width, height)
	s.Relayout()
}

// CursorLine returns the index of the cursor node's first visible line.
func (s *State) CursorLine() int {
	if i, ok := s.Layout.FirstLine(s.Cursor); ok {
		return i
	}
	return 0
}

func (s *State) scrollToCursor() {
	s.View.EnsureVisible(s.CursorLine())
}

// MoveNext selects the next node in visible line order, skipping the cursor
// node's own continuation and closing lines. At the bottom it is a no-op.
func (s *State) MoveNext() {
	// Arena ids are depth-first pre-order, which is exactly the order of
	// first lines in the layout.
	for id := s.Cursor + 1; id < s.Tree.Len(); id++ {
		if s.Tree.Visible(id) {
			s.Cursor = id
			s.scrollToCursor()
			return
		}
	}
}

// MovePrev selects the previous node in visible line order. At the top it
// is a no-op.
func (s *State) MovePrev() {
	for id := s.Cursor - 1; id >= 0; id-- {
		if s.Tree.Visible(id) {
			s.Cursor = id
			s.scrollToCursor()
			return
		}
	}
}

// MoveIn unfolds the cursor's composite if folded, otherwise descends to
// its first child. A no-op on childless nodes.
func (s *State) MoveIn() {
	if s.Tree.IsComposite(s.Cursor) && s.Tree.Fold(s.Cursor) {
		s.Tree.SetFold(s.Cursor, false)
		s.Relayout()
		return
	}
	children := s.Tree.Children(s.Cursor)
	if len(children) > 0 {
		s.Cursor = children[0]
		s.scrollToCursor()
	}
}

// MoveOut selects the parent node. It never folds anything.
func (s *State) MoveOut() {
	if p := s.Tree.Parent(s.Cursor); p != nil {
		s.Cursor = p.ID
		s.scrollToCursor()
	}
}

// GotoTop selects the first node with a visible line.
func (s *State) GotoTop() {
	s.Cursor = s.Tree.Root().ID
	s.View.ScrollToTop()
	s.scrollToCursor()
}

// GotoBottom selects the last node with a visible line.
func (s *State) GotoBottom() {
	for id := s.Tree.Len() - 1; id >= 0; id-- {
		if s.Tree.Visible(id) {
			s.Cursor = id
			break
		}
	}
	s.View.ScrollToBottom()
	s.scrollToCursor()
}

// ToggleFold toggles the fold state of the cursor's composite. On a leaf it
// folds the enclosing composite instead, moving the cursor to it.
func (s *State) ToggleFold() {
	if !s.Tree.IsComposite(s.Cursor) {
		p := s.Tree.Parent(s.Cursor)
		if p == nil {
			return
		}
		s.Cursor = p.ID
	}
	s.Tree.ToggleFold(s.Cursor)
	s.Relayout()
}

// ToggleFoldAll folds every composite, or unfolds everything if the last
// fold-all is still in effect. Folding all moves the cursor to the root.
func (s *State) ToggleFoldAll() {
	if s.allFolded {
		s.Tree.FoldAll(false)
		s.allFolded = false
	} else {
		s.Tree.FoldAll(true)
		s.allFolded = true
		s.Cursor = s.Tree.Root().ID
	}
	s.Relayout()
}

// ToggleWrap flips value wrapping and relays out.
func (s *State) ToggleWrap() {
	s.Wrap = !s.Wrap
	s.Relayout()
}

// ToggleNumbers flips line numbering and relays out.
func (s *State) ToggleNumbers() {
	s.Numbers = !s.Numbers
	s.Relayout()
}

// ScrollLines scrolls the viewport without moving the cursor.
func (s *State) ScrollLines(delta int) { s.View.ScrollLines(delta) }

// ScrollHalfPage scrolls by half the viewport height.
func (s *State) ScrollHalfPage(delta int) { s.View.ScrollPages(delta, true) }

// ScrollFullPage scrolls by the full viewport height.
func (s *State) ScrollFullPage(delta int) { s.View.ScrollPages(delta, false) }

// ScrollHorizontal scrolls sideways.
func (s *State) ScrollHorizontal(delta int) { s.View.ScrollHorizontal(delta) }

// SearchCommit sets the search pattern and jumps to the first match.
func (s *State) SearchCommit(pattern string) {
	s.Search.Commit(s.Tree, pattern)
	if len(s.Search.Matches) > 0 {
		s.SearchNext()
	}
}

// SearchNext jumps to the next match, unfolding whatever hides it. With no
// matches it is a no-op.
func (s *State) SearchNext() {
	if m, ok := s.Search.Next(); ok {
		s.jumpToMatch(m)
	}
}

// SearchPrev jumps to the previous match, unfolding whatever hides it.
func (s *State) SearchPrev() {
	if m, ok := s.Search.Prev(); ok {
		s.jumpToMatch(m)
	}
}

func (s *State) jumpToMatch(m search.Match) {
	// Unfold the minimal ancestor chain; the unfolds are sticky and survive
	// a later SearchClear.
	changed := false
	for p := s.Tree.Node(m.NodeID).Parent; p != document.NoParent; p = s.Tree.Node(p).Parent {
		if s.Tree.Fold(p) {
			s.Tree.SetFold(p, false)
			changed = true
		}
	}
	s.Cursor = m.NodeID
	if changed {
		s.Relayout()
	} else {
		s.scrollToCursor()
	}
}

// SearchClear drops the match list and highlights. Fold state is left as
// navigation changed it.
func (s *State) SearchClear() {
	s.Search.Clear()
}

// Extract serializes the current selection.
func (s *State) Extract(mode extract.Mode, out extract.Output) string {
	s.SelectionMode = mode
	return extract.Node(s.Tree, s.Cursor, mode, out, s.Indent)
}

// Pointer returns the cursor's JSON pointer path for the status bar.
func (s *State) Pointer() string {
	return s.Tree.Pointer(s.Cursor)
}
