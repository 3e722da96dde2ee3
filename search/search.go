// Package search implements incremental text search over the rendered
// document. Matching is done against node key and value text, in document
// order, independent of fold state: matches inside folded subtrees are kept
// and revealed on navigation.
package search

import (
	"fmt"
	"strings"

	"github.com/sqwxl/jx/document"
)

// Match is one occurrence of the pattern.
type Match struct {
	NodeID int
	// InKey is true when the pattern matched the member key rather than the
	// value text.
	InKey bool
	// Start and End are byte offsets of the match within the lowercased
	// key or value text, used for highlight alignment.
	Start, End int
}

// State holds the active pattern and its matches. It survives fold and
// scroll changes; matches are recomputed only on a new pattern or document.
type State struct {
	Pattern string
	Matches []Match
	Current int // index into Matches, -1 before the first jump
	Active  bool

	matched map[int]bool
}

// New returns an empty, inactive search state.
func New() *State {
	return &State{Current: -1}
}

// Commit sets the pattern and rebuilds the match list over the whole tree.
// An empty pattern yields an empty match list.
func (s *State) Commit(tree *document.Tree, pattern string) {
	s.Pattern = pattern
	s.Matches = nil
	s.Current = -1
	s.Active = pattern != ""
	s.matched = make(map[int]bool)

	if pattern == "" {
		return
	}

	needle := strings.ToLower(pattern)

	// Arena ids are assigned in depth-first pre-order, so ascending id
	// order is display-line order.
	for id := 0; id < tree.Len(); id++ {
		n := tree.Node(id)
		if n.HasKey {
			s.collect(n.ID, true, n.Key, needle)
		}
		if !tree.IsComposite(id) {
			s.collect(n.ID, false, n.Value.Primitive(), needle)
		}
	}
}

func (s *State) collect(nodeID int, inKey bool, text, needle string) {
	haystack := strings.ToLower(text)
	start := 0
	for {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			return
		}
		at := start + i
		s.Matches = append(s.Matches, Match{
			NodeID: nodeID,
			InKey:  inKey,
			Start:  at,
			End:    at + len(needle),
		})
		s.matched[nodeID] = true
		start = at + 1
	}
}

// Clear drops the pattern, matches and highlight state.
func (s *State) Clear() {
	s.Pattern = ""
	s.Matches = nil
	s.Current = -1
	s.Active = false
	s.matched = nil
}

// Next advances to the next match, wrapping around at the end.
func (s *State) Next() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	if s.Current < 0 {
		s.Current = 0
	} else {
		s.Current = (s.Current + 1) % len(s.Matches)
	}
	return s.Matches[s.Current], true
}

// Prev moves to the previous match, wrapping around at the start.
func (s *State) Prev() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	switch {
	case s.Current < 0, s.Current == 0:
		s.Current = len(s.Matches) - 1
	default:
		s.Current--
	}
	return s.Matches[s.Current], true
}

// CurrentMatch returns the match the cursor last jumped to.
func (s *State) CurrentMatch() (Match, bool) {
	if s.Current < 0 || s.Current >= len(s.Matches) {
		return Match{}, false
	}
	return s.Matches[s.Current], true
}

// NodeMatched reports whether any match landed on the node.
func (s *State) NodeMatched(nodeID int) bool {
	return s.matched[nodeID]
}

// StatusText renders the match position for the status bar.
func (s *State) StatusText() string {
	if len(s.Matches) == 0 {
		return "0/0"
	}
	if s.Current < 0 {
		return fmt.Sprintf("-/%d", len(s.Matches))
	}
	return fmt.Sprintf("%d/%d", s.Current+1, len(s.Matches))
}
