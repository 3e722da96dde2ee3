// Package layout turns the document tree into the ordered sequence of
// display lines the viewport scrolls over. It is a pure function of the
// tree's fold state and the layout options; nothing here mutates the tree.
package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/sqwxl/jx/document"
)

// Role classifies what part of a node a line represents.
type Role int

const (
	// RoleOpen is the opening bracket line of an unfolded composite.
	RoleOpen Role = iota
	// RoleClose is the closing bracket line of an unfolded composite.
	RoleClose
	// RoleLeaf is the single line of a primitive value.
	RoleLeaf
	// RoleSummary is the single line of a folded composite.
	RoleSummary
	// RoleWrap carries overflow text of a wrapped value.
	RoleWrap
)

// SegmentKind classifies a piece of line text for styling, search and
// highlighting. Punctuation and index segments are skipped by search.
type SegmentKind int

const (
	SegPunct SegmentKind = iota
	SegKey
	SegString
	SegNumber
	SegBool
	SegNull
	SegIndex
	SegFoldCount
)

// Segment is a run of styled text within a line.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Line is one visual row derived from a node.
type Line struct {
	NodeID    int
	Role      Role
	WrapIndex int
	Indent    int // columns of leading whitespace
	Number    int // 1-based when numbering is enabled, 0 otherwise
	Segments  []Segment
	Width     int // total display columns, indent included
}

// Text returns the line's rendered text without indentation.
func (l *Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// SearchText returns the concatenation of the line's searchable segments
// (everything except punctuation and index gutters).
func (l *Line) SearchText() string {
	var sb strings.Builder
	for _, s := range l.Segments {
		if s.Kind == SegPunct || s.Kind == SegIndex {
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Options control a layout computation.
type Options struct {
	Width   int  // viewport width in columns, used for wrapping
	Wrap    bool // wrap long values instead of overflowing horizontally
	Numbers bool // assign sequential line numbers
	Indent  int  // spaces per nesting level
}

// DefaultIndent is the indentation step used when Options.Indent is zero.
const DefaultIndent = 2

// Layout is the computed line sequence. Lines contains exactly the visible
// content: folded composites contribute one summary line and descendants of
// folded nodes contribute nothing.
type Layout struct {
	Lines    []Line
	MaxWidth int

	first map[int]int // node id -> index of its first line
}

// Len returns the number of display lines.
func (l *Layout) Len() int { return len(l.Lines) }

// Line returns the line at index i, or nil if out of range.
func (l *Layout) Line(i int) *Line {
	if i < 0 || i >= len(l.Lines) {
		return nil
	}
	return &l.Lines[i]
}

// NodeAt returns the id of the node owning line i, or document.NoParent if
// out of range.
func (l *Layout) NodeAt(i int) int {
	if i < 0 || i >= len(l.Lines) {
		return document.NoParent
	}
	return l.Lines[i].NodeID
}

// FirstLine returns the index of the node's first line in the current
// layout. ok is false when the node is hidden inside a fold.
func (l *Layout) FirstLine(nodeID int) (int, bool) {
	i, ok := l.first[nodeID]
	return i, ok
}

type builder struct {
	tree  *document.Tree
	opts  Options
	lines []Line
	first map[int]int
}

// Compute lays out the visible portion of the tree. Cost is proportional to
// the number of visible nodes plus wrap expansions.
func Compute(tree *document.Tree, opts Options) *Layout {
	if opts.Indent <= 0 {
		opts.Indent = DefaultIndent
	}

	b := &builder{
		tree:  tree,
		opts:  opts,
		first: make(map[int]int),
	}
	b.node(tree.Root(), 0, false)

	l := &Layout{Lines: b.lines, first: b.first}
	for i := range l.Lines {
		if opts.Numbers {
			l.Lines[i].Number = i + 1
		}
		if w := l.Lines[i].Width; w > l.MaxWidth {
			l.MaxWidth = w
		}
	}
	return l
}

func (b *builder) node(n *document.Node, depth int, comma bool) {
	switch {
	case b.tree.IsComposite(n.ID) && b.tree.Fold(n.ID):
		b.summary(n, depth, comma)
	case b.tree.IsComposite(n.ID):
		b.composite(n, depth, comma)
	default:
		b.leaf(n, depth, comma)
	}
}

// keyPrefix returns the `"key": ` segments for object members, nil for
// array elements and the root.
func keyPrefix(n *document.Node) []Segment {
	if !n.HasKey {
		return nil
	}
	return []Segment{
		{Text: `"`, Kind: SegPunct},
		{Text: n.Key, Kind: SegKey},
		{Text: `": `, Kind: SegPunct},
	}
}

func brackets(kind document.Kind) (string, string) {
	if kind == document.KindArray {
		return "[", "]"
	}
	return "{", "}"
}

func (b *builder) composite(n *document.Node, depth int, comma bool) {
	open, close := brackets(n.Kind)

	segs := append(keyPrefix(n), Segment{Text: open, Kind: SegPunct})
	b.emit(n.ID, RoleOpen, depth, segs)

	children := b.tree.Children(n.ID)
	for i, id := range children {
		b.node(b.tree.Node(id), depth+1, i < len(children)-1)
	}

	segs = []Segment{{Text: close, Kind: SegPunct}}
	if comma {
		segs = append(segs, Segment{Text: ",", Kind: SegPunct})
	}
	b.emit(n.ID, RoleClose, depth, segs)
}

func (b *builder) summary(n *document.Node, depth int, comma bool) {
	open, close := brackets(n.Kind)

	count := len(n.Children)
	noun := "items"
	if count == 1 {
		noun = "item"
	}

	segs := append(keyPrefix(n),
		Segment{Text: open, Kind: SegPunct},
		Segment{Text: fmt.Sprintf("…%d %s", count, noun), Kind: SegFoldCount},
		Segment{Text: close, Kind: SegPunct},
	)
	if comma {
		segs = append(segs, Segment{Text: ",", Kind: SegPunct})
	}
	b.emit(n.ID, RoleSummary, depth, segs)
}

func valueSegments(v *document.Value) []Segment {
	switch v.Kind {
	case document.KindString:
		return []Segment{
			{Text: `"`, Kind: SegPunct},
			{Text: v.Str, Kind: SegString},
			{Text: `"`, Kind: SegPunct},
		}
	case document.KindNumber:
		return []Segment{{Text: v.Number, Kind: SegNumber}}
	case document.KindBool:
		return []Segment{{Text: v.Primitive(), Kind: SegBool}}
	default:
		return []Segment{{Text: "null", Kind: SegNull}}
	}
}

func (b *builder) leaf(n *document.Node, depth int, comma bool) {
	prefix := keyPrefix(n)
	value := valueSegments(n.Value)

	var tail []Segment
	if comma {
		tail = []Segment{{Text: ",", Kind: SegPunct}}
	}

	indent := depth * b.opts.Indent
	prefixW := segmentsWidth(prefix)
	totalW := indent + prefixW + segmentsWidth(value) + segmentsWidth(tail)

	if !b.opts.Wrap || b.opts.Width <= 0 || totalW <= b.opts.Width {
		b.emit(n.ID, RoleLeaf, depth, append(append(prefix, value...), tail...))
		return
	}

	// The value overflows: split it into continuation lines aligned under
	// the value's start column. The key prefix stays on the first line.
	valueCol := indent + prefixW
	avail := b.opts.Width - valueCol
	if avail < 1 {
		avail = 1
	}

	chunks := wrapSegments(append(value, tail...), avail)
	for i, chunk := range chunks {
		if i == 0 {
			b.emit(n.ID, RoleLeaf, depth, append(prefix, chunk...))
			continue
		}
		line := b.makeLine(n.ID, RoleWrap, 0, chunk)
		line.Indent = valueCol
		line.Width = valueCol + segmentsWidth(chunk)
		line.WrapIndex = i
		b.lines = append(b.lines, line)
	}
}

func (b *builder) emit(nodeID int, role Role, depth int, segs []Segment) {
	line := b.makeLine(nodeID, role, depth, segs)
	b.lines = append(b.lines, line)
}

func (b *builder) makeLine(nodeID int, role Role, depth int, segs []Segment) Line {
	indent := depth * b.opts.Indent
	if _, seen := b.first[nodeID]; !seen {
		b.first[nodeID] = len(b.lines)
	}
	return Line{
		NodeID:   nodeID,
		Role:     role,
		Indent:   indent,
		Segments: segs,
		Width:    indent + segmentsWidth(segs),
	}
}

func segmentsWidth(segs []Segment) int {
	w := 0
	for _, s := range segs {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// wrapSegments splits a segment run into chunks of at most width display
// columns each, preserving segment kinds across the split.
func wrapSegments(segs []Segment, width int) [][]Segment {
	var chunks [][]Segment
	var cur []Segment
	used := 0

	flush := func() {
		if len(cur) > 0 {
			chunks = append(chunks, cur)
			cur = nil
			used = 0
		}
	}

	for _, seg := range segs {
		text := seg.Text
		for text != "" {
			room := width - used
			if room <= 0 {
				flush()
				room = width
			}
			head, rest := splitWidth(text, room)
			if head == "" {
				// A single rune wider than the remaining room: force it
				// onto its own line rather than looping forever.
				if used == 0 {
					head, rest = splitRunes(text, 1)
				} else {
					flush()
					continue
				}
			}
			cur = append(cur, Segment{Text: head, Kind: seg.Kind})
			used += runewidth.StringWidth(head)
			text = rest
		}
	}
	flush()

	if chunks == nil {
		chunks = [][]Segment{{}}
	}
	return chunks
}

// splitWidth splits s so the head occupies at most width display columns.
func splitWidth(s string, width int) (head, rest string) {
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

func splitRunes(s string, n int) (head, rest string) {
	for i := range s {
		if n == 0 {
			return s[:i], s[i:]
		}
		n--
	}
	return s, ""
}
