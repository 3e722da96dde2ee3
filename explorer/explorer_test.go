package explorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqwxl/jx/document"
	"github.com/sqwxl/jx/extract"
)

func newState(t *testing.T, src string) *State {
	t.Helper()
	root, err := document.ParseBytes([]byte(src))
	require.NoError(t, err)
	s := New(root)
	s.Resize(80, 24)
	return s
}

// {"a": 1, "b": {"c": 2}} assigns ids root=0, a=1, b=2, c=3.
const nested = `{"a": 1, "b": {"c": 2}}`

func TestCursorMovement(t *testing.T) {
	s := newState(t, nested)

	assert.Equal(t, 0, s.Cursor)
	s.MovePrev()
	assert.Equal(t, 0, s.Cursor, "MovePrev at the top is a no-op")

	s.MoveNext()
	assert.Equal(t, 1, s.Cursor)
	s.MoveNext()
	assert.Equal(t, 2, s.Cursor)
	s.MoveNext()
	assert.Equal(t, 3, s.Cursor)
	s.MoveNext()
	assert.Equal(t, 3, s.Cursor, "MoveNext at the bottom is a no-op")

	s.MovePrev()
	assert.Equal(t, 2, s.Cursor)
}

func TestMoveInAndOut(t *testing.T) {
	s := newState(t, nested)

	s.MoveIn()
	assert.Equal(t, 1, s.Cursor, "descend to first child")

	s.MoveIn()
	assert.Equal(t, 1, s.Cursor, "MoveIn on a leaf is a no-op")

	s.MoveOut()
	assert.Equal(t, 0, s.Cursor)
	s.MoveOut()
	assert.Equal(t, 0, s.Cursor, "MoveOut at the root is a no-op")
}

func TestMoveInUnfoldsBeforeDescending(t *testing.T) {
	s := newState(t, nested)
	s.Cursor = 2
	s.ToggleFold()
	require.True(t, s.Tree.Fold(2))

	// First press unfolds in place, second descends.
	s.MoveIn()
	assert.False(t, s.Tree.Fold(2))
	assert.Equal(t, 2, s.Cursor)
	s.MoveIn()
	assert.Equal(t, 3, s.Cursor)
}

func TestMoveNextSkipsFoldedSubtree(t *testing.T) {
	s := newState(t, `{"a": {"x": 1, "y": 2}, "b": 3}`)
	// ids: root=0 a=1 x=2 y=3 b=4
	s.Cursor = 1
	s.ToggleFold()

	s.MoveNext()
	assert.Equal(t, 4, s.Cursor)
	s.MovePrev()
	assert.Equal(t, 1, s.Cursor)
}

func TestFoldRelocatesHiddenCursor(t *testing.T) {
	s := newState(t, nested)
	s.Cursor = 3

	// Folding b from outside (fold acts on c's parent, the leaf rule).
	s.ToggleFold()
	assert.Equal(t, 2, s.Cursor, "leaf fold targets the enclosing composite")
	assert.True(t, s.Tree.Fold(2))
	assert.False(t, s.Tree.Visible(3))

	// Cursor always owns a line in the current layout.
	_, ok := s.Layout.FirstLine(s.Cursor)
	assert.True(t, ok)
}

func TestToggleFoldRoundTrip(t *testing.T) {
	s := newState(t, nested)
	full := s.Layout.Len()

	s.Cursor = 2
	s.ToggleFold()
	assert.Less(t, s.Layout.Len(), full)

	s.ToggleFold()
	assert.Equal(t, full, s.Layout.Len())
	assert.Equal(t, 2, s.Cursor)
}

func TestToggleFoldAll(t *testing.T) {
	s := newState(t, nested)
	s.Cursor = 3

	s.ToggleFoldAll()
	assert.Equal(t, 0, s.Cursor, "fold-all selects the root")
	assert.True(t, s.Tree.Fold(0))
	assert.True(t, s.Tree.Fold(2))
	assert.Equal(t, 1, s.Layout.Len(), "only the root summary remains")

	s.ToggleFoldAll()
	assert.False(t, s.Tree.Fold(0))
	assert.False(t, s.Tree.Fold(2))
}

func TestGotoTopAndBottom(t *testing.T) {
	s := newState(t, nested)

	s.GotoBottom()
	assert.Equal(t, 3, s.Cursor)

	s.GotoTop()
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 0, s.View.YOffset)

	// Folded subtrees are skipped when seeking the last node.
	s.Cursor = 2
	s.ToggleFold()
	s.GotoBottom()
	assert.Equal(t, 2, s.Cursor)
}

func TestSearchJumpUnfolds(t *testing.T) {
	s := newState(t, nested)
	s.Cursor = 2
	s.ToggleFold()
	require.False(t, s.Tree.Visible(3))

	s.SearchCommit("c")
	assert.Equal(t, 3, s.Cursor, "commit jumps to the first match")
	assert.False(t, s.Tree.Fold(2), "the hiding fold is released")
	assert.True(t, s.Tree.Visible(3))

	// The unfold is sticky: clearing the search leaves it open.
	s.SearchClear()
	assert.False(t, s.Tree.Fold(2))
}

func TestSearchNextWrapsAround(t *testing.T) {
	s := newState(t, `{"aa": 1, "ab": 2}`)
	s.SearchCommit("a")
	first := s.Cursor

	seen := []int{first}
	for i := 0; i < len(s.Search.Matches)-1; i++ {
		s.SearchNext()
		seen = append(seen, s.Cursor)
	}
	s.SearchNext()
	assert.Equal(t, first, s.Cursor, "next past the last match wraps to the first")
	assert.Greater(t, len(seen), 1)
}

func TestSearchNoMatchesIsNoOp(t *testing.T) {
	s := newState(t, nested)
	s.Cursor = 1
	s.SearchCommit("zzz")
	assert.Equal(t, 1, s.Cursor)
	s.SearchNext()
	assert.Equal(t, 1, s.Cursor)
}

func TestToggleWrapRelaysOut(t *testing.T) {
	long := `{"k": "` + strings.Repeat("x", 200) + `"}`
	s := newState(t, long)
	s.Resize(40, 24)
	unwrapped := s.Layout.Len()

	s.ToggleWrap()
	assert.Greater(t, s.Layout.Len(), unwrapped)
	assert.LessOrEqual(t, s.Layout.MaxWidth, 40)

	s.ToggleWrap()
	assert.Equal(t, unwrapped, s.Layout.Len())
}

func TestScrollKeepsCursor(t *testing.T) {
	s := newState(t, nested)
	s.Resize(80, 2)

	s.ScrollLines(1)
	assert.Equal(t, 1, s.View.YOffset)
	assert.Equal(t, 0, s.Cursor, "scrolling never moves the cursor")

	s.ScrollFullPage(1)
	assert.Equal(t, 3, s.View.YOffset)
	s.ScrollHalfPage(-1)
	assert.Equal(t, 2, s.View.YOffset)
}

func TestCursorVisibleAfterOperationSequences(t *testing.T) {
	s := newState(t, `{"a": {"b": {"c": [1, 2, 3]}}, "d": 4}`)
	s.Resize(30, 4)

	ops := []func(){
		s.GotoBottom,
		func() { s.MovePrev() },
		s.ToggleFold,
		s.ToggleFoldAll,
		func() { s.MoveIn() },
		func() { s.SearchCommit("c") },
		s.ToggleFoldAll,
		s.GotoTop,
		s.ToggleWrap,
		func() { s.SearchNext() },
	}
	for i, op := range ops {
		op()
		require.True(t, s.Tree.Visible(s.Cursor), "op %d hid the cursor", i)
		line, ok := s.Layout.FirstLine(s.Cursor)
		require.True(t, ok, "op %d left the cursor without a line", i)
		require.True(t, s.View.Contains(line), "op %d scrolled the cursor out", i)
	}
}

func TestExtractRecordsSelectionMode(t *testing.T) {
	s := newState(t, nested)
	s.Cursor = 2

	got := s.Extract(extract.ModeEntry, extract.OutputPretty)
	assert.Equal(t, "\"b\": {\n  \"c\": 2\n}", got)
	assert.Equal(t, extract.ModeEntry, s.SelectionMode)

	got = s.Extract(extract.ModeValue, extract.OutputRaw)
	assert.Equal(t, `{"c":2}`, got)
	assert.Equal(t, extract.ModeValue, s.SelectionMode)
}

func TestPointer(t *testing.T) {
	s := newState(t, nested)
	assert.Equal(t, "", s.Pointer())
	s.Cursor = 3
	assert.Equal(t, "/b/c", s.Pointer())
}
