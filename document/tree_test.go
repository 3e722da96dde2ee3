package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTree(t *testing.T, src string) *Tree {
	t.Helper()
	v, err := ParseBytes([]byte(src))
	require.NoError(t, err)
	return NewTree(v)
}

func TestTreeBuildAssignsPreOrderIDs(t *testing.T) {
	// root=0, a=1, b=2, c=3
	tree := mustTree(t, `{"a": 1, "b": {"c": 2}}`)

	require.Equal(t, 4, tree.Len())

	root := tree.Root()
	assert.Equal(t, 0, root.ID)
	assert.Equal(t, NoParent, root.Parent)
	assert.Equal(t, []int{1, 2}, root.Children)

	a := tree.Node(1)
	assert.Equal(t, "a", a.Key)
	assert.True(t, a.HasKey)
	assert.Equal(t, KindNumber, a.Kind)

	b := tree.Node(2)
	assert.Equal(t, "b", b.Key)
	assert.Equal(t, KindObject, b.Kind)
	assert.Equal(t, []int{3}, b.Children)

	c := tree.Node(3)
	assert.Equal(t, "c", c.Key)
	assert.Equal(t, 2, c.Parent)
	assert.Equal(t, b, tree.Parent(c.ID))
}

func TestTreeArrayElementsHaveNoKey(t *testing.T) {
	tree := mustTree(t, `["x", "y"]`)

	first := tree.Node(1)
	assert.False(t, first.HasKey)
	assert.Equal(t, 0, first.Index)
	second := tree.Node(2)
	assert.Equal(t, 1, second.Index)
}

func TestFoldOperations(t *testing.T) {
	tree := mustTree(t, `{"a": 1, "b": {"c": 2}}`)

	assert.False(t, tree.Fold(2))
	tree.ToggleFold(2)
	assert.True(t, tree.Fold(2))
	tree.ToggleFold(2)
	assert.False(t, tree.Fold(2))

	tree.SetFold(2, true)
	assert.True(t, tree.Fold(2))
}

func TestFoldLeafIsNoOp(t *testing.T) {
	tree := mustTree(t, `{"a": 1}`)

	tree.SetFold(1, true)
	assert.False(t, tree.Fold(1))
	tree.ToggleFold(1)
	assert.False(t, tree.Fold(1))
}

func TestFoldAll(t *testing.T) {
	tree := mustTree(t, `{"a": [1, 2], "b": {"c": {}}}`)

	tree.FoldAll(true)
	for id := 0; id < tree.Len(); id++ {
		if tree.IsComposite(id) {
			assert.True(t, tree.Fold(id), "composite %d should be folded", id)
		} else {
			assert.False(t, tree.Fold(id))
		}
	}

	tree.FoldAll(false)
	for id := 0; id < tree.Len(); id++ {
		assert.False(t, tree.Fold(id))
	}
}

func TestVisibilityUnderFolds(t *testing.T) {
	// root=0, b=1, c=2, d=3
	tree := mustTree(t, `{"b": {"c": {"d": 1}}}`)

	assert.True(t, tree.Visible(3))

	tree.SetFold(1, true)
	assert.False(t, tree.Visible(3))
	assert.False(t, tree.Visible(2))
	assert.True(t, tree.Visible(1), "the folded node itself stays visible")
	assert.Equal(t, 1, tree.HiddenBy(3))

	// An inner fold beneath an outer fold: the outermost wins.
	tree.SetFold(2, true)
	assert.Equal(t, 1, tree.HiddenBy(3))
}

func TestPointer(t *testing.T) {
	tree := mustTree(t, `{"a": [0, {"x/y": 1, "t~": 2}]}`)

	assert.Equal(t, "", tree.Pointer(0))

	// root=0, a=1, 0=2, obj=3, x/y=4, t~=5
	assert.Equal(t, "/a", tree.Pointer(1))
	assert.Equal(t, "/a/0", tree.Pointer(2))
	assert.Equal(t, "/a/1", tree.Pointer(3))
	assert.Equal(t, "/a/1/x~1y", tree.Pointer(4))
	assert.Equal(t, "/a/1/t~0", tree.Pointer(5))
}
