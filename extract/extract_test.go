package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqwxl/jx/document"
)

func mustTree(t *testing.T, src string) *document.Tree {
	t.Helper()
	root, err := document.ParseBytes([]byte(src))
	require.NoError(t, err)
	return document.NewTree(root)
}

func TestEntryVersusValue(t *testing.T) {
	tree := mustTree(t, `{"b": {"c": 2}}`)
	// ids: root=0 b=1 c=2

	assert.Equal(t, "\"b\": {\n  \"c\": 2\n}", Node(tree, 1, ModeEntry, OutputPretty, 2))
	assert.Equal(t, "{\n  \"c\": 2\n}", Node(tree, 1, ModeValue, OutputPretty, 2))
	assert.Equal(t, `"b": {"c":2}`, Node(tree, 1, ModeEntry, OutputRaw, 2))
	assert.Equal(t, `{"c":2}`, Node(tree, 1, ModeValue, OutputRaw, 2))
}

func TestEntryOnKeylessNodeFallsBackToValue(t *testing.T) {
	tree := mustTree(t, `[10, 20]`)
	// ids: root=0 elements 1,2

	assert.Equal(t, "10", Node(tree, 1, ModeEntry, OutputPretty, 2))
	assert.Equal(t, "[\n  10,\n  20\n]", Node(tree, 0, ModeEntry, OutputPretty, 2))
}

func TestMemberOrderAndNumberTextPreserved(t *testing.T) {
	tree := mustTree(t, `{"z": 1.50, "a": 1e3, "m": 0.1000}`)

	assert.Equal(t, `{"z":1.50,"a":1e3,"m":0.1000}`, Node(tree, 0, ModeValue, OutputRaw, 2))
}

func TestPrettyIndentDepth(t *testing.T) {
	tree := mustTree(t, `{"a": {"b": [1]}}`)

	want := "{\n" +
		"    \"a\": {\n" +
		"        \"b\": [\n" +
		"            1\n" +
		"        ]\n" +
		"    }\n" +
		"}"
	assert.Equal(t, want, Node(tree, 0, ModeValue, OutputPretty, 4))
}

func TestEmptyComposites(t *testing.T) {
	tree := mustTree(t, `{"o": {}, "a": []}`)

	assert.Equal(t, `"o": {}`, Node(tree, 1, ModeEntry, OutputPretty, 2))
	assert.Equal(t, "[]", Node(tree, 2, ModeValue, OutputPretty, 2))
	assert.Equal(t, `{"o":{},"a":[]}`, Node(tree, 0, ModeValue, OutputRaw, 2))
}

func TestStringEscaping(t *testing.T) {
	tree := mustTree(t, `{"he said": "a\"b\nc"}`)

	assert.Equal(t, `"he said": "a\"b\nc"`, Node(tree, 1, ModeEntry, OutputRaw, 2))
}

func TestPrimitiveLeaves(t *testing.T) {
	tree := mustTree(t, `[null, true, false, "s"]`)

	assert.Equal(t, "null", Node(tree, 1, ModeValue, OutputRaw, 2))
	assert.Equal(t, "true", Node(tree, 2, ModeValue, OutputRaw, 2))
	assert.Equal(t, "false", Node(tree, 3, ModeValue, OutputRaw, 2))
	assert.Equal(t, `"s"`, Node(tree, 4, ModeValue, OutputRaw, 2))
}

func TestUnknownNode(t *testing.T) {
	tree := mustTree(t, `{"a": 1}`)

	assert.Equal(t, "", Node(tree, 99, ModeValue, OutputRaw, 2))
}
