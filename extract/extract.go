// Package extract serializes the cursor's selection back to JSON text.
// Pretty output reuses the viewer's indentation rule; raw output is compact
// single-line JSON. Member order and number text are preserved.
package extract

import (
	"strconv"
	"strings"

	"github.com/sqwxl/jx/document"
)

// Mode selects how much of the selection is serialized.
type Mode int

const (
	// ModeEntry serializes `"key": value`, or the bare value when the node
	// has no key (the root or an array element).
	ModeEntry Mode = iota
	// ModeValue serializes just the value subtree.
	ModeValue
)

// Output selects the serialization format.
type Output int

const (
	OutputPretty Output = iota
	OutputRaw
)

// Node renders the selection for the given node.
func Node(tree *document.Tree, nodeID int, mode Mode, out Output, indent int) string {
	n := tree.Node(nodeID)
	if n == nil {
		return ""
	}
	if indent <= 0 {
		indent = 2
	}

	var sb strings.Builder
	if mode == ModeEntry && n.HasKey {
		sb.WriteString(strconv.Quote(n.Key))
		sb.WriteString(": ")
	}
	writeValue(&sb, n.Value, out, indent, 0)
	return sb.String()
}

func writeValue(sb *strings.Builder, v *document.Value, out Output, indent, depth int) {
	switch v.Kind {
	case document.KindNull:
		sb.WriteString("null")
	case document.KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case document.KindNumber:
		sb.WriteString(v.Number)
	case document.KindString:
		sb.WriteString(strconv.Quote(v.Str))
	case document.KindArray:
		writeArray(sb, v, out, indent, depth)
	case document.KindObject:
		writeObject(sb, v, out, indent, depth)
	}
}

func writeArray(sb *strings.Builder, v *document.Value, out Output, indent, depth int) {
	if len(v.Items) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, item := range v.Items {
		if i > 0 {
			sb.WriteByte(',')
		}
		newline(sb, out, indent, depth+1)
		writeValue(sb, item, out, indent, depth+1)
	}
	newline(sb, out, indent, depth)
	sb.WriteByte(']')
}

func writeObject(sb *strings.Builder, v *document.Value, out Output, indent, depth int) {
	if len(v.Members) == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteByte('{')
	for i, member := range v.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		newline(sb, out, indent, depth+1)
		sb.WriteString(strconv.Quote(v.Keys[i]))
		if out == OutputPretty {
			sb.WriteString(": ")
		} else {
			sb.WriteByte(':')
		}
		writeValue(sb, member, out, indent, depth+1)
	}
	newline(sb, out, indent, depth)
	sb.WriteByte('}')
}

func newline(sb *strings.Builder, out Output, indent, depth int) {
	if out != OutputPretty {
		return
	}
	sb.WriteByte('\n')
	for i := 0; i < indent*depth; i++ {
		sb.WriteByte(' ')
	}
}
