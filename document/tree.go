package document

import (
	"strconv"
	"strings"
)

// NoParent is the parent id of the root node.
const NoParent = -1

// Node is one element of the tree arena. Every array element and object
// member gets a node, including the root value itself. Nodes hold ids, not
// pointers, so the graph stays acyclic and fold mutation never rewrites it.
type Node struct {
	ID       int
	Parent   int // NoParent for the root
	Children []int
	Kind     Kind
	Value    *Value

	// Key is set for object members only.
	Key    string
	HasKey bool

	// Index is the position within the parent's child list, -1 for the root.
	Index int

	folded bool
}

// Tree is the node arena built from a parsed value. The value tree is
// immutable; fold state is the only mutable field.
type Tree struct {
	nodes []*Node
}

// NewTree builds the node arena from a parsed value in a single depth-first
// pass. Ids are assigned in pre-order and never reused.
func NewTree(root *Value) *Tree {
	t := &Tree{}
	t.build(root, NoParent, "", false, -1)
	return t
}

func (t *Tree) build(v *Value, parent int, key string, hasKey bool, index int) int {
	n := &Node{
		ID:     len(t.nodes),
		Parent: parent,
		Kind:   v.Kind,
		Value:  v,
		Key:    key,
		HasKey: hasKey,
		Index:  index,
	}
	t.nodes = append(t.nodes, n)

	switch v.Kind {
	case KindObject:
		for i, member := range v.Members {
			child := t.build(member, n.ID, v.Keys[i], true, i)
			n.Children = append(n.Children, child)
		}
	case KindArray:
		for i, item := range v.Items {
			child := t.build(item, n.ID, "", false, i)
			n.Children = append(n.Children, child)
		}
	}

	return n.ID
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node.
func (t *Tree) Root() *Node { return t.nodes[0] }

// Node returns the node with the given id, or nil if out of range.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Children returns the ordered child ids of a node.
func (t *Tree) Children(id int) []int {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return n.Children
}

// Parent returns the parent node, or nil for the root.
func (t *Tree) Parent(id int) *Node {
	n := t.Node(id)
	if n == nil || n.Parent == NoParent {
		return nil
	}
	return t.nodes[n.Parent]
}

// IsComposite reports whether the node is an array or object.
func (t *Tree) IsComposite(id int) bool {
	n := t.Node(id)
	return n != nil && (n.Kind == KindArray || n.Kind == KindObject)
}

// Fold reports the fold state of a node. Leaves are never folded.
func (t *Tree) Fold(id int) bool {
	n := t.Node(id)
	return n != nil && n.folded
}

// SetFold sets the fold state of a composite node. On leaves it is a no-op.
func (t *Tree) SetFold(id int, folded bool) {
	if !t.IsComposite(id) {
		return
	}
	t.nodes[id].folded = folded
}

// ToggleFold flips the fold state of a composite node. On leaves it is a
// no-op.
func (t *Tree) ToggleFold(id int) {
	if !t.IsComposite(id) {
		return
	}
	t.nodes[id].folded = !t.nodes[id].folded
}

// FoldAll sets the fold state of every composite node in one pass.
func (t *Tree) FoldAll(folded bool) {
	for _, n := range t.nodes {
		if n.Kind == KindArray || n.Kind == KindObject {
			n.folded = folded
		}
	}
}

// HiddenBy returns the id of the outermost folded ancestor hiding the node,
// or NoParent if every ancestor is unfolded (the node is visible).
func (t *Tree) HiddenBy(id int) int {
	hidden := NoParent
	for p := t.Node(id).Parent; p != NoParent; p = t.nodes[p].Parent {
		if t.nodes[p].folded {
			hidden = p
		}
	}
	return hidden
}

// Visible reports whether no ancestor of the node is folded.
func (t *Tree) Visible(id int) bool {
	return t.HiddenBy(id) == NoParent
}

// Pointer returns the node's path as a JSON pointer (RFC 6901), "" for the
// root. Shown in the status bar.
func (t *Tree) Pointer(id int) string {
	n := t.Node(id)
	if n == nil || n.Parent == NoParent {
		return ""
	}
	var sb strings.Builder
	t.writePointer(&sb, n)
	return sb.String()
}

func (t *Tree) writePointer(sb *strings.Builder, n *Node) {
	if n.Parent != NoParent {
		t.writePointer(sb, t.nodes[n.Parent])
	} else {
		return
	}
	sb.WriteByte('/')
	if n.HasKey {
		sb.WriteString(escapePointerToken(n.Key))
	} else {
		sb.WriteString(strconv.Itoa(n.Index))
	}
}

func escapePointerToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
