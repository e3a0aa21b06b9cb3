package describe

import "strings"

const treeIndent = "\n-   "

// Tree is a string tree that keeps keys in insertion order.
type Tree struct {
	keys  []string
	nodes map[string]*treeNode
}

type treeNode struct {
	value string
	child *Tree
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]*treeNode)}
}

// Set stores value at path, creating intermediate nodes. An empty value only
// ensures the node exists.
func (t *Tree) Set(path []string, value string) {
	if len(path) == 0 {
		return
	}
	current := t
	for _, key := range path[:len(path)-1] {
		n := current.node(key)
		if n.child == nil {
			n.child = NewTree()
		}
		current = n.child
	}
	leaf := current.node(path[len(path)-1])
	if value != "" {
		leaf.value = value
		leaf.child = nil
	}
}

// Get returns the value stored at path.
func (t *Tree) Get(path ...string) (string, bool) {
	current := t
	for i, key := range path {
		n, ok := current.nodes[key]
		if !ok {
			return "", false
		}
		if i == len(path)-1 {
			return n.value, n.value != ""
		}
		if n.child == nil {
			return "", false
		}
		current = n.child
	}
	return "", false
}

func (t *Tree) node(key string) *treeNode {
	if n, ok := t.nodes[key]; ok {
		return n
	}
	n := &treeNode{}
	t.nodes[key] = n
	t.keys = append(t.keys, key)
	return n
}

// Empty reports whether the tree holds no values.
func (t *Tree) Empty() bool {
	return t == nil || t.Format() == ""
}

// Format renders the tree as "key: value" lines. Nested entries and
// multi-line values continue on lines prefixed with "-   ". Empty entries are
// skipped.
func (t *Tree) Format() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, key := range t.keys {
		n := t.nodes[key]
		var value string
		switch {
		case n.child != nil:
			nested := n.child.Format()
			if nested == "" {
				continue
			}
			value = indent(nested)
		case n.value != "":
			value = n.value
			if strings.Contains(value, "\n") {
				value = indent(value)
			}
		default:
			continue
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return strings.Trim(b.String(), "\n- ")
}

func indent(s string) string {
	return treeIndent + strings.ReplaceAll(s, "\n", treeIndent)
}
