package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Never is an empty negative lookahead; it matches nothing.
const Never = "(?!)"

// Node is a fragment of converted pattern text.
// The rendered pattern is the pre-order concatenation of all values.
type Node struct {
	Value     string
	Children  []*Node
	Kind      KindEnum
	Reference int
}

// New creates a leaf holding value.
func New(value string) *Node {
	return &Node{Value: value}
}

// Wrap creates a valueless node over children. Nil children are skipped.
func Wrap(children ...*Node) *Node {
	n := &Node{}
	n.Append(children...)

	return n
}

// Backref creates a numeric backreference to a capture position.
// A zero position leaves the value empty until Settle is called.
func Backref(position int) *Node {
	n := &Node{Kind: KindBackref}
	if position > 0 {
		n.Settle(position)
	}

	return n
}

// Capture wraps children in a capturing group at the given position.
func Capture(position int, children ...*Node) *Node {
	n := &Node{Value: "(", Kind: KindCapture, Reference: position}
	n.Append(children...)
	n.Append(New(")"))

	return n
}

// Append adds children, skipping nil ones, and returns the receiver.
func (n *Node) Append(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.Children = append(n.Children, ch)
		}
	}

	return n
}

// Settle points a backreference at its final capture position.
func (n *Node) Settle(position int) {
	n.Reference = position
	n.Value = `\` + strconv.Itoa(position)
}

// IsEmpty reports whether the node renders to nothing.
// Backreferences count as content even before they are settled.
func (n *Node) IsEmpty() bool {
	if n == nil {
		return true
	}

	if n.Value != "" || n.Kind == KindBackref {
		return false
	}

	for _, ch := range n.Children {
		if !ch.IsEmpty() {
			return false
		}
	}

	return true
}

// Last returns the last node that contributes text to the rendering, or nil.
func (n *Node) Last() *Node {
	if n == nil {
		return nil
	}

	for i := len(n.Children) - 1; i >= 0; i-- {
		if last := n.Children[i].Last(); last != nil {
			return last
		}
	}

	if n.Value != "" || n.Kind == KindBackref {
		return n
	}

	return nil
}

// Render returns the pattern text of the tree.
func (n *Node) Render() string {
	var b strings.Builder

	n.render(&b)

	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	if n == nil {
		return
	}

	b.WriteString(n.Value)

	for _, ch := range n.Children {
		ch.render(b)
	}
}

// Dump returns an indented view of the tree for debugging.
func (n *Node) Dump() string {
	var b strings.Builder

	n.dump(&b, 0)

	return b.String()
}

func (n *Node) dump(b *strings.Builder, depth int) {
	if n == nil {
		return
	}

	b.WriteString(strings.Repeat("  ", depth))

	switch {
	case n.Kind != KindNone:
		fmt.Fprintf(b, "%s#%d %q\n", n.Kind, n.Reference, n.Value)
	case n.Value == "" && len(n.Children) > 0:
		b.WriteString("*\n")
	default:
		fmt.Fprintf(b, "%q\n", n.Value)
	}

	for _, ch := range n.Children {
		ch.dump(b, depth+1)
	}
}
