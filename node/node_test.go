package node_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"regex-transpiler/node"
)

func ExampleNode_Render() {
	tree := node.Wrap(
		node.Capture(1, node.New("a"), node.New("b")),
		node.New("|"),
		node.Backref(1),
	)

	fmt.Println(tree.Render())
	fmt.Print(tree.Dump())

	// Output:
	// (ab)|\1
	// *
	//   capture#1 "("
	//     "a"
	//     "b"
	//     ")"
	//   "|"
	//   backref#1 "\\1"
}

func TestRenderIsPreOrder(t *testing.T) {
	t.Parallel()

	tree := &node.Node{
		Value: "1",
		Children: []*node.Node{
			{Value: "2", Children: []*node.Node{{Value: "3"}}},
			{Value: "4"},
		},
	}

	assert.Equal(t, "1234", tree.Render(), spew.Sdump(tree))
}

func TestAppendSkipsNil(t *testing.T) {
	t.Parallel()

	n := node.Wrap(nil, node.New("x"), nil)

	assert.Len(t, n.Children, 1)
	assert.Equal(t, "x", n.Render())
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var missing *node.Node

	assert.True(t, missing.IsEmpty())
	assert.True(t, node.Wrap(node.New(""), node.Wrap()).IsEmpty())
	assert.False(t, node.Wrap(node.Wrap(node.New("a"))).IsEmpty())
	assert.Empty(t, missing.Render())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "backref", node.KindBackref.String())
	assert.Equal(t, "unknown", node.KindEnum(node.KindTotal).String())
}

func TestLast(t *testing.T) {
	t.Parallel()

	ref := node.Backref(0)
	tree := node.Wrap(node.New("a"), node.Wrap(ref, node.Wrap()), node.New(""))

	assert.Same(t, ref, tree.Last())
	assert.False(t, tree.IsEmpty())
	assert.Nil(t, node.Wrap(node.New("")).Last())

	capture := node.Capture(1, node.New("x"))
	assert.Equal(t, ")", capture.Last().Value)
}
