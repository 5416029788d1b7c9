package expr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regex-transpiler/expr"
)

// (?<a>x(y))z
func sampleTree() *expr.Expression {
	inner := expr.New(expr.TypeGroup, expr.TokenCapture, "(y)")
	inner.Number = 2
	inner.Add(expr.New(expr.TypeLiteral, expr.TokenLiteral, "y"))

	outer := expr.New(expr.TypeGroup, expr.TokenNamedCapture, "(?<a>x(y))")
	outer.Number = 1
	outer.Name = "a"
	outer.Quantifier = &expr.Quantifier{Text: "+", Min: 1, Max: -1}
	outer.Add(expr.New(expr.TypeLiteral, expr.TokenLiteral, "x"), inner)

	return expr.New(expr.TypeExpression, expr.TokenRoot, "(?<a>x(y))+z").
		Add(outer, expr.New(expr.TypeLiteral, expr.TokenLiteral, "z"))
}

func ExampleExpression_Descendants() {
	for e := range sampleTree().Descendants() {
		fmt.Println(e.Describe(), e)
	}
	// Output:
	// group named (?<a>x(y))+
	// literal literal x
	// group capture (y)
	// literal literal y
	// literal literal z
}

func TestDescendantsStopsEarly(t *testing.T) {
	t.Parallel()

	var seen []string
	for e := range sampleTree().Descendants() {
		seen = append(seen, e.Text)
		if e.Is(expr.TypeGroup, expr.TokenCapture) {
			break
		}
	}

	assert.Equal(t, []string{"(?<a>x(y))", "x", "(y)"}, seen)
}

func TestUnquantifiedClone(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	group := root.Children[0]

	clone := group.UnquantifiedClone()
	require.NotSame(t, group, clone)
	assert.Nil(t, clone.Quantifier)
	assert.NotNil(t, group.Quantifier, "original keeps its quantifier")

	clone.Token = expr.TokenCapture
	clone.Children[0].Text = "changed"
	assert.Equal(t, expr.TokenNamedCapture, group.Token)
	assert.Equal(t, "x", group.Children[0].Text)
}

func TestIndexLookup(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	idx := expr.NewIndex(root)

	assert.Equal(t, 2, idx.Len())

	got, ok := idx.Lookup(expr.Reference{Number: 0})
	require.True(t, ok)
	assert.Same(t, root, got)

	got, ok = idx.Lookup(expr.Reference{Name: "a"})
	require.True(t, ok)
	assert.Equal(t, 1, got.Number)

	got, ok = idx.Lookup(expr.Reference{Number: 2})
	require.True(t, ok)
	assert.Equal(t, "(y)", got.Text)

	_, ok = idx.Lookup(expr.Reference{Number: 3})
	assert.False(t, ok)

	_, ok = idx.Lookup(expr.Reference{Name: "missing"})
	assert.False(t, ok)
}

func TestTokenNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name_ref", expr.TokenNameRef.String())
	assert.Equal(t, "number_rel_call", expr.TokenNumberRelCall.String())
	assert.Equal(t, "posixclass", expr.TokenPosixClass.String())
	assert.Equal(t, "TokenEnum(0)", expr.TokenEnum(0).String())
	assert.True(t, expr.TokenNonhex.IsNegatedType())
	assert.False(t, expr.TokenHex.IsNegatedType())
	assert.True(t, expr.TokenNameCall.IsCall())
	assert.False(t, expr.TokenNameRef.IsCall())
}
