package parser

import (
	"errors"

	"github.com/alecthomas/participle/v2"

	"regex-transpiler/expr"
)

// Options are the flags in effect at the start of the pattern,
// the equivalent of /pattern/imx.
type Options struct {
	CaseInsensitive bool
	// Multiline lets the dot match newlines (Ruby's m flag).
	Multiline bool
	// Extended ignores whitespace and # comments (the x flag).
	Extended bool
}

// Parse reads pattern into a tree rooted at a TokenRoot expression.
// Every node carries the inline options in effect where it appears.
func Parse(pattern string, opts Options) (*expr.Expression, error) {
	ast, err := patternParser.ParseString("", pattern)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Pattern: pattern, Pos: perr.Position().Offset, Message: perr.Message()}
		}

		return nil, &SyntaxError{Pattern: pattern, Message: err.Error()}
	}

	tokens := make([]token, 0, len(ast.Tokens))
	for _, t := range ast.Tokens {
		tokens = append(tokens, t.token())
	}

	return newBuilder(pattern, tokens, opts).build()
}

// MustParse is like Parse but panics on error. It simplifies tests and examples.
func MustParse(pattern string, opts Options) *expr.Expression {
	root, err := Parse(pattern, opts)
	if err != nil {
		panic(err)
	}

	return root
}
