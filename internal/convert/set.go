package convert

import (
	"errors"

	"regex-transpiler/charset"
	"regex-transpiler/expr"
	"regex-transpiler/internal/diagnostic"
	"regex-transpiler/node"
)

// convertSet copies the class verbatim when the target understands every
// member, and rebuilds it from its codepoints otherwise.
func convertSet(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	if setCompatible(exp, ctx) {
		return node.New(escapeSource(exp.Text)), nil
	}

	return rebuildSet(exp, ctx), nil
}

func setCompatible(exp *expr.Expression, ctx *Context) bool {
	if exp.CaseInsensitive != ctx.CaseInsensitiveRoot {
		return false
	}

	for member := range exp.Descendants() {
		if !memberCompatible(member, ctx) {
			return false
		}
	}

	return true
}

func memberCompatible(exp *expr.Expression, ctx *Context) bool {
	switch exp.Type {
	case expr.TypeLiteral:
		if exp.Text == "]" || exp.Text == "[" {
			return false
		}

		return exp.Char() <= charset.MaxBMP || ctx.EnableExtendedUnicode()
	case expr.TypeSet:
		return exp.Token == expr.TokenRange
	case expr.TypeType:
		return typeCompatible(exp)
	case expr.TypeEscape:
		return sharedEscape(exp, true)
	default:
		return false
	}
}

// rebuildSet renders the codepoints matched by exp as a new bracket expression.
func rebuildSet(exp *expr.Expression, ctx *Context) *node.Node {
	set, err := charset.OfExpression(exp)
	if err != nil {
		var unknown *charset.UnknownPropertyError
		if errors.As(err, &unknown) {
			ctx.Diagnostics.AddWithSuggestions(diagnostic.CodeUnknownProperty, unknown.Error(),
				exp.String(), exp.Pos, unknown.Suggestions)
		} else {
			ctx.Unsupported(exp.Describe(), exp)
		}

		return node.Wrap()
	}

	switch {
	case exp.CaseInsensitive && !ctx.CaseInsensitiveRoot:
		set = set.CaseInsensitive()
	case !exp.CaseInsensitive && ctx.CaseInsensitiveRoot:
		ctx.Unsupported("nested case-sensitive set", exp)
	}

	return node.New(renderSet(set, ctx))
}

// renderSet uses \u{...} classes when the target has a u flag and falls back
// to surrogate pair alternatives for astral members otherwise.
func renderSet(set *charset.Set, ctx *Context) string {
	if ctx.Target.SupportsExtendedUnicode() && (!set.HasAstral() || ctx.EnableExtendedUnicode()) {
		return set.Bracket(charset.FormatModern)
	}

	return set.WithSurrogates()
}
