package convert

import (
	"errors"

	"regex-transpiler/charset"
	"regex-transpiler/expr"
	"regex-transpiler/internal/diagnostic"
	"regex-transpiler/node"
)

// convertProperty keeps \p{...} where the target has Unicode property
// escapes and rebuilds the class from its codepoints otherwise.
func convertProperty(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	if exp.Type == expr.TypePosixClass {
		return rebuildSet(exp, ctx), nil
	}

	name, native, err := charset.ECMAScriptProperty(exp.Name)
	if err != nil {
		var unknown *charset.UnknownPropertyError
		if errors.As(err, &unknown) {
			ctx.Diagnostics.AddWithSuggestions(diagnostic.CodeUnknownProperty, unknown.Error(),
				exp.String(), exp.Pos, unknown.Suggestions)

			return node.Wrap(), nil
		}

		return nil, err
	}

	if native && exp.CaseInsensitive == ctx.CaseInsensitiveRoot &&
		ctx.Target.SupportsUnicodeClasses() && ctx.EnableExtendedUnicode() {
		if exp.Negative {
			return node.New(`\P{` + name + `}`), nil
		}

		return node.New(`\p{` + name + `}`), nil
	}

	return rebuildSet(exp, ctx), nil
}
