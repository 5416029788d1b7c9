package convert

import (
	"strings"

	"regex-transpiler/expr"
)

// quantifier renders the quantifier of exp for the target.
// Possessive quantifiers lose their possessiveness.
func quantifier(exp *expr.Expression, ctx *Context) string {
	q := exp.Quantifier
	text := q.Text

	if rest, ok := strings.CutPrefix(text, "{,"); ok {
		text = "{0," + rest
	}

	if q.Mode == expr.QuantifierPossessive {
		ctx.Unsupported("possessive quantifier", exp)
		text = strings.TrimSuffix(text, "+")
	}

	return text
}
