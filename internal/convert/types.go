package convert

import (
	"regex-transpiler/charset"
	"regex-transpiler/expr"
	"regex-transpiler/node"
)

const (
	hexExpansion            = `[0-9A-Fa-f]`
	nonhexExpansion         = `[^0-9A-Fa-f]`
	hexPropertyExpansion    = `\p{AHex}`
	nonhexPropertyExpansion = `\P{AHex}`
	linebreakExpansion      = `(?:\r\n|[\n\v\f\r\u0085\u2028\u2029])`
)

// typeCompatible reports whether a digit, space or word shorthand means the
// same in the target. Other shorthands never are.
func typeCompatible(exp *expr.Expression) bool {
	switch exp.Token {
	case expr.TokenSpace, expr.TokenNonspace:
		return !exp.ASCIIClasses
	case expr.TokenDigit, expr.TokenNondigit, expr.TokenWord, expr.TokenNonword:
		return !exp.UnicodeClasses
	default:
		return false
	}
}

func convertType(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	switch exp.Token {
	case expr.TokenHex:
		if hexProperty(ctx) {
			return node.New(hexPropertyExpansion), nil
		}

		return node.New(hexExpansion), nil
	case expr.TokenNonhex:
		if hexProperty(ctx) {
			return node.New(nonhexPropertyExpansion), nil
		}

		return node.New(nonhexExpansion), nil
	case expr.TokenLinebreak:
		return node.New(linebreakExpansion), nil
	case expr.TokenDigit, expr.TokenSpace, expr.TokenWord:
		if typeCompatible(exp) {
			return node.New(exp.Text), nil
		}

		set, err := charset.OfType(exp)
		if err != nil {
			return convertUnsupported(exp, ctx)
		}

		return node.New(set.BMPPart().Bracket(charset.FormatLegacy)), nil
	case expr.TokenNondigit, expr.TokenNonspace, expr.TokenNonword:
		if typeCompatible(exp) {
			return node.New(exp.Text), nil
		}

		// OfType already inverted the set; invert back before negating the bracket.
		set, err := charset.OfType(exp)
		if err != nil {
			return convertUnsupported(exp, ctx)
		}

		return node.New("[^" + set.Invert().BMPPart().Content(charset.FormatLegacy) + "]"), nil
	default:
		return convertUnsupported(exp, ctx)
	}
}

// hexProperty reports whether \h can become the AHex property; it needs the u flag.
func hexProperty(ctx *Context) bool {
	return ctx.Target.SupportsUnicodeClasses() && ctx.EnableExtendedUnicode()
}
