package convert

import (
	"strings"

	"regex-transpiler/expr"
	"regex-transpiler/node"
)

// syntaxChars may be escaped with a backslash in every target mode.
const syntaxChars = `^$\.*+?()[]{}|/`

// sharedEscape reports whether the escape means the same in the target,
// with or without the u flag.
func sharedEscape(exp *expr.Expression, inSet bool) bool {
	switch exp.Token {
	case expr.TokenTab, expr.TokenNewline, expr.TokenCarriage, expr.TokenFormFeed,
		expr.TokenVerticalTab, expr.TokenUnicodeEscape:
		return true
	case expr.TokenHexEscape:
		// \x4 reads as "x4" in the target.
		return len(exp.Text) == 4
	case expr.TokenControl:
		return len(exp.Text) == 3 && isASCIILetter(exp.Text[2])
	case expr.TokenEscapedChar:
		return strings.ContainsRune(syntaxChars, exp.Codepoint) || (inSet && exp.Codepoint == '-')
	default:
		return false
	}
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// convertEscape passes shared escapes through and renders the others as the
// literal character they stand for.
func convertEscape(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	expand := exp.CaseInsensitive && !ctx.CaseInsensitiveRoot && hasCase(exp.Codepoint)

	if sharedEscape(exp, false) && !expand {
		return node.New(exp.Text), nil
	}

	return node.New(literalRune(exp.Codepoint, expand, ctx)), nil
}
