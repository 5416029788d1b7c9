package convert

import (
	"fmt"
	"strings"
	"unicode"

	"regex-transpiler/charset"
	"regex-transpiler/expr"
	"regex-transpiler/node"
)

func convertLiteral(exp *expr.Expression, ctx *Context) (*node.Node, error) {
	expand := false

	switch {
	case ctx.CaseInsensitiveRoot && !exp.CaseInsensitive:
		ctx.Unsupported("nested case-sensitive literal", exp)
	case !ctx.CaseInsensitiveRoot && exp.CaseInsensitive:
		expand = true
	}

	var b strings.Builder

	for _, r := range exp.Text {
		b.WriteString(literalRune(r, expand, ctx))
	}

	return node.New(b.String()), nil
}

// literalRune renders a codepoint matched literally outside a bracket expression.
// With expand, cased letters become a class of both case forms.
// Astral codepoints become surrogate pairs unless the u flag can be turned on.
func literalRune(r rune, expand bool, ctx *Context) string {
	if expand && hasCase(r) {
		variants := caseVariants(r)
		if charset.Of(variants...).HasAstral() && !ctx.EnableExtendedUnicode() {
			return charset.Of(variants...).WithSurrogates()
		}

		var b strings.Builder

		b.WriteByte('[')

		for _, v := range variants {
			b.WriteString(charset.Of(v).Content(charset.FormatModern))
		}

		b.WriteByte(']')

		return b.String()
	}

	if r > charset.MaxBMP && !ctx.EnableExtendedUnicode() {
		return charset.SurrogateAlternation(r)
	}

	return escapeLiteral(r)
}

// escapeLiteral escapes the pattern delimiter, line terminators, control
// characters and the brackets that are syntax errors on their own in u mode.
func escapeLiteral(r rune) string {
	switch r {
	case '/', '{', '}', ']':
		return `\` + string(r)
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	}

	switch {
	case r <= 0xFF && unicode.IsControl(r):
		return fmt.Sprintf(`\x%02x`, r)
	case r == 0x2028 || r == 0x2029:
		return fmt.Sprintf(`\u%04x`, r)
	default:
		return string(r)
	}
}

// escapeSource escapes unescaped delimiters and raw line terminators in
// source text that is otherwise copied verbatim.
func escapeSource(text string) string {
	var b strings.Builder

	escaped := false

	for _, r := range text {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			b.WriteRune(r)
		case r == '/' || r == '\t' || r == '\n' || r == '\f' || r == '\r':
			b.WriteString(escapeLiteral(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func hasCase(r rune) bool {
	return swapCase(r) != r
}

// swapCase returns the other-case form of r, or r when it has none.
func swapCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}

	return unicode.ToUpper(r)
}

// caseVariants returns r followed by its other-case form.
func caseVariants(r rune) []rune {
	return []rune{r, swapCase(r)}
}
