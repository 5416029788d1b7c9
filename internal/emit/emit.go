package emit

import (
	"fmt"
	"strings"
	"unicode"
)

// Literal renders a regular expression literal such as /a+/u.
// An empty source becomes (?:) since // starts a comment.
func Literal(source, flags string) string {
	if source == "" {
		source = "(?:)"
	}

	return "/" + source + "/" + flags
}

// Constructor renders a RegExp constructor call with the pattern as a string.
func Constructor(source, flags string) string {
	if flags == "" {
		return "new RegExp(" + QuoteString(source) + ")"
	}

	return "new RegExp(" + QuoteString(source) + ", " + QuoteString(flags) + ")"
}

// QuoteString returns s as a double-quoted JavaScript string literal.
func QuoteString(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0x2028, 0x2029:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7F {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	b.WriteByte('"')

	return b.String()
}

var reserved = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "enum": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {}, "function": {},
	"if": {}, "import": {}, "in": {}, "instanceof": {}, "let": {}, "new": {},
	"null": {}, "return": {}, "static": {}, "super": {}, "switch": {}, "this": {},
	"throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {}, "await": {},
}

// Identifier turns a pattern name such as "user-name" into a JavaScript
// identifier such as userName.
func Identifier(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder

	for i, w := range words {
		runes := []rune(w)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}

		b.WriteString(string(runes))
	}

	id := b.String()

	switch {
	case id == "":
		return "pattern"
	case unicode.IsDigit([]rune(id)[0]):
		return "_" + id
	}

	if _, ok := reserved[id]; ok {
		return id + "Re"
	}

	return id
}
