package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"regex-transpiler/expr"
)

var simpleEscapes = map[string]struct {
	token expr.TokenEnum
	char  rune
}{
	"t": {expr.TokenTab, '\t'},
	"n": {expr.TokenNewline, '\n'},
	"r": {expr.TokenCarriage, '\r'},
	"f": {expr.TokenFormFeed, '\f'},
	"v": {expr.TokenVerticalTab, '\v'},
	"a": {expr.TokenBell, '\a'},
	"e": {expr.TokenEscapeChar, 0x1B},
}

// decodeEscape returns the token and codepoint of an escape such as \x41.
// Braced forms like \x{1F600} are codepoint tokens.
// Inside a bracket expression \b is a backspace.
func decodeEscape(text string, inSet bool) (expr.TokenEnum, rune, bool) {
	body := text[1:]

	if e, ok := simpleEscapes[body]; ok {
		return e.token, e.char, true
	}

	switch {
	case body == "b" && inSet:
		return expr.TokenEscapedChar, '\b', true
	case strings.HasPrefix(body, "u{"), strings.HasPrefix(body, "x{"):
		r, ok := parseCodepoint(body[2:len(body)-1], 16)
		return expr.TokenCodepoint, r, ok
	case len(body) > 1 && body[0] == 'u':
		r, ok := parseCodepoint(body[1:], 16)
		return expr.TokenUnicodeEscape, r, ok
	case len(body) > 1 && body[0] == 'x':
		r, ok := parseCodepoint(body[1:], 16)
		return expr.TokenHexEscape, r, ok
	case body[0] == '0':
		r, ok := parseCodepoint(body, 8)
		return expr.TokenOctal, r, ok
	case len(body) > 1 && body[0] == 'c':
		r, _ := utf8.DecodeRuneInString(body[1:])
		return expr.TokenControl, r & 0x1F, true
	case strings.HasPrefix(body, "C-") && len(body) > 2:
		r, _ := utf8.DecodeRuneInString(body[2:])
		return expr.TokenControl, r & 0x1F, true
	case strings.HasPrefix(body, "M-") && len(body) > 2:
		r, _ := utf8.DecodeRuneInString(body[2:])
		return expr.TokenControl, (r & 0xFF) | 0x80, true
	default:
		r, _ := utf8.DecodeRuneInString(body)
		return expr.TokenEscapedChar, r, true
	}
}

func parseCodepoint(digits string, base int) (rune, bool) {
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, false
	}

	return rune(v), true
}
