package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a property name for loose matching:
// case is ignored, separators (_, -, spaces) are dropped and a leading "is" is stripped.
// Examples:
//   - "Lowercase_Letter" -> "lowercaseletter"
//   - "White Space" -> "whitespace"
//   - "isGreek" -> "greek"
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	folded := b.String()
	if len(folded) > 2 && strings.HasPrefix(folded, "is") {
		return folded[2:]
	}

	return folded
}

// isSeparator returns true if the rune is ignored by loose matching.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
