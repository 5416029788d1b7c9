package charset

import (
	"fmt"
	"strings"
)

// Format selects how codepoints outside printable ASCII are escaped.
type Format int

const (
	// FormatLegacy uses \uXXXX escapes only; members must lie in the BMP.
	FormatLegacy Format = iota
	// FormatModern uses \u{...} for astral members and requires the u flag.
	FormatModern
)

// Bracket renders the set as a bracket expression, e.g. "[a-z_]".
func (s *Set) Bracket(format Format) string {
	return "[" + s.Content(format) + "]"
}

// Content renders the members without the surrounding brackets.
func (s *Set) Content(format Format) string {
	var b strings.Builder

	writeRanges(&b, s.ranges, format)

	return b.String()
}

func writeRanges(b *strings.Builder, ranges []Range, format Format) {
	for _, r := range ranges {
		writeCodepoint(b, r.Lo, format)

		switch r.Len() {
		case 1:
		case 2:
			writeCodepoint(b, r.Hi, format)
		default:
			b.WriteByte('-')
			writeCodepoint(b, r.Hi, format)
		}
	}
}

// writeCodepoint escapes a codepoint for use inside a bracket expression.
func writeCodepoint(b *strings.Builder, r rune, format Format) {
	switch {
	case r == '\t':
		b.WriteString(`\t`)
	case r == '\n':
		b.WriteString(`\n`)
	case r == '\v':
		b.WriteString(`\v`)
	case r == '\f':
		b.WriteString(`\f`)
	case r == '\r':
		b.WriteString(`\r`)
	case strings.ContainsRune(`\]^-[/`, r):
		b.WriteByte('\\')
		b.WriteRune(r)
	case r >= 0x20 && r < 0x7F:
		b.WriteRune(r)
	case r <= 0xFF:
		fmt.Fprintf(b, `\x%02x`, r)
	case r <= MaxBMP:
		fmt.Fprintf(b, `\u%04x`, r)
	case format == FormatModern:
		fmt.Fprintf(b, `\u{%x}`, r)
	default:
		hi, lo := SurrogatePair(r)
		fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
	}
}

// SurrogatePair splits an astral codepoint into its UTF-16 high and low surrogates.
func SurrogatePair(r rune) (hi, lo rune) {
	v := r - 0x10000

	return surrogateMin + (v >> 10), 0xDC00 + (v & 0x3FF)
}

// DecodeSurrogatePair is the inverse of SurrogatePair.
func DecodeSurrogatePair(hi, lo rune) rune {
	return 0x10000 + (hi-surrogateMin)<<10 + (lo - 0xDC00)
}

// WithSurrogates renders the set for engines that address text in 16-bit code units.
// BMP members form a bracket expression; astral members become alternatives of
// high/low surrogate pairs. Any astral member wraps the result in a non-capturing group.
func (s *Set) WithSurrogates() string {
	bmpPart := s.BMPPart()
	branches := surrogateBranches(s.AstralPart().ranges)

	if len(branches) == 0 {
		return bmpPart.Bracket(FormatLegacy)
	}

	if !bmpPart.IsEmpty() {
		branches = append([]string{bmpPart.Bracket(FormatLegacy)}, branches...)
	}

	return "(?:" + strings.Join(branches, "|") + ")"
}

// SurrogateAlternation renders a single astral codepoint as a bracketed surrogate pair alternative.
func SurrogateAlternation(r rune) string {
	return Of(r).WithSurrogates()
}

type surrogateRow struct {
	hi  Range
	los []Range
}

// surrogateBranches groups astral ranges by their high surrogate.
func surrogateBranches(astralRanges []Range) []string {
	var rows []surrogateRow

	add := func(hi Range, lo Range) {
		if n := len(rows); n > 0 && rows[n-1].hi == hi {
			rows[n-1].los = append(rows[n-1].los, lo)
			return
		}

		rows = append(rows, surrogateRow{hi: hi, los: []Range{lo}})
	}

	for _, r := range astralRanges {
		hiA, loA := SurrogatePair(r.Lo)
		hiB, loB := SurrogatePair(r.Hi)

		if hiA == hiB {
			add(Range{hiA, hiA}, Range{loA, loB})
			continue
		}

		first, last := hiA, hiB
		if loA != 0xDC00 {
			add(Range{hiA, hiA}, Range{loA, 0xDFFF})
			first++
		}

		var tail *Range
		if loB != 0xDFFF {
			tail = &Range{0xDC00, loB}
			last--
		}

		if first <= last {
			add(Range{first, last}, Range{0xDC00, 0xDFFF})
		}

		if tail != nil {
			add(Range{hiB, hiB}, *tail)
		}
	}

	branches := make([]string, 0, len(rows))
	for _, row := range rows {
		branches = append(branches, unitClass([]Range{row.hi})+unitClass(row.los))
	}

	return branches
}

// unitClass renders code unit ranges, omitting brackets for a single unit.
func unitClass(ranges []Range) string {
	var b strings.Builder

	if len(ranges) == 1 && ranges[0].Len() == 1 {
		fmt.Fprintf(&b, `\u%04x`, ranges[0].Lo)
		return b.String()
	}

	b.WriteByte('[')

	for _, r := range ranges {
		fmt.Fprintf(&b, `\u%04x`, r.Lo)

		switch r.Len() {
		case 1:
		case 2:
			fmt.Fprintf(&b, `\u%04x`, r.Hi)
		default:
			fmt.Fprintf(&b, `-\u%04x`, r.Hi)
		}
	}

	b.WriteByte(']')

	return b.String()
}
