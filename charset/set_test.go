package charset_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regex-transpiler/charset"
)

func TestNewNormalizes(t *testing.T) {
	t.Parallel()

	s := charset.New(
		charset.Range{Lo: 'd', Hi: 'f'},
		charset.Range{Lo: 'a', Hi: 'c'},
		charset.Range{Lo: 'z', Hi: 'x'},
		charset.Range{Lo: 'e', Hi: 'e'},
	)

	assert.Equal(t, []charset.Range{{Lo: 'a', Hi: 'f'}, {Lo: 'x', Hi: 'z'}}, s.Ranges())
	assert.Equal(t, 9, s.Len())
	assert.True(t, s.Contains('b'))
	assert.True(t, s.Contains('z'))
	assert.False(t, s.Contains('g'))
	assert.False(t, charset.New().Contains('a'))
}

func TestAlgebra(t *testing.T) {
	t.Parallel()

	az := charset.New(charset.Range{Lo: 'a', Hi: 'z'})
	vowels := charset.Of('a', 'e', 'i', 'o', 'u')

	assert.True(t, az.Intersect(vowels).Equal(vowels))
	assert.Equal(t, 21, az.Subtract(vowels).Len())
	assert.True(t, vowels.Union(az).Equal(az))
	assert.True(t, charset.New().Intersect(az).IsEmpty())
}

func TestInvertSkipsSurrogates(t *testing.T) {
	t.Parallel()

	inv := charset.Of('a').Invert()

	assert.False(t, inv.Contains('a'))
	assert.True(t, inv.Contains('b'))
	assert.False(t, inv.Contains(0xD800))
	assert.True(t, inv.Contains(0x10FFFF))
	assert.True(t, inv.Invert().Equal(charset.Of('a')))
}

func TestBMPAndAstralParts(t *testing.T) {
	t.Parallel()

	s := charset.Of('a', 0xFFFF, 0x10000, 0x1F600)

	assert.True(t, s.HasAstral())
	assert.False(t, s.BMPPart().HasAstral())
	assert.Equal(t, 2, s.BMPPart().Len())
	assert.Equal(t, 2, s.AstralPart().Len())
}

func TestCaseInsensitive(t *testing.T) {
	t.Parallel()

	assert.True(t, charset.Of('a').CaseInsensitive().Equal(charset.Of('A', 'a')))
	assert.True(t, charset.Of('k').CaseInsensitive().Equal(charset.Of('K', 'k', 0x212A)))
	assert.True(t, charset.Of('1').CaseInsensitive().Equal(charset.Of('1')))

	deseret := charset.Of(0x10400).CaseInsensitive()
	assert.True(t, deseret.Contains(0x10428))
}

func TestBracket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		set    *charset.Set
		format charset.Format
		want   string
	}{
		{"range and single", charset.New(charset.Range{Lo: 'a', Hi: 'z'}, charset.Range{Lo: '_', Hi: '_'}), charset.FormatLegacy, "[_a-z]"},
		{"pair", charset.Of('a', 'b'), charset.FormatLegacy, "[ab]"},
		{"specials", charset.Of('-', '/', ']', '^', '\\'), charset.FormatLegacy, `[\-\/\\\]\^]`},
		{"controls", charset.Of('\t', '\n', 0), charset.FormatLegacy, `[\x00\t\n]`},
		{"bmp escape", charset.Of(0xE9), charset.FormatLegacy, `[\xe9]`},
		{"bmp unicode", charset.Of(0x2028), charset.FormatModern, "[" + units(0x2028) + "]"},
		{"astral modern", charset.New(charset.Range{Lo: 0x1F600, Hi: 0x1F64F}), charset.FormatModern, `[\u{1f600}-\u{1f64f}]`},
		{"empty", charset.New(), charset.FormatModern, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Bracket(tt.format))
		})
	}
}

func TestWithSurrogates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  *charset.Set
		want string
	}{
		{"bmp only", charset.Of('a', 'c'), "[ac]"},
		{"single astral", charset.Of(0x1F600), "(?:" + units(0xD83D, 0xDE00) + ")"},
		{"astral range", charset.New(charset.Range{Lo: 0x1F600, Hi: 0x1F64F}), `(?:\ud83d[\ude00-\ude4f])`},
		{"mixed", charset.Of('a', 0x1F600), "(?:[a]|" + units(0xD83D, 0xDE00) + ")"},
		{"same high surrogate", charset.Of(0x1F600, 0x1F602), `(?:\ud83d[\ude00\ude02])`},
		{"crossing high surrogates", charset.New(charset.Range{Lo: 0x103FF, Hi: 0x10400}), "(?:" + units(0xD800, 0xDFFF) + "|" + units(0xD801, 0xDC00) + ")"},
		{"all astral", charset.New(charset.Range{Lo: 0x10000, Hi: 0x10FFFF}), `(?:[\ud800-\udbff][\udc00-\udfff])`},
		{
			"partial head and tail",
			charset.New(charset.Range{Lo: 0x10001, Hi: 0x10BFE}),
			`(?:\ud800[\udc01-\udfff]|\ud801[\udc00-\udfff]|\ud802[\udc00-\udffe])`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.WithSurrogates())
		})
	}
}

func TestSurrogateRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{0x10000, 0x1F600, 0x10FFFF, 0x2A6D6} {
		hi, lo := charset.SurrogatePair(r)
		require.True(t, hi >= 0xD800 && hi <= 0xDBFF)
		require.True(t, lo >= 0xDC00 && lo <= 0xDFFF)
		assert.Equal(t, r, charset.DecodeSurrogatePair(hi, lo))
	}
}

// units renders UTF-16 code units as \uXXXX escapes.
func units(us ...rune) string {
	var b strings.Builder
	for _, u := range us {
		fmt.Fprintf(&b, `\u%04x`, u)
	}

	return b.String()
}
