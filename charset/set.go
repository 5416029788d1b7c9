package charset

import (
	"slices"
	"sync"
	"unicode"

	"regex-transpiler/utils"
)

const (
	// MaxBMP is the highest codepoint addressable by a single 16-bit code unit.
	MaxBMP = 0xFFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Range is an inclusive codepoint interval.
type Range struct {
	Lo, Hi rune
}

// Len returns the number of codepoints in the range.
func (r Range) Len() int {
	return int(r.Hi-r.Lo) + 1
}

// Set is an immutable set of codepoints kept as sorted, non-adjacent ranges.
type Set struct {
	ranges []Range
}

// New builds a set from arbitrary, possibly overlapping ranges.
func New(ranges ...Range) *Set {
	rs := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Lo > r.Hi {
			r.Lo, r.Hi = r.Hi, r.Lo
		}

		rs = append(rs, r)
	}

	return &Set{ranges: normalize(rs)}
}

// Of builds a set from single codepoints.
func Of(runes ...rune) *Set {
	rs := make([]Range, len(runes))
	for i, r := range runes {
		rs[i] = Range{r, r}
	}

	return &Set{ranges: normalize(rs)}
}

// FromTable converts a unicode range table.
func FromTable(tables ...*unicode.RangeTable) *Set {
	var rs []Range

	for _, t := range tables {
		for _, r16 := range t.R16 {
			rs = appendStride(rs, rune(r16.Lo), rune(r16.Hi), rune(r16.Stride))
		}

		for _, r32 := range t.R32 {
			rs = appendStride(rs, rune(r32.Lo), rune(r32.Hi), rune(r32.Stride))
		}
	}

	return &Set{ranges: normalize(rs)}
}

func appendStride(rs []Range, lo, hi, stride rune) []Range {
	if stride == 1 {
		return append(rs, Range{lo, hi})
	}

	for r := lo; r <= hi; r += stride {
		rs = append(rs, Range{r, r})
	}

	return rs
}

func normalize(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}

	slices.SortFunc(rs, func(a, b Range) int { return int(a.Lo - b.Lo) })

	out := rs[:1]
	for _, r := range rs[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi+1 {
			last.Hi = max(last.Hi, r.Hi)
			continue
		}

		out = append(out, r)
	}

	return out
}

// Ranges returns a copy of the set's ranges.
func (s *Set) Ranges() []Range {
	return slices.Clone(s.ranges)
}

func (s *Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Len counts the codepoints in the set.
func (s *Set) Len() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}

	return n
}

// Contains reports whether r is a member.
func (s *Set) Contains(r rune) bool {
	i, found := slices.BinarySearchFunc(s.ranges, r, func(rg Range, target rune) int {
		switch {
		case rg.Hi < target:
			return -1
		case rg.Lo > target:
			return 1
		default:
			return 0
		}
	})

	return found && i < len(s.ranges)
}

func (s *Set) Equal(o *Set) bool {
	return slices.Equal(s.ranges, o.ranges)
}

// Union returns the union of s and o.
func (s *Set) Union(o *Set) *Set {
	rs := make([]Range, 0, len(s.ranges)+len(o.ranges))
	rs = append(rs, s.ranges...)
	rs = append(rs, o.ranges...)

	return &Set{ranges: normalize(rs)}
}

// Intersect returns the intersection of s and o.
func (s *Set) Intersect(o *Set) *Set {
	var out []Range

	i, j := 0, 0
	for i < len(s.ranges) && j < len(o.ranges) {
		a, b := s.ranges[i], o.ranges[j]

		lo, hi := max(a.Lo, b.Lo), min(a.Hi, b.Hi)
		if lo <= hi {
			out = append(out, Range{lo, hi})
		}

		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}

	return &Set{ranges: out}
}

// Subtract returns s \ o.
func (s *Set) Subtract(o *Set) *Set {
	return s.Intersect(o.complement(0, unicode.MaxRune))
}

// Invert returns every Unicode scalar value not in s. Surrogate codepoints are never members.
func (s *Set) Invert() *Set {
	return s.complement(0, unicode.MaxRune).Subtract(surrogates)
}

func (s *Set) complement(lo, hi rune) *Set {
	var out []Range

	next := lo
	for _, r := range s.ranges {
		if r.Hi < lo || r.Lo > hi {
			continue
		}

		if r.Lo > next {
			out = append(out, Range{next, r.Lo - 1})
		}

		next = r.Hi + 1
	}

	if next <= hi {
		out = append(out, Range{next, hi})
	}

	return &Set{ranges: out}
}

// HasAstral reports whether any member lies above the BMP.
func (s *Set) HasAstral() bool {
	if len(s.ranges) == 0 {
		return false
	}

	return s.ranges[len(s.ranges)-1].Hi > MaxBMP
}

// BMPPart restricts the set to the Basic Multilingual Plane.
func (s *Set) BMPPart() *Set {
	return s.Intersect(bmp)
}

// AstralPart restricts the set to codepoints above the BMP.
func (s *Set) AstralPart() *Set {
	return s.Intersect(astral)
}

// CaseInsensitive adds every simple case folding of every member.
func (s *Set) CaseInsensitive() *Set {
	rs := slices.Clone(s.ranges)

	for _, r := range s.Intersect(foldable()).ranges {
		for c := r.Lo; c <= r.Hi; c++ {
			for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
				rs = append(rs, Range{f, f})
			}
		}
	}

	return &Set{ranges: normalize(rs)}
}

func isSurrogate(r rune) bool {
	return utils.IsInRange(surrogateMin, r, surrogateMax)
}

var (
	bmp        = &Set{ranges: []Range{{0, MaxBMP}}}
	astral     = &Set{ranges: []Range{{MaxBMP + 1, unicode.MaxRune}}}
	surrogates = &Set{ranges: []Range{{surrogateMin, surrogateMax}}}

	// foldable holds every codepoint whose simple case folding orbit has more than one member.
	foldable = sync.OnceValue(func() *Set {
		var rs []Range
		for c := rune(0); c <= unicode.MaxRune; c++ {
			if isSurrogate(c) {
				continue
			}

			if unicode.SimpleFold(c) != c {
				rs = append(rs, Range{c, c})
			}
		}

		return &Set{ranges: normalize(rs)}
	})
)
