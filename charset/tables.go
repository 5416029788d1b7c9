package charset

import (
	"sync"
	"unicode"
)

var (
	asciiDigit = New(Range{'0', '9'})
	asciiSpace = New(Range{'\t', '\r'}, Range{' ', ' '})
	asciiWord  = New(Range{'0', '9'}, Range{'A', 'Z'}, Range{'_', '_'}, Range{'a', 'z'})
	hexDigit   = New(Range{'0', '9'}, Range{'A', 'F'}, Range{'a', 'f'})
	linebreak  = Of('\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029)
	ascii      = New(Range{0, 0x7F})
)

// unicodeSets are built on first use; some of them are large.
var unicodeSets = sync.OnceValue(func() map[string]*Set {
	alpha := FromTable(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	digit := FromTable(unicode.Nd)
	space := FromTable(unicode.White_Space)
	cntrl := FromTable(unicode.Cc)
	word := FromTable(unicode.L, unicode.M, unicode.Nd, unicode.Pc)

	var assignedTables []*unicode.RangeTable
	for _, t := range unicode.Categories {
		assignedTables = append(assignedTables, t)
	}

	assigned := FromTable(assignedTables...)
	graph := assigned.Subtract(space).Subtract(cntrl).Subtract(FromTable(unicode.Cs))

	return map[string]*Set{
		"alpha":    alpha,
		"digit":    digit,
		"alnum":    alpha.Union(digit),
		"upper":    FromTable(unicode.Lu, unicode.Other_Uppercase),
		"lower":    FromTable(unicode.Ll, unicode.Other_Lowercase),
		"space":    space,
		"blank":    FromTable(unicode.Zs).Union(Of('\t')),
		"cntrl":    cntrl,
		"punct":    FromTable(unicode.P).Union(Of('$', '+', '<', '=', '>', '^', '`', '|', '~')),
		"xdigit":   hexDigit,
		"word":     word,
		"graph":    graph,
		"print":    graph.Union(FromTable(unicode.Zs)),
		"ascii":    ascii,
		"assigned": assigned,
		"any":      New(Range{0, unicode.MaxRune}).Subtract(surrogates),
	}
})

// asciiPosix mirrors the POSIX bracket classes restricted to ASCII.
var asciiPosix = map[string]*Set{
	"alnum":  New(Range{'0', '9'}, Range{'A', 'Z'}, Range{'a', 'z'}),
	"alpha":  New(Range{'A', 'Z'}, Range{'a', 'z'}),
	"ascii":  ascii,
	"blank":  Of('\t', ' '),
	"cntrl":  New(Range{0x00, 0x1F}, Range{0x7F, 0x7F}),
	"digit":  asciiDigit,
	"graph":  New(Range{'!', '~'}),
	"lower":  New(Range{'a', 'z'}),
	"print":  New(Range{' ', '~'}),
	"punct":  New(Range{'!', '/'}, Range{':', '@'}, Range{'[', '`'}, Range{'{', '~'}),
	"space":  asciiSpace,
	"upper":  New(Range{'A', 'Z'}),
	"word":   asciiWord,
	"xdigit": hexDigit,
}

// Posix returns the members of a POSIX bracket class such as "alpha".
func Posix(name string, asciiOnly bool) (*Set, bool) {
	if asciiOnly {
		s, ok := asciiPosix[name]
		return s, ok
	}

	if _, ok := asciiPosix[name]; !ok {
		return nil, false
	}

	return unicodeSets()[name], true
}
