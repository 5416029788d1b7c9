package charset

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode"

	"regex-transpiler/internal/match"
)

// UnknownPropertyError reports a \p{...} name that matches no known property.
type UnknownPropertyError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownPropertyError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown property %q (did you mean %q?)", e.Name, e.Suggestions[0])
	}

	return fmt.Sprintf("unknown property %q", e.Name)
}

// property is a resolved property name.
type property struct {
	// ecma is the spelling understood by \p{...} in ES2018 engines, empty if none.
	ecma string
	set  func() *Set
}

var categoryLongNames = map[string]string{
	"Letter": "L", "Cased_Letter": "LC", "Uppercase_Letter": "Lu", "Lowercase_Letter": "Ll",
	"Titlecase_Letter": "Lt", "Modifier_Letter": "Lm", "Other_Letter": "Lo",
	"Mark": "M", "Nonspacing_Mark": "Mn", "Spacing_Mark": "Mc", "Enclosing_Mark": "Me",
	"Number": "N", "Decimal_Number": "Nd", "Letter_Number": "Nl", "Other_Number": "No",
	"Punctuation": "P", "Connector_Punctuation": "Pc", "Dash_Punctuation": "Pd",
	"Open_Punctuation": "Ps", "Close_Punctuation": "Pe", "Initial_Punctuation": "Pi",
	"Final_Punctuation": "Pf", "Other_Punctuation": "Po",
	"Symbol": "S", "Math_Symbol": "Sm", "Currency_Symbol": "Sc", "Modifier_Symbol": "Sk",
	"Other_Symbol": "So",
	"Separator":    "Z", "Space_Separator": "Zs", "Line_Separator": "Zl", "Paragraph_Separator": "Zp",
	"Other": "C", "Control": "Cc", "Format": "Cf", "Surrogate": "Cs", "Private_Use": "Co",
}

// onigmoAliases covers the POSIX-like property names of the source dialect.
var onigmoAliases = map[string]string{
	"Alpha": "Alphabetic", "Alnum": "", "Blank": "", "Cntrl": "Cc", "Digit": "Nd",
	"Graph": "", "Lower": "Lowercase", "Print": "", "Punct": "P", "Space": "White_Space",
	"Upper": "Uppercase", "XDigit": "ASCII_Hex_Digit", "Word": "", "ASCII": "ASCII",
	"Any": "Any", "Assigned": "Assigned",
}

var properties = sync.OnceValue(func() map[string]property {
	props := make(map[string]property)

	for name, table := range unicode.Categories {
		t := table
		props[match.NormalizeName(name)] = property{ecma: name, set: func() *Set { return FromTable(t) }}
	}

	for long, short := range categoryLongNames {
		if p, ok := props[match.NormalizeName(short)]; ok {
			props[match.NormalizeName(long)] = p
		}
	}

	for name, table := range unicode.Scripts {
		t := table
		props[match.NormalizeName(name)] = property{ecma: "Script=" + name, set: func() *Set { return FromTable(t) }}
	}

	for name, table := range unicode.Properties {
		t := table
		ecma := name
		if !ecmaBinaryProperty(name) {
			ecma = ""
		}

		props[match.NormalizeName(name)] = property{ecma: ecma, set: func() *Set { return FromTable(t) }}
	}

	for alias, ecma := range onigmoAliases {
		key := match.NormalizeName(alias)
		props[key] = property{ecma: ecma, set: func() *Set { return unicodeSets()[key] }}
	}

	props[match.NormalizeName("Alphabetic")] = property{ecma: "Alphabetic", set: func() *Set { return unicodeSets()["alpha"] }}
	props[match.NormalizeName("Lowercase")] = property{ecma: "Lowercase", set: func() *Set { return unicodeSets()["lower"] }}
	props[match.NormalizeName("Uppercase")] = property{ecma: "Uppercase", set: func() *Set { return unicodeSets()["upper"] }}

	return props
})

// ecmaBinaryProperty filters out contributory and deprecated properties that
// ECMAScript does not accept inside \p{...}.
func ecmaBinaryProperty(name string) bool {
	switch name {
	case "Hyphen", "Prepended_Concatenation_Mark":
		return false
	}

	return !strings.HasPrefix(name, "Other_")
}

func lookupProperty(name string) (property, error) {
	p, ok := properties()[match.NormalizeName(name)]
	if ok {
		return p, nil
	}

	known := make([]string, 0, len(unicode.Scripts)+len(categoryLongNames))
	for script := range unicode.Scripts {
		known = append(known, script)
	}

	for long := range categoryLongNames {
		known = append(known, long)
	}

	for prop := range unicode.Properties {
		known = append(known, prop)
	}

	slices.Sort(known)

	return property{}, &UnknownPropertyError{Name: name, Suggestions: match.Suggest(name, known, 3)}
}

// Property returns the members of a Unicode property, general category or script.
func Property(name string) (*Set, error) {
	p, err := lookupProperty(name)
	if err != nil {
		return nil, err
	}

	return p.set(), nil
}

// ECMAScriptProperty returns the \p{...} spelling for name, or false if the
// property has no native ECMAScript equivalent.
func ECMAScriptProperty(name string) (string, bool, error) {
	p, err := lookupProperty(name)
	if err != nil {
		return "", false, err
	}

	return p.ecma, p.ecma != "", nil
}
