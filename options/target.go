package options

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TargetEnum -trimprefix=Target -output=target_string.go

// TargetEnum is an ordered feature level of the target engine.
type TargetEnum int

const (
	_ TargetEnum = iota // skip zero value, use it as a default (invalid) value for TargetEnum

	TargetES2009 // legacy: no u flag, no lookbehind, no named groups
	TargetES2015 // u flag, \u{...} escapes
	TargetES2018 // named groups, lookbehind, \p{...}, s flag

	// TargetTotal is a constant that represents the total number of targets defined
	TargetTotal = int(iota)
)

// ParseTarget accepts "ES2009", "es2015", "2018" and similar spellings.
func ParseTarget(s string) (TargetEnum, error) {
	norm := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ES")
	switch norm {
	case "2009", "5":
		return TargetES2009, nil
	case "2015", "6":
		return TargetES2015, nil
	case "2018", "2019", "2020", "2021", "2022", "2023", "2024", "2025", "NEXT":
		return TargetES2018, nil
	default:
		return 0, fmt.Errorf("%w: unknown target %q", ErrInvalidOptions, s)
	}
}

// IsValid reports whether t is one of the defined feature levels.
func (t TargetEnum) IsValid() bool {
	return t > 0 && int(t) < TargetTotal
}

func (t TargetEnum) AtLeast(other TargetEnum) bool {
	return t >= other
}

// SupportsExtendedUnicode reports whether the engine has a unicode (u) flag.
func (t TargetEnum) SupportsExtendedUnicode() bool {
	return t.AtLeast(TargetES2015)
}

// SupportsNamedGroups covers both (?<name>...) and \k<name>.
func (t TargetEnum) SupportsNamedGroups() bool {
	return t.AtLeast(TargetES2018)
}

// SupportsUnicodeClasses covers \p{...} escapes.
func (t TargetEnum) SupportsUnicodeClasses() bool {
	return t.AtLeast(TargetES2018)
}

func (t TargetEnum) SupportsLookbehind() bool {
	return t.AtLeast(TargetES2018)
}
