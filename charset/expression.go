package charset

import (
	"errors"
	"fmt"

	"regex-transpiler/expr"
)

// ErrUnsupportedMember is returned for expressions that match no fixed codepoint set.
var ErrUnsupportedMember = errors.New("expression has no codepoint set")

// OfExpression computes the full set of codepoints matched by a set, range,
// shorthand type, property, POSIX class, literal or escape. Negated forms
// (e.g. \D, [^a], \P{L}) return the already inverted set.
func OfExpression(e *expr.Expression) (*Set, error) {
	switch e.Type {
	case expr.TypeLiteral:
		return Of([]rune(e.Text)...), nil

	case expr.TypeEscape:
		return Of(e.Codepoint), nil

	case expr.TypeSet:
		return ofSet(e)

	case expr.TypeType:
		return OfType(e)

	case expr.TypeProperty:
		s, err := Property(e.Name)
		if err != nil {
			return nil, err
		}

		return negateIf(s, e.Negative), nil

	case expr.TypePosixClass:
		s, ok := Posix(e.Name, e.ASCIIClasses)
		if !ok {
			return nil, fmt.Errorf("%w: posix class %q", ErrUnsupportedMember, e.Name)
		}

		return negateIf(s, e.Negative), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMember, e.Describe())
	}
}

func ofSet(e *expr.Expression) (*Set, error) {
	switch e.Token {
	case expr.TokenRange:
		if len(e.Children) != 2 {
			return nil, fmt.Errorf("%w: malformed range %q", ErrUnsupportedMember, e.Text)
		}

		return New(Range{e.Children[0].Char(), e.Children[1].Char()}), nil

	case expr.TokenIntersection:
		var result *Set

		for _, operand := range e.Children {
			s, err := unionOf(operand.Children)
			if err != nil {
				return nil, err
			}

			if result == nil {
				result = s
			} else {
				result = result.Intersect(s)
			}
		}

		if result == nil {
			return New(), nil
		}

		return result, nil

	case expr.TokenIntersected:
		return unionOf(e.Children)

	default:
		s, err := unionOf(e.Children)
		if err != nil {
			return nil, err
		}

		return negateIf(s, e.Negative), nil
	}
}

func unionOf(members []*expr.Expression) (*Set, error) {
	result := New()

	for _, m := range members {
		s, err := OfExpression(m)
		if err != nil {
			return nil, err
		}

		result = result.Union(s)
	}

	return result, nil
}

// OfType returns the codepoints of a shorthand class such as \d or \H.
func OfType(e *expr.Expression) (*Set, error) {
	var s *Set

	switch e.Token {
	case expr.TokenDigit, expr.TokenNondigit:
		s = asciiDigit
		if e.UnicodeClasses {
			s = unicodeSets()["digit"]
		}
	case expr.TokenSpace, expr.TokenNonspace:
		s = asciiSpace
		if e.UnicodeClasses {
			s = unicodeSets()["space"]
		}
	case expr.TokenWord, expr.TokenNonword:
		s = asciiWord
		if e.UnicodeClasses {
			s = unicodeSets()["word"]
		}
	case expr.TokenHex, expr.TokenNonhex:
		s = hexDigit
	case expr.TokenLinebreak:
		s = linebreak
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMember, e.Describe())
	}

	return negateIf(s, e.Token.IsNegatedType()), nil
}

func negateIf(s *Set, negative bool) *Set {
	if negative {
		return s.Invert()
	}

	return s
}
