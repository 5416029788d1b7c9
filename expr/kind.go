package expr

//go:generate go tool stringer -type=TypeEnum,TokenEnum -linecomment -output=kind_string.go

// TypeEnum is the coarse kind of a source expression.
type TypeEnum int

const (
	_ TypeEnum = iota // skip zero value, use it as a default (invalid) value for TypeEnum

	TypeExpression // expression
	TypeMeta       // meta
	TypeLiteral    // literal
	TypeSet        // set
	TypeType       // type
	TypeBackref    // backref
	TypeGroup      // group
	TypeAssertion  // assertion
	TypeAnchor     // anchor
	TypeEscape     // escape
	TypeProperty   // property
	TypePosixClass // posixclass

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// TokenEnum is the fine kind (subtype) of a source expression.
type TokenEnum int

const (
	_ TokenEnum = iota // skip zero value, use it as a default (invalid) value for TokenEnum

	// TypeExpression
	TokenRoot     // root
	TokenSequence // sequence

	// TypeMeta
	TokenAlternation // alternation
	TokenDot         // dot

	// TypeLiteral
	TokenLiteral // literal

	// TypeSet
	TokenCharacterSet // character_set
	TokenRange        // range
	TokenIntersection // intersection
	TokenIntersected  // intersected_sequence

	// TypeType
	TokenDigit     // digit
	TokenNondigit  // nondigit
	TokenSpace     // space
	TokenNonspace  // nonspace
	TokenWord      // word
	TokenNonword   // nonword
	TokenHex       // hex
	TokenNonhex    // nonhex
	TokenLinebreak // linebreak
	TokenXGrapheme // xgrapheme

	// TypeBackref
	TokenNameRef            // name_ref
	TokenNumber             // number
	TokenNumberRef          // number_ref
	TokenNumberRelRef       // number_rel_ref
	TokenNameCall           // name_call
	TokenNumberCall         // number_call
	TokenNumberRelCall      // number_rel_call
	TokenNameRecursionRef   // name_recursion_ref
	TokenNumberRecursionRef // number_recursion_ref

	// TypeGroup
	TokenCapture       // capture
	TokenNamedCapture  // named
	TokenPassive       // passive
	TokenOptions       // options
	TokenOptionsSwitch // options_switch
	TokenAtomic        // atomic
	TokenAbsence       // absence
	TokenComment       // comment

	// TypeAssertion
	TokenLookahead     // lookahead
	TokenNegLookahead  // nlookahead
	TokenLookbehind    // lookbehind
	TokenNegLookbehind // nlookbehind

	// TypeAnchor
	TokenBOL             // bol
	TokenEOL             // eol
	TokenBOS             // bos
	TokenEOS             // eos
	TokenEOSObEOL        // eos_ob_eol
	TokenWordBoundary    // word_boundary
	TokenNonwordBoundary // nonword_boundary
	TokenMatchStart      // match_start

	// TypeEscape
	TokenEscapedChar   // literal_escape
	TokenTab           // tab
	TokenNewline       // newline
	TokenCarriage      // carriage
	TokenFormFeed      // form_feed
	TokenVerticalTab   // vertical_tab
	TokenBell          // bell
	TokenEscapeChar    // escape
	TokenHexEscape     // hex_escape
	TokenUnicodeEscape // unicode_escape
	TokenCodepoint     // codepoint
	TokenOctal         // octal
	TokenControl       // control

	// TypeProperty
	TokenProperty // property

	// TypePosixClass
	TokenPosixClass // posixclass

	// TokenTotal is a constant that represents the total number of tokens defined
	TokenTotal = int(iota)
)

// IsNegatedType reports whether the token is the negation of a shorthand class.
func (t TokenEnum) IsNegatedType() bool {
	switch t {
	default:
		return false
	case TokenNondigit, TokenNonspace, TokenNonword, TokenNonhex:
		return true
	}
}

// IsCall reports whether the token invokes a group's pattern rather than matching its capture.
func (t TokenEnum) IsCall() bool {
	switch t {
	default:
		return false
	case TokenNameCall, TokenNumberCall, TokenNumberRelCall:
		return true
	}
}
