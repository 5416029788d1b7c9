package expr

import (
	"iter"
	"strings"
)

// QuantifierMode distinguishes greedy, reluctant and possessive repetition.
type QuantifierMode int

const (
	QuantifierGreedy QuantifierMode = iota
	QuantifierReluctant
	QuantifierPossessive
)

// Quantifier is a repetition applied to an expression.
type Quantifier struct {
	// Text is the quantifier as written, e.g. "{2,}?".
	Text string
	Min  int
	// Max is -1 for unbounded repetition.
	Max  int
	Mode QuantifierMode
}

// Reference is the lookup key a backreference or call holds for its target group.
// Name takes precedence; otherwise Number is the absolute capture ordinal,
// with relative forms already resolved by the parser. Number 0 is the whole pattern.
type Reference struct {
	Name   string
	Number int
	// Level is the recursion level of \k<name+n> forms.
	Level int
}

// Expression is a node of the parsed source pattern.
// Converters treat it as read-only; UnquantifiedClone is the only way to derive a modified copy.
type Expression struct {
	Type  TypeEnum
	Token TokenEnum
	// Text is the source text of the node without its quantifier.
	Text string
	// Pos is the byte offset of the node in the source pattern.
	Pos int

	// Name of a named group, property or POSIX class.
	Name string
	// Number is the capture ordinal of a capturing group.
	Number int
	// Codepoint is the decoded value of an escape.
	Codepoint rune
	// Ref is set on backreferences and calls.
	Ref *Reference
	// Negative marks [^...], \P{...} and [:^...:].
	Negative   bool
	Quantifier *Quantifier

	CaseInsensitive bool
	// Multiline lets the dot match newlines.
	Multiline bool
	// ASCIIClasses restricts \d \s \w to ASCII.
	ASCIIClasses bool
	// UnicodeClasses makes \d \s \w Unicode-aware.
	UnicodeClasses bool

	Children []*Expression
}

// New creates a leaf expression.
func New(typ TypeEnum, token TokenEnum, text string) *Expression {
	return &Expression{Type: typ, Token: token, Text: text}
}

// Add appends children and returns the receiver.
func (e *Expression) Add(children ...*Expression) *Expression {
	e.Children = append(e.Children, children...)
	return e
}

// Is reports whether the expression has the given type and one of the tokens.
// With no tokens only the type is compared.
func (e *Expression) Is(typ TypeEnum, tokens ...TokenEnum) bool {
	if e.Type != typ {
		return false
	}

	if len(tokens) == 0 {
		return true
	}

	for _, t := range tokens {
		if e.Token == t {
			return true
		}
	}

	return false
}

// IsCapture reports whether the expression is a numbered or named capturing group.
func (e *Expression) IsCapture() bool {
	return e.Is(TypeGroup, TokenCapture, TokenNamedCapture)
}

// IsQuantified reports whether a quantifier applies to the expression.
func (e *Expression) IsQuantified() bool {
	return e.Quantifier != nil
}

// Descendants yields every expression below e in document order.
func (e *Expression) Descendants() iter.Seq[*Expression] {
	return func(yield func(*Expression) bool) {
		e.walk(yield)
	}
}

func (e *Expression) walk(yield func(*Expression) bool) bool {
	for _, ch := range e.Children {
		if !yield(ch) || !ch.walk(yield) {
			return false
		}
	}

	return true
}

// UnquantifiedClone returns an independent deep copy of e without its top-level quantifier.
func (e *Expression) UnquantifiedClone() *Expression {
	c := e.clone()
	c.Quantifier = nil

	return c
}

func (e *Expression) clone() *Expression {
	c := *e
	if e.Ref != nil {
		ref := *e.Ref
		c.Ref = &ref
	}

	if e.Quantifier != nil {
		q := *e.Quantifier
		c.Quantifier = &q
	}

	if e.Children != nil {
		c.Children = make([]*Expression, len(e.Children))
		for i, ch := range e.Children {
			c.Children[i] = ch.clone()
		}
	}

	return &c
}

// Char returns the first codepoint matched by a literal or escape.
func (e *Expression) Char() rune {
	if e.Type == TypeEscape {
		return e.Codepoint
	}

	for _, r := range e.Text {
		return r
	}

	return 0
}

// String renders the source text including the quantifier.
func (e *Expression) String() string {
	if e.Quantifier == nil {
		return e.Text
	}

	return e.Text + e.Quantifier.Text
}

// Describe returns "type token", used to name unsupported features.
func (e *Expression) Describe() string {
	var b strings.Builder

	b.WriteString(e.Type.String())
	b.WriteByte(' ')
	b.WriteString(e.Token.String())

	return b.String()
}
