package convert

//go:generate go tool stringer -type=ConverterEnum -linecomment -output=kind_string.go

// ConverterEnum names the converter responsible for an expression.
type ConverterEnum int

const (
	_ ConverterEnum = iota // skip zero value, use it as a default (invalid) value for ConverterEnum

	ConverterUnsupported // unsupported
	ConverterSequence    // sequence
	ConverterAlternation // alternation
	ConverterDot         // dot
	ConverterLiteral     // literal
	ConverterSet         // set
	ConverterType        // type
	ConverterBackref     // backref
	ConverterGroup       // group
	ConverterAssertion   // assertion
	ConverterAnchor      // anchor
	ConverterEscape      // escape
	ConverterProperty    // property

	// ConverterTotal is a constant that represents the total number of converters defined
	ConverterTotal = int(iota)
)
