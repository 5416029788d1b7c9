package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	escapePattern   = `\\(?:x\{[0-9A-Fa-f]{1,8}\}|x[0-9A-Fa-f]{1,2}|u[0-9A-Fa-f]{4}|u\{[0-9A-Fa-f]{1,6}\}|0[0-7]{0,2}|c.|C-.|M-.|[\s\S])`
	propertyPattern = `\\[pP]\{\^?[\w\s=.-]+\}`
	typePattern     = `\\[dDsSwWhHRX]`
)

// patternLexer splits a pattern into tokens. Bracket expressions are lexed in
// their own state since most metacharacters are literal inside them.
var patternLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `\(\?#[^)]*\)`},
		{Name: "NamedOpen", Pattern: `\(\?(?:P?<[A-Za-z_]\w*>|'[A-Za-z_]\w*')`},
		{Name: "LookOpen", Pattern: `\(\?<?[=!]`},
		{Name: "AtomicOpen", Pattern: `\(\?>`},
		{Name: "AbsentOpen", Pattern: `\(\?~`},
		{Name: "PassiveOpen", Pattern: `\(\?:`},
		{Name: "OptionSwitch", Pattern: `\(\?[imxdau]*(?:-[imx]*)?\)`},
		{Name: "OptionOpen", Pattern: `\(\?[imxdau]*(?:-[imx]*)?:`},
		{Name: "Open", Pattern: `\(`},
		{Name: "Close", Pattern: `\)`},
		{Name: "SetOpen", Pattern: `\[\^?`, Action: lexer.Push("Set")},
		{Name: "Quantifier", Pattern: `(?:[*+?]|\{\d+(?:,\d*)?\}|\{,\d+\})[?+]?`},
		{Name: "Alt", Pattern: `\|`},
		{Name: "Anchor", Pattern: `[\^$]|\\[AzZbBG]`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Backref", Pattern: `\\(?:[1-9]\d*|[kg]<[^>]+>|[kg]'[^']+')`},
		{Name: "Property", Pattern: propertyPattern},
		{Name: "Type", Pattern: typePattern},
		{Name: "Escape", Pattern: escapePattern},
		{Name: "Char", Pattern: `[\s\S]`},
	},
	"Set": {
		{Name: "Posix", Pattern: `\[:\^?[a-z]+:\]`},
		{Name: "SetOpen", Pattern: `\[\^?`, Action: lexer.Push("Set")},
		{Name: "SetClose", Pattern: `\]`, Action: lexer.Pop()},
		{Name: "And", Pattern: `&&`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Property", Pattern: propertyPattern},
		{Name: "Type", Pattern: typePattern},
		{Name: "Escape", Pattern: escapePattern},
		{Name: "Char", Pattern: `[\s\S]`},
	},
})

// patternAST is the flat token stream of a pattern.
//
//nolint:govet // participle grammar tags are not standard struct tags
type patternAST struct {
	Tokens []*tokenAST `parser:"@@*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type tokenAST struct {
	Pos lexer.Position

	Comment      string `parser:"  @Comment"`
	NamedOpen    string `parser:"| @NamedOpen"`
	LookOpen     string `parser:"| @LookOpen"`
	AtomicOpen   string `parser:"| @AtomicOpen"`
	AbsentOpen   string `parser:"| @AbsentOpen"`
	PassiveOpen  string `parser:"| @PassiveOpen"`
	OptionSwitch string `parser:"| @OptionSwitch"`
	OptionOpen   string `parser:"| @OptionOpen"`
	Open         string `parser:"| @Open"`
	Close        string `parser:"| @Close"`
	SetOpen      string `parser:"| @SetOpen"`
	SetClose     string `parser:"| @SetClose"`
	Posix        string `parser:"| @Posix"`
	And          string `parser:"| @And"`
	Dash         string `parser:"| @Dash"`
	Quantifier   string `parser:"| @Quantifier"`
	Alt          string `parser:"| @Alt"`
	Anchor       string `parser:"| @Anchor"`
	Dot          string `parser:"| @Dot"`
	Backref      string `parser:"| @Backref"`
	Property     string `parser:"| @Property"`
	Type         string `parser:"| @Type"`
	Escape       string `parser:"| @Escape"`
	Char         string `parser:"| @Char"`
}

var patternParser = participle.MustBuild[patternAST](
	participle.Lexer(patternLexer),
)

// tokenKind names the lexer rule a token came from.
type tokenKind int

const (
	_ tokenKind = iota
	kindComment
	kindNamedOpen
	kindLookOpen
	kindAtomicOpen
	kindAbsentOpen
	kindPassiveOpen
	kindOptionSwitch
	kindOptionOpen
	kindOpen
	kindClose
	kindSetOpen
	kindSetClose
	kindPosix
	kindAnd
	kindDash
	kindQuantifier
	kindAlt
	kindAnchor
	kindDot
	kindBackref
	kindProperty
	kindType
	kindEscape
	kindChar
)

// token is a lexed token with its byte offset.
type token struct {
	kind  tokenKind
	value string
	pos   int
}

func (t *tokenAST) token() token {
	fields := []struct {
		kind  tokenKind
		value string
	}{
		{kindComment, t.Comment}, {kindNamedOpen, t.NamedOpen}, {kindLookOpen, t.LookOpen},
		{kindAtomicOpen, t.AtomicOpen}, {kindAbsentOpen, t.AbsentOpen}, {kindPassiveOpen, t.PassiveOpen},
		{kindOptionSwitch, t.OptionSwitch}, {kindOptionOpen, t.OptionOpen}, {kindOpen, t.Open},
		{kindClose, t.Close}, {kindSetOpen, t.SetOpen}, {kindSetClose, t.SetClose},
		{kindPosix, t.Posix}, {kindAnd, t.And}, {kindDash, t.Dash},
		{kindQuantifier, t.Quantifier}, {kindAlt, t.Alt}, {kindAnchor, t.Anchor},
		{kindDot, t.Dot}, {kindBackref, t.Backref}, {kindProperty, t.Property},
		{kindType, t.Type}, {kindEscape, t.Escape}, {kindChar, t.Char},
	}

	for _, f := range fields {
		if f.value != "" {
			return token{kind: f.kind, value: f.value, pos: t.Pos.Offset}
		}
	}

	return token{pos: t.Pos.Offset}
}
