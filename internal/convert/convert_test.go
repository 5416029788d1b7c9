package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regex-transpiler/expr"
	"regex-transpiler/internal/convert"
	"regex-transpiler/internal/diagnostic"
	"regex-transpiler/internal/parser"
	"regex-transpiler/options"
)

func run(t *testing.T, pattern string, opts options.Options) (string, *convert.Context) {
	t.Helper()

	root := parser.MustParse(pattern, parser.Options{CaseInsensitive: opts.CaseInsensitive})

	tree, ctx, err := convert.Run(root, opts)
	require.NoError(t, err)

	return tree.Render(), ctx
}

func messages(ctx *convert.Context) []string {
	var out []string
	for _, d := range ctx.Diagnostics.All() {
		out = append(out, d.Message)
	}

	return out
}

func target(t options.TargetEnum) options.Options {
	return options.Options{Target: t}
}

func TestRunOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		target  options.TargetEnum
		want    string
	}{
		{name: "plain", pattern: "ab+c", target: options.TargetES2009, want: "ab+c"},
		{name: "delimiter", pattern: "a/b", target: options.TargetES2009, want: `a\/b`},
		{name: "named group legacy", pattern: `(?<foo>a)\k<foo>`, target: options.TargetES2009, want: `(a)\1`},
		{name: "named group modern", pattern: `(?<foo>a)\k<foo>`, target: options.TargetES2018, want: `(?<foo>a)\k<foo>`},
		{name: "numbered backref", pattern: `(a)(b)\2`, target: options.TargetES2009, want: `(a)(b)\2`},
		{name: "forward backref", pattern: `\1(a)`, target: options.TargetES2009, want: `\1(a)`},
		{name: "relative backref", pattern: `(a)(b)\k<-2>`, target: options.TargetES2009, want: `(a)(b)\1`},
		{name: "backref before digit", pattern: `(a)\1(?#x)0`, target: options.TargetES2009, want: `(a)\1(?:)0`},
		{name: "call", pattern: `(a)\g<1>\1`, target: options.TargetES2009, want: `(a)(a)\1`},
		{name: "call before group", pattern: `\g<1>(a)\1`, target: options.TargetES2009, want: `(a)(a)\2`},
		{name: "named call", pattern: `(?<x>a)\g<x>`, target: options.TargetES2018, want: `(?<x>a)(a)`},
		{name: "atomic", pattern: `(?>a)b`, target: options.TargetES2009, want: `(?=(a))\1b`},
		{name: "atomic shifts groups", pattern: `(?>a)(b)\1`, target: options.TargetES2009, want: `(?=(a))\1(b)\2`},
		{name: "quantified atomic", pattern: `(?>a)+`, target: options.TargetES2009, want: `(?:(?=(a))\1)+`},
		{name: "lookbehind", pattern: `(?<=a)b`, target: options.TargetES2018, want: `(?<=a)b`},
		{name: "lookahead", pattern: `a(?!b)`, target: options.TargetES2009, want: `a(?!b)`},
		{name: "multiline dot", pattern: `(?m:.).`, target: options.TargetES2009, want: `(?:[\s\S]).`},
		{name: "open lower bound", pattern: `a{,3}`, target: options.TargetES2009, want: `a{0,3}`},
		{name: "anchors", pattern: `\Aa\z|^b$\Z`, target: options.TargetES2009, want: `^a$|^b$(?=\n?$)`},
		{name: "hex legacy", pattern: `\h\H`, target: options.TargetES2015, want: `[0-9A-Fa-f][^0-9A-Fa-f]`},
		{name: "hex property", pattern: `\h\H`, target: options.TargetES2018, want: `\p{AHex}\P{AHex}`},
		{name: "linebreak", pattern: `\R`, target: options.TargetES2009, want: `(?:\r\n|[\n\v\f\r\u0085\u2028\u2029])`},
		{name: "case insensitive group", pattern: `(?i:1a)`, target: options.TargetES2009, want: `(?:1[aA])`},
		{name: "case insensitive set", pattern: `(?i:[a-c])`, target: options.TargetES2018, want: `(?:[A-Ca-c])`},
		{name: "set verbatim", pattern: `[a-z\d_]`, target: options.TargetES2009, want: `[a-z\d_]`},
		{name: "set intersection", pattern: `[a-z&&[^aeiou]]`, target: options.TargetES2018, want: `[b-df-hj-np-tv-z]`},
		{name: "posix", pattern: `[[:xdigit:]]`, target: options.TargetES2009, want: `[0-9A-Fa-f]`},
		{name: "ascii posix", pattern: `(?a)[[:digit:]]`, target: options.TargetES2009, want: `[0-9]`},
		{name: "escapes", pattern: `\t\.\x41\e\0`, target: options.TargetES2009, want: `\t\.\x41\x1b\x00`},
		{name: "property", pattern: `\p{Greek}`, target: options.TargetES2018, want: `\p{Script=Greek}`},
		{name: "negated property", pattern: `\P{Lu}`, target: options.TargetES2018, want: `\P{Lu}`},
		{name: "options switch", pattern: `a(?i)b`, target: options.TargetES2009, want: `a[bB]`},
		{name: "comment", pattern: `a(?#note)b`, target: options.TargetES2009, want: `ab`},
		{name: "empty quantified", pattern: `x(?~a)*`, target: options.TargetES2009, want: `x`},
		{name: "short hex", pattern: `\x4`, target: options.TargetES2009, want: `\x04`},
		{name: "short hex in set", pattern: `[\x4]`, target: options.TargetES2009, want: `[\x04]`},
		{name: "short hex between letters", pattern: `a\x4z`, target: options.TargetES2018, want: `a\x04z`},
		{name: "wide hex", pattern: `\x{1F600}`, target: options.TargetES2009, want: `(?:\ud83d\ude00)`},
		{name: "wide hex in set", pattern: `[\x{41}-\x{43}]`, target: options.TargetES2009, want: `[A-C]`},
		{name: "case insensitive k", pattern: `(?i:k)`, target: options.TargetES2009, want: `(?:[kK])`},
		{name: "case insensitive s", pattern: `(?i:s)`, target: options.TargetES2018, want: `(?:[sS])`},
		{name: "case insensitive long s", pattern: `(?i:\u017f)`, target: options.TargetES2009, want: `(?:[\u017fS])`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _ := run(t, tt.pattern, target(tt.target))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		opts    options.Options
		want    string
		message string
	}{
		{name: "lookbehind", pattern: `(?<=a)b`, opts: target(options.TargetES2009), want: "b", message: "lookbehind is not supported"},
		{name: "possessive", pattern: `a++b`, opts: target(options.TargetES2018), want: "a+b", message: "possessive quantifier is not supported"},
		{name: "whole pattern recursion", pattern: `a\g<0>`, opts: target(options.TargetES2018), want: "a", message: "whole-pattern recursion is not supported"},
		{name: "whole pattern backref", pattern: `a\k<0>`, opts: target(options.TargetES2018), want: "a", message: "whole-pattern backreference is not supported"},
		{name: "recursive call", pattern: `(?<n>a|\g<n>)`, opts: target(options.TargetES2018), want: "(?<n>a|(a|))", message: "recursive subexpression call is not supported"},
		{name: "match start", pattern: `\Ga`, opts: target(options.TargetES2018), want: "a", message: "match start anchor is not supported"},
		{name: "absence", pattern: `(?~ab)c`, opts: target(options.TargetES2018), want: "c", message: "absence operator is not supported"},
		{name: "grapheme", pattern: `\X`, opts: target(options.TargetES2018), want: "", message: "type xgrapheme is not supported"},
		{
			name:    "nested case-sensitive literal",
			pattern: `a(?-i:b)`,
			opts:    options.Options{Target: options.TargetES2018, CaseInsensitive: true},
			want:    "a(?:b)",
			message: "nested case-sensitive literal is not supported",
		},
		{
			name:    "nested case-sensitive set",
			pattern: `(?-i:[a-c])`,
			opts:    options.Options{Target: options.TargetES2018, CaseInsensitive: true},
			want:    "(?:[a-c])",
			message: "nested case-sensitive set is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ctx := run(t, tt.pattern, tt.opts)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, messages(ctx), tt.message)
			assert.False(t, ctx.Diagnostics.HasErrors())
		})
	}
}

func TestRunUnknownProperty(t *testing.T) {
	t.Parallel()

	got, ctx := run(t, `a\p{Geek}`, target(options.TargetES2018))
	assert.Equal(t, "a", got)

	all := ctx.Diagnostics.All()
	require.Len(t, all, 1)
	assert.Equal(t, diagnostic.CodeUnknownProperty, all[0].Code)
	assert.Contains(t, all[0].Suggestions, "Greek")
	assert.Equal(t, 1, all[0].Pos)
}

func TestRunDroppedGroup(t *testing.T) {
	t.Parallel()

	got, ctx := run(t, `(?<=(a))b\1`, target(options.TargetES2009))
	assert.Equal(t, `b(?!)`, got)

	var codes []string
	for _, d := range ctx.Diagnostics.All() {
		codes = append(codes, d.Code)
	}

	assert.Contains(t, codes, diagnostic.CodeDroppedGroup)
	assert.Contains(t, codes, diagnostic.CodeUnsupportedFeature)
}

func TestRunUnresolvedReference(t *testing.T) {
	t.Parallel()

	root := parser.MustParse(`(a)\k<nope>`, parser.Options{})

	_, _, err := convert.Run(root, options.Default())
	require.ErrorIs(t, err, convert.ErrUnresolvedReference)

	var ref *convert.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "nope", ref.Ref.Name)
	assert.Equal(t, 3, ref.Pos)
}

func TestRunInvalidOptions(t *testing.T) {
	t.Parallel()

	root := parser.MustParse("a", parser.Options{})

	_, _, err := convert.Run(root, options.Options{Target: options.TargetES2009, Unicode: options.UnicodeOn})
	require.ErrorIs(t, err, options.ErrInvalidOptions)
}

func TestRunAstral(t *testing.T) {
	t.Parallel()

	got, ctx := run(t, "\U0001F600", target(options.TargetES2009))
	assert.Equal(t, `(?:\ud83d\ude00)`, got)
	assert.False(t, ctx.ExtendedUnicode())

	got, ctx = run(t, "\U0001F600", target(options.TargetES2015))
	assert.Equal(t, "\U0001F600", got)
	assert.True(t, ctx.ExtendedUnicode())

	got, ctx = run(t, "\U0001F600", options.Options{Target: options.TargetES2015, Unicode: options.UnicodeOff})
	assert.Equal(t, `(?:\ud83d\ude00)`, got)
	assert.False(t, ctx.ExtendedUnicode())
}

func TestRunUnicodeFlag(t *testing.T) {
	t.Parallel()

	_, ctx := run(t, "abc", target(options.TargetES2018))
	assert.False(t, ctx.ExtendedUnicode())

	_, ctx = run(t, "abc", options.Options{Target: options.TargetES2018, Unicode: options.UnicodeOn})
	assert.True(t, ctx.ExtendedUnicode())

	got, ctx := run(t, `\h`, options.Options{Target: options.TargetES2018, Unicode: options.UnicodeOff})
	assert.Equal(t, `[0-9A-Fa-f]`, got)
	assert.False(t, ctx.ExtendedUnicode())
}

func TestRunPropertyFallback(t *testing.T) {
	t.Parallel()

	got, ctx := run(t, `\p{Greek}`, target(options.TargetES2009))
	assert.True(t, strings.HasPrefix(got, "(?:["), got)
	assert.False(t, ctx.ExtendedUnicode())

	got, _ = run(t, `\p{Greek}`, target(options.TargetES2015))
	assert.True(t, strings.HasPrefix(got, "["), got)
	assert.NotContains(t, got, `\p{`)
}

func TestRunUnicodeClasses(t *testing.T) {
	t.Parallel()

	got, _ := run(t, `(?u)\d`, target(options.TargetES2009))
	assert.True(t, strings.HasPrefix(got, "[0-9"), got)

	negated, _ := run(t, `(?u)\D`, target(options.TargetES2009))
	assert.Equal(t, "[^"+strings.TrimPrefix(got, "["), negated)

	got, _ = run(t, `(?a)\s`, target(options.TargetES2009))
	assert.Equal(t, `[\t-\r ]`, got)
}

func TestRunCaptureCounts(t *testing.T) {
	t.Parallel()

	_, ctx := run(t, `(a)(?>b)\g<1>(c)`, target(options.TargetES2009))

	assert.Equal(t, 4, ctx.CaptureCount())
	assert.Equal(t, 2, ctx.LocalCaptureCount())

	pos, ok := ctx.Position(1)
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = ctx.Position(2)
	require.True(t, ok)
	assert.Equal(t, 4, pos)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exp  *expr.Expression
		want convert.ConverterEnum
	}{
		{exp: expr.New(expr.TypeExpression, expr.TokenRoot, ""), want: convert.ConverterSequence},
		{exp: expr.New(expr.TypeMeta, expr.TokenAlternation, "|"), want: convert.ConverterAlternation},
		{exp: expr.New(expr.TypeMeta, expr.TokenDot, "."), want: convert.ConverterDot},
		{exp: expr.New(expr.TypeLiteral, expr.TokenLiteral, "a"), want: convert.ConverterLiteral},
		{exp: expr.New(expr.TypePosixClass, expr.TokenPosixClass, "[:alpha:]"), want: convert.ConverterProperty},
		{exp: expr.New(expr.TypeGroup, expr.TokenAtomic, "(?>a)"), want: convert.ConverterGroup},
		{exp: &expr.Expression{}, want: convert.ConverterUnsupported},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convert.Classify(tt.exp), tt.exp.Describe())
	}
}

func TestDispatchConverterFunc(t *testing.T) {
	t.Parallel()

	root := expr.New(expr.TypeExpression, expr.TokenRoot, "ab")
	root.Add(expr.New(expr.TypeLiteral, expr.TokenLiteral, "ab"))

	opts := options.Default()
	require.NoError(t, opts.Validate())

	ctx := convert.NewContext(root, opts)

	var c convert.Converter = convert.ConverterFunc(convert.Dispatch)

	out, err := c.Convert(root, ctx)
	require.NoError(t, err)
	assert.Equal(t, "ab", out.Render())
}
