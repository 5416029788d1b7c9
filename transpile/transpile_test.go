package transpile_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regex-transpiler/internal/convert"
	"regex-transpiler/internal/parser"
	"regex-transpiler/options"
	"regex-transpiler/transpile"
)

func ExampleTranspile() {
	for _, target := range []options.TargetEnum{options.TargetES2009, options.TargetES2018} {
		res, err := transpile.Transpile(`(?<foo>a)\k<foo>`, options.Options{Target: target})
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s: /%s/%s\n", target, res.Source, res.Flags)
	}

	// Output:
	// ES2009: /(a)\1/
	// ES2018: /(?<foo>a)\k<foo>/
}

func ExampleTranspile_diagnostics() {
	res, err := transpile.Transpile(`a\g<0>b`, options.Default())
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Source)

	for _, d := range res.Diagnostics.All() {
		fmt.Println(d.Message)
	}

	// Output:
	// ab
	// whole-pattern recursion is not supported
}

func TestTranspileFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		opts    options.Options
		flags   string
	}{
		{name: "none", pattern: "abc", opts: options.Default(), flags: ""},
		{name: "case", pattern: "abc", opts: options.Options{Target: options.TargetES2018, CaseInsensitive: true}, flags: "i"},
		{name: "unicode", pattern: `\h`, opts: options.Default(), flags: "u"},
		{name: "both", pattern: `\p{Greek}`, opts: options.Options{Target: options.TargetES2018, CaseInsensitive: true}, flags: "iu"},
		{name: "legacy", pattern: `\h`, opts: options.Options{Target: options.TargetES2009}, flags: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := transpile.Transpile(tt.pattern, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.flags, res.Flags)
			assert.Equal(t, tt.pattern, res.Pattern)
		})
	}
}

func TestTranspileCaptures(t *testing.T) {
	t.Parallel()

	res, err := transpile.Transpile(`(a)(?>b)\g<1>`, options.Options{Target: options.TargetES2009})
	require.NoError(t, err)

	assert.Equal(t, `(a)(?=(b))\2(a)`, res.Source)
	assert.Equal(t, 3, res.Captures)
	assert.Equal(t, options.TargetES2009, res.Target)
	assert.Equal(t, res.Source, res.Tree.Render())
}

func TestTranspileErrors(t *testing.T) {
	t.Parallel()

	_, err := transpile.Transpile("(a", options.Default())
	require.ErrorIs(t, err, parser.ErrSyntax)

	_, err = transpile.Transpile(`\k<missing>`, options.Default())
	require.ErrorIs(t, err, convert.ErrUnresolvedReference)

	_, err = transpile.Transpile("a", options.Options{Target: options.TargetES2009, Unicode: options.UnicodeOn})
	require.ErrorIs(t, err, options.ErrInvalidOptions)
}

func TestTranspileTree(t *testing.T) {
	t.Parallel()

	root := parser.MustParse("x/y", parser.Options{})

	res, err := transpile.TranspileTree(root, options.Default())
	require.NoError(t, err)
	assert.Equal(t, `x\/y`, res.Source)
	assert.Empty(t, res.Pattern)
}

func TestTranspileAll(t *testing.T) {
	t.Parallel()

	jobs := []transpile.Job{
		{Name: "named", Pattern: `(?<w>hi)\k<w>`, Options: options.Options{Target: options.TargetES2009}},
		{Name: "broken", Pattern: `(`, Options: options.Default()},
		{Name: "hex", Pattern: `\h+`, Options: options.Default()},
	}

	outcomes, err := transpile.TranspileAll(context.Background(), jobs, 2)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "named", outcomes[0].Job.Name)
	require.NoError(t, outcomes[0].Err)
	assert.Equal(t, `(hi)\1`, outcomes[0].Result.Source)

	require.ErrorIs(t, outcomes[1].Err, parser.ErrSyntax)
	assert.Nil(t, outcomes[1].Result)

	require.NoError(t, outcomes[2].Err)
	assert.Equal(t, `\p{AHex}+`, outcomes[2].Result.Source)
	assert.Equal(t, "u", outcomes[2].Result.Flags)
}

func TestTranspileAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := transpile.TranspileAll(ctx, []transpile.Job{{Pattern: "a"}}, 0)
	require.ErrorIs(t, err, context.Canceled)
}
