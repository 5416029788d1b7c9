package emit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regex-transpiler/internal/emit"
)

func TestLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a+/u", emit.Literal("a+", "u"))
	assert.Equal(t, "/(?:)/", emit.Literal("", ""))
}

func TestConstructor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `new RegExp("\\d+\"")`, emit.Constructor(`\d+"`, ""))
	assert.Equal(t, `new RegExp("a\\/b", "iu")`, emit.Constructor(`a\/b`, "iu"))
}

func TestQuoteString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: `""`},
		{in: "tab\there", want: `"tab\there"`},
		{in: "line\nbreak\r", want: `"line\nbreak\r"`},
		{in: "\x00\x1b\x7f", want: `"\x00\x1b\x7f"`},
		{in: "caf\u00e9", want: "\"caf\u00e9\""},
		{in: "sep\u2028", want: `"sep\u2028"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, emit.QuoteString(tt.in))
	}
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{name: "greeting", want: "greeting"},
		{name: "user-name", want: "userName"},
		{name: "Email Address", want: "emailAddress"},
		{name: "2fa code", want: "_2faCode"},
		{name: "class", want: "classRe"},
		{name: "---", want: "pattern"},
		{name: "", want: "pattern"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, emit.Identifier(tt.name), tt.name)
	}
}

func TestModule(t *testing.T) {
	t.Parallel()

	out, err := emit.Module([]emit.Entry{
		{Name: "user-name", Pattern: `(?<w>hi)\k<w>`, Source: `(hi)\1`},
		{Name: "user name", Pattern: "a\nb", Source: "a", Flags: "u", Notes: []string{"x is not supported"}},
		{Name: "class"},
	})
	require.NoError(t, err)

	want := "// Code generated by regex-transpiler. DO NOT EDIT.\n" +
		"\n// user-name: (?<w>hi)\\k<w>\nexport const userName = /(hi)\\1/;\n" +
		"\n// user name: a\\nb\n// warning: x is not supported\nexport const userName2 = /a/u;\n" +
		"\n// class: \nexport const classRe = /(?:)/;\n"

	assert.Equal(t, want, string(out))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "patterns.js")

	require.NoError(t, emit.WriteFile(path, []byte("export {};\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export {};\n", string(data))
}
