package report_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"regex-transpiler/internal/report"
	"regex-transpiler/options"
	"regex-transpiler/transpile"
)

func outcomes(t *testing.T) []transpile.Outcome {
	t.Helper()

	jobs := []transpile.Job{
		{Name: "greeting", Pattern: `(?<w>hi)\k<w>`, Options: options.Options{Target: options.TargetES2009}},
		{Name: "possessive", Pattern: `a++`, Options: options.Default()},
		{Name: "broken", Pattern: `[a`},
	}

	out, err := transpile.TranspileAll(context.Background(), jobs, 0)
	require.NoError(t, err)

	return out
}

func TestDigest(t *testing.T) {
	t.Parallel()

	a := report.Digest("a+", options.Default())
	assert.Len(t, a, 64)
	assert.Equal(t, a, report.Digest("a+", options.Default()))
	assert.Equal(t, a, report.Digest("a+", options.Options{}))
	assert.NotEqual(t, a, report.Digest("a*", options.Default()))
	assert.NotEqual(t, a, report.Digest("a+", options.Options{Target: options.TargetES2009}))
	assert.NotEqual(t, a, report.Digest("a+", options.Options{Target: options.TargetES2018, CaseInsensitive: true}))
}

func TestNewRunID(t *testing.T) {
	t.Parallel()

	id := report.NewRunID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, report.NewRunID())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	r := report.Build("run-1", outcomes(t))

	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, report.Summary{Total: 3, Converted: 2, Failed: 1, Diagnostics: 1}, r.Summary)
	require.Len(t, r.Entries, 3)

	greeting := r.Entries[0]
	assert.Equal(t, `(hi)\1`, greeting.Source)
	assert.Equal(t, `/(hi)\1/`, greeting.Literal)
	assert.Equal(t, "ES2009", greeting.Target)
	assert.Equal(t, 1, greeting.Captures)

	possessive := r.Entries[1]
	assert.Equal(t, "a+", possessive.Source)
	require.Len(t, possessive.Diagnostics, 1)
	assert.Equal(t, "possessive quantifier is not supported", possessive.Diagnostics[0].Message)

	broken := r.Entries[2]
	assert.Empty(t, broken.Source)
	assert.Contains(t, broken.Error, "premature end of char-class")
	assert.Equal(t, "ES2018", broken.Target)

	modules := r.ModuleEntries()
	require.Len(t, modules, 2)
	assert.Equal(t, []string{"possessive quantifier is not supported"}, modules[1].Notes)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	r := report.Build(report.NewRunID(), outcomes(t))
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, report.WriteFile(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, r.RunID, raw["run_id"])

	assert.Contains(t, string(data), "severity: warning")
	assert.Contains(t, string(data), "code: unsupported_feature")
}
