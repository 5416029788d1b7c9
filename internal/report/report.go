package report

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"regex-transpiler/internal/diagnostic"
	"regex-transpiler/internal/emit"
	"regex-transpiler/options"
	"regex-transpiler/transpile"
)

const filePerm = 0o644

// Report is the outcome of a batch run.
type Report struct {
	Version string  `yaml:"version"`
	RunID   string  `yaml:"run_id"`
	Summary Summary `yaml:"summary"`
	Entries []Entry `yaml:"entries"`
}

// Summary counts the entries of a report.
type Summary struct {
	Total       int `yaml:"total"`
	Converted   int `yaml:"converted"`
	Failed      int `yaml:"failed"`
	Diagnostics int `yaml:"diagnostics"`
}

// Entry is the outcome of one pattern.
type Entry struct {
	Name            string                  `yaml:"name"`
	Pattern         string                  `yaml:"pattern"`
	Digest          string                  `yaml:"digest"`
	Target          string                  `yaml:"target"`
	Source          string                  `yaml:"source,omitempty"`
	Flags           string                  `yaml:"flags,omitempty"`
	Literal         string                  `yaml:"literal,omitempty"`
	Captures        int                     `yaml:"captures,omitempty"`
	ExtendedUnicode bool                    `yaml:"extended_unicode,omitempty"`
	Diagnostics     []diagnostic.Diagnostic `yaml:"diagnostics,omitempty"`
	Error           string                  `yaml:"error,omitempty"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.New().String()
}

// Digest identifies a pattern together with the options that affect its conversion.
func Digest(pattern string, opts options.Options) string {
	if opts.Target == 0 {
		opts.Target = options.Default().Target
	}

	key := opts.Target.String() + "\x00" + opts.Unicode.String() + "\x00" +
		strconv.FormatBool(opts.CaseInsensitive) + "\x00" + pattern
	sum := blake3.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// Build turns the outcomes of a batch run into a report.
func Build(runID string, outcomes []transpile.Outcome) *Report {
	r := &Report{Version: "1", RunID: runID, Entries: make([]Entry, 0, len(outcomes))}

	for _, o := range outcomes {
		e := Entry{
			Name:    o.Job.Name,
			Pattern: o.Job.Pattern,
			Digest:  Digest(o.Job.Pattern, o.Job.Options),
			Target:  o.Job.Options.Target.String(),
		}

		if o.Job.Options.Target == 0 {
			e.Target = options.Default().Target.String()
		}

		if o.Err != nil {
			e.Error = o.Err.Error()
			r.Summary.Failed++
		} else {
			res := o.Result
			e.Target = res.Target.String()
			e.Source = res.Source
			e.Flags = res.Flags
			e.Literal = emit.Literal(res.Source, res.Flags)
			e.Captures = res.Captures
			e.ExtendedUnicode = res.ExtendedUnicode
			e.Diagnostics = res.Diagnostics.All()
			r.Summary.Converted++
			r.Summary.Diagnostics += len(e.Diagnostics)
		}

		r.Entries = append(r.Entries, e)
	}

	r.Summary.Total = len(r.Entries)

	return r
}

// ModuleEntries lists the converted entries for emit.Module, with their
// diagnostics as notes. Failed entries are left out.
func (r *Report) ModuleEntries() []emit.Entry {
	var out []emit.Entry

	for _, e := range r.Entries {
		if e.Error != "" {
			continue
		}

		m := emit.Entry{Name: e.Name, Pattern: e.Pattern, Source: e.Source, Flags: e.Flags}
		for _, d := range e.Diagnostics {
			m.Notes = append(m.Notes, d.Message)
		}

		out = append(out, m)
	}

	return out
}

// Marshal serializes a report to YAML.
func Marshal(r *Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteFile writes a report to the given path.
func WriteFile(r *Report, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
