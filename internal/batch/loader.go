package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"regex-transpiler/options"
	"regex-transpiler/transpile"
)

// ErrInvalidBatch is returned for batch files that cannot be turned into jobs.
var ErrInvalidBatch = errors.New("invalid batch file")

// LoadFile loads and parses a YAML batch file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Defaults.Target == "" {
		f.Defaults.Target = options.TargetES2018.String()
	}

	if f.Defaults.Unicode == "" {
		f.Defaults.Unicode = options.UnicodeAuto.String()
	}

	for i := range f.Patterns {
		p := &f.Patterns[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("pattern%d", i+1)
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Options resolves the settings of p against the file defaults.
func (f *File) Options(p *Pattern) (options.Options, error) {
	s := p.Settings.merge(f.Defaults)

	target, err := options.ParseTarget(s.Target)
	if err != nil {
		return options.Options{}, fmt.Errorf("%w: pattern %q: %w", ErrInvalidBatch, p.Name, err)
	}

	unicode, err := options.ParseUnicodeMode(s.Unicode)
	if err != nil {
		return options.Options{}, fmt.Errorf("%w: pattern %q: %w", ErrInvalidBatch, p.Name, err)
	}

	opts := options.Options{Target: target, Unicode: unicode}
	if s.CaseInsensitive != nil {
		opts.CaseInsensitive = *s.CaseInsensitive
	}

	return opts, nil
}

// Jobs validates the file and returns one job per pattern, in file order.
// Every job logs to logger, which may be nil.
func (f *File) Jobs(logger *slog.Logger) ([]transpile.Job, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]transpile.Job, 0, len(f.Patterns))

	for i := range f.Patterns {
		p := &f.Patterns[i]

		opts, err := f.Options(p)
		if err != nil {
			return nil, err
		}

		opts.Logger = logger

		jobs = append(jobs, transpile.Job{Name: p.Name, Pattern: p.Source, Options: opts})
	}

	return jobs, nil
}

// Validate checks versions, names and settings.
func (f *File) Validate() error {
	var errs []error

	if f.Version != "1" {
		errs = append(errs, fmt.Errorf("%w: unsupported version %q", ErrInvalidBatch, f.Version))
	}

	seen := make(map[string]struct{}, len(f.Patterns))

	for i := range f.Patterns {
		p := &f.Patterns[i]

		if _, dup := seen[p.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate pattern name %q", ErrInvalidBatch, p.Name))
		}

		seen[p.Name] = struct{}{}

		if p.Source == "" {
			errs = append(errs, fmt.Errorf("%w: pattern %q has no source", ErrInvalidBatch, p.Name))
		}

		if _, err := f.Options(p); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
