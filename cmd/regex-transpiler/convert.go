package main

import (
	"fmt"
	"log/slog"

	"regex-transpiler/internal/emit"
	"regex-transpiler/transpile"
)

// ConvertCmd converts a single pattern.
type ConvertCmd struct {
	TargetFlags

	Pattern string `arg:"" help:"Source pattern."`
	Format  string `short:"f" default:"literal" enum:"literal,constructor,source" help:"Output form."`
	Strict  bool   `help:"Fail when the conversion produced diagnostics."`
}

func (c *ConvertCmd) Run(a *app) error {
	opts, err := c.options(a.logger)
	if err != nil {
		return err
	}

	res, err := transpile.Transpile(c.Pattern, opts)
	if err != nil {
		return err
	}

	switch c.Format {
	case "constructor":
		fmt.Fprintln(a.stdout, emit.Constructor(res.Source, res.Flags))
	case "source":
		fmt.Fprintln(a.stdout, res.Source)
	default:
		fmt.Fprintln(a.stdout, emit.Literal(res.Source, res.Flags))
	}

	for _, d := range res.Diagnostics.All() {
		fmt.Fprintf(a.stderr, "%s: %s\n", d.Severity, d)
	}

	a.logger.Info("pattern converted",
		slog.String("target", res.Target.String()),
		slog.Int("captures", res.Captures),
		slog.Int("diagnostics", res.Diagnostics.Len()))

	if c.Strict && res.Diagnostics.Len() > 0 {
		return fmt.Errorf("%w: %d", ErrDiagnostics, res.Diagnostics.Len())
	}

	return nil
}
