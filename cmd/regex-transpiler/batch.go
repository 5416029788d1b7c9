package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"regex-transpiler/internal/batch"
	"regex-transpiler/internal/emit"
	"regex-transpiler/internal/report"
	"regex-transpiler/transpile"
)

// ErrBatchFailed is returned when some patterns of a batch could not be converted.
var ErrBatchFailed = errors.New("batch failed")

// BatchCmd converts every pattern of a batch file and writes a report.
type BatchCmd struct {
	File   string `arg:"" type:"existingfile" help:"YAML batch file."`
	Output string `short:"o" type:"path" help:"Write the report to this file instead of stdout."`
	Module string `short:"m" type:"path" help:"Also write an ES module exporting the converted patterns."`
	Jobs   int    `short:"j" default:"0" help:"Patterns converted in parallel (0 uses every CPU)."`
}

func (c *BatchCmd) Run(a *app) error {
	f, err := batch.LoadFile(c.File)
	if err != nil {
		return err
	}

	jobs, err := f.Jobs(a.logger)
	if err != nil {
		return err
	}

	outcomes, err := transpile.TranspileAll(context.Background(), jobs, c.Jobs)
	if err != nil {
		return err
	}

	r := report.Build(report.NewRunID(), outcomes)
	a.logger.Info("batch converted",
		slog.String("run_id", r.RunID),
		slog.Int("total", r.Summary.Total),
		slog.Int("failed", r.Summary.Failed))

	if c.Output != "" {
		err = report.WriteFile(r, c.Output)
	} else {
		var data []byte

		data, err = report.Marshal(r)
		if err == nil {
			_, err = a.stdout.Write(data)
		}
	}

	if err != nil {
		return err
	}

	if c.Module != "" {
		module, err := emit.Module(r.ModuleEntries())
		if err != nil {
			return err
		}

		if err := emit.WriteFile(c.Module, module); err != nil {
			return err
		}
	}

	if r.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d patterns", ErrBatchFailed, r.Summary.Failed, r.Summary.Total)
	}

	return nil
}
