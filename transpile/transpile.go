package transpile

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"regex-transpiler/expr"
	"regex-transpiler/internal/convert"
	"regex-transpiler/internal/diagnostic"
	"regex-transpiler/internal/parser"
	"regex-transpiler/node"
	"regex-transpiler/options"
)

// Result is a converted pattern.
type Result struct {
	// Pattern is the source pattern, empty when converting a tree.
	Pattern string
	// Source is the converted pattern text.
	Source string
	// Flags are the target engine flags the pattern needs: i for a
	// case-insensitive pattern, u when extended unicode mode is on.
	Flags           string
	ExtendedUnicode bool
	Target          options.TargetEnum
	// Captures is the number of capturing groups in Source.
	Captures    int
	Diagnostics diagnostic.Diagnostics
	Tree        *node.Node
}

// Transpile parses pattern in the source dialect and converts it.
func Transpile(pattern string, opts options.Options) (*Result, error) {
	root, err := parser.Parse(pattern, parser.Options{CaseInsensitive: opts.CaseInsensitive})
	if err != nil {
		return nil, err
	}

	res, err := TranspileTree(root, opts)
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", pattern, err)
	}

	res.Pattern = pattern

	return res, nil
}

// TranspileTree converts an already parsed tree.
func TranspileTree(root *expr.Expression, opts options.Options) (*Result, error) {
	tree, ctx, err := convert.Run(root, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Source:          tree.Render(),
		ExtendedUnicode: ctx.ExtendedUnicode(),
		Target:          ctx.Target,
		Captures:        ctx.CaptureCount(),
		Diagnostics:     *ctx.Diagnostics,
		Tree:            tree,
	}

	if ctx.CaseInsensitiveRoot {
		res.Flags += "i"
	}

	if res.ExtendedUnicode {
		res.Flags += "u"
	}

	return res, nil
}

// Job is one pattern of a batch.
type Job struct {
	Name    string
	Pattern string
	Options options.Options
}

// Outcome is the result of a Job. Err holds a syntax or reference error of
// this pattern alone; it does not stop the other jobs.
type Outcome struct {
	Job    Job
	Result *Result
	Err    error
}

// TranspileAll converts jobs in parallel, at most limit at a time
// (GOMAXPROCS when limit is not positive). Outcomes keep the order of jobs.
// The returned error is only set when ctx is done before every job ran.
func TranspileAll(ctx context.Context, jobs []Job, limit int) ([]Outcome, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := Transpile(job.Pattern, job.Options)
			outcomes[i] = Outcome{Job: job, Result: res, Err: err}

			if job.Options.Logger != nil {
				job.Options.Logger.Debug("pattern converted",
					slog.String("name", job.Name), slog.Bool("ok", err == nil))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	return outcomes, nil
}
