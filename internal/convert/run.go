package convert

import (
	"log/slog"

	"regex-transpiler/expr"
	"regex-transpiler/node"
	"regex-transpiler/options"
)

// Run converts the tree under root. The returned context holds the final
// u flag, the capture renumbering and the diagnostics of the run.
func Run(root *expr.Expression, opts options.Options) (*node.Node, *Context, error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	ctx := NewContext(root, opts)

	tree, err := Dispatch(root, ctx)
	if err != nil {
		return nil, ctx, err
	}

	ctx.finish()
	ctx.Logger.Debug("conversion finished",
		slog.Int("captures", ctx.CaptureCount()),
		slog.Int("diagnostics", ctx.Diagnostics.Len()),
		slog.Bool("unicode", ctx.ExtendedUnicode()))

	return tree, ctx, nil
}
