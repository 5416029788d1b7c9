package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"regex-transpiler/expr"
	"regex-transpiler/internal/parser"
	"regex-transpiler/transpile"
)

// InspectCmd prints the parsed source tree and the converted output tree.
type InspectCmd struct {
	TargetFlags

	Pattern string `arg:"" help:"Source pattern."`
	Raw     bool   `help:"Dump the parsed tree with all fields."`
}

func (c *InspectCmd) Run(a *app) error {
	opts, err := c.options(a.logger)
	if err != nil {
		return err
	}

	root, err := parser.Parse(c.Pattern, parser.Options{CaseInsensitive: opts.CaseInsensitive})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "source:")

	if c.Raw {
		spew.Fdump(a.stdout, root)
	} else {
		dumpExpression(a.stdout, root, 1)
	}

	res, err := transpile.TranspileTree(root, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "output:")
	fmt.Fprint(a.stdout, res.Tree.Dump())
	fmt.Fprintf(a.stdout, "pattern: %s\nflags: %q\ncaptures: %d\n", res.Source, res.Flags, res.Captures)

	for _, d := range res.Diagnostics.All() {
		fmt.Fprintf(a.stdout, "%s: %s\n", d.Severity, d)
	}

	return nil
}

func dumpExpression(w io.Writer, e *expr.Expression, depth int) {
	var flags []string
	if e.CaseInsensitive {
		flags = append(flags, "i")
	}

	if e.Multiline {
		flags = append(flags, "m")
	}

	line := fmt.Sprintf("%s%s %q", strings.Repeat("  ", depth), e.Describe(), e.Text)
	if e.IsQuantified() {
		line += " " + e.Quantifier.Text
	}

	if e.IsCapture() {
		line += fmt.Sprintf(" #%d", e.Number)
	}

	if len(flags) > 0 {
		line += " (" + strings.Join(flags, "") + ")"
	}

	fmt.Fprintln(w, line)

	for _, ch := range e.Children {
		dumpExpression(w, ch, depth+1)
	}
}
