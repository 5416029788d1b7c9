// Command regex-transpiler converts Onigmo/Ruby style regular expressions
// into ECMAScript patterns for a chosen feature level.
//
// Usage:
//
//	regex-transpiler convert '(?<w>hi)\k<w>' --target es2009
//	regex-transpiler batch patterns.yaml -o report.yaml --module patterns.js
//	regex-transpiler inspect '\h+(?i:ab)'
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"regex-transpiler/internal/logging"
	"regex-transpiler/options"
)

const version = "0.1.0"

// ErrDiagnostics is returned in strict mode when a conversion was lossy.
var ErrDiagnostics = errors.New("conversion produced diagnostics")

// CLI defines the command-line interface.
type CLI struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level."`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format."`

	Convert ConvertCmd `cmd:"" help:"Convert a single pattern"`
	Batch   BatchCmd   `cmd:"" help:"Convert the patterns of a YAML batch file"`
	Inspect InspectCmd `cmd:"" help:"Show the parsed and the converted tree of a pattern"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// app is the runtime environment handed to every command.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// TargetFlags are the conversion options shared by commands.
type TargetFlags struct {
	Target     string `short:"t" default:"ES2018" help:"Target feature level (ES2009, ES2015, ES2018)."`
	Unicode    string `short:"u" default:"auto" enum:"auto,on,off" help:"Extended unicode flag."`
	IgnoreCase bool   `short:"i" help:"Treat the pattern as case-insensitive."`
}

func (f *TargetFlags) options(logger *slog.Logger) (options.Options, error) {
	target, err := options.ParseTarget(f.Target)
	if err != nil {
		return options.Options{}, err
	}

	unicode, err := options.ParseUnicodeMode(f.Unicode)
	if err != nil {
		return options.Options{}, err
	}

	opts := options.Options{Target: target, Unicode: unicode, CaseInsensitive: f.IgnoreCase, Logger: logger}

	return opts, opts.Validate()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.stdout, "regex-transpiler version %s\n", version)
	return nil
}

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("regex-transpiler"),
		kong.Description("Convert Onigmo/Ruby regular expressions to ECMAScript"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logger, err := logging.InitLogger(os.Stderr, logging.Level(cli.LogLevel), logging.Format(cli.LogFormat))
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&app{stdout: os.Stdout, stderr: os.Stderr, logger: logger})
	ctx.FatalIfErrorf(err)
}
