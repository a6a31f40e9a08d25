// Released under an MIT license. See LICENSE.

// Package options parses jasper's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap/zapcore"
)

// Version is reported by --version.
const Version = "jasper 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	depth       int
	interactive bool
	level       zapcore.Level
	scripts     []string
	stdin       bool
	terminal    = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	usage = `jasper

Usage:
  jasper [--debug] [--log-level=LEVEL] [--depth=N] SCRIPT...
  jasper [--debug] [--log-level=LEVEL] [--depth=N] -c EXPR
  jasper [--debug] [--log-level=LEVEL] [--depth=N] [-s]
  jasper -h | --help
  jasper -v | --version

Arguments:
  SCRIPT  Path to a jasper script. Scripts share one environment.

Options:
  -c, --command=EXPR     Evaluate the specified expression and print the result.
  -d, --debug            Trace every procedure call.
  -l, --log-level=LEVEL  Minimum level for log output [default: info].
  -n, --depth=N          Limit on how deeply evaluation may nest [default: 10000].
  -s, --stdin            Read source from stdin.
  -h, --help             Display this help.
  -v, --version          Print jasper version.

If jasper's stdin is a TTY, and jasper was invoked with no script or
expression, an interactive prompt is started. Otherwise source is read
from stdin.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Debug reports whether call tracing was requested.
func Debug() bool {
	return debug
}

// Depth returns the evaluation depth limit.
func Depth() int {
	return depth
}

// Interactive reports whether jasper should prompt for input.
func Interactive() bool {
	return interactive
}

// LogLevel returns the minimum level for log output.
func LogLevel() zapcore.Level {
	return level
}

// Parse parses the command line. On a usage error, or when help or the
// version is requested, it prints a message and exits.
func Parse() {
	err := parse(os.Args[1:], docopt.PrintHelpAndExit)
	if err != nil {
		// Either the usage doc or a value failed to parse.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// Scripts returns the paths of the scripts to run, in order.
func Scripts() []string {
	return scripts
}

// Stdin reports whether source should be read from stdin.
func Stdin() bool {
	return stdin
}

func parse(argv []string, help func(error, string)) error {
	p := &docopt.Parser{HelpHandler: help}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	scripts, _ = opts["SCRIPT"].([]string)

	depth, err = opts.Int("--depth")
	if err != nil {
		return err
	}

	text, _ := opts.String("--log-level")

	err = level.UnmarshalText([]byte(text))
	if err != nil {
		return err
	}

	interactive = false
	stdin = false

	if command == "" && len(scripts) == 0 {
		stdin = true
		interactive = terminal()
	}

	return nil
}
