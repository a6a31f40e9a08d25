// Released under an MIT license. See LICENSE.

/*
Jasper is a small Lisp. Source is read completely and then evaluated
form by form against a single root environment:

	(defun square (x) (* x x))
	(map square (list 1 2 3))

Run a script with "jasper file.jr", evaluate an expression with
"jasper -c '(+ 1 2)'", or start an interactive prompt with "jasper".
*/
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/michaelmacinnis/jasper/internal/engine"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/system/options"
	"github.com/michaelmacinnis/jasper/internal/ui"
)

func main() {
	options.Parse()

	log, err := logger(options.LogLevel(), options.Debug())
	if err != nil {
		fmt.Fprintf(os.Stderr, "jasper: %v\n", err)
		os.Exit(1)
	}

	defer log.Sync() //nolint:errcheck

	undo := zap.ReplaceGlobals(log)
	defer undo()

	e := engine.New(
		engine.WithDebug(options.Debug()),
		engine.WithDepth(options.Depth()),
		engine.WithLogger(log.Sugar()),
		engine.WithOutput(os.Stdout),
	)

	err = run(e, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jasper: %v\n", err)
		log.Sync() //nolint:errcheck
		os.Exit(1)
	}
}

// logger builds a development logger writing to stderr. Call traces are
// logged at debug level so requesting them lowers the level if necessary.
func logger(level zapcore.Level, debug bool) (*zap.Logger, error) {
	if debug && level > zapcore.DebugLevel {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true

	return cfg.Build()
}

func run(e *engine.T, in io.Reader, out io.Writer) error {
	switch {
	case options.Command() != "":
		return command(e, options.Command(), out)
	case len(options.Scripts()) > 0:
		for _, path := range options.Scripts() {
			if err := script(e, path); err != nil {
				return err
			}
		}

		return nil
	case options.Interactive():
		return ui.Run(e)
	}

	return stdin(e, in)
}

// command evaluates text and prints the result.
func command(e *engine.T, text string, out io.Writer) error {
	v, err := e.EvaluateNamed("-c", text)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, literal.String(v))

	return err
}

// script evaluates the contents of the file at path.
func script(e *engine.T, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	zap.S().Debugw("running script", "path", path)

	_, err = e.EvaluateNamed(path, string(b))

	return err
}

func stdin(e *engine.T, in io.Reader) error {
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	_, err = e.EvaluateNamed("stdin", string(b))

	return err
}
