// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for jasper source text.
package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/jasper/internal/engine/boot"
	"github.com/michaelmacinnis/jasper/internal/engine/task"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/reader"
	"github.com/michaelmacinnis/jasper/internal/type/env"
)

// T (engine) is a facade in front of the machinery for evaluating jasper code.
type T struct {
	root *env.T
	task *task.T
}

// Option configures an engine.
type Option func(*config)

type config struct {
	debug   bool
	depth   int
	hosts   map[string]task.Host
	log     *zap.SugaredLogger
	output  io.Writer
	prelude bool
}

// WithDebug sets the initial state of call tracing.
func WithDebug(enabled bool) Option {
	return func(c *config) {
		c.debug = enabled
	}
}

// WithDepth limits how deeply evaluation may nest.
func WithDepth(limit int) Option {
	return func(c *config) {
		c.depth = limit
	}
}

// WithHost registers fn for use by the host escape under name.
func WithHost(name string, fn task.Host) Option {
	return func(c *config) {
		c.hosts[name] = fn
	}
}

// WithLogger sets the logger that receives call traces.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithOutput sets the destination for puts. Without it output is discarded.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithoutPrelude skips the procedures and macros normally defined at start-up.
func WithoutPrelude() Option {
	return func(c *config) {
		c.prelude = false
	}
}

// New creates a new engine with the builtins, and unless told otherwise
// the prelude, defined in its root environment.
func New(opts ...Option) *T {
	c := &config{
		depth:   task.DefaultDepth,
		hosts:   map[string]task.Host{},
		output:  io.Discard,
		prelude: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	root := env.New(nil)
	task.Install(root)

	t := task.New(root, c.output, c.log)
	t.SetDepth(c.depth)

	for k, fn := range c.hosts {
		t.SetHost(k, fn)
	}

	e := &T{root: root, task: t}

	if c.prelude {
		if _, err := e.EvaluateNamed("boot", boot.Script()); err != nil {
			panic(err.Error())
		}
	}

	t.SetDebug(c.debug)

	return e
}

// Debug reports whether call tracing is enabled.
func (e *T) Debug() bool {
	return e.task.Debug()
}

// Evaluate reads and evaluates text, returning the value of the last form.
func (e *T) Evaluate(text string) (cell.T, error) {
	return e.EvaluateNamed("input", text)
}

// EvaluateNamed reads and evaluates text. Name labels the source in
// error messages. Text is read completely before anything is evaluated.
func (e *T) EvaluateNamed(name, text string) (v cell.T, err error) {
	forms, err := reader.Read(name, text)
	if err != nil {
		return nil, err
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		v = nil

		if rerr, ok := r.(error); ok {
			err = rerr
		} else {
			err = fmt.Errorf("%v", r)
		}
	}()

	return e.task.EvalSequence(forms, e.root)
}

// Names returns every name defined in the root environment.
func (e *T) Names() []string {
	return e.root.Visible()
}

// SetDebug enables or disables call tracing.
func (e *T) SetDebug(enabled bool) {
	e.task.SetDebug(enabled)
}
