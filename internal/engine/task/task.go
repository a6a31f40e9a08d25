// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate jasper code.
//
// Evaluation is a plain recursive walk over parsed forms. Lists are
// applications, atoms are literals or symbols, and everything else
// evaluates to itself. Procedures come in three kinds: methods get
// evaluated arguments, syntax gets the raw forms, and macros get the
// raw forms and have their result evaluated again in the caller's scope.
package task

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/scope"
	"github.com/michaelmacinnis/jasper/internal/type/atom"
	"github.com/michaelmacinnis/jasper/internal/type/list"
	"github.com/michaelmacinnis/jasper/internal/type/null"
	"github.com/michaelmacinnis/jasper/internal/type/str"
)

// DefaultDepth is the default limit on how deeply evaluation may nest.
const DefaultDepth = 10000

// Host is a function the embedding program makes available through the
// host escape. It receives the evaluated arguments that follow its name.
type Host func(args []cell.T) (cell.T, error)

// T (task) evaluates jasper code. A task is not safe for concurrent use.
type T struct {
	debug  bool
	depth  int
	hosts  map[string]Host
	limit  int
	log    *zap.SugaredLogger
	output io.Writer
	root   scope.T
}

// New creates a new task that evaluates code against root.
func New(root scope.T, output io.Writer, log *zap.SugaredLogger) *T {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &T{
		hosts:  map[string]Host{},
		limit:  DefaultDepth,
		log:    log,
		output: output,
		root:   root,
	}
}

// Debug reports whether call tracing is enabled.
func (t *T) Debug() bool {
	return t.debug
}

// SetDebug enables or disables call tracing.
func (t *T) SetDebug(enabled bool) {
	t.debug = enabled
}

// SetDepth sets the limit on how deeply evaluation may nest.
func (t *T) SetDepth(limit int) {
	if limit > 0 {
		t.limit = limit
	}
}

// SetHost registers fn under name for use by the host escape.
func (t *T) SetHost(name string, fn Host) {
	t.hosts[name] = fn
}

// Root returns the scope the task was created with.
func (t *T) Root() scope.T {
	return t.root
}

// Eval evaluates the cell c in the scope s.
func (t *T) Eval(c cell.T, s scope.T) (cell.T, error) {
	t.depth++
	defer func() { t.depth-- }()

	if t.depth > t.limit {
		return nil, fmt.Errorf("%w: evaluation nested deeper than %d", failure.ErrStackExhausted, t.limit)
	}

	switch c := c.(type) {
	case nil:
		return null.Null, nil
	case *list.T:
		return t.form(c.Elements(), s)
	case *atom.T:
		return t.atom(c.String(), s)
	case *str.T:
		// Strings appear in code built by macros, usually from quoted
		// literals like 'if. They mean what the same atom would mean.
		return t.atom(c.String(), s)
	}

	// Numbers, booleans, null, undefined, and procedures.
	return c, nil
}

// EvalSequence evaluates each cell in cs in order in the scope s and
// returns the last result. An empty sequence evaluates to null.
func (t *T) EvalSequence(cs []cell.T, s scope.T) (cell.T, error) {
	var (
		err error
		v   = null.Null
	)

	for _, c := range cs {
		v, err = t.Eval(c, s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (t *T) trace(msg string, kv ...interface{}) {
	if t.debug {
		t.log.Debugw(msg, kv...)
	}
}

func render(cs []cell.T) string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = literal.String(c)
	}

	return strings.Join(s, " ")
}
