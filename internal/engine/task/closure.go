// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/scope"
	"github.com/michaelmacinnis/jasper/internal/interface/text"
	"github.com/michaelmacinnis/jasper/internal/type/env"
	"github.com/michaelmacinnis/jasper/internal/type/list"
	"github.com/michaelmacinnis/jasper/internal/type/null"
)

// Rest marks the parameter that collects any remaining arguments.
const Rest = "&rest"

// Op performs a routine. The scope s is the caller's scope.
type Op func(t *T, c *Closure, s scope.T, args []cell.T) (cell.T, error)

// Closure underlies the method, syntax, and macro types.
type Closure struct {
	Body   []cell.T // Body of the routine.
	Label  string   // Name used when tracing.
	Op              // What to do when called.
	Params []string // Param labels.
	Scope  scope.T  // Where the routine was defined.
}

// Procedure is implemented by every callable type.
type Procedure interface {
	cell.T

	Closure() *Closure
}

// Native creates a closure for a routine implemented in Go.
func Native(label string, op Op) *Closure {
	return &Closure{Label: label, Op: op}
}

// User creates a closure for a routine defined in jasper.
// The params cell must be a list of names. The Rest marker may
// appear once, and must be followed by exactly one name.
func User(label string, params cell.T, body []cell.T, s scope.T) (*Closure, error) {
	labels, err := parameters(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	return &Closure{
		Body:   body,
		Label:  label,
		Op:     apply,
		Params: labels,
		Scope:  s,
	}, nil
}

func (c *Closure) literal(kind string) string {
	return "#<" + kind + " " + c.Label + ">"
}

// apply invokes a user-defined routine in a fresh scope enclosed by
// the scope where the routine was defined.
func apply(t *T, c *Closure, _ scope.T, args []cell.T) (cell.T, error) {
	s := env.New(c.Scope)

	bind(s, c.Params, args)

	return t.EvalSequence(c.Body, s)
}

func bind(s scope.T, params []string, args []cell.T) {
	for i, k := range params {
		if k == Rest {
			remaining := []cell.T{}
			if i < len(args) {
				remaining = slices.Clone(args[i:])
			}

			s.Define(params[i+1], list.New(remaining...))

			return
		}

		v := null.Undefined
		if i < len(args) {
			v = args[i]
		}

		s.Define(k, v)
	}
}

// name returns the name c refers to. Atoms and strings (quoted names
// built by macros) can be names.
func name(c cell.T) (string, bool) {
	return text.Value(c)
}

func parameters(c cell.T) ([]string, error) {
	if !list.Is(c) {
		return nil, fmt.Errorf(
			"%w: expected a parameter list, got %s",
			failure.ErrArityOrShape, c.Name(),
		)
	}

	labels := []string{}

	for _, e := range list.To(c).Elements() {
		k, ok := name(e)
		if !ok {
			return nil, fmt.Errorf(
				"%w: parameter names must be atoms, got %s",
				failure.ErrArityOrShape, e.Name(),
			)
		}

		labels = append(labels, k)
	}

	i := slices.Index(labels, Rest)
	if i >= 0 && (i != len(labels)-2 || labels[i+1] == Rest) {
		return nil, fmt.Errorf(
			"%w: %s must be followed by exactly one name",
			failure.ErrArityOrShape, Rest,
		)
	}

	return labels, nil
}
