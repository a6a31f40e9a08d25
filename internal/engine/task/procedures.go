// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelmacinnis/jasper/internal/common"
	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/common/validate"
	"github.com/michaelmacinnis/jasper/internal/engine/commands"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/scope"
	"github.com/michaelmacinnis/jasper/internal/interface/truth"
	"github.com/michaelmacinnis/jasper/internal/reader"
	"github.com/michaelmacinnis/jasper/internal/type/null"
	"github.com/michaelmacinnis/jasper/internal/type/str"
)

// Install defines jasper's builtins in s.
func Install(s scope.T) {
	for k, op := range syntax() {
		s.Define(k, (*Syntax)(Native(k, op)))
	}

	for k, op := range methods() {
		s.Define(k, (*Method)(Native(k, op)))
	}

	for k, fn := range commands.Functions() {
		s.Define(k, (*Method)(Native(k, wrap(fn))))
	}
}

func methods() map[string]Op {
	return map[string]Op{
		"debug":  debug,
		"gensym": gensym,
		"host":   host,
		"js":     host,
		"progn":  progn,
		"puts":   puts,
	}
}

func syntax() map[string]Op {
	return map[string]Op{
		"=":        define,
		"defmacro": defmacro,
		"if":       branch,
		"lambda":   lambda,
		"set!":     assign,
	}
}

func wrap(fn commands.Function) Op {
	return func(_ *T, _ *Closure, _ scope.T, args []cell.T) (cell.T, error) {
		return fn(args)
	}
}

// Special forms.

func assign(t *T, c *Closure, s scope.T, args []cell.T) (cell.T, error) {
	k, v, err := binding(t, c.Label, s, args)
	if err != nil {
		return nil, err
	}

	s.Assign(k, v)

	return v, nil
}

func branch(t *T, c *Closure, s scope.T, args []cell.T) (cell.T, error) {
	v, err := validate.Fixed(c.Label, args, 2, 3)
	if err != nil {
		return nil, err
	}

	test, err := t.Eval(v[0], s)
	if err != nil {
		return nil, err
	}

	if truth.Value(test) {
		return t.Eval(v[1], s)
	}

	if len(v) == 3 {
		return t.Eval(v[2], s)
	}

	return null.Null, nil
}

func defmacro(_ *T, c *Closure, s scope.T, args []cell.T) (cell.T, error) {
	v, body, err := validate.Variadic(c.Label, args, 2, 2)
	if err != nil {
		return nil, err
	}

	k, ok := name(v[0])
	if !ok {
		return nil, fmt.Errorf(
			"%w: %s expected a name, got %s",
			failure.ErrArityOrShape, c.Label, v[0].Name(),
		)
	}

	m, err := User(k, v[1], body, s)
	if err != nil {
		return nil, err
	}

	s.Define(k, (*Macro)(m))

	return null.Null, nil
}

func define(t *T, c *Closure, s scope.T, args []cell.T) (cell.T, error) {
	k, v, err := binding(t, c.Label, s, args)
	if err != nil {
		return nil, err
	}

	s.Define(k, v)

	return null.Undefined, nil
}

func lambda(_ *T, c *Closure, s scope.T, args []cell.T) (cell.T, error) {
	v, body, err := validate.Variadic(c.Label, args, 1, 1)
	if err != nil {
		return nil, err
	}

	m, err := User(c.Label, v[0], body, s)
	if err != nil {
		return nil, err
	}

	return (*Method)(m), nil
}

// binding validates the (name expr) arguments shared by = and set!
// and evaluates expr.
func binding(t *T, label string, s scope.T, args []cell.T) (string, cell.T, error) {
	v, err := validate.Fixed(label, args, 2, 2)
	if err != nil {
		return "", nil, err
	}

	k, ok := name(v[0])
	if !ok {
		return "", nil, fmt.Errorf(
			"%w: %s expected a name, got %s",
			failure.ErrArityOrShape, label, v[0].Name(),
		)
	}

	value, err := t.Eval(v[1], s)
	if err != nil {
		return "", nil, err
	}

	return k, value, nil
}

// Methods.

func debug(t *T, _ *Closure, _ scope.T, args []cell.T) (cell.T, error) {
	t.trace("debug", "value", display(args))

	return null.Undefined, nil
}

func gensym(_ *T, c *Closure, _ scope.T, args []cell.T) (cell.T, error) {
	v, err := validate.Fixed(c.Label, args, 0, 1)
	if err != nil {
		return nil, err
	}

	prefix := "g"
	if len(v) == 1 {
		prefix = common.String(v[0])
	}

	return str.New(prefix + "-" + uuid.NewString()), nil
}

// host escapes to the embedding program. A registered hook is called
// with the remaining arguments. Otherwise the string is jasper source
// and is evaluated in the root scope.
func host(t *T, c *Closure, _ scope.T, args []cell.T) (cell.T, error) {
	v, rest, err := validate.Variadic(c.Label, args, 1, 1)
	if err != nil {
		return nil, err
	}

	text := common.String(v[0])

	if fn, ok := t.hosts[text]; ok {
		return fn(rest)
	}

	forms, err := reader.Read(c.Label, text)
	if err != nil {
		return nil, err
	}

	return t.EvalSequence(forms, t.root)
}

func progn(_ *T, _ *Closure, _ scope.T, args []cell.T) (cell.T, error) {
	if len(args) == 0 {
		return null.Null, nil
	}

	return args[len(args)-1], nil
}

func puts(t *T, _ *Closure, _ scope.T, args []cell.T) (cell.T, error) {
	if t.output == nil {
		return null.Undefined, nil
	}

	_, err := io.WriteString(t.output, display(args)+"\n")
	if err != nil {
		return nil, err
	}

	return null.Undefined, nil
}

func display(cs []cell.T) string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = common.String(c)
	}

	return strings.Join(s, " ")
}
