// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"
	"unicode"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/scope"
	"github.com/michaelmacinnis/jasper/internal/type/boolean"
	"github.com/michaelmacinnis/jasper/internal/type/list"
	"github.com/michaelmacinnis/jasper/internal/type/null"
	"github.com/michaelmacinnis/jasper/internal/type/num"
	"github.com/michaelmacinnis/jasper/internal/type/str"
)

// form evaluates the elements of a list.
func (t *T) form(elements []cell.T, s scope.T) (cell.T, error) {
	if len(elements) == 0 || empty(elements[0]) {
		return null.Null, nil
	}

	// A lone nested form passes through: ((f x)) is (f x).
	if len(elements) == 1 && list.Is(elements[0]) {
		return t.Eval(elements[0], s)
	}

	return t.application(elements[0], elements[1:], s)
}

func (t *T) application(operator cell.T, args []cell.T, s scope.T) (cell.T, error) {
	p, label, err := t.resolve(operator, s)
	if err != nil {
		return nil, err
	}

	switch p := p.(type) {
	case *Method:
		evaluated := make([]cell.T, len(args))

		for i, a := range args {
			v, err := t.Eval(a, s)
			if err != nil {
				return nil, err
			}

			evaluated[i] = v
		}

		return t.call(label, p.Closure(), s, evaluated)
	case *Syntax:
		return t.call(label, p.Closure(), s, args)
	case *Macro:
		expansion, err := t.call(label, p.Closure(), s, args)
		if err != nil {
			return nil, err
		}

		return t.Eval(expansion, s)
	}

	return nil, fmt.Errorf("%w: %s", failure.ErrNotProcedure, label)
}

func (t *T) call(label string, c *Closure, s scope.T, args []cell.T) (cell.T, error) {
	if t.debug {
		t.trace("funcall", "name", label, "args", render(args))
	}

	v, err := c.Op(t, c, s, args)
	if err != nil {
		return nil, err
	}

	if t.debug {
		t.trace("result", "name", label, "value", literal.String(v))
	}

	return v, nil
}

// resolve finds the procedure named by the operator of an application.
func (t *T) resolve(operator cell.T, s scope.T) (Procedure, string, error) {
	var (
		label = literal.String(operator)
		v     cell.T
	)

	if k, ok := name(operator); ok {
		label = k

		r := s.Lookup(k)
		if r == nil {
			return nil, label, fmt.Errorf("%w: %s", failure.ErrUndefinedForm, k)
		}

		v = r.Get()
	} else if list.Is(operator) {
		var err error

		v, err = t.Eval(operator, s)
		if err != nil {
			return nil, label, err
		}
	} else {
		v = operator
	}

	p, ok := v.(Procedure)
	if !ok {
		return nil, label, fmt.Errorf("%w: %s is a %s", failure.ErrNotProcedure, label, v.Name())
	}

	return p, label, nil
}

// atom classifies and evaluates the text of an atom.
func (t *T) atom(text string, s scope.T) (cell.T, error) {
	if text == "" {
		return null.Null, nil
	}

	switch {
	case numeric(text):
		n, err := num.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a number", failure.ErrMalformedLiteral, text)
		}

		return n, nil
	case text[0] == '"':
		if len(text) < 2 || text[len(text)-1] != '"' {
			return nil, fmt.Errorf("%w: unterminated string %s", failure.ErrMalformedLiteral, text)
		}

		decoded, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", failure.ErrMalformedLiteral, text, err)
		}

		return str.New(decoded), nil
	case text == "true":
		return boolean.True, nil
	case text == "false":
		return boolean.False, nil
	case text == "null":
		return null.Null, nil
	case text == "undefined":
		return null.Undefined, nil
	case text[0] == '\'':
		return str.New(text[1:]), nil
	}

	r := s.Lookup(text)
	if r == nil {
		return nil, fmt.Errorf("%w: %s", failure.ErrUndefinedSymbol, text)
	}

	return r.Get(), nil
}

func empty(c cell.T) bool {
	return list.IsEmpty(c) || null.Is(c)
}

// numeric returns true if text looks like a number: a digit, optionally
// preceded by a sign and/or a decimal point.
func numeric(text string) bool {
	rs := []rune(text)

	if len(rs) > 1 && (rs[0] == '-' || rs[0] == '+') {
		rs = rs[1:]
	}

	if len(rs) > 1 && rs[0] == '.' {
		rs = rs[1:]
	}

	return unicode.IsDigit(rs[0])
}
