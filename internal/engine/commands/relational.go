// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"math"
	"strings"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/common/validate"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/number"
	"github.com/michaelmacinnis/jasper/internal/interface/text"
	"github.com/michaelmacinnis/jasper/internal/type/boolean"
)

func eq(args []cell.T) (cell.T, error) {
	v, rest, err := validate.Variadic("==", args, 2, 2)
	if err != nil {
		return nil, err
	}

	if !v[0].Equal(v[1]) {
		return boolean.False, nil
	}

	for _, c := range rest {
		if !v[0].Equal(c) {
			return boolean.False, nil
		}
	}

	return boolean.True, nil
}

func ge(args []cell.T) (cell.T, error) {
	return chain(">=", args, func(n int) bool { return n >= 0 })
}

func gt(args []cell.T) (cell.T, error) {
	return chain(">", args, func(n int) bool { return n > 0 })
}

func le(args []cell.T) (cell.T, error) {
	return chain("<=", args, func(n int) bool { return n <= 0 })
}

func lt(args []cell.T) (cell.T, error) {
	return chain("<", args, func(n int) bool { return n < 0 })
}

// chain returns true if holds is true for every adjacent pair in args.
func chain(label string, args []cell.T, holds func(int) bool) (cell.T, error) {
	if _, _, err := validate.Variadic(label, args, 2, 2); err != nil {
		return nil, err
	}

	for i := 1; i < len(args); i++ {
		n, ordered, err := order(args[i-1], args[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}

		if !ordered || !holds(n) {
			return boolean.False, nil
		}
	}

	return boolean.True, nil
}

// order compares two strings lexically or two numbers numerically.
// NaN is unordered: no comparison involving it holds.
func order(a, b cell.T) (int, bool, error) {
	x, xok := text.Value(a)
	y, yok := text.Value(b)

	if xok && yok {
		return strings.Compare(x, y), true, nil
	}

	if xok != yok {
		return 0, false, fmt.Errorf("%w: cannot compare %s with %s", failure.ErrWrongType, a.Name(), b.Name())
	}

	f, err := number.Value(a)
	if err != nil {
		return 0, false, err
	}

	g, err := number.Value(b)
	if err != nil {
		return 0, false, err
	}

	switch {
	case math.IsNaN(f) || math.IsNaN(g):
		return 0, false, nil
	case f < g:
		return -1, true, nil
	case f > g:
		return 1, true, nil
	}

	return 0, true, nil
}
