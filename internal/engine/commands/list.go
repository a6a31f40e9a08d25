// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/common/validate"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/text"
	"github.com/michaelmacinnis/jasper/internal/type/boolean"
	"github.com/michaelmacinnis/jasper/internal/type/list"
	"github.com/michaelmacinnis/jasper/internal/type/null"
)

// elements returns the elements of c. Null and undefined are empty lists.
func elements(label string, c cell.T) ([]cell.T, error) {
	switch {
	case list.Is(c):
		return list.To(c).Elements(), nil
	case null.Is(c):
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s expected a list, passed %s", failure.ErrWrongType, label, c.Name())
}

func appendLists(args []cell.T) (cell.T, error) {
	joined := []cell.T{}

	for _, c := range args {
		e, err := elements("append", c)
		if err != nil {
			return nil, err
		}

		joined = append(joined, e...)
	}

	return list.New(joined...), nil
}

// car returns the first element of a list, or undefined if there isn't one.
func car(args []cell.T) (cell.T, error) {
	v, err := validate.Fixed("car", args, 1, 1)
	if err != nil {
		return nil, err
	}

	e, err := elements("car", v[0])
	if err != nil {
		return nil, err
	}

	if len(e) == 0 {
		return null.Undefined, nil
	}

	return e[0], nil
}

// cdr returns every element but the first. The cdr of an empty list is empty.
func cdr(args []cell.T) (cell.T, error) {
	v, err := validate.Fixed("cdr", args, 1, 1)
	if err != nil {
		return nil, err
	}

	e, err := elements("cdr", v[0])
	if err != nil {
		return nil, err
	}

	if len(e) == 0 {
		return list.Empty(), nil
	}

	return list.New(slices.Clone(e[1:])...), nil
}

func cons(args []cell.T) (cell.T, error) {
	v, err := validate.Fixed("cons", args, 2, 2)
	if err != nil {
		return nil, err
	}

	e, err := elements("cons", v[1])
	if err != nil {
		return nil, err
	}

	return list.New(slices.Insert(slices.Clone(e), 0, v[0])...), nil
}

// isEmpty is true for null, undefined, and zero-length lists and strings.
func isEmpty(args []cell.T) (cell.T, error) {
	v, err := validate.Fixed("empty?", args, 1, 1)
	if err != nil {
		return nil, err
	}

	c := v[0]

	switch {
	case null.Is(c):
		return boolean.True, nil
	case list.Is(c):
		return boolean.Bool(list.To(c).Len() == 0), nil
	}

	if s, ok := text.Value(c); ok {
		return boolean.Bool(s == ""), nil
	}

	return boolean.False, nil
}

func makeList(args []cell.T) (cell.T, error) {
	return list.New(slices.Clone(args)...), nil
}
