// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to jasper procedures.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// Variadic checks that actual has at least min elements. It returns the first
// max elements (or fewer, if there are fewer) and the remaining elements.
func Variadic(label string, actual []cell.T, min, max int) ([]cell.T, []cell.T, error) {
	if len(actual) < min {
		s := Count(min, "argument", "s")

		return nil, nil, fmt.Errorf(
			"%w: %s expected at least %s, passed %d",
			failure.ErrArityOrShape, label, s, len(actual),
		)
	}

	if len(actual) < max {
		max = len(actual)
	}

	return actual[:max], actual[max:], nil
}

// Fixed checks that actual has between min and max elements.
func Fixed(label string, actual []cell.T, min, max int) ([]cell.T, error) {
	expected, rest, err := Variadic(label, actual, min, max)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		s := Count(max, "argument", "s")
		if min != max {
			s = "at most " + s
		}

		return nil, fmt.Errorf(
			"%w: %s expected %s, passed %d",
			failure.ErrArityOrShape, label, s, len(actual),
		)
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
