// Released under an MIT license. See LICENSE.

// Package number defines the interface for jasper's numeric type.
package number

import (
	"fmt"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// T (number) is anything that can be treated as a number in jasper.
type T interface {
	Float() float64
}

// Value returns the float64 value for a cell, if possible.
func Value(c cell.T) (float64, error) {
	n, ok := c.(T)
	if !ok {
		name := "nil"
		if c != nil {
			name = c.Name()
		}

		return 0, fmt.Errorf("%w: %s cannot be used in a numeric context", failure.ErrWrongType, name)
	}

	return n.Float(), nil
}
