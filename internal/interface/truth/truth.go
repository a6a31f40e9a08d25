// Released under an MIT license. See LICENSE.

// Package truth defines the interface for jasper types that have a truth value.
package truth

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// T (truth) is anything that evaluates to a true or false value.
type T interface {
	Bool() bool
}

// Value returns the truth value for a cell. Cells that do not say
// otherwise are true.
func Value(c cell.T) bool {
	if c == nil {
		return false
	}

	b, ok := c.(T)
	if !ok {
		return true
	}

	return b.Bool()
}
