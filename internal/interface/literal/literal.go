// Released under an MIT license. See LICENSE.

// Package literal defines the interface for jasper types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// T (literal) is any type that can be expressed as a literal.
type T interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// Cells without a literal form are rendered as #<name>.
func String(c cell.T) string {
	if c == nil {
		return "#<nil>"
	}

	l, ok := c.(T)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
