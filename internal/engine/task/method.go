// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// Method is jasper's arguments-evaluated, closure type.
type Method Closure

// The method type is a cell.

// Equal returns true if the cell c is the same method as a.
func (a *Method) Equal(c cell.T) bool {
	p, ok := c.(*Method)
	return ok && p == a
}

// Name returns the name of the method type.
func (a *Method) Name() string {
	return "method"
}

// Literal returns a printable representation of the method a.
func (a *Method) Literal() string {
	return a.Closure().literal(a.Name())
}

// Methods specific to method.

// Closure returns the method a's underlying closure.
func (a *Method) Closure() *Closure {
	return (*Closure)(a)
}

var _ Procedure = &Method{}
