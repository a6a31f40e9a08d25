// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// Macro is jasper's arguments-not-evaluated, result-evaluated, closure type.
// A macro returns code which is then evaluated in the caller's scope.
type Macro Closure

// The macro type is a cell.

// Equal returns true if the cell c is the same macro as a.
func (a *Macro) Equal(c cell.T) bool {
	p, ok := c.(*Macro)
	return ok && p == a
}

// Name returns the name of the macro type.
func (a *Macro) Name() string {
	return "macro"
}

// Literal returns a printable representation of the macro a.
func (a *Macro) Literal() string {
	return a.Closure().literal(a.Name())
}

// Methods specific to macro.

// Closure returns the macro a's underlying closure.
func (a *Macro) Closure() *Closure {
	return (*Closure)(a)
}

var _ Procedure = &Macro{}
