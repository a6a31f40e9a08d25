// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// Syntax is jasper's arguments-not-evaluated, closure type.
type Syntax Closure

// The syntax type is a cell.

// Equal returns true if the cell c is the same syntax as a.
func (a *Syntax) Equal(c cell.T) bool {
	p, ok := c.(*Syntax)
	return ok && p == a
}

// Name returns the name of the syntax type.
func (a *Syntax) Name() string {
	return "syntax"
}

// Literal returns a printable representation of the syntax a.
func (a *Syntax) Literal() string {
	return a.Closure().literal(a.Name())
}

// Methods specific to syntax.

// Closure returns the syntax a's underlying closure.
func (a *Syntax) Closure() *Closure {
	return (*Closure)(a)
}

var _ Procedure = &Syntax{}
