// Released under an MIT license. See LICENSE.

// Package atom provides jasper's unclassified atom type.
//
// The reader produces atoms for barewords and double-quoted strings. An
// atom's meaning (number, string, boolean, null, quoted literal or symbol)
// is decided by the evaluator each time the atom is evaluated.
package atom

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/text"
)

const name = "atom"

// T (atom) wraps the text of a token.
type T string

// New creates a new atom cell.
func New(v string) cell.T {
	a := T(v)
	return &a
}

// The atom type is a cell.

// Equal returns true if c is an atom or string with the same text.
func (a *T) Equal(c cell.T) bool {
	v, ok := text.Value(c)
	return ok && a.Text() == v
}

// Name returns the name of the atom type.
func (a *T) Name() string {
	return name
}

// The atom type has a literal representation.

// Literal returns the text of the atom a, as written.
func (a *T) Literal() string {
	return string(*a)
}

// The atom type is a stringer.

// String returns the text of the atom a.
func (a *T) String() string {
	return string(*a)
}

// The atom type is text.

// Text returns the text of the atom a.
func (a *T) Text() string {
	return string(*a)
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The atom type is a cell.
	_ = cell.T(&t)

	// The atom type has a literal representation.
	_ = literal.T(&t)

	// The atom type is text.
	_ = text.T(&t)
}
