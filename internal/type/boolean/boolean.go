// Released under an MIT license. See LICENSE.

// Package boolean provides jasper's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean cell for the bool b.
func Bool(b bool) cell.T {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *T) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *T) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *T) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *T) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
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

	panic("not a " + name)
}

func f() *T {
	v := T(false)

	return &v
}

func t() *T {
	v := T(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The boolean type is a cell.
	_ = cell.T(&t)

	// The boolean type has a literal representation.
	_ = literal.T(&t)

	// The boolean type has a truth value.
	_ = truth.T(&t)
}
