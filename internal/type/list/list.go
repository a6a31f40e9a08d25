// Released under an MIT license. See LICENSE.

// Package list provides jasper's list type.
//
// A list is both parsed code (a parenthesized form) and runtime data.
// Lists are never modified after they are created; operations that
// change a list return a new one.
package list

import (
	"strings"

	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
)

const name = "list"

// T (list) is an ordered sequence of cells.
type T []cell.T

// New creates a list composed of all of the elements in elements.
func New(elements ...cell.T) cell.T {
	l := T(elements)
	return &l
}

// Empty returns a new empty list.
func Empty() cell.T {
	return New()
}

// The list type is a cell.

// Equal returns true if c is a list with elements that are equal to l's.
func (l *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(*l) != len(*o) {
		return false
	}

	for i, e := range *l {
		if !e.Equal((*o)[i]) {
			return false
		}
	}

	return true
}

// Name returns the name for the list type.
func (l *T) Name() string {
	return name
}

// The list type has a literal representation.

// Literal returns the literal representation of the list l.
func (l *T) Literal() string {
	s := make([]string, len(*l))
	for i, e := range *l {
		s[i] = literal.String(e)
	}

	return "(" + strings.Join(s, " ") + ")"
}

// The list type is a stringer.

// String returns the text representation of the list l.
func (l *T) String() string {
	return l.Literal()
}

// Methods specific to list.

// Elements returns the elements of the list l.
func (l *T) Elements() []cell.T {
	return []cell.T(*l)
}

// Len returns the number of elements in the list l.
func (l *T) Len() int {
	return len(*l)
}

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// IsEmpty returns true if c is a list with no elements.
func IsEmpty(c cell.T) bool {
	return Is(c) && To(c).Len() == 0
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The list type is a cell.
	_ = cell.T(&t)

	// The list type has a literal representation.
	_ = literal.T(&t)
}
