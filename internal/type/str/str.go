// Released under an MIT license. See LICENSE.

// Package str provides jasper's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/text"
	"github.com/michaelmacinnis/jasper/internal/interface/truth"
)

const name = "string"

// T (string) wraps Go's string type.
type T string

// New creates a new string cell.
func New(v string) cell.T {
	s := T(v)
	return &s
}

// The string type is a cell.

// Equal returns true if the cell c is a string or atom with the same text.
func (s *T) Equal(c cell.T) bool {
	v, ok := text.Value(c)
	return ok && s.Text() == v
}

// Name returns the name of the string type.
func (s *T) Name() string {
	return name
}

// The string type is a boolean.

// Bool returns the boolean value of the string s.
func (s *T) Bool() bool {
	return s.String() != ""
}

// The string type has a literal representation.

// Literal returns the literal representation of the string s.
func (s *T) Literal() string {
	return strconv.Quote(string(*s))
}

// The string type is a stringer.

// String returns the text of the string s.
func (s *T) String() string {
	return string(*s)
}

// The string type is text.

// Text returns the text of the string s.
func (s *T) Text() string {
	return string(*s)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise is panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The string type is a cell.
	_ = cell.T(&t)

	// The string type has a literal representation.
	_ = literal.T(&t)

	// The string type has a truth value.
	_ = truth.T(&t)

	// The string type is text.
	_ = text.T(&t)
}
