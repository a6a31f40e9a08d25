// Released under an MIT license. See LICENSE.

// Package null provides jasper's null and undefined sentinels.
//
// Both sentinels are false and compare equal to each other. They differ
// only in how they are written.
package null

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/truth"
)

const name = "null"

// T (null) is the type of the null and undefined sentinels.
type T struct {
	text string
}

//nolint:gochecknoglobals
var (
	// Null is the explicit absence of a value.
	Null cell.T = &T{text: "null"}

	// Undefined is the value of an unbound parameter or a missing element.
	Undefined cell.T = &T{text: "undefined"}
)

// Bool returns false. Neither sentinel is true.
func (n *T) Bool() bool {
	return false
}

// Equal returns true if c is either sentinel.
func (n *T) Equal(c cell.T) bool {
	return Is(c)
}

// Literal returns the literal representation of the sentinel n.
func (n *T) Literal() string {
	return n.text
}

// Name returns the type name for the sentinel n.
func (n *T) Name() string {
	return name
}

// String returns the text of the sentinel n.
func (n *T) String() string {
	return n.text
}

// Is returns true if c is null or undefined.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The null type is a cell.
	_ = cell.T(&t)

	// The null type has a literal representation.
	_ = literal.T(&t)

	// The null type has a truth value.
	_ = truth.T(&t)
}
