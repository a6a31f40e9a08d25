// Released under an MIT license. See LICENSE.

// Package num provides jasper's number type.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/interface/number"
	"github.com/michaelmacinnis/jasper/internal/interface/truth"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

// New creates a new num cell.
func New(f float64) cell.T {
	n := T(f)
	return &n
}

// Parse creates a new num cell from the text s. Integers may use
// the 0x, 0o and 0b prefixes.
func Parse(s string) (cell.T, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return New(f), nil
	}

	i, ierr := strconv.ParseInt(s, 0, 64)
	if ierr == nil {
		return New(float64(i)), nil
	}

	return nil, err
}

// The num type is a cell.

// Equal returns true if c is the same number as the num n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Name returns the name of the num type.
func (n *T) Name() string {
	return name
}

// The num type is a boolean.

// Bool returns false if the num n is zero or NaN.
func (n *T) Bool() bool {
	f := n.Float()
	return f != 0 && !math.IsNaN(f)
}

// The num type has a literal representation.

// Literal returns the literal representation of the num n.
func (n *T) Literal() string {
	return n.String()
}

// The num type is a number.

// Float returns the value of the num n as a float64.
func (n *T) Float() float64 {
	return float64(*n)
}

// The num type is a stringer.

// String returns the text of the num n.
func (n *T) String() string {
	f := n.Float()

	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
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

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The num type is a cell.
	_ = cell.T(&t)

	// The num type has a literal representation.
	_ = literal.T(&t)

	// The num type is a number.
	_ = number.T(&t)

	// The num type has a truth value.
	_ = truth.T(&t)
}
