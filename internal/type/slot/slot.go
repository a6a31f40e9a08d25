// Released under an MIT license. See LICENSE.

// Package slot provides jasper's variable type.
package slot

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/reference"
)

// T (slot) holds a cell value. Evaluation is single-threaded so,
// unlike a shell variable, a slot needs no lock.
type T struct {
	c cell.T
}

// New creates a new slot with the cell c.
func New(c cell.T) *T {
	return &T{c: c}
}

// Get returns the cell in slot s.
func (s *T) Get() cell.T {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *T) Set(c cell.T) {
	s.c = c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The slot type is a reference.
	_ = reference.T(&t)
}
