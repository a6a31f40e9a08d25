// Released under an MIT license. See LICENSE.

// Package text defines the interface for jasper's textual types.
//
// Atoms and strings are both text. An atom passed unevaluated to a macro
// and the quoted literal with the same characters are interchangeable.
package text

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// T (text) is anything that is a sequence of characters.
type T interface {
	Text() string
}

// Value returns the text of c and true, or "" and false if c is not text.
func Value(c cell.T) (string, bool) {
	t, ok := c.(T)
	if !ok {
		return "", false
	}

	return t.Text(), true
}
