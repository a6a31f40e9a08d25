// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the display value for a cell. Strings are shown without
// quotes; cells that are not stringers fall back to their literal form.
func String(c cell.T) string {
	b, ok := c.(Stringer)
	if !ok {
		return literal.String(c)
	}

	return b.String()
}
