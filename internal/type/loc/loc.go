// Released under an MIT license. See LICENSE.

// Package loc provides a type for tracking source locations.
package loc

import "strconv"

// T (loc) identifies a position in a named source.
type T struct {
	Char int
	Line int
	Name string
}

// String returns the location in name:line:char form.
func (l T) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
