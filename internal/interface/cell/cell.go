// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all jasper types.
package cell

// T (cell) is the basic unit of storage in jasper. Parsed code and runtime
// values are both cells.
type T interface {
	Equal(c T) bool
	Name() string
}
