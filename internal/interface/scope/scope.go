// Released under an MIT license. See LICENSE.

// Package scope defines the interface for jasper's environments.
package scope

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/reference"
)

// T (scope) maps names to values and links to an enclosing scope.
type T interface {
	Enclosing() T

	// Assign mutates the nearest existing binding for k or, if there is
	// none anywhere in the chain, defines k in this scope.
	Assign(k string, v cell.T)

	// Define binds k in this scope, shadowing any enclosing binding.
	Define(k string, v cell.T)

	// Lookup walks the chain and returns the first binding for k or nil.
	Lookup(k string) reference.T
}
