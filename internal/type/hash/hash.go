// Released under an MIT license. See LICENSE.

// Package hash provides jasper's name to value mapping type.
package hash

import (
	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/reference"
	"github.com/michaelmacinnis/jasper/internal/type/slot"
)

// T (hash) maps names to values.
type T struct {
	m map[string]reference.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]reference.T{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *T) Get(k string) reference.T {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Names returns the names in the hash h in sorted order.
func (h *T) Names() []string {
	names := make([]string, 0, len(h.m))
	for k := range h.m {
		names = append(names, k)
	}

	slices.Sort(names)

	return names
}

// Set associates the name k with the cell v in the hash h.
func (h *T) Set(k string, v cell.T) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}
