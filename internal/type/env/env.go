// Released under an MIT license. See LICENSE.

// Package env provides jasper's environment type.
//
// Environments form a tree through their enclosing links. The root is
// created once by the engine and holds the standard library. Every
// procedure invocation gets a fresh child of the procedure's defining
// environment, which lives for as long as some closure refers to it.
package env

import (
	"golang.org/x/exp/slices"

	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/reference"
	"github.com/michaelmacinnis/jasper/internal/interface/scope"
	"github.com/michaelmacinnis/jasper/internal/type/hash"
)

const name = "environment"

// T (env) maps names to values.
type T struct {
	previous scope.T
	*bindings
}

// We alias hash.T to bindings so that when embedded it is easy to refer to
// it by name. Embedding bindings also lets us access its methods directly.
type bindings = hash.T

// New creates a new env enclosed by previous. Previous is nil for the root.
func New(previous scope.T) *T {
	return &T{
		previous: previous,
		bindings: hash.New(),
	}
}

// The env type is a cell.

// Equal returns true if c is the same env as e.
func (e *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	return ok && e == o
}

// Name returns the type name for the env e.
func (e *T) Name() string {
	return name
}

// The env type is a scope.

// Assign mutates the nearest binding of k or, if k is not bound
// anywhere in the chain, binds k in e.
func (e *T) Assign(k string, v cell.T) {
	if r := e.Lookup(k); r != nil {
		r.Set(v)

		return
	}

	e.Define(k, v)
}

// Define associates the name k with the cell v in the env e.
func (e *T) Define(k string, v cell.T) {
	e.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *T) Enclosing() scope.T {
	return e.previous
}

// Lookup retrieves the reference associated with the name k in the env e
// or the nearest enclosing scope that defines k.
func (e *T) Lookup(k string) reference.T {
	if e == nil {
		return nil
	}

	if v := e.Get(k); v != nil {
		return v
	}

	if e.previous != nil {
		return e.previous.Lookup(k)
	}

	return nil
}

// Visible returns every name visible from e, nearest first, without duplicates.
func (e *T) Visible() []string {
	var names []string

	for s := scope.T(e); s != nil; s = s.Enclosing() {
		o, ok := s.(*T)
		if !ok {
			break
		}

		for _, k := range o.Names() {
			if !slices.Contains(names, k) {
				names = append(names, k)
			}
		}
	}

	return names
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T

	// The env type is a cell.
	_ = cell.T(&t)

	// The env type is a scope.
	_ = scope.T(&t)
}
