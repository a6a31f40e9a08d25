// Released under an MIT license. See LICENSE.

// Package failure defines the errors reported by the jasper reader and evaluator.
//
// Errors are always wrapped with more detail. Use errors.Is to test for a
// particular kind.
package failure

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/jasper/internal/type/loc"
)

//nolint:gochecknoglobals
var (
	// ErrArityOrShape is returned when a form has too few arguments
	// or arguments of the wrong shape.
	ErrArityOrShape = errors.New("wrong number or shape of arguments")

	// ErrMalformedLiteral is returned for number- or string-shaped atoms that do not parse.
	ErrMalformedLiteral = errors.New("malformed literal")

	// ErrNotProcedure is returned when the operator of an application is not a procedure.
	ErrNotProcedure = errors.New("not a procedure")

	// ErrStackExhausted is returned when evaluation nests deeper than allowed.
	ErrStackExhausted = errors.New("stack exhausted")

	ErrUndefinedForm    = errors.New("undefined form")
	ErrUndefinedSymbol  = errors.New("undefined symbol")
	ErrUnexpectedClose  = errors.New("unexpected ')'")
	ErrUnterminatedForm = errors.New("unterminated form")
	ErrWrongType        = errors.New("wrong type")
)

// At wraps err with the source location l.
func At(l loc.T, err error) error {
	return fmt.Errorf("%s: %w", l.String(), err)
}
