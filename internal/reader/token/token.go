// Released under an MIT license. See LICENSE.

// Package token provides the tokens produced by the jasper lexer.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/jasper/internal/type/loc"
)

// Class is the type of token. Single character tokens are their own class.
type Class rune

// Token classes.
const (
	Error Class = -(iota + 1)
	Bareword
	DoubleQuoted
)

// T (token) is a lexical item returned by the lexer.
type T struct {
	class  Class
	source loc.T
	value  string
}

// New creates a new token.
func New(class Class, value string, source loc.T) *T {
	return &T{
		class:  class,
		source: source,
		value:  value,
	}
}

// Is returns true if the token's class is one of the classes passed.
func (t *T) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the location of the token.
func (t *T) Source() loc.T {
	return t.source
}

// String returns a printable representation of the token.
func (t *T) String() string {
	return t.class.String() + " " + strconv.Quote(t.value) + " @ " + t.source.String()
}

// Value returns the text of the token.
func (t *T) Value() string {
	return t.value
}

// String returns a printable name for the class c.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Bareword:
		return "Bareword"
	case DoubleQuoted:
		return "DoubleQuoted"
	}

	return strconv.QuoteRune(rune(c))
}
