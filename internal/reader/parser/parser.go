// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the jasper language.
//
// The grammar is small:
//
//	<program> ::= <form>* .
//	<form>    ::= '(' <form>* ')' | Bareword | DoubleQuoted .
//
// Atoms are not interpreted here. Both barewords and double-quoted
// strings become atoms; the evaluator decides what they mean.
package parser

import (
	"fmt"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/reader/token"
	"github.com/michaelmacinnis/jasper/internal/type/atom"
	"github.com/michaelmacinnis/jasper/internal/type/list"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.T)    // Function to call to emit a parsed top-level form.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits top-level forms until there are no more
// tokens. It stops at the first error. Forms emitted before the error are
// complete.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		err = e
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.form())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <form> ::= '(' <form>* ')' | Bareword | DoubleQuoted .
func (p *T) form() cell.T {
	t := p.consume()

	switch {
	case t.Is('('):
		return p.list(t)
	case t.Is(')'):
		panic(failure.At(t.Source(), failure.ErrUnexpectedClose))
	}

	return atom.New(t.Value())
}

func (p *T) list(open *token.T) cell.T {
	var elements []cell.T

	for {
		t := p.peek()

		switch {
		case t == nil:
			err := fmt.Errorf("%w: '(' is never closed", failure.ErrUnterminatedForm)
			panic(failure.At(open.Source(), err))
		case t.Is(')'):
			p.consume()

			return list.New(elements...)
		}

		elements = append(elements, p.form())
	}
}
