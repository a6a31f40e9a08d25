// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the jasper language.
//
// The jasper lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk "Lexical
// Scanning in Go". See https://talks.golang.org/2011/lex.slide for more
// information.
//
// There are only four kinds of token: an open paren, a close paren, a
// double-quoted string (quotes retained), and a bareword which is any run
// of characters that are not whitespace or parens. Barewords are not
// classified here; the evaluator decides what an atom means.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/jasper/internal/reader/token"
	"github.com/michaelmacinnis/jasper/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes  string     // Buffer being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	source loc.T      // Location of the current byte.
	start  loc.T      // Location of the current token's first byte.
	state  action     // Current action.
	tokens []*token.T // Tokens waiting to be consumed.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Scan passes a text buffer to the lexer for scanning. Text is appended
// to anything not yet scanned.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens drains the lexer and returns every remaining token.
func (l *T) Tokens() []*token.T {
	var ts []*token.T

	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens = append(l.tokens, token.New(c, l.Text(), l.start))
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

func delimiter(r rune) bool {
	return r == eof || r == '(' || r == ')' || unicode.IsSpace(r)
}

// T states.

func scanBareword(l *T) action {
	for {
		r, w := l.peek()
		if delimiter(r) {
			break
		}

		l.accept(r, w)
	}

	l.emit(token.Bareword)

	return skipWhitespace
}

func scanDoubleQuoted(l *T) action {
	// Find the closing quote, on this line, before consuming anything.
	// Without one, this is just a bareword that happens to start with
	// a quote.
	closed := false

	for _, r := range l.bytes[l.index:] {
		if r == '"' {
			closed = true
		}

		if r == '"' || r == '\n' {
			break
		}
	}

	if !closed {
		return scanBareword
	}

	for l.next() != '"' { //nolint:revive
	}

	l.emit(token.DoubleQuoted)

	return skipWhitespace
}

func scanToken(l *T) action {
	switch r := l.next(); r {
	case '(', ')':
		l.emit(token.Class(r))

		return skipWhitespace
	case '"':
		return scanDoubleQuoted
	}

	return scanBareword
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case unicode.IsSpace(r):
			l.accept(r, w)
		default:
			l.skip()

			return scanToken
		}
	}
}
