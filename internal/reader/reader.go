// Released under an MIT license. See LICENSE.

// Package reader turns jasper source text into parsed forms.
package reader

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/reader/lexer"
	"github.com/michaelmacinnis/jasper/internal/reader/parser"
)

// Read tokenizes and parses text, returning every top-level form.
// Name labels the source in error messages. On error no forms are returned.
func Read(name, text string) ([]cell.T, error) {
	l := lexer.New(name)
	l.Scan(text)

	forms := []cell.T{}

	err := parser.New(func(c cell.T) {
		forms = append(forms, c)
	}, l.Token).Parse()
	if err != nil {
		return nil, err
	}

	return forms, nil
}
