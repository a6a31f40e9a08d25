// Released under an MIT license. See LICENSE.

// Package commands provides jasper's ordinary builtins. Each receives
// its arguments already evaluated.
package commands

import (
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
)

// Function is the signature shared by every ordinary builtin.
type Function = func(args []cell.T) (cell.T, error)

// Functions returns the ordinary builtins that need nothing but their arguments.
func Functions() map[string]Function {
	return map[string]Function{
		"*":      mul,
		"+":      add,
		"-":      sub,
		"/":      div,
		"<":      lt,
		"<=":     le,
		"==":     eq,
		">":      gt,
		">=":     ge,
		"append": appendLists,
		"car":    car,
		"cdr":    cdr,
		"cons":   cons,
		"empty?": isEmpty,
		"list":   makeList,
	}
}
