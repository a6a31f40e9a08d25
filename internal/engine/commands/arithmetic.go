// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/jasper/internal/common"
	"github.com/michaelmacinnis/jasper/internal/common/validate"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/number"
	"github.com/michaelmacinnis/jasper/internal/interface/text"
	"github.com/michaelmacinnis/jasper/internal/type/num"
	"github.com/michaelmacinnis/jasper/internal/type/str"
)

// add sums its arguments. If any argument is text, the result is
// the concatenation of every argument's display form instead.
func add(args []cell.T) (cell.T, error) {
	for _, c := range args {
		if _, ok := text.Value(c); ok {
			return concatenate(args), nil
		}
	}

	sum := 0.0

	for _, c := range args {
		f, err := number.Value(c)
		if err != nil {
			return nil, err
		}

		sum += f
	}

	return num.New(sum), nil
}

func concatenate(args []cell.T) cell.T {
	var b strings.Builder

	for _, c := range args {
		b.WriteString(common.String(c))
	}

	return str.New(b.String())
}

func div(args []cell.T) (cell.T, error) {
	v, rest, err := validate.Variadic("/", args, 1, 1)
	if err != nil {
		return nil, err
	}

	quotient, err := number.Value(v[0])
	if err != nil {
		return nil, err
	}

	if len(rest) == 0 {
		return num.New(1 / quotient), nil
	}

	for _, c := range rest {
		f, err := number.Value(c)
		if err != nil {
			return nil, err
		}

		quotient /= f
	}

	return num.New(quotient), nil
}

func mul(args []cell.T) (cell.T, error) {
	product := 1.0

	for _, c := range args {
		f, err := number.Value(c)
		if err != nil {
			return nil, err
		}

		product *= f
	}

	return num.New(product), nil
}

// sub subtracts every argument after the first from the first.
// With a single argument it negates. With none it returns zero.
func sub(args []cell.T) (cell.T, error) {
	if len(args) == 0 {
		return num.New(0), nil
	}

	difference, err := number.Value(args[0])
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return num.New(-difference), nil
	}

	for _, c := range args[1:] {
		f, err := number.Value(c)
		if err != nil {
			return nil, err
		}

		difference -= f
	}

	return num.New(difference), nil
}
