package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

// evalCmd holds the flags for the 'eval' subcommand.
type evalCmd struct {
	radians bool
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "evaluate a scientific expression" }
func (*evalCmd) Usage() string {
	return `ifc eval [-rad] <expression>

  Evaluates a scientific expression: arithmetic, parentheses, constants
  pi and e, and the usual scientific functions (sin, cos, ln, sqrt,
  factorial, ...). Trigonometry uses degrees unless -rad is given.

Usage Examples:
$ ifc eval "sqrt(16) + sin(90)"

`
}

func (c *evalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.radians, "rad", false, "Use radians for trigonometric functions")
}

func (c *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no expression given")
		return subcommands.ExitUsageError
	}
	expression := strings.Join(f.Args(), " ")

	calc := fincalc.NewSciCalc()
	if c.radians {
		calc.SetAngleMode(fincalc.Radians)
	}

	result, err := calc.Evaluate(expression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(formatResult(result))
	return subcommands.ExitSuccess
}

// formatResult trims a float to a plain display string, switching to
// scientific notation for very large or very small magnitudes.
func formatResult(v float64) string {
	a := v
	if a < 0 {
		a = -a
	}
	if a != 0 && (a >= 1e10 || a < 1e-4) {
		return strconv.FormatFloat(v, 'e', 6, 64)
	}
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
