package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	initial  float64
	growth   float64
	years    int
	currency string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a growing cash flow over several years" }
func (*projectCmd) Usage() string {
	return `ifc project -initial <amount> -g <growth%> -years <n> [-c <currency>]

  Grows an initial cash flow at a constant annual rate and reports each
  projected year, the total, the average, and the CAGR.

Usage Examples:
$ ifc project -initial 1000 -g 10 -years 5

`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "Initial cash flow")
	f.Float64Var(&c.growth, "g", 5, "Annual growth rate, in percent")
	f.IntVar(&c.years, "years", 5, "Number of years to project")
	f.StringVar(&c.currency, "c", "USD", "Currency of the cash flows")
}

func (c *projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := renderer.NewProjectionReport(fincalc.M(c.initial, c.currency), rateOf(c.growth), c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectionMarkdown(report))
	return subcommands.ExitSuccess
}
