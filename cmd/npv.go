package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// npvCmd holds the flags for the 'npv' subcommand.
type npvCmd struct {
	rate     float64
	currency string
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "discount a cash flow series (NPV, IRR, payback)" }
func (*npvCmd) Usage() string {
	return `ifc npv -r <rate%> [-c <currency>] -- <cashflows>

  Discounts a comma-separated cash flow series at the given rate and
  reports NPV, IRR and payback period. The first flow is conventionally
  the initial (negative) outlay.

Usage Examples:
$ ifc npv -r 10 -- -10000,3000,4000,5000,2000

`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "r", 10, "Discount rate, in percent")
	f.StringVar(&c.currency, "c", "USD", "Currency of the cash flows")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := parseCashFlows(c.currency, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := renderer.NewNPVReport(series, rateOf(c.rate))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NPVMarkdown(report))
	return subcommands.ExitSuccess
}
