package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// dcfCmd holds the flags for the 'dcf' subcommand.
type dcfCmd struct {
	wacc     float64
	growth   float64
	currency string
}

func (*dcfCmd) Name() string     { return "dcf" }
func (*dcfCmd) Synopsis() string { return "value projected free cash flows (DCF)" }
func (*dcfCmd) Usage() string {
	return `ifc dcf -wacc <rate%> -g <growth%> [-c <currency>] -- <cashflows>

  Values a stream of projected free cash flows: each year discounted at
  the WACC plus a Gordon growth terminal value. The discount rate must
  exceed the terminal growth rate.

Usage Examples:
$ ifc dcf -wacc 12 -g 3 -- 100,110,121,133

`
}

func (c *dcfCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.wacc, "wacc", 10, "Discount rate (WACC), in percent")
	f.Float64Var(&c.growth, "g", 2, "Terminal growth rate, in percent")
	f.StringVar(&c.currency, "c", "USD", "Currency of the cash flows")
}

func (c *dcfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := parseCashFlows(c.currency, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := renderer.NewDCFReport(flows, rateOf(c.growth), rateOf(c.wacc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DCFMarkdown(report))
	return subcommands.ExitSuccess
}
