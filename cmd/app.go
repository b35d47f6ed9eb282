// Package cmd implements the CLI application of the investment finance
// calculator.
package cmd

import (
	"fmt"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them all, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&npvCmd{},
	&dcfCmd{},
	&waccCmd{},
	&capmCmd{},
	&projectCmd{},
	&bondCmd{},
	&ytmCmd{},
	&evalCmd{},
	&topicCmd{},
}

// rateOf converts a flag entered as a percentage (10 for 10%) into the
// fractional rate the calculation layer expects.
func rateOf(percent float64) fincalc.Rate { return fincalc.Rate(percent / 100) }

// parseCashFlows parses the command arguments as cash flow entries.
// Flows can be given as a single comma-separated argument or spread over
// several arguments.
func parseCashFlows(currency string, args []string) (fincalc.CashFlowSeries, error) {
	if len(args) == 0 {
		return fincalc.CashFlowSeries{}, fmt.Errorf("no cash flows given, expected a comma-separated list like -10000,3000,4000")
	}
	var joined string
	for i, a := range args {
		if i > 0 {
			joined += ","
		}
		joined += a
	}
	return fincalc.ParseCashFlowSeries(currency, joined)
}
