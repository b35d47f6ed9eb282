package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/google/subcommands"
)

// waccCmd holds the flags for the 'wacc' subcommand.
type waccCmd struct {
	costOfEquity float64
	costOfDebt   float64
	taxRate      float64
	equity       float64
	debt         float64
	currency     string
}

func (*waccCmd) Name() string     { return "wacc" }
func (*waccCmd) Synopsis() string { return "compute the weighted average cost of capital" }
func (*waccCmd) Usage() string {
	return `ifc wacc -equity <value> -debt <value> -ce <rate%> -cd <rate%> -tax <rate%>

  Computes the WACC from the market values of equity and debt, with the
  debt leg tax-shielded.

Usage Examples:
$ ifc wacc -equity 800 -debt 200 -ce 12 -cd 6 -tax 25

`
}

func (c *waccCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.costOfEquity, "ce", 10, "Cost of equity, in percent")
	f.Float64Var(&c.costOfDebt, "cd", 5, "Cost of debt, in percent")
	f.Float64Var(&c.taxRate, "tax", 25, "Corporate tax rate, in percent")
	f.Float64Var(&c.equity, "equity", 0, "Market value of equity")
	f.Float64Var(&c.debt, "debt", 0, "Market value of debt")
	f.StringVar(&c.currency, "c", "USD", "Currency of the capital values")
}

func (c *waccCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	wacc, err := fincalc.WACC(
		rateOf(c.costOfEquity), rateOf(c.costOfDebt), rateOf(c.taxRate),
		fincalc.M(c.equity, c.currency), fincalc.M(c.debt, c.currency),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("WACC: %s\n", wacc.Percent())
	return subcommands.ExitSuccess
}

// capmCmd holds the flags for the 'capm' subcommand.
type capmCmd struct {
	riskFree float64
	beta     float64
	market   float64
}

func (*capmCmd) Name() string     { return "capm" }
func (*capmCmd) Synopsis() string { return "compute the cost of equity (CAPM)" }
func (*capmCmd) Usage() string {
	return `ifc capm -rf <rate%> -beta <beta> -market <rate%>

  Computes the cost of equity under the capital asset pricing model:
  risk free rate plus beta times the market risk premium.

Usage Examples:
$ ifc capm -rf 3 -beta 1.2 -market 8

`
}

func (c *capmCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.riskFree, "rf", 3, "Risk-free rate, in percent")
	f.Float64Var(&c.beta, "beta", 1, "Stock beta")
	f.Float64Var(&c.market, "market", 8, "Expected market return, in percent")
}

func (c *capmCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cost := fincalc.CAPM(rateOf(c.riskFree), c.beta, rateOf(c.market))
	fmt.Printf("Cost of equity: %s\n", cost.Percent())
	return subcommands.ExitSuccess
}
