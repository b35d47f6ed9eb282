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

// bondFlags are the bond terms shared by the 'bond' and 'ytm' subcommands.
type bondFlags struct {
	face     float64
	coupon   float64
	years    int
	freq     int
	currency string
}

func (b *bondFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&b.face, "face", 1000, "Face (par) value of the bond")
	f.Float64Var(&b.coupon, "coupon", 5, "Annual coupon rate, in percent")
	f.IntVar(&b.years, "years", 10, "Years to maturity")
	f.IntVar(&b.freq, "freq", 2, "Coupon payments per year")
	f.StringVar(&b.currency, "c", "USD", "Currency of the bond")
}

func (b *bondFlags) bond() fincalc.Bond {
	return fincalc.Bond{
		FaceValue:       fincalc.M(b.face, b.currency),
		CouponRate:      rateOf(b.coupon),
		Years:           b.years,
		PaymentsPerYear: b.freq,
	}
}

// bondCmd holds the flags for the 'bond' subcommand.
type bondCmd struct {
	bondFlags
	yield float64
}

func (*bondCmd) Name() string     { return "bond" }
func (*bondCmd) Synopsis() string { return "price a bond at a required yield" }
func (*bondCmd) Usage() string {
	return `ifc bond -face <value> -coupon <rate%> -yield <rate%> -years <n> -freq <n>

  Prices a fixed-coupon bond at the required yield and reports the
  present value split, current yield, duration, and premium/discount/par
  status.

Usage Examples:
$ ifc bond -face 1000 -coupon 5 -yield 6 -years 10 -freq 2

`
}

func (c *bondCmd) SetFlags(f *flag.FlagSet) {
	c.bondFlags.SetFlags(f)
	f.Float64Var(&c.yield, "yield", 5, "Required yield, in percent")
}

func (c *bondCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := renderer.NewBondReport(c.bond(), rateOf(c.yield))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BondMarkdown(report))
	return subcommands.ExitSuccess
}

// ytmCmd holds the flags for the 'ytm' subcommand.
type ytmCmd struct {
	bondFlags
	price   float64
	maxIter int
	tol     float64
}

func (*ytmCmd) Name() string     { return "ytm" }
func (*ytmCmd) Synopsis() string { return "solve for a bond's yield to maturity" }
func (*ytmCmd) Usage() string {
	return `ifc ytm -face <value> -coupon <rate%> -years <n> -freq <n> -price <market price>

  Solves for the annualized yield at which the bond's discounted cash
  flows equal the market price, starting from the coupon rate.

Usage Examples:
$ ifc ytm -face 1000 -coupon 5 -years 10 -freq 2 -price 925.61

`
}

func (c *ytmCmd) SetFlags(f *flag.FlagSet) {
	c.bondFlags.SetFlags(f)
	f.Float64Var(&c.price, "price", 0, "Current market price of the bond")
	f.IntVar(&c.maxIter, "max-iterations", 0, "Solver iteration budget (0 for the default 1000)")
	f.Float64Var(&c.tol, "tolerance", 0, "Solver convergence tolerance (0 for the default 1e-6)")
}

func (c *ytmCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := fincalc.SolverConfig{MaxIterations: c.maxIter, Tolerance: c.tol}
	report, err := renderer.NewYTMReport(c.bond(), fincalc.M(c.price, c.currency), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to calculate YTM: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.YTMMarkdown(report))
	return subcommands.ExitSuccess
}
