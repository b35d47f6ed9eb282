package fincalc

import "math"

// NPV computes the net present value of the series at the given periodic
// discount rate: Σ CF_t / (1+rate)^t, with the period-0 flow undiscounted.
func NPV(rate Rate, series CashFlowSeries) (Money, error) {
	if !rate.Valid() {
		return Money{}, domainErrorf("discount rate %v must be above -1", float64(rate))
	}
	return M(npv(float64(rate), series.floats()), series.Currency()), nil
}

func npv(rate float64, cashflows []float64) float64 {
	var sum float64
	for t, cf := range cashflows {
		sum += cf / math.Pow(1+rate, float64(t))
	}
	return sum
}

// IRRGuess is the default starting point for the IRR solver.
const IRRGuess Rate = 0.10

// IRR solves for the discount rate at which the series' NPV is zero,
// starting from IRRGuess. A series without a sign change has no root and
// fails with a DomainError before any iteration.
func IRR(series CashFlowSeries, cfg SolverConfig) (SolverResult, error) {
	if series.Len() == 0 {
		return SolverResult{}, domainErrorf("empty cash flow series")
	}
	if !series.HasSignChange() {
		return SolverResult{}, domainErrorf("cash flows never change sign, NPV has no root")
	}
	cashflows := series.floats()
	f := func(r Rate) float64 { return npv(float64(r), cashflows) }
	return SolveRate(f, IRRGuess, cfg)
}

// PaybackPeriod returns the number of periods until the cumulative cash
// flow recovers the initial outlay, interpolating linearly within the
// crossing period. The series must start with a negative outlay and must
// recover, otherwise a DomainError is returned.
func PaybackPeriod(series CashFlowSeries) (float64, error) {
	if series.Len() == 0 || !series.Amount(0).IsNegative() {
		return 0, domainErrorf("payback requires an initial negative outlay")
	}
	cashflows := series.floats()
	cumulative := cashflows[0]
	for i, cf := range cashflows[1:] {
		period := i + 1
		previous := cumulative
		cumulative += cf
		if cumulative >= 0 {
			if period == 1 {
				return 1, nil
			}
			return float64(period-1) + math.Abs(previous)/cf, nil
		}
	}
	return 0, domainErrorf("cash flows never recover the initial outlay")
}

// PresentValue discounts a single future amount back over n periods.
func PresentValue(future Money, rate Rate, periods int) (Money, error) {
	if !rate.Valid() {
		return Money{}, domainErrorf("discount rate %v must be above -1", float64(rate))
	}
	factor := math.Pow(1+float64(rate), float64(periods))
	return M(future.AsFloat()/factor, future.Currency()), nil
}

// FutureValue compounds a single present amount forward over n periods.
func FutureValue(present Money, rate Rate, periods int) (Money, error) {
	if !rate.Valid() {
		return Money{}, domainErrorf("rate %v must be above -1", float64(rate))
	}
	factor := math.Pow(1+float64(rate), float64(periods))
	return M(present.AsFloat()*factor, present.Currency()), nil
}
