package fincalc

import "math"

// ProjectedYear is a single year of a cash flow projection.
type ProjectedYear struct {
	Year     int
	CashFlow Money
}

// Projection is the result of growing an initial cash flow over a number
// of years at a constant rate.
type Projection struct {
	Years   []ProjectedYear
	Total   Money
	Average Money
	CAGR    Percent
}

// ProjectCashFlows grows the initial cash flow at the given annual rate
// over the requested number of years: CF_y = initial × (1+g)^y.
func ProjectCashFlows(initial Money, growth Rate, years int) (Projection, error) {
	if years <= 0 {
		return Projection{}, domainErrorf("projection years must be positive, got %d", years)
	}
	if !growth.Valid() {
		return Projection{}, domainErrorf("growth rate %v must be above -1", float64(growth))
	}

	cur := initial.Currency()
	p := Projection{Years: make([]ProjectedYear, 0, years)}
	total := M(0, cur)
	for y := 1; y <= years; y++ {
		cf := M(initial.AsFloat()*math.Pow(1+float64(growth), float64(y)), cur)
		p.Years = append(p.Years, ProjectedYear{Year: y, CashFlow: cf})
		total = total.Add(cf)
	}
	p.Total = total
	p.Average = total.Div(Q(years))

	cagr, err := CAGR(initial, p.Years[years-1].CashFlow, years)
	if err != nil {
		return Projection{}, err
	}
	p.CAGR = cagr.Percent()
	return p, nil
}

// CAGR returns the compound annual growth rate from a beginning to an
// ending value over the given number of periods.
func CAGR(beginning, ending Money, periods int) (Rate, error) {
	if periods <= 0 {
		return 0, domainErrorf("CAGR periods must be positive, got %d", periods)
	}
	begin := beginning.AsFloat()
	end := ending.AsFloat()
	if begin <= 0 || end <= 0 {
		return 0, domainErrorf("CAGR requires positive beginning and ending values")
	}
	return Rate(math.Pow(end/begin, 1/float64(periods)) - 1), nil
}
