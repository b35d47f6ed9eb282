package fincalc

import "math"

// Bond describes a fixed-coupon bond by its contractual terms.
type Bond struct {
	FaceValue       Money
	CouponRate      Rate // annual coupon rate
	Years           int  // years to maturity
	PaymentsPerYear int  // coupon payments per year, 2 for semi-annual
}

// BondPricing holds the price of a bond at a given yield together with its
// companion metrics.
type BondPricing struct {
	Price        Money
	PVCoupons    Money
	PVFaceValue  Money
	AnnualCoupon Money
	CurrentYield Percent
	Duration     float64 // Macaulay duration, in years
}

func (b Bond) validate() error {
	if b.Years <= 0 {
		return domainErrorf("years to maturity must be positive, got %d", b.Years)
	}
	if b.PaymentsPerYear <= 0 {
		return domainErrorf("payments per year must be positive, got %d", b.PaymentsPerYear)
	}
	return nil
}

// Price values the bond at the given required annual yield: the coupon
// annuity plus the face value, both discounted per period at
// yield/PaymentsPerYear over Years×PaymentsPerYear periods. Duration is
// the present-value weighted average time to each payment, in years.
func (b Bond) Price(yield Rate) (BondPricing, error) {
	if err := b.validate(); err != nil {
		return BondPricing{}, err
	}
	periods := b.Years * b.PaymentsPerYear
	periodYield := float64(yield) / float64(b.PaymentsPerYear)
	if periodYield <= -1 {
		return BondPricing{}, domainErrorf("periodic yield %v must be above -1", periodYield)
	}

	face := b.FaceValue.AsFloat()
	coupon := face * float64(b.CouponRate) / float64(b.PaymentsPerYear)

	var pvCoupons float64
	if periodYield == 0 {
		pvCoupons = coupon * float64(periods)
	} else {
		pvCoupons = coupon * (1 - math.Pow(1+periodYield, -float64(periods))) / periodYield
	}
	pvFace := face / math.Pow(1+periodYield, float64(periods))
	price := pvCoupons + pvFace

	// Macaulay duration: each payment's time, weighted by its PV share.
	var weightedTime float64
	for t := 1; t <= periods; t++ {
		cashFlow := coupon
		if t == periods {
			cashFlow += face
		}
		pv := cashFlow / math.Pow(1+periodYield, float64(t))
		weightedTime += float64(t) / float64(b.PaymentsPerYear) * pv
	}

	cur := b.FaceValue.Currency()
	return BondPricing{
		Price:        M(price, cur),
		PVCoupons:    M(pvCoupons, cur),
		PVFaceValue:  M(pvFace, cur),
		AnnualCoupon: M(coupon*float64(b.PaymentsPerYear), cur),
		CurrentYield: Percent(100 * coupon * float64(b.PaymentsPerYear) / price),
		Duration:     weightedTime / price,
	}, nil
}

// YieldToMaturity solves for the annual yield at which the bond's price
// equals the market price, starting from the stated coupon rate. The
// periodic discounting happens inside Price, so the converged rate is the
// annualized yield (periodic yield × payments per year) directly.
func (b Bond) YieldToMaturity(marketPrice Money, cfg SolverConfig) (SolverResult, error) {
	if err := b.validate(); err != nil {
		return SolverResult{}, err
	}
	target := marketPrice.AsFloat()
	f := func(y Rate) float64 {
		pricing, err := b.Price(y)
		if err != nil {
			return math.NaN()
		}
		return pricing.Price.AsFloat() - target
	}
	return SolveRate(f, b.CouponRate, cfg)
}
