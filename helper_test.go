package fincalc

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// investmentSeries is the reference project used across NPV/IRR tests:
// a 10k outlay recovered over four years.
func investmentSeries() CashFlowSeries {
	return NewCashFlowSeries("USD", -10000, 3000, 4000, 5000, 2000)
}

// parBond is the reference bond: $1000 face, 5% coupon, 10 years,
// semi-annual coupons.
func parBond() Bond {
	return Bond{FaceValue: USD(1000), CouponRate: 0.05, Years: 10, PaymentsPerYear: 2}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
