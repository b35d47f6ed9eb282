package renderer

import (
	"fmt"

	"github.com/etnz/fincalc"
)

// BondReport holds a bond valuation at a required yield.
type BondReport struct {
	FaceValue  fincalc.Money   `json:"faceValue"`
	CouponRate fincalc.Percent `json:"couponRate"`
	Yield      fincalc.Percent `json:"yield"`
	Years      int             `json:"years"`
	Frequency  int             `json:"frequency"`

	Price        fincalc.Money   `json:"price"`
	PVCoupons    fincalc.Money   `json:"pvCoupons"`
	PVFaceValue  fincalc.Money   `json:"pvFaceValue"`
	AnnualCoupon fincalc.Money   `json:"annualCoupon"`
	CurrentYield fincalc.Percent `json:"currentYield"`
	Duration     string          `json:"duration"`

	// Status is Premium, Discount or Par relative to face value.
	Status string `json:"status"`
}

// NewBondReport prices the bond at the required yield and assembles the report.
func NewBondReport(bond fincalc.Bond, yield fincalc.Rate) (*BondReport, error) {
	pricing, err := bond.Price(yield)
	if err != nil {
		return nil, err
	}
	return &BondReport{
		FaceValue:    bond.FaceValue,
		CouponRate:   bond.CouponRate.Percent(),
		Yield:        yield.Percent(),
		Years:        bond.Years,
		Frequency:    bond.PaymentsPerYear,
		Price:        pricing.Price,
		PVCoupons:    pricing.PVCoupons,
		PVFaceValue:  pricing.PVFaceValue,
		AnnualCoupon: pricing.AnnualCoupon,
		CurrentYield: pricing.CurrentYield,
		Duration:     fmt.Sprintf("%.2f years", pricing.Duration),
		Status:       priceStatus(pricing.Price, bond.FaceValue),
	}, nil
}

func priceStatus(price, face fincalc.Money) string {
	switch {
	case price.GreaterThan(face):
		return "Premium"
	case price.LessThan(face):
		return "Discount"
	default:
		return "Par"
	}
}

// YTMReport holds a yield to maturity solution for a bond at a market price.
type YTMReport struct {
	FaceValue   fincalc.Money   `json:"faceValue"`
	CouponRate  fincalc.Percent `json:"couponRate"`
	Years       int             `json:"years"`
	Frequency   int             `json:"frequency"`
	MarketPrice fincalc.Money   `json:"marketPrice"`

	YTM        fincalc.Percent `json:"ytm"`
	Iterations int             `json:"iterations"`
	// Status compares the solved yield to the coupon rate.
	Status string `json:"status"`
}

// NewYTMReport solves for the bond's yield at the market price. Solver
// failures are returned to the caller: an unavailable YTM is the whole
// report, not a missing line.
func NewYTMReport(bond fincalc.Bond, marketPrice fincalc.Money, cfg fincalc.SolverConfig) (*YTMReport, error) {
	res, err := bond.YieldToMaturity(marketPrice, cfg)
	if err != nil {
		return nil, err
	}

	status := "trading at par"
	switch {
	case res.Rate > bond.CouponRate:
		status = "trading at a discount"
	case res.Rate < bond.CouponRate:
		status = "trading at a premium"
	}

	return &YTMReport{
		FaceValue:   bond.FaceValue,
		CouponRate:  bond.CouponRate.Percent(),
		Years:       bond.Years,
		Frequency:   bond.PaymentsPerYear,
		MarketPrice: marketPrice,
		YTM:         res.Rate.Percent(),
		Iterations:  res.Iterations,
		Status:      status,
	}, nil
}
