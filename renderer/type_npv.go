package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/fincalc"
)

// CashFlowRow is a single period of a cash flow table.
type CashFlowRow struct {
	Period int           `json:"period"`
	Amount fincalc.Money `json:"amount"`
}

// NPVReport holds the NPV analysis of a cash flow series: the discounted
// value at the requested rate, and the IRR and payback period when they
// exist. A solver or domain failure suppresses the corresponding line
// instead of failing the whole report, as the calculator always did.
type NPVReport struct {
	Rate      fincalc.Percent `json:"rate"`
	CashFlows []CashFlowRow   `json:"cashFlows"`
	Total     fincalc.Money   `json:"total"`
	NPV       fincalc.Money   `json:"npv"`

	HasIRR        bool            `json:"hasIRR"`
	IRR           fincalc.Percent `json:"irr,omitempty"`
	IRRIterations int             `json:"irrIterations,omitempty"`
	IRRFailure    string          `json:"irrFailure,omitempty"`

	HasPayback bool   `json:"hasPayback"`
	Payback    string `json:"payback,omitempty"`
}

// NewNPVReport computes the NPV analysis of the series at the given
// discount rate. Only the NPV itself can fail the report; IRR and payback
// failures are recorded and rendered as unavailable.
func NewNPVReport(series fincalc.CashFlowSeries, rate fincalc.Rate) (*NPVReport, error) {
	npv, err := fincalc.NPV(rate, series)
	if err != nil {
		return nil, err
	}

	r := &NPVReport{
		Rate:  rate.Percent(),
		Total: series.Total(),
		NPV:   npv,
	}
	for i := 0; i < series.Len(); i++ {
		r.CashFlows = append(r.CashFlows, CashFlowRow{Period: i, Amount: series.Amount(i)})
	}

	if res, err := fincalc.IRR(series, fincalc.SolverConfig{}); err != nil {
		r.IRRFailure = irrFailureMessage(err)
	} else {
		r.HasIRR = true
		r.IRR = res.Rate.Percent()
		r.IRRIterations = res.Iterations
	}

	if payback, err := fincalc.PaybackPeriod(series); err == nil {
		r.HasPayback = true
		r.Payback = fmt.Sprintf("%.1f years", payback)
	}
	return r, nil
}

// irrFailureMessage maps solver failures to the user-facing explanation.
func irrFailureMessage(err error) string {
	var derr *fincalc.DomainError
	switch {
	case errors.As(err, &derr):
		return "cash flows may not have a valid solution"
	case errors.Is(err, fincalc.ErrNoConvergence), errors.Is(err, fincalc.ErrVanishingDerivative):
		return "the rate search did not converge"
	default:
		return err.Error()
	}
}
