package renderer

import "github.com/etnz/fincalc"

// DCFReport holds the components of a discounted cash flow valuation for rendering.
type DCFReport struct {
	DiscountRate   fincalc.Percent `json:"discountRate"`
	TerminalGrowth fincalc.Percent `json:"terminalGrowth"`

	CashFlows []CashFlowRow `json:"cashFlows"` // per-year present values

	PVCashFlows     fincalc.Money `json:"pvCashFlows"`
	TerminalValue   fincalc.Money `json:"terminalValue"`
	PVTerminalValue fincalc.Money `json:"pvTerminalValue"`
	EnterpriseValue fincalc.Money `json:"enterpriseValue"`
}

// NewDCFReport values the projected free cash flows and assembles the report.
func NewDCFReport(flows fincalc.CashFlowSeries, terminalGrowth, discountRate fincalc.Rate) (*DCFReport, error) {
	result, err := fincalc.DCFValuation(flows, terminalGrowth, discountRate)
	if err != nil {
		return nil, err
	}

	r := &DCFReport{
		DiscountRate:    discountRate.Percent(),
		TerminalGrowth:  terminalGrowth.Percent(),
		PVCashFlows:     result.PVCashFlows,
		TerminalValue:   result.TerminalValue,
		PVTerminalValue: result.PVTerminalValue,
		EnterpriseValue: result.EnterpriseValue,
	}
	for i, pv := range result.Breakdown {
		// DCF flows are discounted from year 1.
		r.CashFlows = append(r.CashFlows, CashFlowRow{Period: i + 1, Amount: pv})
	}
	return r, nil
}
