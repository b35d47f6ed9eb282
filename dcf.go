package fincalc

import "math"

// DCFResult holds the components of a discounted cash flow valuation.
type DCFResult struct {
	PVCashFlows     Money   // present value of the projected flows
	TerminalValue   Money   // Gordon growth terminal value at the horizon
	PVTerminalValue Money   // terminal value discounted to present
	EnterpriseValue Money   // PVCashFlows + PVTerminalValue
	Breakdown       []Money // per-year present values, first year discounted once
}

// DCFValuation values a stream of projected free cash flows. The flows are
// discounted from period 1, and the terminal value grows the last flow at
// the terminal growth rate in perpetuity: CF_n(1+g)/(r-g).
//
// The discount rate must strictly exceed the terminal growth rate,
// otherwise the perpetuity is unbounded and a DomainError is returned.
func DCFValuation(freeCashFlows CashFlowSeries, terminalGrowth, discountRate Rate) (DCFResult, error) {
	if freeCashFlows.Len() == 0 {
		return DCFResult{}, domainErrorf("empty free cash flow projection")
	}
	if !discountRate.Valid() {
		return DCFResult{}, domainErrorf("discount rate %v must be above -1", float64(discountRate))
	}
	if discountRate <= terminalGrowth {
		return DCFResult{}, domainErrorf("discount rate %v must exceed terminal growth %v", float64(discountRate), float64(terminalGrowth))
	}

	cur := freeCashFlows.Currency()
	r := float64(discountRate)
	g := float64(terminalGrowth)
	flows := freeCashFlows.floats()

	var pvSum float64
	breakdown := make([]Money, len(flows))
	for i, cf := range flows {
		pv := cf / math.Pow(1+r, float64(i+1))
		breakdown[i] = M(pv, cur)
		pvSum += pv
	}

	terminalCF := flows[len(flows)-1] * (1 + g)
	terminalValue := terminalCF / (r - g)
	pvTerminal := terminalValue / math.Pow(1+r, float64(len(flows)))

	return DCFResult{
		PVCashFlows:     M(pvSum, cur),
		TerminalValue:   M(terminalValue, cur),
		PVTerminalValue: M(pvTerminal, cur),
		EnterpriseValue: M(pvSum+pvTerminal, cur),
		Breakdown:       breakdown,
	}, nil
}

// WACC computes the weighted average cost of capital from the market
// values of equity and debt, with the debt leg tax-shielded.
func WACC(costOfEquity, costOfDebt Rate, taxRate Rate, equityValue, debtValue Money) (Rate, error) {
	total := equityValue.Add(debtValue)
	if total.IsZero() {
		return 0, domainErrorf("total capital is zero")
	}
	equityWeight := equityValue.AsFloat() / total.AsFloat()
	debtWeight := debtValue.AsFloat() / total.AsFloat()
	return Rate(equityWeight*float64(costOfEquity) + debtWeight*float64(costOfDebt)*(1-float64(taxRate))), nil
}

// CAPM returns the cost of equity under the capital asset pricing model.
func CAPM(riskFree Rate, beta float64, marketReturn Rate) Rate {
	return riskFree + Rate(beta*float64(marketReturn-riskFree))
}
