package renderer

import "github.com/etnz/fincalc"

// ProjectionReport holds a multi-year cash flow projection.
type ProjectionReport struct {
	Initial fincalc.Money   `json:"initial"`
	Growth  fincalc.Percent `json:"growth"`

	Years []ProjectionRow `json:"years"`

	Total   fincalc.Money   `json:"total"`
	Average fincalc.Money   `json:"average"`
	CAGR    fincalc.Percent `json:"cagr"`
}

// ProjectionRow is a single projected year.
type ProjectionRow struct {
	Year     int           `json:"year"`
	CashFlow fincalc.Money `json:"cashFlow"`
}

// NewProjectionReport grows the initial cash flow and assembles the report.
func NewProjectionReport(initial fincalc.Money, growth fincalc.Rate, years int) (*ProjectionReport, error) {
	p, err := fincalc.ProjectCashFlows(initial, growth, years)
	if err != nil {
		return nil, err
	}

	r := &ProjectionReport{
		Initial: initial,
		Growth:  growth.Percent(),
		Total:   p.Total,
		Average: p.Average,
		CAGR:    p.CAGR,
	}
	for _, y := range p.Years {
		r.Years = append(r.Years, ProjectionRow{Year: y.Year, CashFlow: y.CashFlow})
	}
	return r, nil
}
