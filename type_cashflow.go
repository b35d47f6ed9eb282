package fincalc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CashFlowSeries is an ordered sequence of signed monetary amounts indexed
// by period 0..n, all in the same currency. Period 0 is conventionally the
// initial outlay (negative). The series is immutable once built.
type CashFlowSeries struct {
	amounts []decimal.Decimal
	cur     string
}

// NewCashFlowSeries builds a series from amounts in major currency units.
func NewCashFlowSeries(currency string, amounts ...float64) CashFlowSeries {
	s := CashFlowSeries{cur: currency, amounts: make([]decimal.Decimal, 0, len(amounts))}
	for _, a := range amounts {
		s.amounts = append(s.amounts, decimal.NewFromFloat(a))
	}
	return s
}

// ParseCashFlowSeries parses a comma-separated list of amounts, the format
// the calculator accepts for cash-flow entry. Blank items are skipped so
// trailing commas are harmless.
func ParseCashFlowSeries(currency, text string) (CashFlowSeries, error) {
	s := CashFlowSeries{cur: currency}
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		d, err := decimal.NewFromString(item)
		if err != nil {
			return CashFlowSeries{}, fmt.Errorf("invalid cash flow %q: %w", item, err)
		}
		s.amounts = append(s.amounts, d)
	}
	return s, nil
}

// Len returns the number of periods in the series.
func (s CashFlowSeries) Len() int { return len(s.amounts) }

// Currency returns the series currency code.
func (s CashFlowSeries) Currency() string { return s.cur }

// Amount returns the cash flow of period i.
func (s CashFlowSeries) Amount(i int) Money { return Money{value: s.amounts[i], cur: s.cur} }

// Total returns the undiscounted sum of the series.
func (s CashFlowSeries) Total() Money {
	sum := decimal.Zero
	for _, a := range s.amounts {
		sum = sum.Add(a)
	}
	return Money{value: sum, cur: s.cur}
}

// HasSignChange reports whether the series contains both positive and
// negative amounts. Without a sign change the NPV never crosses zero and
// IRR is undefined.
func (s CashFlowSeries) HasSignChange() bool {
	var pos, neg bool
	for _, a := range s.amounts {
		switch {
		case a.IsPositive():
			pos = true
		case a.IsNegative():
			neg = true
		}
	}
	return pos && neg
}

// floats returns the amounts for the numerical kernels.
func (s CashFlowSeries) floats() []float64 {
	fs := make([]float64, len(s.amounts))
	for i, a := range s.amounts {
		fs[i] = a.InexactFloat64()
	}
	return fs
}
