package fincalc

import (
	"errors"
	"testing"
)

func TestProjectCashFlows(t *testing.T) {
	// $1000 growing 10% a year over 5 years.
	p, err := ProjectCashFlows(USD(1000), 0.10, 5)
	if err != nil {
		t.Fatalf("ProjectCashFlows() failed: %v", err)
	}

	wantYears := []float64{1100, 1210, 1331, 1464.10, 1610.51}
	if len(p.Years) != len(wantYears) {
		t.Fatalf("projection has %d years, want %d", len(p.Years), len(wantYears))
	}
	for i, want := range wantYears {
		got := p.Years[i]
		if got.Year != i+1 {
			t.Errorf("Years[%d].Year = %d, want %d", i, got.Year, i+1)
		}
		if abs(got.CashFlow.AsFloat()-want) > 0.01 {
			t.Errorf("Years[%d].CashFlow = %v, want %.2f", i, got.CashFlow, want)
		}
	}
	if abs(p.Total.AsFloat()-6715.61) > 0.01 {
		t.Errorf("Total = %v, want $6,715.61", p.Total)
	}
	if abs(p.Average.AsFloat()-1343.12) > 0.01 {
		t.Errorf("Average = %v, want $1,343.12", p.Average)
	}
	// CAGR of a constant-growth projection is the growth rate itself.
	if !p.CAGR.Equal(Percent(10.0)) {
		t.Errorf("CAGR = %v, want 10.00%%", p.CAGR)
	}
}

func TestProjectCashFlows_Errors(t *testing.T) {
	if _, err := ProjectCashFlows(USD(1000), 0.10, 0); err == nil {
		t.Error("ProjectCashFlows() with zero years succeeded, want error")
	}
	if _, err := ProjectCashFlows(USD(1000), -1.5, 5); err == nil {
		t.Error("ProjectCashFlows() with rate below -1 succeeded, want error")
	}
}

func TestCAGR(t *testing.T) {
	got, err := CAGR(USD(1000), USD(2000), 5)
	if err != nil {
		t.Fatalf("CAGR() failed: %v", err)
	}
	if !got.Percent().Equal(Percent(14.8698)) {
		t.Errorf("CAGR() = %v, want 14.87%%", got.Percent())
	}
}

func TestCAGR_Errors(t *testing.T) {
	var derr *DomainError
	if _, err := CAGR(USD(0), USD(2000), 5); !errors.As(err, &derr) {
		t.Errorf("CAGR(zero begin) error = %v, want *DomainError", err)
	}
	if _, err := CAGR(USD(1000), USD(-5), 5); !errors.As(err, &derr) {
		t.Errorf("CAGR(negative end) error = %v, want *DomainError", err)
	}
	if _, err := CAGR(USD(1000), USD(2000), 0); !errors.As(err, &derr) {
		t.Errorf("CAGR(zero periods) error = %v, want *DomainError", err)
	}
}
