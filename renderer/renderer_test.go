package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fincalc"
)

func usd(v float64) fincalc.Money { return fincalc.M(v, "USD") }

func TestNPVMarkdown(t *testing.T) {
	series := fincalc.NewCashFlowSeries("USD", -10000, 3000, 4000, 5000, 2000)
	report, err := NewNPVReport(series, 0.10)
	if err != nil {
		t.Fatalf("NewNPVReport() failed: %v", err)
	}

	md := NPVMarkdown(report)
	for _, want := range []string{
		"# NPV Analysis",
		"10.00%",       // discount rate
		"-$10,000.00",  // initial outlay row
		"$1,155.66",    // NPV
		"15.32%",       // IRR
		"| 2.6 years |", // payback
	} {
		if !strings.Contains(md, want) {
			t.Errorf("NPVMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestNPVMarkdown_NoIRR(t *testing.T) {
	// All-positive flows: IRR and payback lines are replaced, not invented.
	series := fincalc.NewCashFlowSeries("USD", 1000, 2000)
	report, err := NewNPVReport(series, 0.10)
	if err != nil {
		t.Fatalf("NewNPVReport() failed: %v", err)
	}
	if report.HasIRR || report.HasPayback {
		t.Fatalf("report unexpectedly has IRR or payback: %+v", report)
	}

	md := NPVMarkdown(report)
	if !strings.Contains(md, "N/A") {
		t.Errorf("NPVMarkdown() missing IRR N/A line in:\n%s", md)
	}
}

func TestDCFMarkdown(t *testing.T) {
	flows := fincalc.NewCashFlowSeries("USD", 100, 110, 121, 133)
	report, err := NewDCFReport(flows, 0.03, 0.12)
	if err != nil {
		t.Fatalf("NewDCFReport() failed: %v", err)
	}

	md := DCFMarkdown(report)
	for _, want := range []string{"# DCF Valuation", "12.00%", "3.00%", "$1,314.96"} {
		if !strings.Contains(md, want) {
			t.Errorf("DCFMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestBondMarkdown(t *testing.T) {
	bond := fincalc.Bond{FaceValue: usd(1000), CouponRate: 0.05, Years: 10, PaymentsPerYear: 2}
	report, err := NewBondReport(bond, 0.06)
	if err != nil {
		t.Fatalf("NewBondReport() failed: %v", err)
	}
	if report.Status != "Discount" {
		t.Errorf("Status = %q, want Discount", report.Status)
	}

	md := BondMarkdown(report)
	for _, want := range []string{"# Bond Valuation", "$925.61", "7.89 years", "trading at Discount"} {
		if !strings.Contains(md, want) {
			t.Errorf("BondMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestYTMMarkdown(t *testing.T) {
	bond := fincalc.Bond{FaceValue: usd(1000), CouponRate: 0.05, Years: 10, PaymentsPerYear: 2}
	report, err := NewYTMReport(bond, usd(925.61), fincalc.SolverConfig{})
	if err != nil {
		t.Fatalf("NewYTMReport() failed: %v", err)
	}
	if report.Status != "trading at a discount" {
		t.Errorf("Status = %q, want trading at a discount", report.Status)
	}

	md := YTMMarkdown(report)
	for _, want := range []string{"# Yield to Maturity", "6.00%", "$925.61"} {
		if !strings.Contains(md, want) {
			t.Errorf("YTMMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestYTMReport_Failure(t *testing.T) {
	bond := fincalc.Bond{FaceValue: usd(1000), CouponRate: 0.05, Years: 0, PaymentsPerYear: 2}
	if _, err := NewYTMReport(bond, usd(925.61), fincalc.SolverConfig{}); err == nil {
		t.Fatal("NewYTMReport() on a zero-maturity bond succeeded, want error")
	}
}

func TestProjectionMarkdown(t *testing.T) {
	report, err := NewProjectionReport(usd(1000), 0.10, 5)
	if err != nil {
		t.Fatalf("NewProjectionReport() failed: %v", err)
	}

	md := ProjectionMarkdown(report)
	for _, want := range []string{"# Cash Flow Projections", "$1,610.51", "$6,715.61", "10.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("ProjectionMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
