package cmd

import "testing"

func TestParseCashFlows(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantLen int
		wantErr bool
	}{
		{"single argument", []string{"-10000,3000,4000"}, 3, false},
		{"spread arguments", []string{"-10000,3000", "4000,5000"}, 4, false},
		{"no arguments", nil, 0, true},
		{"garbage", []string{"-100,abc"}, 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := parseCashFlows("USD", tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatal("parseCashFlows() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCashFlows() failed: %v", err)
			}
			if series.Len() != tc.wantLen {
				t.Errorf("Len() = %d, want %d", series.Len(), tc.wantLen)
			}
		})
	}
}

func TestRateOf(t *testing.T) {
	if got := rateOf(10); got != 0.1 {
		t.Errorf("rateOf(10) = %v, want 0.1", got)
	}
	if got := rateOf(-2.5); got != -0.025 {
		t.Errorf("rateOf(-2.5) = %v, want -0.025", got)
	}
}

func TestFormatResult(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{2.5, "2.5"},
		{0, "0"},
		{-3.20, "-3.2"},
		{1e12, "1.000000e+12"},
		{0.00001, "1.000000e-05"},
	}
	for _, tc := range testCases {
		if got := formatResult(tc.in); got != tc.want {
			t.Errorf("formatResult(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
