package fincalc

import (
	"errors"
	"math"
	"testing"
)

func TestSolveRate_Converges(t *testing.T) {
	// f(r) = r^2 - 0.04 has a root at 0.2 reachable from 0.1.
	f := func(r Rate) float64 { return float64(r)*float64(r) - 0.04 }

	res, err := SolveRate(f, 0.1, SolverConfig{})
	if err != nil {
		t.Fatalf("SolveRate() failed: %v", err)
	}
	if got := math.Abs(float64(res.Rate) - 0.2); got > 1e-4 {
		t.Errorf("SolveRate() rate = %v, want 0.2 within 1e-4", res.Rate)
	}
	if res.Iterations <= 0 || res.Iterations >= 1000 {
		t.Errorf("SolveRate() iterations = %d, want a small positive count", res.Iterations)
	}
}

func TestSolveRate_IsDeterministic(t *testing.T) {
	f := func(r Rate) float64 { return float64(r)*float64(r)*float64(r) - 0.008 }

	first, err := SolveRate(f, 0.5, SolverConfig{})
	if err != nil {
		t.Fatalf("SolveRate() failed: %v", err)
	}
	second, err := SolveRate(f, 0.5, SolverConfig{})
	if err != nil {
		t.Fatalf("SolveRate() failed: %v", err)
	}
	if first != second {
		t.Errorf("SolveRate() is not deterministic: %+v vs %+v", first, second)
	}
}

func TestSolveRate_VanishingDerivative(t *testing.T) {
	// Constant function: derivative is exactly zero at the guess.
	f := func(Rate) float64 { return 42.0 }

	_, err := SolveRate(f, 0.1, SolverConfig{})
	if !errors.Is(err, ErrVanishingDerivative) {
		t.Fatalf("SolveRate() error = %v, want ErrVanishingDerivative", err)
	}
}

func TestSolveRate_IterationBudget(t *testing.T) {
	// A slope that never leads to a root: f oscillates around the guess
	// with a tiny but non-degenerate derivative, so Newton keeps stepping.
	f := func(r Rate) float64 { return math.Sin(1000*float64(r)) + 2 }

	_, err := SolveRate(f, 0.1, SolverConfig{MaxIterations: 50})
	if err == nil {
		t.Fatal("SolveRate() succeeded on a rootless function")
	}
}

func TestSolveRate_DomainViolation(t *testing.T) {
	// Steep slope pushes the iterate below -1 on the first step.
	f := func(r Rate) float64 { return float64(r) + 10 }

	_, err := SolveRate(f, 0.0, SolverConfig{})
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("SolveRate() error = %v, want *DomainError", err)
	}
}

func TestSolveRate_NonFiniteValue(t *testing.T) {
	f := func(r Rate) float64 { return math.NaN() }

	_, err := SolveRate(f, 0.1, SolverConfig{})
	var derr *DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("SolveRate() error = %v, want *DomainError", err)
	}
}

func TestSolverConfig_Defaults(t *testing.T) {
	cfg := SolverConfig{}.withDefaults()
	want := SolverConfig{MaxIterations: 1000, Tolerance: 1e-6, DerivativeStep: 1e-6}
	if cfg != want {
		t.Errorf("withDefaults() = %+v, want %+v", cfg, want)
	}

	// Explicit values survive.
	cfg = SolverConfig{MaxIterations: 10}.withDefaults()
	if cfg.MaxIterations != 10 || cfg.Tolerance != 1e-6 {
		t.Errorf("withDefaults() = %+v, want MaxIterations kept at 10", cfg)
	}
}
