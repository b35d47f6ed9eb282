package fincalc

import (
	"errors"
	"fmt"
	"math"
)

// Solver failure modes. IRR and YTM surface these to the caller instead of
// a numeric value; the last iterate is never returned on failure.
var (
	// ErrNoConvergence is returned when the iteration budget is exhausted
	// before |f(r)| falls below the tolerance.
	ErrNoConvergence = errors.New("no convergence within iteration budget")
	// ErrVanishingDerivative is returned when the finite-difference
	// derivative is too close to zero to safely divide.
	ErrVanishingDerivative = errors.New("derivative vanishes near the current iterate")
)

// DomainError reports an input or iterate for which the target function is
// undefined (rate at or below -1, non-finite value, structurally invalid
// instrument).
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string { return "domain error: " + e.Reason }

func domainErrorf(format string, args ...any) *DomainError {
	return &DomainError{Reason: fmt.Sprintf(format, args...)}
}

// SolverConfig holds the Newton-Raphson parameters. The zero value selects
// the documented defaults.
type SolverConfig struct {
	MaxIterations  int     // default 1000
	Tolerance      float64 // default 1e-6, on |f(r)|
	DerivativeStep float64 // default 1e-6, finite difference half-step
}

// DefaultSolverConfig returns the documented default parameters.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{MaxIterations: 1000, Tolerance: 1e-6, DerivativeStep: 1e-6}
}

func (c SolverConfig) withDefaults() SolverConfig {
	def := DefaultSolverConfig()
	if c.MaxIterations <= 0 {
		c.MaxIterations = def.MaxIterations
	}
	if c.Tolerance <= 0 {
		c.Tolerance = def.Tolerance
	}
	if c.DerivativeStep <= 0 {
		c.DerivativeStep = def.DerivativeStep
	}
	return c
}

// SolverResult is a converged rate together with the number of iterations
// it took to reach it.
type SolverResult struct {
	Rate       Rate
	Iterations int
}

// derivativeEpsilon is the guard below which |f'(r)| is treated as zero.
const derivativeEpsilon = 1e-10

// SolveRate finds the rate at which f equals zero using Newton-Raphson
// iteration from the given guess, with a symmetric finite-difference
// derivative. It is deterministic: a single guess, a single path, no
// restarts. Failures are reported as ErrNoConvergence,
// ErrVanishingDerivative or *DomainError.
func SolveRate(f func(Rate) float64, guess Rate, cfg SolverConfig) (SolverResult, error) {
	cfg = cfg.withDefaults()

	r := guess
	for i := 0; i < cfg.MaxIterations; i++ {
		if !r.Valid() {
			return SolverResult{}, domainErrorf("rate %v left the valid domain (must stay above -1)", float64(r))
		}
		v := f(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return SolverResult{}, domainErrorf("function value is not finite at rate %v", float64(r))
		}
		if math.Abs(v) < cfg.Tolerance {
			return SolverResult{Rate: r, Iterations: i}, nil
		}

		h := cfg.DerivativeStep
		d := (f(Rate(float64(r)+h)) - f(Rate(float64(r)-h))) / (2 * h)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return SolverResult{}, domainErrorf("derivative is not finite at rate %v", float64(r))
		}
		if math.Abs(d) < derivativeEpsilon {
			return SolverResult{}, ErrVanishingDerivative
		}
		r = Rate(float64(r) - v/d)
	}
	return SolverResult{}, ErrNoConvergence
}
