package fincalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/gval"
)

// AngleMode selects the unit for trigonometric functions.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

// ParseAngleMode parses "deg"/"degrees" or "rad"/"radians".
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("angle mode must be 'deg' or 'rad', got %q", s)
}

// SciCalc is the scientific calculator: advanced mathematical functions, a
// single memory register, and an expression evaluator. Its only state is
// the angle mode, the memory register and the last evaluated result.
type SciCalc struct {
	mode   AngleMode
	memory float64
	last   float64
	lang   gval.Language
}

// NewSciCalc returns a scientific calculator in degrees mode with an empty
// memory. Expressions are evaluated by a gval language extended with the
// calculator's functions, so trigonometry follows the current angle mode.
func NewSciCalc() *SciCalc {
	c := &SciCalc{}
	c.lang = gval.NewLanguage(gval.Full(),
		gval.Constant("pi", math.Pi),
		gval.Constant("e", math.E),
		gval.Function("sin", c.Sin),
		gval.Function("cos", c.Cos),
		gval.Function("tan", c.Tan),
		gval.Function("asin", c.Asin),
		gval.Function("acos", c.Acos),
		gval.Function("atan", c.Atan),
		gval.Function("sinh", math.Sinh),
		gval.Function("cosh", math.Cosh),
		gval.Function("tanh", math.Tanh),
		gval.Function("log", Log10),
		gval.Function("ln", Ln),
		gval.Function("exp", math.Exp),
		gval.Function("sqrt", SquareRoot),
		gval.Function("cbrt", CubeRoot),
		gval.Function("pow", math.Pow),
		gval.Function("factorial", Factorial),
		gval.Function("abs", math.Abs),
		gval.Function("ceil", math.Ceil),
		gval.Function("floor", math.Floor),
		gval.Function("round", math.Round),
	)
	return c
}

// SetAngleMode switches between degrees and radians.
func (c *SciCalc) SetAngleMode(mode AngleMode) { c.mode = mode }

// AngleMode returns the current angle mode.
func (c *SciCalc) AngleMode() AngleMode { return c.mode }

func (c *SciCalc) toRadians(x float64) float64 {
	if c.mode == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (c *SciCalc) fromRadians(x float64) float64 {
	if c.mode == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

func (c *SciCalc) Sin(x float64) float64 { return math.Sin(c.toRadians(x)) }
func (c *SciCalc) Cos(x float64) float64 { return math.Cos(c.toRadians(x)) }
func (c *SciCalc) Tan(x float64) float64 { return math.Tan(c.toRadians(x)) }

func (c *SciCalc) Asin(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, domainErrorf("asin input must be between -1 and 1, got %v", x)
	}
	return c.fromRadians(math.Asin(x)), nil
}

func (c *SciCalc) Acos(x float64) (float64, error) {
	if x < -1 || x > 1 {
		return 0, domainErrorf("acos input must be between -1 and 1, got %v", x)
	}
	return c.fromRadians(math.Acos(x)), nil
}

func (c *SciCalc) Atan(x float64) float64 { return c.fromRadians(math.Atan(x)) }

// Memory register operations.

func (c *SciCalc) MemoryAdd(v float64)      { c.memory += v }
func (c *SciCalc) MemorySubtract(v float64) { c.memory -= v }
func (c *SciCalc) MemoryStore(v float64)    { c.memory = v }
func (c *SciCalc) MemoryRecall() float64    { return c.memory }
func (c *SciCalc) MemoryClear()             { c.memory = 0 }

// LastResult returns the result of the last successful evaluation.
func (c *SciCalc) LastResult() float64 { return c.last }

// Evaluate evaluates a calculator expression. Calculator glyphs (×, ÷, −,
// ^, π) are normalised first, then the expression runs through the gval
// language with the scientific functions registered.
func (c *SciCalc) Evaluate(expression string) (float64, error) {
	v, err := c.lang.Evaluate(normalizeExpression(expression), nil)
	if err != nil {
		return 0, fmt.Errorf("invalid expression %q: %w", expression, err)
	}
	result, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("expression %q is not numeric (got %T)", expression, v)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, domainErrorf("expression %q has no finite value", expression)
	}
	c.last = result
	return result, nil
}

// normalizeExpression maps the calculator button glyphs to gval syntax.
func normalizeExpression(expression string) string {
	r := strings.NewReplacer(
		"×", "*",
		"÷", "/",
		"−", "-",
		"^", "**",
		"π", "pi",
	)
	return r.Replace(expression)
}

// Stateless scientific functions.

// Factorial computes n! for non-negative integral n.
func Factorial(n float64) (float64, error) {
	if n < 0 || n != math.Trunc(n) {
		return 0, domainErrorf("factorial is only defined for non-negative integers, got %v", n)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// SquareRoot computes √x for non-negative x.
func SquareRoot(x float64) (float64, error) {
	if x < 0 {
		return 0, domainErrorf("square root of negative number %v", x)
	}
	return math.Sqrt(x), nil
}

// CubeRoot computes the real cube root, defined for negative x too.
func CubeRoot(x float64) float64 { return math.Cbrt(x) }

// NthRoot computes the nth root of x.
func NthRoot(x, n float64) (float64, error) {
	if n == 0 {
		return 0, domainErrorf("cannot compute 0th root")
	}
	return math.Pow(x, 1/n), nil
}

// Ln computes the natural logarithm for positive x.
func Ln(x float64) (float64, error) {
	if x <= 0 {
		return 0, domainErrorf("logarithm undefined for non-positive number %v", x)
	}
	return math.Log(x), nil
}

// Log10 computes the base-10 logarithm for positive x.
func Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, domainErrorf("logarithm undefined for non-positive number %v", x)
	}
	return math.Log10(x), nil
}

// LogBase computes the logarithm of x in an arbitrary base.
func LogBase(x, base float64) (float64, error) {
	if x <= 0 || base <= 0 || base == 1 {
		return 0, domainErrorf("invalid logarithm parameters x=%v base=%v", x, base)
	}
	return math.Log(x) / math.Log(base), nil
}
