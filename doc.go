// Package fincalc provides the calculation core of the `ifc` investment
// finance calculator. It implements the textbook investment formulas
// (NPV, DCF, WACC, CAPM, bond pricing, growth projections) together with
// the Newton-Raphson solver backing the two iterative quantities, IRR and
// yield to maturity.
//
// The package is deliberately stateless: every function is a pure
// computation from its inputs to a result or an explicit failure, with no
// display, persistence, or event-handling dependency. Monetary amounts are
// carried as exact decimals and only converted to floating point inside
// the numerical kernels.
//
// This package serves as the foundational logic for the `ifc` command-line
// tool, which owns input parsing and report formatting.
package fincalc
