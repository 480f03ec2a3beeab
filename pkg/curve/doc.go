// Package curve provides declarative piecewise-linear animation curves.
//
// # Overview
//
// A [Curve] maps a scalar driver value (scroll progress in pixels) to a
// visual property such as opacity, scale or translation. It is defined by an
// ordered list of input breakpoints and the output value at each breakpoint.
// Between breakpoints the output is linearly interpolated.
//
//	input:  0 ──────── 25 ──────── 50
//	output: 1          0.5          0
//
// Curves are immutable once constructed and safe for concurrent reads.
// Evaluating a curve is a pure function: the same input always yields the
// same output.
//
// # Construction
//
// [New] validates the breakpoints and fails fast with an
// [errors.ErrCodeInvalidCurve] error when:
//   - fewer than two breakpoints are supplied
//   - the input and output ranges differ in length
//   - the input range is not monotonically non-decreasing
//   - any breakpoint is NaN or infinite
//
// [Must] is the panicking variant for static curve tables.
//
// # Edge Behaviour
//
// Inputs outside the input range follow the curve's [Policy]:
//   - [Clamp] (default): output is held at the first or last output value
//   - [Extend]: the edge segment is extrapolated linearly
//
// Evaluation never fails. Negative inputs (elastic overscroll) and NaN are
// handled by the policy instead of panicking; NaN maps to the first output.
//
// # Usage
//
//	opacity := curve.Must([]float64{0, 25}, []float64{1, 0}, curve.WithName("search.opacity"))
//	opacity.At(-10) // 1 (clamped)
//	opacity.At(10)  // 0.6
//	opacity.At(40)  // 0 (clamped)
//
// [errors.ErrCodeInvalidCurve]: https://pkg.go.dev/github.com/matzehuels/scrollhead/pkg/errors#ErrCodeInvalidCurve
package curve
