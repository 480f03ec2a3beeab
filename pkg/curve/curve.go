package curve

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/matzehuels/scrollhead/pkg/errors"
)

// Policy controls how a curve treats inputs outside its input range.
type Policy int

const (
	// Clamp holds the output at the first or last output value.
	Clamp Policy = iota
	// Extend extrapolates the edge segment linearly.
	Extend
)

// String returns the policy name as used in configuration and output.
func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Extend:
		return "extend"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name ("clamp" or "extend").
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return Clamp, nil
	case "extend":
		return Extend, nil
	}
	return Clamp, errors.New(errors.ErrCodeInvalidCurve, "unknown clamp policy %q", s)
}

// Curve is an immutable piecewise-linear mapping from a driver value to an
// output property.
type Curve struct {
	name   string
	input  []float64
	output []float64
	policy Policy
}

// Option configures a Curve during construction.
type Option func(*Curve)

// WithName attaches a name used in listings and error messages.
func WithName(name string) Option {
	return func(c *Curve) { c.name = name }
}

// WithPolicy sets the out-of-range policy. The default is [Clamp].
func WithPolicy(p Policy) Option {
	return func(c *Curve) { c.policy = p }
}

// New creates a curve from matching input and output breakpoints.
// The slices are copied; callers may reuse them afterwards.
func New(input, output []float64, opts ...Option) (*Curve, error) {
	c := &Curve{
		input:  slices.Clone(input),
		output: slices.Clone(output),
		policy: Clamp,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Must is like [New] but panics on invalid breakpoints.
func Must(input, output []float64, opts ...Option) *Curve {
	c, err := New(input, output, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Curve) validate() error {
	label := c.name
	if label == "" {
		label = "curve"
	}
	if len(c.input) != len(c.output) {
		return errors.New(errors.ErrCodeInvalidCurve,
			"%s: input range has %d points, output range has %d", label, len(c.input), len(c.output))
	}
	if len(c.input) < 2 {
		return errors.New(errors.ErrCodeInvalidCurve,
			"%s: need at least 2 breakpoints, got %d", label, len(c.input))
	}
	for i := range c.input {
		if !finite(c.input[i]) || !finite(c.output[i]) {
			return errors.New(errors.ErrCodeInvalidCurve, "%s: breakpoint %d is not finite", label, i)
		}
		if i > 0 && c.input[i] < c.input[i-1] {
			return errors.New(errors.ErrCodeInvalidCurve,
				"%s: input range must be non-decreasing (%v < %v at index %d)", label, c.input[i], c.input[i-1], i)
		}
	}
	if c.policy != Clamp && c.policy != Extend {
		return errors.New(errors.ErrCodeInvalidCurve, "%s: unknown policy %d", label, int(c.policy))
	}
	return nil
}

// At evaluates the curve at v.
func (c *Curve) At(v float64) float64 {
	last := len(c.input) - 1
	switch {
	case math.IsNaN(v):
		return c.output[0]
	case v <= c.input[0]:
		if c.policy == Extend {
			return c.extrapolate(0, 1, v)
		}
		return c.output[0]
	case v >= c.input[last]:
		if c.policy == Extend {
			return c.extrapolate(last-1, last, v)
		}
		return c.output[last]
	}

	// First breakpoint strictly greater than v; input[i-1] <= v < input[i].
	i := sort.Search(len(c.input), func(i int) bool { return c.input[i] > v })
	return lerp(c.input[i-1], c.input[i], c.output[i-1], c.output[i], v)
}

func (c *Curve) extrapolate(a, b int, v float64) float64 {
	if c.input[a] == c.input[b] || math.IsInf(v, 0) {
		if v <= c.input[0] {
			return c.output[0]
		}
		return c.output[len(c.output)-1]
	}
	return lerp(c.input[a], c.input[b], c.output[a], c.output[b], v)
}

func lerp(x0, x1, y0, y1, v float64) float64 {
	t := (v - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Interpolate evaluates c at v. It is shorthand for c.At(v).
func Interpolate(c *Curve, v float64) float64 {
	return c.At(v)
}

// Name returns the curve name, or "" when unnamed.
func (c *Curve) Name() string { return c.name }

// Policy returns the out-of-range policy.
func (c *Curve) Policy() Policy { return c.policy }

// Input returns a copy of the input breakpoints.
func (c *Curve) Input() []float64 { return slices.Clone(c.input) }

// Output returns a copy of the output breakpoints.
func (c *Curve) Output() []float64 { return slices.Clone(c.output) }

// Domain returns the first and last input breakpoints.
func (c *Curve) Domain() (lo, hi float64) {
	return c.input[0], c.input[len(c.input)-1]
}

// Range returns the smallest and largest output breakpoints. Under [Clamp]
// every evaluation lies within this range.
func (c *Curve) Range() (lo, hi float64) {
	return slices.Min(c.output), slices.Max(c.output)
}

// String formats the curve as "name [0 50] -> [1 0] clamp".
func (c *Curve) String() string {
	var b strings.Builder
	if c.name != "" {
		b.WriteString(c.name)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "%v -> %v %s", c.input, c.output, c.policy)
	return b.String()
}
