package curve

import (
	"math"
	"testing"

	"github.com/matzehuels/scrollhead/pkg/errors"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		output  []float64
		wantErr bool
	}{
		{"pair", []float64{0, 50}, []float64{1, 0}, false},
		{"triple", []float64{0, 25, 50}, []float64{0, 1, 0}, false},
		{"repeated breakpoint", []float64{0, 25, 25, 50}, []float64{0, 1, 0, 1}, false},

		{"mismatched lengths", []float64{0, 50}, []float64{1, 0.5, 0}, true},
		{"single point", []float64{0}, []float64{1}, true},
		{"empty", nil, nil, true},
		{"decreasing input", []float64{50, 0}, []float64{1, 0}, true},
		{"non-monotonic triple", []float64{0, 30, 20}, []float64{0, 1, 2}, true},
		{"NaN input", []float64{0, math.NaN()}, []float64{1, 0}, true},
		{"infinite output", []float64{0, 1}, []float64{1, math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.input, tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidCurve) {
					t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidCurve)
				}
				if c != nil {
					t.Error("New() returned a curve alongside an error")
				}
			}
		})
	}
}

func TestNewUnknownPolicy(t *testing.T) {
	if _, err := New([]float64{0, 1}, []float64{0, 1}, WithPolicy(Policy(7))); err == nil {
		t.Error("New() accepted an unknown policy")
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on invalid breakpoints")
		}
	}()
	Must([]float64{1, 0}, []float64{0, 1})
}

func TestNewCopiesSlices(t *testing.T) {
	in := []float64{0, 10}
	out := []float64{0, 1}
	c := Must(in, out)
	in[1] = 1000
	out[1] = 1000
	if got := c.At(5); got != 0.5 {
		t.Errorf("At(5) = %v after mutating source slices, want 0.5", got)
	}
}

func TestAtClamp(t *testing.T) {
	c := Must([]float64{0, 50}, []float64{1, 0})

	tests := []struct {
		v    float64
		want float64
	}{
		{-100, 1},
		{-0.5, 1},
		{0, 1},
		{25, 0.5},
		{40, 0.2},
		{50, 0},
		{51, 0},
		{1e9, 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 1},
		{math.NaN(), 1},
	}

	for _, tt := range tests {
		if got := c.At(tt.v); !approx(got, tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestAtExtend(t *testing.T) {
	c := Must([]float64{0, 25}, []float64{0, -100}, WithPolicy(Extend))

	tests := []struct {
		v    float64
		want float64
	}{
		{-5, 20},
		{0, 0},
		{10, -40},
		{50, -200},
		{math.Inf(1), -100},
	}

	for _, tt := range tests {
		if got := c.At(tt.v); !approx(got, tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestAtMultiSegment(t *testing.T) {
	c := Must([]float64{0, 10, 30}, []float64{0, 1, 0})

	tests := []struct {
		v    float64
		want float64
	}{
		{5, 0.5},
		{10, 1},
		{20, 0.5},
		{30, 0},
	}

	for _, tt := range tests {
		if got := c.At(tt.v); !approx(got, tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestAtRepeatedBreakpoint(t *testing.T) {
	// A zero-width segment produces a step; the breakpoint takes the right side.
	c := Must([]float64{0, 10, 10, 20}, []float64{0, 1, 5, 6})

	if got := c.At(9.999); got > 1 {
		t.Errorf("At(9.999) = %v, want <= 1", got)
	}
	if got := c.At(10); got != 5 {
		t.Errorf("At(10) = %v, want 5", got)
	}
	if got := c.At(15); !approx(got, 5.5) {
		t.Errorf("At(15) = %v, want 5.5", got)
	}
}

func TestAtMonotonicWithinSegments(t *testing.T) {
	c := Must([]float64{0, 30}, []float64{1, 0})
	prev := c.At(-10)
	for v := -10.0; v <= 40; v += 0.25 {
		got := c.At(v)
		if got > prev {
			t.Fatalf("At(%v) = %v increased from %v on a decreasing curve", v, got, prev)
		}
		lo, hi := c.Range()
		if got < lo || got > hi {
			t.Fatalf("At(%v) = %v outside output range [%v, %v]", v, got, lo, hi)
		}
		prev = got
	}
}

func TestAtIdempotent(t *testing.T) {
	c := Must([]float64{0, 50}, []float64{0, 1})
	for _, v := range []float64{-3, 0, 12.345, 49.999, 50, 80} {
		first := c.At(v)
		for i := 0; i < 5; i++ {
			if got := c.At(v); got != first {
				t.Fatalf("At(%v) changed between calls: %v then %v", v, first, got)
			}
		}
		if got := Interpolate(c, v); got != first {
			t.Errorf("Interpolate(c, %v) = %v, want %v", v, got, first)
		}
	}
}

func TestAccessors(t *testing.T) {
	c := Must([]float64{0, 25}, []float64{1, 0}, WithName("search.opacity"))

	if c.Name() != "search.opacity" {
		t.Errorf("Name() = %q", c.Name())
	}
	if c.Policy() != Clamp {
		t.Errorf("Policy() = %v, want clamp", c.Policy())
	}
	if lo, hi := c.Domain(); lo != 0 || hi != 25 {
		t.Errorf("Domain() = (%v, %v), want (0, 25)", lo, hi)
	}
	if lo, hi := c.Range(); lo != 0 || hi != 1 {
		t.Errorf("Range() = (%v, %v), want (0, 1)", lo, hi)
	}

	in := c.Input()
	in[0] = 99
	if c.Input()[0] != 0 {
		t.Error("Input() exposed internal storage")
	}

	want := "search.opacity [0 25] -> [1 0] clamp"
	if c.String() != want {
		t.Errorf("String() = %q, want %q", c.String(), want)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", Clamp, false},
		{"clamp", Clamp, false},
		{" Extend ", Extend, false},
		{"identity", Clamp, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
