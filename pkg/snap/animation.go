package snap

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/matzehuels/scrollhead/pkg/errors"
)

// Easing selects how a programmatic scroll approaches its target.
type Easing string

const (
	EaseCubic  Easing = "cubic"
	EaseLinear Easing = "linear"
	EaseSpring Easing = "spring"
)

// Easings lists the supported easings.
var Easings = []Easing{EaseCubic, EaseLinear, EaseSpring}

// ParseEasing parses an easing name. The empty string selects [EaseCubic].
func ParseEasing(s string) (Easing, error) {
	switch e := Easing(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EaseCubic, nil
	case EaseCubic, EaseLinear, EaseSpring:
		return e, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown easing %q (want cubic, linear or spring)", s)
}

// Spring settles when both distance to the target and velocity fall below
// these thresholds (pixels and pixels per second).
const (
	springSettleDistance = 0.5
	springSettleVelocity = 0.5
)

// AnimationOptions configures a programmatic scroll.
type AnimationOptions struct {
	Easing   Easing
	Duration time.Duration // tween length; a spring is cut off at 4x this

	SpringFrequency float64 // angular frequency
	SpringDamping   float64 // damping ratio, 1 is critical
}

// DefaultAnimationOptions returns a 300ms ease-out cubic.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Easing:          EaseCubic,
		Duration:        300 * time.Millisecond,
		SpringFrequency: 12.0,
		SpringDamping:   1.0,
	}
}

// Animation moves an offset from a start value to a target as frames elapse.
// It is not safe for concurrent use.
type Animation struct {
	from, to float64
	opts     AnimationOptions

	tween   *gween.Tween
	pos     float64
	vel     float64
	elapsed time.Duration
	done    bool
}

// NewAnimation returns an animation from from to to. A non-positive duration
// or a zero distance produces an animation that finishes on its first step.
func NewAnimation(from, to float64, opts AnimationOptions) *Animation {
	def := DefaultAnimationOptions()
	if opts.Easing == "" {
		opts.Easing = def.Easing
	}
	if opts.SpringFrequency <= 0 {
		opts.SpringFrequency = def.SpringFrequency
	}
	if opts.SpringDamping <= 0 {
		opts.SpringDamping = def.SpringDamping
	}

	a := &Animation{from: from, to: to, opts: opts, pos: from}
	if opts.Duration <= 0 || from == to {
		return a
	}
	switch opts.Easing {
	case EaseLinear:
		a.tween = gween.New(float32(from), float32(to), float32(opts.Duration.Seconds()), ease.Linear)
	case EaseSpring:
		// stepped in Step
	default:
		a.tween = gween.New(float32(from), float32(to), float32(opts.Duration.Seconds()), ease.OutCubic)
	}
	return a
}

// Step advances the animation by dt and returns the new offset and whether
// the target has been reached. Once done, Step keeps returning the target.
func (a *Animation) Step(dt time.Duration) (float64, bool) {
	if a.done {
		return a.to, true
	}
	if a.opts.Duration <= 0 || a.from == a.to {
		return a.finish()
	}
	if dt <= 0 {
		return a.pos, false
	}

	a.elapsed += dt
	if a.opts.Easing == EaseSpring {
		return a.stepSpring(dt)
	}

	cur, finished := a.tween.Update(float32(dt.Seconds()))
	if finished {
		return a.finish()
	}
	a.pos = float64(cur)
	return a.pos, false
}

func (a *Animation) stepSpring(dt time.Duration) (float64, bool) {
	s := harmonica.NewSpring(dt.Seconds(), a.opts.SpringFrequency, a.opts.SpringDamping)
	a.pos, a.vel = s.Update(a.pos, a.vel, a.to)

	settled := math.Abs(a.pos-a.to) < springSettleDistance && math.Abs(a.vel) < springSettleVelocity
	if settled || a.elapsed >= 4*a.opts.Duration {
		return a.finish()
	}
	return a.pos, false
}

func (a *Animation) finish() (float64, bool) {
	a.pos = a.to
	a.vel = 0
	a.done = true
	return a.to, true
}

// From returns the start offset.
func (a *Animation) From() float64 { return a.from }

// Target returns the target offset.
func (a *Animation) Target() float64 { return a.to }

// Offset returns the most recent offset.
func (a *Animation) Offset() float64 { return a.pos }

// Done reports whether the target has been reached.
func (a *Animation) Done() bool { return a.done }

// Easing returns the animation's easing.
func (a *Animation) Easing() Easing { return a.opts.Easing }

// Elapsed returns the accumulated step time.
func (a *Animation) Elapsed() time.Duration { return a.elapsed }
