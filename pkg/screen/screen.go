// Package screen wires the scroll pipeline of the wallet screen together.
//
// # Data Flow
//
//	user scroll ──▶ Router ──▶ driver.Store ──▶ Header.Frame (fan-out)
//	                  │
//	 release ──▶ snap.Controller ──▶ Screen.ScrollTo ──▶ Animation
//	                                                      │
//	             Tick(dt) ◀───────────────────────────────┘ re-enters Router
//
// The [Screen] owns every piece of mutable state: the driver value, the last
// offset and direction (through the router), the snap state and the
// in-flight animation. It is driven from a single event loop and is not safe
// for concurrent use.
//
// User scrolls implicitly start a drag and cancel any programmatic scroll.
// A new ScrollTo replaces the in-flight animation; commands never queue.
package screen

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scrollhead/pkg/config"
	"github.com/matzehuels/scrollhead/pkg/driver"
	"github.com/matzehuels/scrollhead/pkg/header"
	"github.com/matzehuels/scrollhead/pkg/observability"
	"github.com/matzehuels/scrollhead/pkg/scroll"
	"github.com/matzehuels/scrollhead/pkg/snap"
)

// Options configures a Screen.
type Options struct {
	CollapsedHeight float64
	MaxOffset       float64 // content extent; 0 means unbounded
	Overscroll      float64 // pixels a user scroll may pass either end
	Animated        bool
	Animation       snap.AnimationOptions
	Features        []header.FeatureConfig // nil selects header.DefaultFeatures
	Logger          *log.Logger // nil discards log output
}

// DefaultOptions returns options matching the built-in configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig derives screen options from a configuration.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		CollapsedHeight: cfg.Header.CollapsedHeight,
		MaxOffset:       cfg.Header.CollapsedHeight + float64(len(cfg.Content.Rows))*cfg.Scroll.RowHeight,
		Overscroll:      cfg.Scroll.Overscroll,
		Animated:        cfg.Snap.Animated,
		Animation:       cfg.AnimationOptions(),
	}
}

// Screen is the composition root of the scroll pipeline.
type Screen struct {
	opts   Options
	logger *log.Logger

	store  *driver.Store
	router *scroll.Router
	header *header.Header
	snap   *snap.Controller

	anim     *snap.Animation
	frame    header.Frame
	commands int
}

// New builds and mounts a screen.
func New(opts Options) (*Screen, error) {
	features := opts.Features
	if features == nil {
		features = header.DefaultFeatures
	}
	hdr, err := header.New(features)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Screen{
		opts:   opts,
		logger: logger,
		store:  driver.New(),
		header: hdr,
	}
	s.router = scroll.NewRouter(s.store)
	s.snap, err = snap.NewController(opts.CollapsedHeight, s,
		snap.WithAnimated(opts.Animated),
		snap.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	s.store.Subscribe(func(v float64) {
		s.frame = s.header.Frame(v)
	})
	s.Mount()
	return s, nil
}

// Mount resets the screen to its initial state: offset 0, EXPANDED, no
// animation.
func (s *Screen) Mount() {
	s.cancelAnimation()
	s.snap.Reset()
	s.router.Reset()
	s.commands = 0
}

// Scroll handles a user scroll to offset. It starts a drag if none is in
// progress and interrupts a programmatic scroll.
func (s *Screen) Scroll(offset float64) scroll.Direction {
	s.cancelAnimation()
	s.snap.BeginDrag()
	return s.router.OnScroll(s.clamp(offset))
}

// ScrollBy scrolls relative to the current offset.
func (s *Screen) ScrollBy(delta float64) scroll.Direction {
	return s.Scroll(s.Offset() + delta)
}

// BeginDrag marks the start of a drag gesture.
func (s *Screen) BeginDrag() {
	s.cancelAnimation()
	s.snap.BeginDrag()
}

// Release ends the drag and snaps based on the last direction. It returns
// the commanded target.
func (s *Screen) Release() float64 {
	return s.snap.Release(s.router.Direction())
}

// SnapTo jumps to the rest position nearest target through the snap
// controller, so State always matches where the header comes to rest. It
// returns the commanded position.
func (s *Screen) SnapTo(target float64) float64 {
	return s.snap.SnapTo(target)
}

// ScrollTo implements snap.Scroller. A non-animated command, or one that is
// already at its target, moves immediately.
func (s *Screen) ScrollTo(target float64, animated bool) {
	s.cancelAnimation()
	s.commands++

	from := s.Offset()
	if !animated || from == target || s.opts.Animation.Duration <= 0 {
		s.router.OnScroll(target)
		return
	}
	s.anim = snap.NewAnimation(from, target, s.opts.Animation)
	observability.Snap().OnAnimationStart(from, target, string(s.anim.Easing()))
	s.logger.Debug("scroll animation", "from", from, "to", target, "easing", s.anim.Easing())
}

// Tick advances the programmatic scroll by dt. It returns true while an
// animation is still running.
func (s *Screen) Tick(dt time.Duration) bool {
	if s.anim == nil {
		return false
	}
	off, done := s.anim.Step(dt)
	s.router.OnScroll(off)
	if done {
		s.anim = nil
		observability.Snap().OnAnimationEnd(off, false)
		return false
	}
	return true
}

// Settle runs the animation to completion with fixed steps of dt and returns
// the number of frames it took. It returns 0 when nothing is animating or dt
// is not positive.
func (s *Screen) Settle(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	frames := 0
	for s.Animating() {
		s.Tick(dt)
		frames++
	}
	return frames
}

func (s *Screen) cancelAnimation() {
	if s.anim == nil {
		return
	}
	observability.Snap().OnAnimationEnd(s.anim.Offset(), true)
	s.logger.Debug("scroll animation interrupted", "offset", s.anim.Offset(), "target", s.anim.Target())
	s.anim = nil
}

func (s *Screen) clamp(offset float64) float64 {
	lo := -s.opts.Overscroll
	if offset < lo {
		return lo
	}
	if s.opts.MaxOffset > 0 {
		if hi := s.opts.MaxOffset + s.opts.Overscroll; offset > hi {
			return hi
		}
	}
	return offset
}

// Offset returns the current scroll offset.
func (s *Screen) Offset() float64 { return s.router.LastOffset() }

// DriverValue returns the current driver value.
func (s *Screen) DriverValue() float64 { return s.store.Value() }

// Direction returns the last scroll direction.
func (s *Screen) Direction() scroll.Direction { return s.router.Direction() }

// State returns the snap state.
func (s *Screen) State() snap.State { return s.snap.State() }

// Frame returns the header styles for the current driver value.
func (s *Screen) Frame() header.Frame { return s.frame }

// Header returns the curve table.
func (s *Screen) Header() *header.Header { return s.header }

// Animating reports whether a programmatic scroll is in flight.
func (s *Screen) Animating() bool { return s.anim != nil }

// AnimationTarget returns the target of the in-flight animation.
func (s *Screen) AnimationTarget() (float64, bool) {
	if s.anim == nil {
		return 0, false
	}
	return s.anim.Target(), true
}

// Commands returns how many ScrollTo commands have been issued since mount.
func (s *Screen) Commands() int { return s.commands }

// Events returns how many scroll events the router has processed since mount.
func (s *Screen) Events() int { return s.router.Events() }

// CollapsedHeight returns the collapsed snap target.
func (s *Screen) CollapsedHeight() float64 { return s.snap.CollapsedHeight() }

// Options returns the options the screen was built with.
func (s *Screen) Options() Options { return s.opts }
