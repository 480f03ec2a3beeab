// Package observability provides hooks for logging and metrics on the scroll
// pipeline.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The CLI registers hooks at
// startup; the library packages emit events through them.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are observers. They run inline on the event loop, must return quickly,
// and must not call back into the component that emitted the event.
//
// Hooks take no context.Context: every event
// is emitted from a synchronous, non-blocking frame handler.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScrollHooks(&myScrollHooks{})
//	    observability.SetSnapHooks(&mySnapHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scroll().OnScroll(offset, dir.String())
//	observability.Snap().OnTransition("DRAGGING", "COLLAPSED")
package observability

import (
	"sync"
)

// =============================================================================
// Scroll Hooks
// =============================================================================

// ScrollHooks receives events from the scroll event router.
type ScrollHooks interface {
	// OnScroll records a processed scroll event and the derived direction.
	OnScroll(offset float64, direction string)

	// OnRelease records a drag release and the commanded snap target.
	OnRelease(direction string, target float64)
}

// =============================================================================
// Snap Hooks
// =============================================================================

// SnapHooks receives events from the snap controller and its animations.
type SnapHooks interface {
	// OnTransition records a state machine transition.
	OnTransition(from, to string)

	// OnAnimationStart records the start of a programmatic scroll.
	OnAnimationStart(from, to float64, easing string)

	// OnAnimationEnd records the end of a programmatic scroll. interrupted is
	// true when a user scroll or a newer command cancelled it.
	OnAnimationEnd(offset float64, interrupted bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScrollHooks is a no-op implementation of ScrollHooks.
type NoopScrollHooks struct{}

func (NoopScrollHooks) OnScroll(float64, string)  {}
func (NoopScrollHooks) OnRelease(string, float64) {}

// NoopSnapHooks is a no-op implementation of SnapHooks.
type NoopSnapHooks struct{}

func (NoopSnapHooks) OnTransition(string, string)               {}
func (NoopSnapHooks) OnAnimationStart(float64, float64, string) {}
func (NoopSnapHooks) OnAnimationEnd(float64, bool)              {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scrollHooks ScrollHooks = NoopScrollHooks{}
	snapHooks   SnapHooks   = NoopSnapHooks{}
	hooksMu     sync.RWMutex
)

// SetScrollHooks registers custom scroll hooks.
// This should be called once at application startup before any scrolling.
func SetScrollHooks(h ScrollHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scrollHooks = h
	}
}

// SetSnapHooks registers custom snap hooks.
// This should be called once at application startup before any scrolling.
func SetSnapHooks(h SnapHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		snapHooks = h
	}
}

// Scroll returns the registered scroll hooks.
func Scroll() ScrollHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scrollHooks
}

// Snap returns the registered snap hooks.
func Snap() SnapHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return snapHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scrollHooks = NoopScrollHooks{}
	snapHooks = NoopSnapHooks{}
}
