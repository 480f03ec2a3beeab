// Package driver holds the single scalar that every header animation is
// derived from.
//
// A [Store] owns the driver value: scroll progress in pixels from the top of
// the content. Writes overwrite the value and synchronously notify every
// subscriber in registration order. There is no batching, debouncing or
// validation; any real number is accepted, including the negative values
// produced by elastic overscroll. Consumers are expected to clamp.
//
// The store is meant to be written from a single event loop. Reads and
// subscription management are safe from any goroutine.
//
//	store := driver.New()
//	unsubscribe := store.Subscribe(func(v float64) {
//	    frame = hdr.Frame(v)
//	})
//	store.Set(42)
//	unsubscribe()
package driver

import (
	"sync"
	"sync/atomic"
)

// Unsubscribe removes a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

type subscriber struct {
	fn     func(float64)
	active atomic.Bool
}

// Store holds the driver value and its subscribers.
type Store struct {
	mu     sync.RWMutex
	value  float64
	subs   []*subscriber
	writes uint64
}

// New returns a store whose value is 0.
func New() *Store {
	return &Store{}
}

// Value returns the current driver value.
func (s *Store) Value() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Writes returns how many times Set has been called.
func (s *Store) Writes() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Set overwrites the driver value and notifies subscribers before returning.
// Setting the same value twice notifies twice.
func (s *Store) Set(v float64) {
	s.mu.Lock()
	s.value = v
	s.writes++
	// Snapshot live subscribers and drop cancelled ones.
	live := s.subs[:0:0]
	for _, sub := range s.subs {
		if sub.active.Load() {
			live = append(live, sub)
		}
	}
	s.subs = live
	s.mu.Unlock()

	for _, sub := range live {
		if sub.active.Load() {
			sub.fn(v)
		}
	}
}

// Reset sets the value back to 0. It is called when the screen mounts.
func (s *Store) Reset() {
	s.Set(0)
}

// Subscribe registers fn to be called with every new value. fn is not called
// with the current value; call Value for that.
func (s *Store) Subscribe(fn func(float64)) Unsubscribe {
	s.mu.Lock()
	sub := &subscriber{fn: fn}
	sub.active.Store(true)
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		sub.active.Store(false)
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sub := range s.subs {
		if sub.active.Load() {
			n++
		}
	}
	return n
}
