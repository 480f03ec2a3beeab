// Package scroll routes raw scroll-position events into the driver value
// and tracks scroll direction.
//
// The [Router] is the only writer of the driver value, the last observed
// offset and the scroll direction. Each event is handled in three steps:
//
//  1. direction = DOWN if offsetY > lastOffset, else UP
//  2. lastOffset = offsetY
//  3. driver value = offsetY (1:1, no smoothing)
//
// Events are processed strictly in arrival order and nothing is queued: a
// burst of offsets leaves the driver at the last one. The direction is read
// by the snap controller when a drag is released.
package scroll

import (
	"fmt"

	"github.com/matzehuels/scrollhead/pkg/driver"
	"github.com/matzehuels/scrollhead/pkg/observability"
)

// Direction is the scroll direction derived from consecutive offsets.
type Direction int

const (
	// Up means the offset did not increase: content moved toward the top.
	Up Direction = iota
	// Down means the offset increased: the user scrolled into the content.
	Down
)

// String returns "UP" or "DOWN".
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Router turns scroll notifications into driver value writes.
type Router struct {
	store      *driver.Store
	lastOffset float64
	direction  Direction
	events     int
}

// NewRouter returns a router writing to store. The initial direction is Up
// and the last offset is 0, matching a freshly mounted screen.
func NewRouter(store *driver.Store) *Router {
	return &Router{store: store, direction: Up}
}

// OnScroll handles one scroll notification and returns the derived
// direction. The first event compares against offset 0, so it is DOWN for a
// positive offset and UP otherwise. Equal consecutive offsets yield UP.
func (r *Router) OnScroll(offsetY float64) Direction {
	if offsetY > r.lastOffset {
		r.direction = Down
	} else {
		r.direction = Up
	}
	r.lastOffset = offsetY
	r.events++
	r.store.Set(offsetY)
	observability.Scroll().OnScroll(offsetY, r.direction.String())
	return r.direction
}

// OnScrollBatch handles offsets in order and returns the final direction.
// It is equivalent to calling OnScroll for each offset.
func (r *Router) OnScrollBatch(offsets []float64) Direction {
	for _, off := range offsets {
		r.OnScroll(off)
	}
	return r.direction
}

// Direction returns the direction derived from the most recent event.
func (r *Router) Direction() Direction { return r.direction }

// LastOffset returns the most recently observed offset.
func (r *Router) LastOffset() float64 { return r.lastOffset }

// Events returns the number of processed scroll events.
func (r *Router) Events() int { return r.events }

// Store returns the driver store the router writes to.
func (r *Router) Store() *driver.Store { return r.store }

// Reset restores the mount state: offset 0, direction Up, driver value 0.
func (r *Router) Reset() {
	r.lastOffset = 0
	r.direction = Up
	r.events = 0
	r.store.Reset()
}
