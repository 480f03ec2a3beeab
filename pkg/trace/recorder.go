package trace

import "time"

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock sets the time source. Events are stamped relative to the first
// reading.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) { r.now = now }
}

// WithFrameClock stamps events from the ticks themselves instead of the wall
// clock: each tick advances the recording time by its dt. Traces built this
// way are independent of how fast they were produced.
func WithFrameClock() RecorderOption {
	return func(r *Recorder) { r.now = nil }
}

// Recorder appends events to a trace as they happen.
type Recorder struct {
	trace   *Trace
	now     func() time.Time
	start   time.Time
	elapsed time.Duration
}

// NewRecorder starts recording a new trace. The wall clock is used unless an
// option replaces it.
func NewRecorder(name string, opts ...RecorderOption) (*Recorder, error) {
	t, err := New(name)
	if err != nil {
		return nil, err
	}
	r := &Recorder{trace: t, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.now != nil {
		r.start = r.now()
	}
	return r, nil
}

// Scroll records a user scroll to offset.
func (r *Recorder) Scroll(offset float64) {
	r.append(Event{Kind: KindScroll, Offset: offset})
}

// BeginDrag records the start of a drag.
func (r *Recorder) BeginDrag() {
	r.append(Event{Kind: KindBeginDrag})
}

// Release records the end of a drag.
func (r *Recorder) Release() {
	r.append(Event{Kind: KindRelease})
}

// ScrollTo records a programmatic scroll to target.
func (r *Recorder) ScrollTo(target float64) {
	r.append(Event{Kind: KindScrollTo, Offset: target})
}

// Tick records an animation frame of length dt.
func (r *Recorder) Tick(dt time.Duration) {
	if r.now == nil {
		r.elapsed += dt
	}
	r.append(Event{Kind: KindTick, DT: dt})
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.trace.Events) }

// Trace returns the recorded trace. The recorder may keep appending to it.
func (r *Recorder) Trace() *Trace { return r.trace }

func (r *Recorder) append(e Event) {
	e.At = r.elapsed
	if r.now != nil {
		e.At = r.now().Sub(r.start)
	}
	// A wall clock can step backwards; keep the ordering valid.
	if n := len(r.trace.Events); n > 0 && e.At < r.trace.Events[n-1].At {
		e.At = r.trace.Events[n-1].At
	}
	r.trace.Events = append(r.trace.Events, e)
}

// FromOffsets builds a frame-clocked trace that drags through offsets, then
// optionally releases and runs ticks animation frames of length frame.
func FromOffsets(name string, offsets []float64, release bool, ticks int, frame time.Duration) (*Trace, error) {
	rec, err := NewRecorder(name, WithFrameClock())
	if err != nil {
		return nil, err
	}
	rec.BeginDrag()
	for _, off := range offsets {
		rec.Scroll(off)
	}
	if release {
		rec.Release()
	}
	for i := 0; i < ticks; i++ {
		rec.Tick(frame)
	}
	t := rec.Trace()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
