package trace

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/scrollhead/pkg/errors"
)

// Kind identifies what an event does to the screen.
type Kind string

const (
	KindScroll    Kind = "scroll"
	KindBeginDrag Kind = "begin_drag"
	KindRelease   Kind = "release"
	KindScrollTo  Kind = "scroll_to" // programmatic scroll, e.g. a keyboard jump
	KindTick      Kind = "tick"
)

// Kinds lists every event kind.
var Kinds = []Kind{KindScroll, KindBeginDrag, KindRelease, KindScrollTo, KindTick}

// ParseKind parses an event kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidTrace, "unknown event kind %q", s)
}

// Event is one recorded input. Offset is set for scrolls and scroll_to, DT
// for ticks.
type Event struct {
	At     time.Duration `json:"at"`
	Kind   Kind          `json:"kind"`
	Offset float64       `json:"offset,omitempty"`
	DT     time.Duration `json:"dt,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case KindScroll, KindScrollTo:
		return fmt.Sprintf("%v %s %g", e.At, e.Kind, e.Offset)
	case KindTick:
		return fmt.Sprintf("%v %s %v", e.At, e.Kind, e.DT)
	default:
		return fmt.Sprintf("%v %s", e.At, e.Kind)
	}
}

// Trace is a named, ordered event stream.
type Trace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Events    []Event   `json:"events"`
}

// New creates an empty trace with a fresh ID.
func New(name string) (*Trace, error) {
	if err := errors.ValidateName(name); err != nil {
		return nil, err
	}
	return &Trace{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Validate checks the trace is well formed: a valid name and ID, known event
// kinds, finite scroll offsets, positive tick durations and timestamps that
// never go backwards.
func (t *Trace) Validate() error {
	if err := errors.ValidateName(t.Name); err != nil {
		return err
	}
	if _, err := uuid.Parse(t.ID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTrace, err, "trace %q: bad id %q", t.Name, t.ID)
	}
	var last time.Duration
	for i, e := range t.Events {
		if _, err := ParseKind(string(e.Kind)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTrace, err, "trace %q: event %d", t.Name, i)
		}
		if e.At < last {
			return errors.New(errors.ErrCodeInvalidTrace, "trace %q: event %d at %v is before %v", t.Name, i, e.At, last)
		}
		last = e.At
		switch e.Kind {
		case KindScroll, KindScrollTo:
			if err := errors.ValidateFinite("offset", e.Offset); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidTrace, err, "trace %q: event %d", t.Name, i)
			}
		case KindTick:
			if e.DT <= 0 {
				return errors.New(errors.ErrCodeInvalidTrace, "trace %q: event %d: tick dt must be positive", t.Name, i)
			}
		}
	}
	return nil
}

// Duration returns the timestamp of the last event.
func (t *Trace) Duration() time.Duration {
	if len(t.Events) == 0 {
		return 0
	}
	return t.Events[len(t.Events)-1].At
}

// Count returns how many events of kind k the trace holds.
func (t *Trace) Count(k Kind) int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
