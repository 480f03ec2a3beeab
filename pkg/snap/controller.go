package snap

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/observability"
	"github.com/matzehuels/scrollhead/pkg/scroll"
)

// State is a snap controller state.
type State int

const (
	// Expanded is the resting state at offset 0.
	Expanded State = iota
	// Collapsed is the resting state at the collapsed height.
	Collapsed
	// Dragging is entered on drag start and left on release.
	Dragging
)

// States lists every state in declaration order.
var States = []State{Expanded, Collapsed, Dragging}

// String returns the upper-case state name.
func (s State) String() string {
	switch s {
	case Expanded:
		return "EXPANDED"
	case Collapsed:
		return "COLLAPSED"
	case Dragging:
		return "DRAGGING"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition is one edge of the state machine.
type Transition struct {
	From  State
	To    State
	Event string
}

// Transitions returns every transition the controller can make.
func Transitions() []Transition {
	return []Transition{
		{From: Expanded, To: Dragging, Event: "drag start"},
		{From: Collapsed, To: Dragging, Event: "drag start"},
		{From: Dragging, To: Expanded, Event: "release (UP)"},
		{From: Dragging, To: Collapsed, Event: "release (DOWN)"},
	}
}

// Scroller is the scrollable surface the controller commands.
type Scroller interface {
	ScrollTo(target float64, animated bool)
}

// Controller implements the binary snap decision.
type Controller struct {
	collapsed float64
	scroller  Scroller
	animated  bool
	state     State
	logger    *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithAnimated sets whether release commands are animated. Default true.
func WithAnimated(animated bool) Option {
	return func(c *Controller) { c.animated = animated }
}

// WithLogger sets the logger used for debug output on transitions. Without
// one the controller logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController returns a controller in the Expanded state that snaps to
// collapsedHeight or 0 and issues commands to s.
func NewController(collapsedHeight float64, s Scroller, opts ...Option) (*Controller, error) {
	if err := errors.ValidateFinite("collapsed height", collapsedHeight); err != nil {
		return nil, err
	}
	if collapsedHeight <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "collapsed height must be positive, got %v", collapsedHeight)
	}
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scroller is required")
	}
	c := &Controller{
		collapsed: collapsedHeight,
		scroller:  s,
		animated:  true,
		state:     Expanded,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c, nil
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// CollapsedHeight returns the collapsed snap target.
func (c *Controller) CollapsedHeight() float64 { return c.collapsed }

// Target returns the snap target for a release in direction dir.
func (c *Controller) Target(dir scroll.Direction) float64 {
	if dir == scroll.Down {
		return c.collapsed
	}
	return 0
}

// BeginDrag enters Dragging. It is a no-op while already dragging.
func (c *Controller) BeginDrag() {
	if c.state == Dragging {
		return
	}
	c.transition(Dragging)
}

// Release leaves Dragging, commands the snap scroll and returns the target.
// A release without a preceding BeginDrag (a wheel gesture going idle) is
// treated as an implicit drag start followed by the release.
func (c *Controller) Release(dir scroll.Direction) float64 {
	c.BeginDrag()

	target := c.Target(dir)
	next := Expanded
	if dir == scroll.Down {
		next = Collapsed
	}
	c.transition(next)

	observability.Scroll().OnRelease(dir.String(), target)
	c.logger.Debug("snap", "direction", dir, "target", target, "animated", c.animated)
	c.scroller.ScrollTo(target, c.animated)
	return target
}

// SnapTo commands a jump to the nearer rest position and returns it: targets
// below half the collapsed height resolve to 0 (EXPANDED), the rest to the
// collapsed height (COLLAPSED). The controller passes through Dragging so
// observers see the same transitions as a release.
func (c *Controller) SnapTo(target float64) float64 {
	c.BeginDrag()

	next, rest := Expanded, 0.0
	if target >= c.collapsed/2 {
		next, rest = Collapsed, c.collapsed
	}
	c.transition(next)

	c.logger.Debug("snap jump", "requested", target, "target", rest, "animated", c.animated)
	c.scroller.ScrollTo(rest, c.animated)
	return rest
}

// Reset returns the controller to Expanded without issuing a command.
func (c *Controller) Reset() {
	c.state = Expanded
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	observability.Snap().OnTransition(from.String(), to.String())
	c.logger.Debug("snap transition", "from", from, "to", to)
}
