package trace

import (
	"github.com/matzehuels/scrollhead/pkg/header"
	"github.com/matzehuels/scrollhead/pkg/scroll"
	"github.com/matzehuels/scrollhead/pkg/screen"
	"github.com/matzehuels/scrollhead/pkg/snap"
)

// Result is the screen state after a replay.
type Result struct {
	Offset      float64
	DriverValue float64
	Direction   scroll.Direction
	State       snap.State
	Animating   bool
	Frame       header.Frame

	Scrolls  int
	Releases int
	Ticks    int
	// Targets holds the snap target of every release, in order.
	Targets []float64
}

// Replay mounts s and feeds it every event of t in order. The same trace
// against screens built with the same options always yields the same result.
func Replay(s *screen.Screen, t *Trace) Result {
	s.Mount()
	var res Result
	for _, e := range t.Events {
		switch e.Kind {
		case KindScroll:
			s.Scroll(e.Offset)
			res.Scrolls++
		case KindBeginDrag:
			s.BeginDrag()
		case KindRelease:
			res.Targets = append(res.Targets, s.Release())
			res.Releases++
		case KindScrollTo:
			s.SnapTo(e.Offset)
		case KindTick:
			s.Tick(e.DT)
			res.Ticks++
		}
	}
	res.Offset = s.Offset()
	res.DriverValue = s.DriverValue()
	res.Direction = s.Direction()
	res.State = s.State()
	res.Animating = s.Animating()
	res.Frame = s.Frame()
	return res
}
