// Package trace records and replays scroll gesture streams.
//
// A [Trace] is an ordered list of [Event] values: user scrolls, drag starts,
// releases and animation frame ticks. Replaying a trace against a freshly
// mounted [screen.Screen] is deterministic, so a trace captured in the
// interactive screen can be turned into a regression test or inspected from
// the command line.
//
// # Recording
//
//	rec, err := trace.NewRecorder("fling")
//	rec.BeginDrag()
//	rec.Scroll(12)
//	rec.Scroll(40)
//	rec.Release()
//	rec.Tick(16 * time.Millisecond)
//	t := rec.Trace()
//
// # Storage
//
// [FileStore] keeps traces as indented JSON files named after the trace,
// under $XDG_DATA_HOME/scrollhead/traces by default.
//
// # Replay
//
//	res := trace.Replay(scr, t)
//	fmt.Println(res.Direction, res.State, res.DriverValue)
//
// Traces are a developer tool; the screen never restores state from them.
package trace
