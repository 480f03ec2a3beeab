// Package statechart renders the snap controller state machine as a diagram.
//
// # Usage
//
//	dot := statechart.ToDOT(statechart.Options{Initial: true})
//	svg, err := statechart.RenderSVG(dot)
//
// States come from [snap.States] and edges from [snap.Transitions], so the
// diagram always matches the controller. Resting states are drawn as double
// circles; DRAGGING is drawn as a plain ellipse.
//
// # DOT Format
//
// [ToDOT] output can be piped to any Graphviz tool:
//
//	scrollhead states --format dot | dot -Tpng > states.png
//
// [RenderSVG] uses the embedded WebAssembly build of Graphviz, so no system
// install is needed.
package statechart
