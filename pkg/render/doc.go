// Package render groups the diagram renderers.
//
// The [statechart] subpackage exports the snap controller's state machine as
// Graphviz DOT and renders it to SVG:
//
//	dot := statechart.ToDOT(statechart.Options{})
//	svg, err := statechart.RenderSVG(dot)
//
// [statechart]: github.com/matzehuels/scrollhead/pkg/render/statechart
package render
