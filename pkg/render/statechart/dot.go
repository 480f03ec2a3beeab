package statechart

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/scrollhead/pkg/snap"
)

// Options configures state chart rendering.
type Options struct {
	// Initial adds an entry arrow into EXPANDED, the state on mount.
	Initial bool
	// Highlight fills the given state, e.g. the current one.
	Highlight *snap.State
}

// ToDOT converts the snap state machine to Graphviz DOT format.
func ToDOT(opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph snap {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=11];\n")
	buf.WriteString("\n")

	if opts.Initial {
		buf.WriteString("  start [shape=point, width=0.15, label=\"\"];\n")
	}
	for _, s := range snap.States {
		attrs := fmtAttrs(s, opts.Highlight)
		fmt.Fprintf(&buf, "  %q [%s];\n", s.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	if opts.Initial {
		fmt.Fprintf(&buf, "  start -> %q [label=\"mount\"];\n", snap.Expanded.String())
	}
	for _, t := range snap.Transitions() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", t.From.String(), t.To.String(), t.Event)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(s snap.State, highlight *snap.State) []string {
	attrs := []string{fmt.Sprintf("label=%q", s.String())}
	if s == snap.Dragging {
		attrs = append(attrs, "shape=ellipse")
	} else {
		attrs = append(attrs, "shape=doublecircle")
	}
	if highlight != nil && *highlight == s {
		attrs = append(attrs, "fillcolor=\"#2A00A2\"", "fontcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one that carries
// only a zero-origin viewBox and pixel size, so the SVG scales when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
