package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/scrollhead/pkg/header"
)

// The curves are tuned for a phone screen this many pixels wide; the
// terminal width is mapped onto it.
const logicalWidth = 375.0

// Header layout in header pixels, measured from the top of the header.
const (
	searchY     = 20
	searchLeft  = 16
	searchRight = 88 // room for the bell and avatar
	iconY       = 20 // below the upper header
	labelY      = 60 // below the upper header
	bellX       = logicalWidth - 64
	avatarX     = logicalWidth - 32
)

// Ink below this opacity is not drawn.
const minOpacity = 0.05

const (
	cursorRune = '▏'
	searchIcon = "⌕ "
	bellRune   = '⍾'
	avatarRune = '◉'
)

var (
	headerBg = mustHex("#2A00A2")
	pillBg   = mustHex("#4B2BC4")
	fgWhite  = mustHex("#FFFFFF")
	fgMuted  = mustHex("#A99BE0")

	featureColors = map[header.Feature]colorful.Color{
		header.Deposit:  mustHex("#FFB547"),
		header.Withdraw: mustHex("#4ADE80"),
		header.QR:       mustHex("#60A5FA"),
		header.Scan:     mustHex("#F472B6"),
	}
	featureGlyphs = map[header.Feature]rune{
		header.Deposit:  '↓',
		header.Withdraw: '↑',
		header.QR:       '▦',
		header.Scan:     '⌖',
	}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// =============================================================================
// Canvas
// =============================================================================

type cell struct {
	r  rune
	fg colorful.Color
	bg colorful.Color
}

// canvas is a grid of cells painted back to front. Opacity is applied by
// blending the ink into whatever background the cell already has.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int, bg colorful.Color) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: bg, bg: bg}
	}
	return c
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

func (c *canvas) set(x, y int, r rune, fg colorful.Color, opacity float64) {
	cl := c.at(x, y)
	if cl == nil || opacity < minOpacity {
		return
	}
	cl.r = r
	cl.fg = cl.bg.BlendRgb(fg, clamp01(opacity))
}

func (c *canvas) text(x, y int, s string, fg colorful.Color, opacity float64) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, fg, opacity)
	}
}

func (c *canvas) fill(x, y, w int, bg colorful.Color, opacity float64) {
	if opacity < minOpacity {
		return
	}
	for i := 0; i < w; i++ {
		if cl := c.at(x+i, y); cl != nil {
			cl.bg = cl.bg.BlendRgb(bg, clamp01(opacity))
			if cl.r == ' ' {
				cl.fg = cl.bg
			}
		}
	}
}

// String renders the canvas, one lipgloss segment per run of equal colours.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var (
			run     []rune
			fg, bg  string
			started bool
		)
		flush := func() {
			if len(run) == 0 {
				return
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
			b.WriteString(style.Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			cfg, cbg := cl.fg.Hex(), cl.bg.Hex()
			if started && (cfg != fg || cbg != bg) {
				flush()
			}
			fg, bg, started = cfg, cbg, true
			run = append(run, cl.r)
		}
		flush()
	}
	return b.String()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// =============================================================================
// Geometry
// =============================================================================

// geometry maps header pixels onto terminal cells.
type geometry struct {
	pxPerCol float64
	pxPerRow float64
}

func newGeometry(width int, rowHeight float64) geometry {
	return geometry{pxPerCol: logicalWidth / float64(width), pxPerRow: rowHeight}
}

func (g geometry) col(px float64) int { return int(math.Round(px / g.pxPerCol)) }
func (g geometry) row(px float64) int { return int(math.Floor(px / g.pxPerRow)) }

// headerRows is the visible header height in rows. The header shrinks by the
// driver value until it rests at the collapsed height.
func (m screenModel) headerRows() int {
	h := m.cfg.Header
	px := h.UpperHeight + h.LowerHeight - math.Max(0, math.Min(m.screen.DriverValue(), h.CollapsedHeight))
	rows := int(math.Ceil(px / m.cfg.Scroll.RowHeight))
	return max(1, min(rows, m.height-1))
}

// =============================================================================
// View
// =============================================================================

func (m screenModel) View() string {
	if m.quitting {
		return ""
	}
	w := max(m.width, 20)
	hr := m.headerRows()

	c := newCanvas(w, hr, headerBg)
	drawHeader(c, newGeometry(w, m.cfg.Scroll.RowHeight), m.screen.Frame(), m.cfg.Header.UpperHeight, m.searchState())

	var b strings.Builder
	b.WriteString(c.String())
	for _, line := range m.contentLines(w, m.height-hr-1) {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	b.WriteByte('\n')
	b.WriteString(m.statusLine(w))
	return b.String()
}

type searchState struct {
	value       string
	placeholder string
	focused     bool
}

func (m screenModel) searchState() searchState {
	return searchState{
		value:       m.search.Value(),
		placeholder: m.search.Placeholder,
		focused:     m.search.Focused(),
	}
}

func drawHeader(c *canvas, g geometry, f header.Frame, upper float64, st searchState) {
	drawSearch(c, g, f.Search, st)
	c.set(g.col(bellX), g.row(searchY), bellRune, fgWhite, 1)
	c.set(g.col(avatarX), g.row(searchY), avatarRune, fgWhite, 1)

	n := float64(len(f.Features))
	for i, fs := range f.Features {
		center := (float64(i)+0.5)*logicalWidth/n + fs.TranslateX
		x := g.col(center)
		glyph := featureGlyphs[fs.Feature]

		y := g.row(upper + iconY + fs.TranslateY)
		c.text(x-1, y, "("+string(glyph)+")", featureColors[fs.Feature], fs.CircleOpacity)
		if fs.IconOpacity > fs.CircleOpacity {
			c.set(x, y, glyph, fgWhite, fs.IconOpacity)
		}

		label := []rune(fs.Label)
		shown := int(math.Round(float64(len(label)) * fs.LabelScale))
		if shown > 0 {
			start := (len(label) - shown) / 2
			c.text(x-shown/2, g.row(upper+labelY+fs.TranslateY), string(label[start:start+shown]), fgWhite, fs.LabelOpacity)
		}
	}
}

func drawSearch(c *canvas, g geometry, s header.SearchStyle, st searchState) {
	full := logicalWidth - searchLeft - searchRight
	// Scaling is about the bar's centre.
	left := searchLeft + full*(1-s.ScaleX)/2 + s.TranslateX
	w := g.col(full * s.ScaleX)
	if w < 1 {
		return
	}
	x, y := g.col(left), g.row(searchY)
	c.fill(x, y, w, pillBg, s.Opacity)

	text, ink := st.value, fgWhite
	if text == "" && !st.focused {
		text, ink = st.placeholder, fgMuted
	}
	content := []rune(searchIcon + text)
	if st.focused {
		content = append(content, cursorRune)
	}
	if limit := max(w-2, 0); len(content) > limit {
		content = content[:limit]
	}
	c.text(x+1, y, string(content), ink, s.Opacity)
}

// contentLines renders n rows of the list under the header. The list scrolls
// once the header has collapsed; overscroll past the top leaves blank rows.
func (m screenModel) contentLines(width, n int) []string {
	if n <= 0 {
		return nil
	}
	rowH := m.cfg.Scroll.RowHeight
	off := m.screen.Offset()

	list := append([]string{m.cfg.Content.Title}, m.rows()...)
	blank := int(math.Max(0, -off) / rowH)
	first := int(math.Max(0, off-m.cfg.Header.CollapsedHeight) / rowH)

	clip := lipgloss.NewStyle().MaxWidth(width)
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := first + i - blank
		switch {
		case idx < 0 || idx >= len(list):
			lines = append(lines, "")
		case idx == 0:
			lines = append(lines, clip.Render(" "+StyleTitle.Render(list[0])))
		default:
			lines = append(lines, clip.Render("  "+StyleValue.Render(list[idx])))
		}
	}
	return lines
}

func (m screenModel) statusLine(width int) string {
	sep := StyleDim.Render(" · ")
	parts := []string{
		StyleDim.Render("offset ") + StyleNumber.Render(fmtNum(m.screen.Offset())),
		StyleDim.Render("value ") + StyleNumber.Render(fmtNum(m.screen.DriverValue())),
		StyleHighlight.Render(m.screen.Direction().String()),
		StyleHighlight.Render(m.screen.State().String()),
	}
	if m.rec != nil {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("● REC %d", m.rec.Len())))
	}

	var help []string
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	line := " " + strings.Join(parts, sep) + "   " + StyleDim.Render(strings.Join(help, "  "))
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
