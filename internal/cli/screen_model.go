package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/scrollhead/pkg/config"
	"github.com/matzehuels/scrollhead/pkg/screen"
	"github.com/matzehuels/scrollhead/pkg/snap"
	"github.com/matzehuels/scrollhead/pkg/trace"
)

const (
	defaultWidth  = 60
	defaultHeight = 24

	searchCharLimit = 32
)

// =============================================================================
// Key Map
// =============================================================================

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Search   key.Binding
	Accept   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Expand:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "expand")),
		Collapse: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "collapse")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Accept:   key.NewBinding(key.WithKeys("enter")),
		Cancel:   key.NewBinding(key.WithKeys("esc")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp lists the bindings shown in the status line.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Expand, k.Collapse, k.Search, k.Quit}
}

// =============================================================================
// Messages
// =============================================================================

// frameMsg advances the snap animation by one frame.
type frameMsg struct{}

// idleMsg fires when the wheel or keyboard has been idle for the release
// interval. Only the message matching the latest seq releases.
type idleMsg struct{ seq int }

// =============================================================================
// Screen Model
// =============================================================================

// screenModel is the bubbletea model for the interactive wallet screen.
type screenModel struct {
	screen *screen.Screen
	cfg    config.Config
	keys   keyMap
	search textinput.Model
	rec    *trace.Recorder

	width  int
	height int

	dragging bool // left button held
	dragY    int
	idleSeq  int
	ticking  bool // a frameMsg is in flight
	quitting bool
}

func newScreenModel(s *screen.Screen, cfg config.Config, rec *trace.Recorder) screenModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Tìm kiếm"
	ti.CharLimit = searchCharLimit

	return screenModel{
		screen: s,
		cfg:    cfg,
		keys:   defaultKeyMap(),
		search: ti,
		rec:    rec,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m screenModel) Init() tea.Cmd {
	return nil
}

func (m screenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case frameMsg:
		return m.onFrame()
	case idleMsg:
		if msg.seq != m.idleSeq || m.dragging || m.screen.State() != snap.Dragging {
			return m, nil
		}
		return m.release()
	case tea.MouseMsg:
		return m.onMouse(msg)
	case tea.KeyMsg:
		if m.search.Focused() {
			return m.onSearchKey(msg)
		}
		return m.onKey(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m screenModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cfg.Scroll.Step
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m.scrollBy(-step)
	case key.Matches(msg, m.keys.Down):
		return m.scrollBy(step)
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollBy(-m.pageHeight())
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollBy(m.pageHeight())
	case key.Matches(msg, m.keys.Expand):
		return m.scrollTo(0)
	case key.Matches(msg, m.keys.Collapse):
		return m.scrollTo(m.screen.CollapsedHeight())
	case key.Matches(msg, m.keys.Search):
		focus := m.search.Focus()
		nm, cmd := m.scrollTo(0)
		return nm, tea.Batch(focus, cmd)
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		return m, nil
	}
	return m, nil
}

func (m screenModel) onSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Accept):
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.search.SetValue("")
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m screenModel) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scrollBy(m.cfg.Scroll.Step)
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scrollBy(-m.cfg.Scroll.Step)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragY = msg.Y
		m.screen.BeginDrag()
		if m.rec != nil {
			m.rec.BeginDrag()
		}
		return m, nil
	case msg.Action == tea.MouseActionMotion && m.dragging:
		// Dragging up moves the content up, which scrolls down.
		delta := float64(m.dragY-msg.Y) * m.cfg.Scroll.RowHeight
		m.dragY = msg.Y
		if delta != 0 {
			m.screen.ScrollBy(delta)
			m.recordScroll()
		}
		return m, nil
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		return m.release()
	}
	return m, nil
}

// scrollBy is a discrete user scroll that releases after the idle interval.
func (m screenModel) scrollBy(delta float64) (tea.Model, tea.Cmd) {
	m.screen.ScrollBy(delta)
	m.recordScroll()

	m.idleSeq++
	seq := m.idleSeq
	return m, tea.Tick(m.cfg.Snap.ReleaseIdle.Duration, func(time.Time) tea.Msg {
		return idleMsg{seq: seq}
	})
}

func (m screenModel) scrollTo(target float64) (tea.Model, tea.Cmd) {
	target = m.screen.SnapTo(target)
	if m.rec != nil {
		m.rec.ScrollTo(target)
	}
	return m.startFrames()
}

func (m screenModel) release() (tea.Model, tea.Cmd) {
	m.screen.Release()
	if m.rec != nil {
		m.rec.Release()
	}
	return m.startFrames()
}

func (m screenModel) startFrames() (tea.Model, tea.Cmd) {
	if !m.screen.Animating() || m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, m.frameCmd()
}

func (m screenModel) frameCmd() tea.Cmd {
	return tea.Tick(m.cfg.Scroll.Throttle.Duration, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m screenModel) onFrame() (tea.Model, tea.Cmd) {
	if !m.screen.Animating() {
		m.ticking = false
		return m, nil
	}
	dt := m.cfg.Scroll.Throttle.Duration
	m.screen.Tick(dt)
	if m.rec != nil {
		m.rec.Tick(dt)
	}
	if m.screen.Animating() {
		return m, m.frameCmd()
	}
	m.ticking = false
	return m, nil
}

func (m screenModel) recordScroll() {
	if m.rec != nil {
		m.rec.Scroll(m.screen.Offset())
	}
}

// pageHeight is the content viewport in pixels.
func (m screenModel) pageHeight() float64 {
	rows := m.height - m.headerRows() - 1
	if rows < 1 {
		rows = 1
	}
	return float64(rows) * m.cfg.Scroll.RowHeight
}

// rows returns the content rows matching the search text.
func (m screenModel) rows() []string {
	q := strings.ToLower(strings.TrimSpace(m.search.Value()))
	if q == "" {
		return m.cfg.Content.Rows
	}
	var out []string
	for _, r := range m.cfg.Content.Rows {
		if strings.Contains(strings.ToLower(r), q) {
			out = append(out, r)
		}
	}
	return out
}
