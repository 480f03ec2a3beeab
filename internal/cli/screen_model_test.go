package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/scrollhead/pkg/config"
	"github.com/matzehuels/scrollhead/pkg/screen"
	"github.com/matzehuels/scrollhead/pkg/snap"
	"github.com/matzehuels/scrollhead/pkg/trace"
)

func newTestModel(t *testing.T, rec *trace.Recorder) screenModel {
	t.Helper()
	cfg := config.Default()
	opts := screen.OptionsFromConfig(cfg)
	opts.Logger = log.New(io.Discard)
	s, err := screen.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	m := newScreenModel(s, cfg, rec)
	m, _ = update(m, tea.WindowSizeMsg{Width: 60, Height: 24})
	return m
}

func update(m screenModel, msg tea.Msg) (screenModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(screenModel), cmd
}

// settle delivers frame messages until the animation finishes.
func settle(t *testing.T, m screenModel) screenModel {
	t.Helper()
	for i := 0; i < 200 && m.screen.Animating(); i++ {
		m, _ = update(m, frameMsg{})
	}
	if m.screen.Animating() {
		t.Fatal("animation did not settle")
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyScrollThenIdleRelease(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatal("scroll should schedule an idle release")
	}
	if m.screen.Offset() != m.cfg.Scroll.Step || m.screen.State() != snap.Dragging {
		t.Fatalf("offset=%v state=%v", m.screen.Offset(), m.screen.State())
	}

	m, cmd = update(m, idleMsg{seq: m.idleSeq})
	if cmd == nil || !m.ticking {
		t.Fatal("release should start the frame loop")
	}
	if m.screen.State() != snap.Collapsed {
		t.Errorf("State() = %v, want COLLAPSED", m.screen.State())
	}

	m = settle(t, m)
	if m.screen.Offset() != 100 || m.ticking {
		t.Errorf("offset=%v ticking=%v, want 100 and stopped", m.screen.Offset(), m.ticking)
	}
}

func TestStaleIdleIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	stale := m.idleSeq
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = update(m, idleMsg{seq: stale})
	if m.screen.State() != snap.Dragging {
		t.Errorf("stale idle released: state %v", m.screen.State())
	}
}

func TestMouseDrag(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(m, tea.MouseMsg{X: 10, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.dragging || m.screen.State() != snap.Dragging {
		t.Fatal("press should start a drag")
	}
	m, _ = update(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if want := 2 * m.cfg.Scroll.RowHeight; m.screen.Offset() != want {
		t.Errorf("Offset() = %v, want %v", m.screen.Offset(), want)
	}

	// An idle tick during a held drag must not release.
	m, _ = update(m, idleMsg{seq: m.idleSeq})
	if m.screen.State() != snap.Dragging {
		t.Error("idle released a held drag")
	}

	m, _ = update(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.dragging || m.screen.State() != snap.Collapsed {
		t.Errorf("dragging=%v state=%v", m.dragging, m.screen.State())
	}
}

func TestMouseWheel(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m, _ = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.screen.Offset() != m.cfg.Scroll.Step {
		t.Errorf("Offset() = %v, want %v", m.screen.Offset(), m.cfg.Scroll.Step)
	}
	m, _ = update(m, idleMsg{seq: m.idleSeq})
	if got, _ := m.screen.AnimationTarget(); got != 0 {
		t.Errorf("wheel up then idle should expand, target %v", got)
	}
}

func TestUserScrollInterruptsSnap(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, idleMsg{seq: m.idleSeq})
	m, _ = update(m, frameMsg{})

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.screen.Animating() {
		t.Error("key scroll should cancel the snap animation")
	}
	// The pending frame arrives and stops the loop.
	m, cmd := update(m, frameMsg{})
	if cmd != nil || m.ticking {
		t.Error("frame loop should stop when nothing animates")
	}
}

func TestCollapseAndExpandKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnd})
	m = settle(t, m)
	if m.screen.Offset() != 100 {
		t.Errorf("end: Offset() = %v, want 100", m.screen.Offset())
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyHome})
	m = settle(t, m)
	if m.screen.Offset() != 0 {
		t.Errorf("home: Offset() = %v, want 0", m.screen.Offset())
	}
}

func TestJumpKeysKeepStateAtRest(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, idleMsg{seq: m.idleSeq})
	m = settle(t, m)
	if m.screen.Offset() != 100 || m.screen.State() != snap.Collapsed {
		t.Fatalf("after release: offset=%v state=%v", m.screen.Offset(), m.screen.State())
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyHome})
	m = settle(t, m)
	if m.screen.Offset() != 0 || m.screen.State() != snap.Expanded {
		t.Errorf("after home: offset=%v state=%v, want 0 EXPANDED", m.screen.Offset(), m.screen.State())
	}
	if !strings.Contains(m.statusLine(m.width), "EXPANDED") {
		t.Errorf("status line %q should show EXPANDED", m.statusLine(m.width))
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnd})
	m = settle(t, m)
	if m.screen.Offset() != 100 || m.screen.State() != snap.Collapsed {
		t.Errorf("after end: offset=%v state=%v, want 100 COLLAPSED", m.screen.Offset(), m.screen.State())
	}

	m, _ = update(m, keyRunes("/"))
	m = settle(t, m)
	if m.screen.State() != snap.Expanded {
		t.Errorf("after search: State() = %v, want EXPANDED", m.screen.State())
	}
}

func TestSearchFilters(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(m, keyRunes("/"))
	if !m.search.Focused() {
		t.Fatal("/ should focus the search bar")
	}

	m, _ = update(m, keyRunes("q"))
	if m.quitting {
		t.Fatal("typing q in the search bar must not quit")
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	for _, r := range "grab" {
		m, _ = update(m, keyRunes(string(r)))
	}
	if m.search.Value() != "grab" {
		t.Fatalf("search value = %q, want grab", m.search.Value())
	}
	if rows := m.rows(); len(rows) != 1 || !strings.HasPrefix(rows[0], "Grab") {
		t.Errorf("rows() = %q, want the Grab row", rows)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.search.Focused() || m.search.Value() != "" {
		t.Error("esc should clear and blur the search bar")
	}
	if len(m.rows()) != len(m.cfg.Content.Rows) {
		t.Error("clearing the filter should restore every row")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(m, keyRunes("q"))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestRecordingReplays(t *testing.T) {
	rec, err := trace.NewRecorder("session", trace.WithFrameClock())
	if err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, rec)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(m, idleMsg{seq: m.idleSeq})
	m = settle(t, m)

	tr := rec.Trace()
	if tr.Count(trace.KindScroll) != 3 || tr.Count(trace.KindRelease) != 1 || tr.Count(trace.KindTick) == 0 {
		t.Fatalf("recorded %v", tr.Events)
	}

	fresh := newTestModel(t, nil)
	res := trace.Replay(fresh.screen, tr)
	if res.Offset != m.screen.Offset() || res.State != m.screen.State() || res.Animating {
		t.Errorf("replay = %+v, live offset=%v state=%v", res, m.screen.Offset(), m.screen.State())
	}
}

func TestViewExpandedAndCollapsed(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	for _, want := range []string{"NẠP TIỀN", "QUÉT MÃ", m.cfg.Content.Title, "EXPANDED"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
	if got := strings.Count(view, "\n") + 1; got != m.height {
		t.Errorf("view has %d lines, want %d", got, m.height)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnd})
	m = settle(t, m)
	view = m.View()
	if strings.Contains(view, "NẠP TIỀN") {
		t.Error("collapsed view should hide the feature labels")
	}
	if m.headerRows() >= 9 {
		t.Errorf("collapsed header rows = %d, want it shrunk", m.headerRows())
	}
}

func TestCanvasOpacity(t *testing.T) {
	c := newCanvas(4, 1, headerBg)
	c.set(0, 0, 'a', fgWhite, 1)
	c.set(1, 0, 'b', fgWhite, 0.5)
	c.set(2, 0, 'c', fgWhite, 0.01)
	c.set(9, 0, 'z', fgWhite, 1) // out of bounds

	if c.at(0, 0).fg.Hex() != "#ffffff" {
		t.Errorf("opaque ink = %s", c.at(0, 0).fg.Hex())
	}
	half := c.at(1, 0).fg
	if half == fgWhite || half == headerBg {
		t.Error("half opacity should blend")
	}
	if c.at(2, 0).r != ' ' {
		t.Error("near-transparent ink should not be drawn")
	}
}
