package observability

import (
	"testing"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	s := NoopScrollHooks{}
	s.OnScroll(12, "DOWN")
	s.OnRelease("UP", 0)

	n := NoopSnapHooks{}
	n.OnTransition("DRAGGING", "EXPANDED")
	n.OnAnimationStart(40, 0, "cubic")
	n.OnAnimationEnd(0, false)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Scroll().(NoopScrollHooks); !ok {
		t.Error("Scroll() should return NoopScrollHooks by default")
	}
	if _, ok := Snap().(NoopSnapHooks); !ok {
		t.Error("Snap() should return NoopSnapHooks by default")
	}

	customScroll := &testScrollHooks{}
	SetScrollHooks(customScroll)
	if Scroll() != customScroll {
		t.Error("SetScrollHooks should set custom hooks")
	}

	customSnap := &testSnapHooks{}
	SetSnapHooks(customSnap)
	if Snap() != customSnap {
		t.Error("SetSnapHooks should set custom hooks")
	}

	Reset()
	if _, ok := Scroll().(NoopScrollHooks); !ok {
		t.Error("Reset() should restore NoopScrollHooks")
	}
	if _, ok := Snap().(NoopSnapHooks); !ok {
		t.Error("Reset() should restore NoopSnapHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testScrollHooks{}
	SetScrollHooks(custom)
	SetScrollHooks(nil)
	if Scroll() != custom {
		t.Error("SetScrollHooks(nil) should keep existing hooks")
	}

	SetSnapHooks(nil)
	if _, ok := Snap().(NoopSnapHooks); !ok {
		t.Error("SetSnapHooks(nil) should keep the default")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testScrollHooks{}
	SetScrollHooks(h)
	Scroll().OnScroll(5, "DOWN")
	Scroll().OnRelease("DOWN", 100)

	if h.scrolls != 1 || h.releases != 1 {
		t.Errorf("scrolls=%d releases=%d, want 1 and 1", h.scrolls, h.releases)
	}
}

type testScrollHooks struct {
	scrolls  int
	releases int
}

func (h *testScrollHooks) OnScroll(float64, string)  { h.scrolls++ }
func (h *testScrollHooks) OnRelease(string, float64) { h.releases++ }

type testSnapHooks struct{ NoopSnapHooks }
