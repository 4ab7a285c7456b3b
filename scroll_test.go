package matcha

import "testing"

func TestSyncScrollAreaProducesInternalMsg(t *testing.T) {
	cmd := SyncScrollArea([]string{"a", "b"}, 1, 5)
	msg := cmd()
	m, ok := msg.(syncScrollAreaMsg)
	if !ok {
		t.Fatalf("got %#v, want syncScrollAreaMsg", msg)
	}
	if m.topBoundary != 1 || m.bottomBoundary != 5 || len(m.lines) != 2 {
		t.Errorf("got %+v, want topBoundary=1 bottomBoundary=5 2 lines", m)
	}
}

func TestClearScrollAreaProducesInternalMsg(t *testing.T) {
	if msg := ClearScrollArea(); msg != (clearScrollAreaMsg{}) {
		t.Errorf("got %#v, want clearScrollAreaMsg{}", msg)
	}
}

func TestScrollUpAndDownProduceInternalMsgs(t *testing.T) {
	up := ScrollUp([]string{"x"}, 2, 10)()
	if _, ok := up.(scrollUpMsg); !ok {
		t.Errorf("ScrollUp produced %#v, want scrollUpMsg", up)
	}
	down := ScrollDown([]string{"y"}, 2, 10)()
	if _, ok := down.(scrollDownMsg); !ok {
		t.Errorf("ScrollDown produced %#v, want scrollDownMsg", down)
	}
}

func TestPrintlnAndPrintfFormatLikeFmt(t *testing.T) {
	msg := Println("a", 1)()
	pm, ok := msg.(printLineMessage)
	if !ok {
		t.Fatalf("got %#v, want printLineMessage", msg)
	}
	if pm.messageBody != "a1" {
		t.Errorf("Println(\"a\", 1).messageBody = %q, want %q (fmt.Sprint semantics)", pm.messageBody, "a1")
	}

	msg = Printf("%s-%d", "b", 2)()
	pm, ok = msg.(printLineMessage)
	if !ok {
		t.Fatalf("got %#v, want printLineMessage", msg)
	}
	if pm.messageBody != "b-2" {
		t.Errorf("Printf messageBody = %q, want %q", pm.messageBody, "b-2")
	}
}
