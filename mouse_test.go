package matcha

import "testing"

func TestMouseEventString(t *testing.T) {
	cases := []struct {
		name string
		ev   MouseEvent
		want string
	}{
		{"left press", MouseEvent{Button: MouseButtonLeft, Action: MouseActionPress}, "left press"},
		{"wheel up", MouseEvent{Button: MouseButtonWheelUp, Action: MouseActionWheel}, "wheel up"},
		{"plain motion", MouseEvent{Action: MouseActionMotion}, "motion"},
		{"drag motion", MouseEvent{Button: MouseButtonLeft, Action: MouseActionMotion}, "left motion"},
		{"modified release", MouseEvent{Button: MouseButtonRight, Action: MouseActionRelease, Ctrl: true}, "ctrl+right release"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.ev.String(); got != c.want {
				t.Errorf("MouseEvent.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseX10MouseEvent(t *testing.T) {
	// ESC [ M Cb Cx Cy: left press at (3, 5), no modifiers.
	buf := []byte{ansiESC, '[', 'M', byte(0 + 32), byte(3 + 32), byte(5 + 32)}
	ev, ok := parseX10MouseEvent(buf)
	if !ok {
		t.Fatal("parseX10MouseEvent returned ok=false")
	}
	if ev.Button != MouseButtonLeft || ev.Action != MouseActionPress {
		t.Errorf("got button=%v action=%v, want left/press", ev.Button, ev.Action)
	}
	if ev.X != 3 || ev.Y != 5 {
		t.Errorf("got (%d,%d), want (3,5)", ev.X, ev.Y)
	}
}

func TestParseX10MouseEventRelease(t *testing.T) {
	buf := []byte{ansiESC, '[', 'M', byte(3 + 32), byte(1 + 32), byte(1 + 32)}
	ev, ok := parseX10MouseEvent(buf)
	if !ok {
		t.Fatal("parseX10MouseEvent returned ok=false")
	}
	if ev.Action != MouseActionRelease {
		t.Errorf("got action=%v, want release", ev.Action)
	}
}

func TestParseX10MouseEventRejectsWrongShape(t *testing.T) {
	if _, ok := parseX10MouseEvent([]byte{ansiESC, '[', 'M'}); ok {
		t.Error("expected ok=false for truncated buffer")
	}
	if _, ok := parseX10MouseEvent([]byte{'a', 'b', 'c', 'd', 'e', 'f'}); ok {
		t.Error("expected ok=false for non-mouse-report bytes")
	}
}

func TestParseSGRMouseEvent(t *testing.T) {
	// CSI < 0 ; 10 ; 20 M -> left press at (10,20).
	ev, ok := parseSGRMouseEvent([]int{0, 10, 20}, 'M')
	if !ok {
		t.Fatal("parseSGRMouseEvent returned ok=false")
	}
	if ev.Button != MouseButtonLeft || ev.Action != MouseActionPress || ev.X != 10 || ev.Y != 20 {
		t.Errorf("got %+v, want left press at (10,20)", ev)
	}

	// Same button code with 'm' final means release.
	ev, ok = parseSGRMouseEvent([]int{0, 10, 20}, 'm')
	if !ok || ev.Action != MouseActionRelease {
		t.Errorf("got %+v, ok=%v, want release", ev, ok)
	}
}

func TestParseSGRMouseEventWheel(t *testing.T) {
	ev, ok := parseSGRMouseEvent([]int{64, 1, 1}, 'M')
	if !ok || ev.Action != MouseActionWheel || ev.Button != MouseButtonWheelUp {
		t.Errorf("got %+v, ok=%v, want wheel up", ev, ok)
	}
}

func TestParseSGRMouseEventRejectsBadArity(t *testing.T) {
	if _, ok := parseSGRMouseEvent([]int{0, 1}, 'M'); ok {
		t.Error("expected ok=false for too few params")
	}
}
