package matcha

import "fmt"

// MouseMsg represents a mouse event, such as a click, a wheel movement, or a
// cursor motion report. X and Y are 1-based terminal cell coordinates.
type MouseMsg MouseEvent

// String returns a friendly string representation for a mouse message, e.g.
// "left press" or "ctrl+wheel up".
func (m MouseMsg) String() string { return MouseEvent(m).String() }

// MouseEvent describes a single mouse report.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Shift  bool
	Alt    bool
	Ctrl   bool
}

// String returns a friendly string representation for a mouse event.
func (m MouseEvent) String() string {
	var s string
	if m.Ctrl {
		s += "ctrl+"
	}
	if m.Alt {
		s += "alt+"
	}
	if m.Shift {
		s += "shift+"
	}
	btn := buttonNames[m.Button]
	act := actionNames[m.Action]
	switch m.Action {
	case MouseActionMotion:
		if m.Button == MouseButtonNone {
			return s + "motion"
		}
		return fmt.Sprintf("%s%s motion", s, btn)
	case MouseActionWheel:
		return s + btn
	default:
		return fmt.Sprintf("%s%s %s", s, btn, act)
	}
}

// MouseButton identifies which mouse button (if any) produced an event.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonWheelUp
	MouseButtonWheelDown
	MouseButtonBackward
	MouseButtonForward
)

var buttonNames = map[MouseButton]string{
	MouseButtonNone:      "none",
	MouseButtonLeft:      "left",
	MouseButtonMiddle:    "middle",
	MouseButtonRight:     "right",
	MouseButtonWheelUp:   "wheel up",
	MouseButtonWheelDown: "wheel down",
	MouseButtonBackward:  "backward",
	MouseButtonForward:   "forward",
}

// MouseAction describes what kind of mouse interaction occurred.
type MouseAction int

const (
	MouseActionPress MouseAction = iota
	MouseActionRelease
	MouseActionMotion
	MouseActionWheel
)

var actionNames = map[MouseAction]string{
	MouseActionPress:   "press",
	MouseActionRelease: "release",
	MouseActionMotion:  "motion",
	MouseActionWheel:   "wheel",
}

// MouseMode configures what level of mouse reporting the terminal emits.
type MouseMode int

const (
	// MouseModeDisabled reports no mouse events.
	MouseModeDisabled MouseMode = iota
	// MouseModeCellMotion reports button press/release and motion only
	// while a button is held.
	MouseModeCellMotion
	// MouseModeAllMotion reports button press/release and all motion,
	// including with no buttons held.
	MouseModeAllMotion
)

// parseX10MouseEvent decodes a legacy X10 mouse report:
//
//	ESC [ M Cb Cx Cy
func parseX10MouseEvent(buf []byte) (MouseEvent, bool) {
	if len(buf) != 6 || buf[0] != ansiESC || buf[1] != '[' || buf[2] != 'M' {
		return MouseEvent{}, false
	}

	var m MouseEvent
	e := int(buf[3]) - 32

	switch {
	case e&64 != 0 && e&3 == 0:
		m.Button, m.Action = MouseButtonWheelUp, MouseActionWheel
	case e&64 != 0 && e&3 == 1:
		m.Button, m.Action = MouseButtonWheelDown, MouseActionWheel
	case e&3 == 3:
		m.Button, m.Action = MouseButtonNone, MouseActionRelease
	default:
		switch e & 3 {
		case 0:
			m.Button = MouseButtonLeft
		case 1:
			m.Button = MouseButtonMiddle
		case 2:
			m.Button = MouseButtonRight
		}
		if e&32 != 0 {
			m.Action = MouseActionMotion
		} else {
			m.Action = MouseActionPress
		}
	}

	if e&8 != 0 {
		m.Alt = true
	}
	if e&16 != 0 {
		m.Ctrl = true
	}
	if e&4 != 0 {
		m.Shift = true
	}

	// (1,1) is the terminal's upper left; x,y are 1-based terminal cells.
	m.X = int(buf[4]) - 32
	m.Y = int(buf[5]) - 32

	return m, true
}

// parseSGRMouseEvent decodes an xterm SGR mouse report of the form:
//
//	ESC [ < Cb ; Cx ; Cy M   (press/motion)
//	ESC [ < Cb ; Cx ; Cy m   (release)
//
// params is the semicolon-split set of numeric parameters ({Cb, Cx, Cy}),
// and final is the terminating byte ('M' or 'm').
func parseSGRMouseEvent(params []int, final byte) (MouseEvent, bool) {
	if len(params) != 3 {
		return MouseEvent{}, false
	}

	var m MouseEvent
	b := params[0]

	isMotion := b&32 != 0
	isWheel := b&64 != 0

	switch {
	case isWheel:
		m.Action = MouseActionWheel
		if b&1 != 0 {
			m.Button = MouseButtonWheelDown
		} else {
			m.Button = MouseButtonWheelUp
		}
	case isMotion:
		m.Action = MouseActionMotion
		switch b & 3 {
		case 0:
			m.Button = MouseButtonLeft
		case 1:
			m.Button = MouseButtonMiddle
		case 2:
			m.Button = MouseButtonRight
		case 3:
			m.Button = MouseButtonNone
		}
	default:
		if final == 'm' {
			m.Action = MouseActionRelease
		} else {
			m.Action = MouseActionPress
		}
		switch b & 3 {
		case 0:
			m.Button = MouseButtonLeft
		case 1:
			m.Button = MouseButtonMiddle
		case 2:
			m.Button = MouseButtonRight
		}
		if b&128 != 0 {
			// buttons 8/9 (back/forward) are encoded with bit 7 set.
			if b&1 != 0 {
				m.Button = MouseButtonForward
			} else {
				m.Button = MouseButtonBackward
			}
		}
	}

	if b&4 != 0 {
		m.Shift = true
	}
	if b&8 != 0 {
		m.Alt = true
	}
	if b&16 != 0 {
		m.Ctrl = true
	}

	m.X = params[1]
	m.Y = params[2]

	return m, true
}
