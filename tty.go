package matcha

import (
	"github.com/charmbracelet/x/term"
)

// tty bundles the file descriptor the program reads raw keystrokes
// from together with the terminal state needed to restore cooked mode.
type tty struct {
	fd    uintptr
	state *term.State
	isTTY bool

	// useHardTabs reports whether the terminal's own tab stops can be
	// used for cursor movement instead of writing spaces.
	useHardTabs bool
}

// enterRawMode puts the terminal referenced by fd into raw mode and
// returns a tty value that can later restore it. If fd does not refer
// to a terminal (e.g. input is a pipe or regular file), isTTY is false
// and entering/exiting raw mode are no-ops.
func enterRawMode(fd uintptr) (*tty, error) {
	if !term.IsTerminal(fd) {
		return &tty{fd: fd, isTTY: false}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, &TerminalUnavailableError{Cause: err}
	}
	return &tty{fd: fd, state: state, isTTY: true, useHardTabs: terminalSupportsHardTabs(state)}, nil
}

// restore puts the terminal back into its original (cooked) mode.
func (t *tty) restore() error {
	if t == nil || !t.isTTY || t.state == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		return &TerminalUnavailableError{Cause: err}
	}
	return nil
}

// windowSize probes the current size of the terminal at fd.
func windowSize(fd uintptr) (width, height int, err error) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, &TerminalUnavailableError{Cause: err}
	}
	return w, h, nil
}
