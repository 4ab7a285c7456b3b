//go:build darwin || linux || solaris || aix
// +build darwin linux solaris aix

package matcha

import (
	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// terminalSupportsHardTabs reports whether the tty's termios settings
// indicate hardware tab expansion is disabled (TABDLY == TAB0), which
// is the configuration the renderer can safely rely on when deciding
// whether to use '\t' for cursor movement instead of spaces.
func terminalSupportsHardTabs(s *term.State) bool {
	return s.Oflag&unix.TABDLY == unix.TAB0
}
