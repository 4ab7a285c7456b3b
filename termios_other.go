//go:build windows || plan9 || js
// +build windows plan9 js

package matcha

import "github.com/charmbracelet/x/term"

// terminalSupportsHardTabs always reports false on platforms without a
// termios-style Oflag to inspect.
func terminalSupportsHardTabs(*term.State) bool {
	return false
}
