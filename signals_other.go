//go:build windows || plan9 || js
// +build windows plan9 js

package matcha

// canSuspendProcess reports whether the current platform supports
// ctrl+z style process suspension. Windows, plan9 and js/wasm have no
// equivalent of SIGTSTP.
const canSuspendProcess = false

// listenForSignals installs no signal handlers on these platforms; it
// only waits for stop. They have no SIGWINCH/SIGTSTP/SIGCONT
// equivalents, so window size changes are only detected on startup and
// after RestoreTerminal.
func (p *Program) listenForSignals(stop <-chan struct{}) {
	<-stop
}

func suspendProcess() {}
