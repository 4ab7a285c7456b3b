package matcha

// renderer is the internal interface a Program drives to turn a
// Model's View output into terminal bytes. standardRenderer is the
// only implementation that writes output; the interface exists so Program doesn't need to
// know about framerates, diffing, or ignored-line bookkeeping directly,
// and so WithoutRenderer can swap in a no-op.
type renderer interface {
	start()
	stop()
	kill()

	write(string)
	repaint()
	clearScreen()

	altScreen() bool
	enterAltScreen()
	exitAltScreen()

	showCursor()
	hideCursor()

	enableMouseCellMotion()
	disableMouseCellMotion()
	enableMouseAllMotion()
	disableMouseAllMotion()
	enableMouseSGRMode()
	disableMouseSGRMode()

	enableBracketedPaste()
	disableBracketedPaste()
	bracketedPasteActive() bool

	enableReportFocus()
	disableReportFocus()
	reportFocus() bool

	setWindowTitle(string)

	setIgnoredLines(from, to int)
	clearIgnoredLines()

	handleMessages(Msg)
}

// nilRenderer discards all output. It backs WithoutRenderer, letting a
// program's Init/Update logic be exercised (in tests, for example)
// without writing to a terminal.
type nilRenderer struct{}

func (nilRenderer) start()          {}
func (nilRenderer) stop()           {}
func (nilRenderer) kill()           {}
func (nilRenderer) write(string)    {}
func (nilRenderer) repaint()        {}
func (nilRenderer) clearScreen()    {}
func (nilRenderer) altScreen() bool { return false }
func (nilRenderer) enterAltScreen() {}
func (nilRenderer) exitAltScreen()  {}
func (nilRenderer) showCursor()     {}
func (nilRenderer) hideCursor()     {}

func (nilRenderer) enableMouseCellMotion()  {}
func (nilRenderer) disableMouseCellMotion() {}
func (nilRenderer) enableMouseAllMotion()   {}
func (nilRenderer) disableMouseAllMotion()  {}
func (nilRenderer) enableMouseSGRMode()     {}
func (nilRenderer) disableMouseSGRMode()    {}

func (nilRenderer) enableBracketedPaste()      {}
func (nilRenderer) disableBracketedPaste()     {}
func (nilRenderer) bracketedPasteActive() bool { return false }

func (nilRenderer) enableReportFocus()  {}
func (nilRenderer) disableReportFocus() {}
func (nilRenderer) reportFocus() bool   { return false }

func (nilRenderer) setWindowTitle(string) {}

func (nilRenderer) setIgnoredLines(from, to int) {}
func (nilRenderer) clearIgnoredLines()           {}

func (nilRenderer) handleMessages(Msg) {}

// repaintMsg forces the renderer to discard its diff cache and redraw
// the whole frame from scratch on the next flush, e.g. after a resume
// from suspend or an explicit ForceRepaint.
type repaintMsg struct{}

// ForceRepaint forces a full repaint on the next render, bypassing the
// line diff. Useful after the terminal has been written to out of
// band, such as after ReleaseTerminal/RestoreTerminal.
func ForceRepaint() Msg {
	return repaintMsg{}
}
