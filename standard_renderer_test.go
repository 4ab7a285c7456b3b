package matcha

import (
	"bytes"
	"strings"
	"testing"
)

func newTestRenderer(buf *bytes.Buffer) *standardRenderer {
	r := newRenderer(buf, false, 60).(*standardRenderer)
	r.width = 80
	r.height = 24
	return r
}

func TestRendererWriteThenFlushRendersFullFrame(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.write("hello\nworld")
	r.flush()

	got := out.String()
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Errorf("flushed output %q does not contain both lines", got)
	}
}

func TestRendererFlushSkipsUnchangedFrame(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.write("same")
	r.flush()
	out.Reset()

	r.write("same")
	r.flush()

	if out.Len() != 0 {
		t.Errorf("flush wrote %q for an identical frame, want no output", out.String())
	}
}

func TestRendererFlushOnlyRewritesChangedLines(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.write("line one\nline two\nline three")
	r.flush()
	out.Reset()

	r.write("line one\nCHANGED\nline three")
	r.flush()

	got := out.String()
	if strings.Contains(got, "line one") {
		t.Errorf("unchanged line 0 should have been skipped, got %q", got)
	}
	if !strings.Contains(got, "CHANGED") {
		t.Errorf("changed line should appear in output, got %q", got)
	}
}

func TestRendererRepaintForcesFullRewrite(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.write("hello")
	r.flush()
	out.Reset()

	r.repaint()
	r.write("hello")
	r.flush()

	if !strings.Contains(out.String(), "hello") {
		t.Error("after repaint, an otherwise-unchanged frame should still be rewritten")
	}
}

func TestRendererIgnoredLinesAreSkippedOnFlush(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.setIgnoredLines(1, 2)
	r.write("top\nreserved\nbottom")
	r.flush()

	got := out.String()
	if strings.Contains(got, "reserved") {
		t.Errorf("ignored line should never be painted by flush, got %q", got)
	}
	if !strings.Contains(got, "top") || !strings.Contains(got, "bottom") {
		t.Errorf("non-ignored lines should still render, got %q", got)
	}
}

func TestRendererEmptyFrameStillClearsPriorContent(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.write("something")
	r.flush()
	out.Reset()

	r.write("")
	r.flush()

	// An empty view is internally normalized to a single space so it
	// still produces a render pass rather than silently doing nothing.
	if out.Len() == 0 {
		t.Error("flushing an empty frame after non-empty content should still write something")
	}
}

func TestRendererAltScreenToggle(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	if r.altScreen() {
		t.Fatal("renderer should not start in alt screen")
	}
	r.enterAltScreen()
	if !r.altScreen() {
		t.Error("enterAltScreen should report altScreen() == true")
	}
	r.exitAltScreen()
	if r.altScreen() {
		t.Error("exitAltScreen should report altScreen() == false")
	}
}

func TestRendererBracketedPasteAndFocusFlags(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.enableBracketedPaste()
	if !r.bracketedPasteActive() {
		t.Error("bracketedPasteActive should be true after enableBracketedPaste")
	}
	r.disableBracketedPaste()
	if r.bracketedPasteActive() {
		t.Error("bracketedPasteActive should be false after disableBracketedPaste")
	}

	r.enableReportFocus()
	if !r.reportFocus() {
		t.Error("reportFocus should be true after enableReportFocus")
	}
	r.disableReportFocus()
	if r.reportFocus() {
		t.Error("reportFocus should be false after disableReportFocus")
	}
}

func TestRendererHandleMessagesWindowSizeTriggersRepaint(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.write("hello")
	r.flush()

	r.handleMessages(WindowSizeMsg{Width: 100, Height: 40})
	if r.width != 100 || r.height != 40 {
		t.Errorf("width/height = %d/%d, want 100/40", r.width, r.height)
	}
	if r.lastRender != "" {
		t.Error("handling a WindowSizeMsg should force a repaint (clear lastRender)")
	}
}

func TestRendererQueuedMessageLinesFlushAboveTheFrame(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)

	r.handleMessages(printLineMessage{messageBody: "log line"})
	r.write("view")
	r.flush()

	if !strings.Contains(out.String(), "log line") {
		t.Errorf("queued message line should appear in flushed output, got %q", out.String())
	}
}

func TestRendererNilRendererIsNoop(t *testing.T) {
	var r renderer = nilRenderer{}
	r.start()
	r.write("x")
	r.repaint()
	r.clearScreen()
	r.stop()
	r.kill()
	if r.altScreen() {
		t.Error("nilRenderer.altScreen() should always be false")
	}
}
