package matcha

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// insertTop scrolls a designated region up, inserting lines at its top
// and pushing existing content in the region down. For this to render
// correctly the caller must have already marked [topBoundary,
// bottomBoundary) as ignored via setIgnoredLines, since this bypasses
// the normal diffing renderer entirely.
func (r *standardRenderer) insertTop(lines []string, topBoundary, bottomBoundary int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	buf := &bytes.Buffer{}

	buf.WriteString(ansi.SetTopBottomMargins(topBoundary, bottomBoundary))
	buf.WriteString(ansi.CursorPosition(0, topBoundary))
	buf.WriteString(ansi.InsertLine(len(lines)))
	buf.WriteString(strings.Join(lines, "\r\n"))
	buf.WriteString(ansi.SetTopBottomMargins(0, r.height))

	buf.WriteString(ansi.CursorPosition(0, r.lastLinesRendered()))

	_, _ = r.out.Write(buf.Bytes())
}

// insertBottom scrolls a designated region down, inserting lines at
// its bottom and pushing existing content in the region up.
func (r *standardRenderer) insertBottom(lines []string, topBoundary, bottomBoundary int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	buf := &bytes.Buffer{}

	buf.WriteString(ansi.SetTopBottomMargins(topBoundary, bottomBoundary))
	buf.WriteString(ansi.CursorPosition(0, bottomBoundary))
	buf.WriteString("\r\n" + strings.Join(lines, "\r\n"))
	buf.WriteString(ansi.SetTopBottomMargins(0, r.height))

	buf.WriteString(ansi.CursorPosition(0, r.lastLinesRendered()))

	_, _ = r.out.Write(buf.Bytes())
}

type syncScrollAreaMsg struct {
	lines          []string
	topBoundary    int
	bottomBoundary int
}

// SyncScrollArea paints the entire region designated as the scrollable
// area. Call it to initialize the region and again on every
// WindowSizeMsg.
func SyncScrollArea(lines []string, topBoundary, bottomBoundary int) Cmd {
	return func() Msg {
		return syncScrollAreaMsg{lines: lines, topBoundary: topBoundary, bottomBoundary: bottomBoundary}
	}
}

type clearScrollAreaMsg struct{}

// ClearScrollArea deallocates the scrollable region, returning those
// lines to the normal diffing renderer.
func ClearScrollArea() Msg {
	return clearScrollAreaMsg{}
}

type scrollUpMsg struct {
	lines          []string
	topBoundary    int
	bottomBoundary int
}

// ScrollUp adds lines to the top of the scrollable region, pushing
// existing lines down; lines pushed out of the region are lost.
func ScrollUp(newLines []string, topBoundary, bottomBoundary int) Cmd {
	return func() Msg {
		return scrollUpMsg{lines: newLines, topBoundary: topBoundary, bottomBoundary: bottomBoundary}
	}
}

type scrollDownMsg struct {
	lines          []string
	topBoundary    int
	bottomBoundary int
}

// ScrollDown adds lines to the bottom of the scrollable region, pushing
// existing lines up; lines pushed out of the region are lost.
func ScrollDown(newLines []string, topBoundary, bottomBoundary int) Cmd {
	return func() Msg {
		return scrollDownMsg{lines: newLines, topBoundary: topBoundary, bottomBoundary: bottomBoundary}
	}
}

type printLineMessage struct {
	messageBody string
}

// Println prints above the program, persisting across renders. Unlike
// fmt.Println (but like log.Println), the message is always printed on
// its own line. No output is produced while the alt screen is active.
func Println(args ...any) Cmd {
	return func() Msg {
		return printLineMessage{messageBody: fmt.Sprint(args...)}
	}
}

// Printf prints above the program using a format string, persisting
// across renders. No output is produced while the alt screen is
// active.
func Printf(template string, args ...any) Cmd {
	return func() Msg {
		return printLineMessage{messageBody: fmt.Sprintf(template, args...)}
	}
}
