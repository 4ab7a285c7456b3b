package matcha

import (
	"bytes"
	"io"
	"reflect"
	"testing"
	"time"
)

func TestNewDriverWrapsReader(t *testing.T) {
	msgs := make(chan Msg, 8)
	errs := make(chan error, 1)

	d, err := newDriver(bytes.NewBufferString("a"), msgs, errs)
	if err != nil {
		t.Fatalf("newDriver returned error: %v", err)
	}
	if d.parser == nil {
		t.Error("driver should own a parser")
	}
}

func TestDriverReceiveEventsDecodesInput(t *testing.T) {
	msgs := make(chan Msg, 8)
	errs := make(chan error, 1)

	r, w := io.Pipe()
	d, err := newDriver(r, msgs, errs)
	if err != nil {
		t.Fatalf("newDriver returned error: %v", err)
	}

	go d.receiveEvents()

	go func() {
		_, _ = w.Write([]byte("a"))
	}()

	select {
	case msg := <-msgs:
		want := KeyMsg{Type: KeyRunes, Runes: []rune("a")}
		if !reflect.DeepEqual(msg, want) {
			t.Errorf("got %#v, want %#v", msg, want)
		}
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for decoded message")
	}

	d.Cancel()
	_ = w.Close()
	select {
	case <-d.done:
	case <-time.After(time.Second):
		t.Fatal("receiveEvents did not exit after Cancel")
	}
}

func TestDriverTreatsEOFAsGracefulEnd(t *testing.T) {
	msgs := make(chan Msg, 8)
	errs := make(chan error, 1)

	d, err := newDriver(bytes.NewBuffer(nil), msgs, errs)
	if err != nil {
		t.Fatalf("newDriver returned error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		d.receiveEvents()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("receiveEvents did not return on EOF")
	}

	select {
	case err := <-errs:
		t.Errorf("EOF on a finite input should not be reported as an error, got %v", err)
	default:
	}
}

func TestAwaitingEscapeDetectsBareEsc(t *testing.T) {
	d := &driver{parser: newInputParser()}
	if d.awaitingEscape() {
		t.Error("a fresh parser should not be awaiting an escape resolution")
	}
	d.parser.Feed([]byte{ansiESC})
	if !d.awaitingEscape() {
		t.Error("after a bare ESC byte, the driver should be awaiting escape resolution")
	}
	d.parser.Feed([]byte{'['})
	if d.awaitingEscape() {
		t.Error("once a CSI sequence is underway, the driver is no longer awaiting a bare escape")
	}
}
