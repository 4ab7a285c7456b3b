package matcha

import (
	"errors"
	"io"
	"time"

	"github.com/mattn/go-localereader"
	"github.com/muesli/cancelreader"
)

// escapeTimeout is how long the driver waits after a bare ESC byte
// before deciding it was a standalone Escape keypress rather than the
// first byte of a longer sequence.
const escapeTimeout = 50 * time.Millisecond

// driver reads raw bytes from the terminal and turns them into Msg
// values, feeding them to msgs. It owns a cancelreader.CancelReader so
// Close (called from Program.shutdown) can unblock a pending Read.
type driver struct {
	rd     cancelreader.CancelReader
	parser *inputParser
	msgs   chan<- Msg
	errs   chan<- error
	done   chan struct{}
}

// newDriver wraps r for locale-aware decoding and cancelable reads, and
// prepares a driver that will deliver parsed messages to msgs.
func newDriver(r io.Reader, msgs chan<- Msg, errs chan<- error) (*driver, error) {
	localeReader := localereader.NewReader(r)

	cr, err := cancelreader.NewReader(localeReader)
	if err != nil {
		return nil, &InputUnavailableError{Cause: err}
	}

	return &driver{
		rd:     cr,
		parser: newInputParser(),
		msgs:   msgs,
		errs:   errs,
		done:   make(chan struct{}),
	}, nil
}

// Cancel aborts any in-flight Read.
func (d *driver) Cancel() bool { return d.rd.Cancel() }

// Close releases the underlying reader.
func (d *driver) Close() error { return d.rd.Close() }

type readResult struct {
	n   int
	buf [256]byte
	err error
}

// receiveEvents reads from the terminal until Cancel/Close unblocks the
// read or an unrecoverable I/O error occurs, decoding bytes as it goes
// and sending Msg values to msgs. It runs in its own goroutine for the
// lifetime of the program.
//
// Reads happen on a background goroutine so a bare ESC byte can still
// be resolved to a standalone Escape key via escapeTimeout even while
// the next Read call is blocked waiting for more terminal input.
func (d *driver) receiveEvents() {
	defer close(d.done)

	reads := make(chan readResult)
	go func() {
		for {
			var r readResult
			r.n, r.err = d.rd.Read(r.buf[:])
			reads <- r
			if r.err != nil {
				return
			}
		}
	}()

	var escTimer *time.Timer
	var escC <-chan time.Time

	for {
		select {
		case r := <-reads:
			if r.n > 0 {
				for _, msg := range d.parser.Feed(r.buf[:r.n]) {
					d.msgs <- msg
				}
			}
			if d.awaitingEscape() {
				if escTimer == nil {
					escTimer = time.NewTimer(escapeTimeout)
				} else {
					escTimer.Reset(escapeTimeout)
				}
				escC = escTimer.C
			} else {
				escC = nil
			}
			if r.err != nil {
				if cancelreader.IsErrCanceled(r.err) || errors.Is(r.err, io.EOF) {
					// A finite input (a file, a pipe, a test's in-memory
					// buffer) simply ran out of bytes; that's not a fatal
					// condition, so no error is reported. The program
					// keeps running and can still be stopped via
					// Quit/Kill.
					return
				}
				d.errs <- &InputUnavailableError{Cause: r.err}
				return
			}

		case <-escC:
			if msg := d.parser.Timeout(); msg != nil {
				d.msgs <- msg
			}
			escC = nil
		}
	}
}

func (d *driver) awaitingEscape() bool {
	return d.parser.state == stateEscape && len(d.parser.buf) == 1
}
