package matcha

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Batch performs a bunch of commands concurrently with no ordering
// guarantees about the results. Use Batch to return several commands
// from Update.
//
//	return m, Batch(someCmd, anotherCmd)
func Batch(cmds ...Cmd) Cmd {
	var validCmds []Cmd
	for _, c := range cmds {
		if c == nil {
			continue
		}
		validCmds = append(validCmds, c)
	}
	switch len(validCmds) {
	case 0:
		return nil
	case 1:
		return validCmds[0]
	default:
		return func() Msg {
			return batchMsg(validCmds)
		}
	}
}

// batchMsg is the internal message used to run a batch of commands. An
// eventLoop receiving a batchMsg runs each command in a separate
// goroutine, as soon as it's received; it does not wait for the batch
// to finish.
type batchMsg []Cmd

// Sequence runs the given commands one at a time, in order. Contrast
// this with Batch, which runs commands concurrently.
func Sequence(cmds ...Cmd) Cmd {
	return func() Msg {
		return sequenceMsg(cmds)
	}
}

// sequenceMsg is the internal message used to run commands in order.
type sequenceMsg []Cmd

// runSequence executes each command in turn, in order, discarding nil
// entries and nil results. A nested Batch inside a Sequence runs its
// commands concurrently (via errgroup) and the Sequence only advances
// once that batch has completed, preserving the "one step at a time"
// contract for the outer sequence while still letting a batched step
// run its members in parallel.
func runSequence(cmds []Cmd, send func(Msg)) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		msg := cmd()
		if batch, ok := msg.(batchMsg); ok {
			var g errgroup.Group
			for _, c := range batch {
				c := c
				g.Go(func() error {
					if m := c(); m != nil {
						send(m)
					}
					return nil
				})
			}
			_ = g.Wait()
			continue
		}
		if msg != nil {
			send(msg)
		}
	}
}

// Tick produces a command that waits for the given duration and then
// returns fn applied to the time the timer fired. The timer begins
// when the Cmd returned by Tick is actually run, not when Tick is
// called.
func Tick(d time.Duration, fn func(t time.Time) Msg) Cmd {
	return func() Msg {
		t := <-time.After(d)
		return fn(t)
	}
}

// everyMsg is the internal message an Every command produces. It
// carries the message due for delivery to Update and the Cmd that
// will produce the following tick once the event loop resubmits it,
// letting Every keep retriggering itself without the model having to
// reschedule it.
type everyMsg struct {
	msg  Msg
	next Cmd
}

// Every produces a command that ticks in sync with the system clock,
// aligned to duration boundaries rather than to when the command
// started, and keeps retriggering itself every interval for as long as
// the program runs. So, for example, Every(time.Second, ...) fires at
// the start of every second rather than one second after the program
// happened to call it, and again at every second after that.
//
// Unlike Tick, an Every command is not exhausted after one message;
// the event loop resubmits it on every delivery, until the program
// terminates.
func Every(d time.Duration, fn func(t time.Time) Msg) Cmd {
	var tick Cmd
	tick = func() Msg {
		n := time.Now()
		wait := n.Truncate(d).Add(d).Sub(n)
		t := <-time.After(wait)
		return everyMsg{msg: fn(t), next: tick}
	}
	return tick
}

// setWindowTitleMsg is an internal message used to set the window
// title.
type setWindowTitleMsg string

// SetWindowTitle produces a command that sets the terminal title.
func SetWindowTitle(title string) Cmd {
	return func() Msg {
		return setWindowTitleMsg(title)
	}
}
