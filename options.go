package matcha

import (
	"context"
	"io"
	"sync/atomic"
	"time"
)

// ProgramOption is used to set options when initializing a Program.
// Program can accept a variable number of options.
//
// Example usage:
//
//	p := NewProgram(model, WithInput(someInput), WithOutput(someOutput))
type ProgramOption func(*Program)

// WithContext lets you specify a context in which to run the Program.
// This is useful if you want to cancel the execution from outside. When
// a Program gets cancelled it will exit with an ErrProgramKilled error.
func WithContext(ctx context.Context) ProgramOption {
	return func(p *Program) {
		p.externalCtx = ctx
	}
}

// WithOutput sets the output which, by default, is stdout. In most
// cases you won't need to use this.
func WithOutput(output io.Writer) ProgramOption {
	return func(p *Program) {
		p.output = output
	}
}

// WithInput sets the input which, by default, is stdin. In most cases
// you won't need to use this. To disable input entirely pass nil.
func WithInput(input io.Reader) ProgramOption {
	return func(p *Program) {
		p.input = input
		p.inputType = customInput
	}
}

// WithoutSignalHandler disables the signal handler that matcha sets up
// by default. With this enabled, Program.Run will not automatically
// exit on SIGINT or SIGTERM.
func WithoutSignalHandler() ProgramOption {
	return func(p *Program) {
		p.withoutSignalHandler = true
	}
}

// WithoutCatchPanics disables the panic-catching behavior applied by
// default. If panics aren't caught, the terminal is left in a broken
// intermediate state on a panic.
func WithoutCatchPanics() ProgramOption {
	return func(p *Program) {
		p.withoutCatchPanics = true
	}
}

// WithoutRenderer disables the renderer entirely. This is useful for
// testing a program's Update and Init functions without rendering
// anything.
func WithoutRenderer() ProgramOption {
	return func(p *Program) {
		p.withoutRenderer = true
	}
}

// WithAltScreen starts the program with the alternate screen buffer
// enabled, entered before the first frame is rendered.
func WithAltScreen() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withAltScreen
	}
}

// WithMouseCellMotion starts the program with mouse cell motion
// reporting enabled (press, release, and motion events while a button
// is held).
func WithMouseCellMotion() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withMouseCellMotion
		p.startupOptions &^= withMouseAllMotion
	}
}

// WithMouseAllMotion starts the program with mouse all-motion reporting
// enabled (every motion event, with or without a button held).
//
// Note that many modern terminals can support both all-motion and
// SGR mouse modes simultaneously, but enabling this may have a
// noticeable effect on battery life on some devices.
func WithMouseAllMotion() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withMouseAllMotion
		p.startupOptions &^= withMouseCellMotion
	}
}

// WithoutBracketedPaste starts the program with bracketed paste
// disabled. Bracketed paste is enabled by default.
func WithoutBracketedPaste() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withoutBracketedPaste
	}
}

// WithReportFocus starts the program with terminal focus reporting
// enabled, delivering FocusMsg and BlurMsg when the terminal gains or
// loses focus.
func WithReportFocus() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withReportFocus
	}
}

// WithFPS sets a custom maximum FPS at which the renderer should run.
// If fps is less than 1, the default is used. The default is 60, and
// it's clamped to a [1, 120] range.
func WithFPS(fps int) ProgramOption {
	return func(p *Program) {
		p.fps = fps
	}
}

// WithANSICompressor removes redundant ANSI sequences to produce
// potentially smaller output, at the cost of some processing overhead.
// This feature is provisional and may be removed in a future version
// of matcha.
func WithANSICompressor() ProgramOption {
	return func(p *Program) {
		p.startupOptions |= withANSICompressor
	}
}

// WithoutSignals will ignore OS signals. This can be useful when
// you're using SIGINT/SIGTERM yourself, or orchestrating multiple
// Programs.
func WithoutSignals() ProgramOption {
	return func(p *Program) {
		atomic.StoreUint32(&p.ignoreSignals, 1)
	}
}

// WithEnvironment sets the environment variables stored on the program
// in place of os.Environ(). The program does not derive a color profile
// or background color from them. This is seldom needed outside of
// testing.
func WithEnvironment(env []string) ProgramOption {
	return func(p *Program) {
		p.environ = env
	}
}

// WithWindowSize sets the initial window size, skipping the initial
// probe used to detect it. Useful when output isn't a TTY, such as in
// tests.
func WithWindowSize(width, height int) ProgramOption {
	return func(p *Program) {
		p.width = width
		p.height = height
		p.fixedSize = true
	}
}

// MsgFilter can filter or modify messages before they reach the
// program's Update function. Returning nil drops the message entirely.
type MsgFilter func(Model, Msg) Msg

// WithFilter supplies an event filter that will be invoked before
// matcha processes a Msg. The filter can return a different Msg to
// replace the one being processed, or nil to drop it. One common use is
// intercepting InterruptMsg to prompt before quitting.
func WithFilter(filter MsgFilter) ProgramOption {
	return func(p *Program) {
		p.filter = filter
	}
}

// WithAddedFilter chains an additional filter after any previously
// installed filter, running the new filter on whatever message the
// prior filter (if any) produced.
func WithAddedFilter(filter MsgFilter) ProgramOption {
	return func(p *Program) {
		prev := p.filter
		if prev == nil {
			p.filter = filter
			return
		}
		p.filter = func(m Model, msg Msg) Msg {
			msg = prev(m, msg)
			if msg == nil {
				return nil
			}
			return filter(m, msg)
		}
	}
}

// MouseThrottleFilter returns a MsgFilter that drops mouse motion and
// mouse wheel events that arrive more often than throttle allows,
// letting a program avoid being overwhelmed by a fast-moving cursor.
func MouseThrottleFilter(throttle time.Duration) MsgFilter {
	var last time.Time
	return func(_ Model, msg Msg) Msg {
		m, ok := msg.(MouseMsg)
		if !ok {
			return msg
		}
		if m.Action != MouseActionMotion && m.Action != MouseActionWheel {
			return msg
		}
		now := time.Now()
		if now.Sub(last) < throttle {
			return nil
		}
		last = now
		return msg
	}
}

// startupOption is a bitmask of boot-time terminal modes requested via
// ProgramOption, applied once at the start of Run.
type startupOption int

const (
	withAltScreen startupOption = 1 << iota
	withMouseCellMotion
	withMouseAllMotion
	withoutBracketedPaste
	withReportFocus
	withANSICompressor
)

func (s startupOption) has(option startupOption) bool {
	return s&option != 0
}

// inputType classifies where Program reads its input from, used to
// decide whether to probe window size, enter raw mode, and so on.
type inputType int

const (
	defaultInput inputType = iota
	ttyInput
	customInput
)
