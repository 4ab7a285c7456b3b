package matcha

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// WindowSizeMsg reports the size of the terminal, in character cells,
// and is sent once when the program starts and again after every
// resize.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// channelHandlers tracks background goroutines Run must wait for
// before it can return.
type channelHandlers struct {
	mu  sync.Mutex
	chs []chan struct{}
}

func (h *channelHandlers) add(ch chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.chs = append(h.chs, ch)
}

func (h *channelHandlers) shutdown() {
	h.mu.Lock()
	chs := h.chs
	h.mu.Unlock()
	for _, ch := range chs {
		<-ch
	}
}

// Program is a terminal user interface, built around a Model, that
// reads input, drives Update on every message, and renders View at a
// fixed maximum framerate.
type Program struct {
	initialModel Model

	handlers channelHandlers

	startupOptions startupOption
	startupTitle   string

	inputType inputType

	externalCtx context.Context
	ctx         context.Context
	cancel      context.CancelFunc

	msgs         chan Msg
	errs         chan error
	finished     chan struct{}
	shutdownOnce sync.Once

	output    io.Writer
	outputBuf bytes.Buffer
	outputMtx sync.Mutex

	ttyOutputFd uintptr
	isTTYOutput bool

	renderer renderer

	environ []string
	logger  *log.Logger

	input      io.Reader
	inputFd    uintptr
	isTTYInput bool
	inputTTY   *tty
	drv        *driver

	ignoreSignals uint32

	filter MsgFilter

	fps int

	width, height int
	fixedSize     bool

	mouseAllMotion bool
	mouseActive    bool
	bracketedPaste bool
	reportingFocus bool

	withoutSignalHandler bool
	withoutCatchPanics   bool
	withoutRenderer      bool
}

// NewProgram creates a new Program running model, configured by opts.
func NewProgram(model Model, opts ...ProgramOption) *Program {
	p := &Program{
		initialModel:   model,
		msgs:           make(chan Msg),
		bracketedPaste: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.externalCtx == nil {
		p.externalCtx = context.Background()
	}
	p.ctx, p.cancel = context.WithCancel(p.externalCtx)

	if p.output == nil {
		p.output = os.Stdout
	}
	if p.input == nil && p.inputType != customInput {
		p.input = os.Stdin
	}
	if p.environ == nil {
		p.environ = os.Environ()
	}
	if p.logger == nil {
		p.logger = newTraceLogger()
	}

	return p
}

// Run initializes the program and runs its event loop, blocking until
// it's terminated by Program.Quit, Program.Kill, or its signal
// handler. It returns the final model.
func (p *Program) Run() (returnModel Model, returnErr error) {
	p.errs = make(chan error, 1)
	p.finished = make(chan struct{})
	defer close(p.finished)
	defer p.cancel()

	if !p.withoutCatchPanics {
		defer func() {
			if r := recover(); r != nil {
				returnErr = fmt.Errorf("%w: %w", ErrProgramKilled, ErrProgramPanic)
				p.recoverFromPanic(r)
			}
		}()
	}

	if f, ok := p.output.(interface{ Fd() uintptr }); ok {
		p.ttyOutputFd = f.Fd()
		p.isTTYOutput = isatty.IsTerminal(p.ttyOutputFd)
	}
	if f, ok := p.input.(interface{ Fd() uintptr }); ok {
		p.inputFd = f.Fd()
		p.isTTYInput = isatty.IsTerminal(p.inputFd)
	}

	if err := p.initTerminal(); err != nil {
		return p.initialModel, err
	}

	resizeMsg := WindowSizeMsg{Width: p.width, Height: p.height}
	if p.isTTYOutput && !p.fixedSize {
		w, h, err := windowSize(p.ttyOutputFd)
		if err != nil {
			return p.initialModel, err
		}
		resizeMsg.Width, resizeMsg.Height = w, h
	}
	p.width, p.height = resizeMsg.Width, resizeMsg.Height

	if p.renderer == nil {
		if p.withoutRenderer {
			p.renderer = nilRenderer{}
		} else {
			p.renderer = newRenderer(&programWriter{p}, p.startupOptions&withANSICompressor != 0, p.fps)
		}
	}

	model := p.initialModel

	if !p.withoutSignalHandler {
		stop := make(chan struct{})
		ch := make(chan struct{})
		p.handlers.add(ch)
		go func() {
			defer close(ch)
			p.listenForSignals(stop)
		}()
		go func() {
			<-p.ctx.Done()
			close(stop)
		}()
	}

	if p.input != nil {
		drv, err := newDriver(p.input, p.msgs, p.errs)
		if err != nil {
			return model, err
		}
		p.drv = drv
		ch := make(chan struct{})
		p.handlers.add(ch)
		go func() {
			defer close(ch)
			p.drv.receiveEvents()
		}()
	}

	p.renderer.hideCursor()

	if p.startupTitle != "" {
		p.renderer.setWindowTitle(p.startupTitle)
	}
	if p.startupOptions.has(withAltScreen) {
		p.renderer.enterAltScreen()
	}
	if !p.startupOptions.has(withoutBracketedPaste) {
		p.renderer.enableBracketedPaste()
	} else {
		p.bracketedPaste = false
	}
	if p.startupOptions.has(withMouseCellMotion) {
		p.enableMouse(false)
	} else if p.startupOptions.has(withMouseAllMotion) {
		p.enableMouse(true)
	}
	if p.startupOptions.has(withReportFocus) {
		p.renderer.enableReportFocus()
		p.reportingFocus = true
	}

	p.renderer.start()

	cmds := make(chan Cmd)
	cmdsDone := make(chan struct{})
	p.handlers.add(cmdsDone)
	go p.handleCommands(cmds, cmdsDone)

	go p.Send(resizeMsg)

	if initCmd := model.Init(); initCmd != nil {
		go func() {
			select {
			case cmds <- initCmd:
			case <-p.ctx.Done():
			}
		}()
	}

	p.render(model)

	model, err := p.eventLoop(model, cmds)

	if err == nil && len(p.errs) > 0 {
		err = <-p.errs
	}

	killed := p.externalCtx.Err() != nil || p.ctx.Err() != nil || err != nil
	if killed {
		switch {
		case err == nil && p.externalCtx.Err() != nil:
			err = fmt.Errorf("%w: %w", ErrProgramKilled, p.externalCtx.Err())
		case err == nil && p.ctx.Err() != nil:
			err = ErrProgramKilled
		default:
			err = fmt.Errorf("%w: %w", ErrProgramKilled, err)
		}
	} else {
		p.render(model)
	}

	p.shutdown(killed)

	return model, err
}

// eventLoop is the program's central message loop: it receives Msgs,
// applies the installed filter, handles internal messages, then calls
// Update and renders the result.
func (p *Program) eventLoop(model Model, cmds chan Cmd) (Model, error) {
	for {
		select {
		case <-p.ctx.Done():
			return model, nil

		case err := <-p.errs:
			return model, err

		case msg := <-p.msgs:
			if p.filter != nil {
				msg = p.filter(model, msg)
			}
			if msg == nil {
				continue
			}

			switch m := msg.(type) {
			case QuitMsg:
				return model, nil

			case InterruptMsg:
				if p.withoutCatchPanics {
					return model, ErrInterrupted
				}
				return model, nil

			case SuspendMsg:
				if canSuspendProcess {
					p.suspend()
				}
				continue

			case ResumeMsg:
				p.resume()

			case batchMsg:
				for _, cmd := range m {
					select {
					case <-p.ctx.Done():
						return model, nil
					case cmds <- cmd:
					}
				}
				continue

			case sequenceMsg:
				go runSequence(m, p.Send)
				continue

			case everyMsg:
				select {
				case <-p.ctx.Done():
					return model, nil
				case cmds <- m.next:
				}
				// Resend the wrapped message through the normal
				// channel so it still passes through the filter and
				// the rest of the switch above, same as any other
				// message; sending it directly here would deadlock,
				// since this goroutine is the channel's only reader.
				go p.Send(m.msg)
				continue

			case setWindowTitleMsg:
				p.renderer.setWindowTitle(string(m))

			case WindowSizeMsg:
				p.width, p.height = m.Width, m.Height

			case execMsg:
				p.exec(m.cmd, m.fn)
				continue

			case clearScreenMsgType:
				p.renderer.clearScreen()
				continue
			}

			p.renderer.handleMessages(msg)

			var cmd Cmd
			model, cmd = model.Update(msg)

			select {
			case <-p.ctx.Done():
				return model, nil
			case cmds <- cmd:
			}

			p.render(model)
		}
	}
}

// clearScreenMsgType is the internal marker for ClearScreen.
type clearScreenMsgType struct{}

// ClearScreen is a special command that tells the program to clear the
// terminal before the next render.
func ClearScreen() Msg {
	return clearScreenMsgType{}
}

func (p *Program) render(model Model) {
	p.renderer.write(model.View())
}

// Send sends a message to the program's Update function, allowing
// messages to be injected from outside the program. If the program
// hasn't started this blocks; if it has already terminated, Send is a
// no-op.
func (p *Program) Send(msg Msg) {
	select {
	case <-p.ctx.Done():
	case p.msgs <- msg:
	}
}

// Quit tells a running program to exit gracefully, as though Quit() had
// been returned from Update. Like Send, it blocks if the program hasn't
// started and is a no-op once the program has terminated.
func (p *Program) Quit() {
	p.Send(QuitMsg{})
}

// Kill stops the program immediately without a final render, restoring
// the terminal to its prior state. Run returns ErrProgramKilled.
func (p *Program) Kill() {
	p.shutdown(true)
}

// Wait blocks until the program has finished shutting down.
func (p *Program) Wait() {
	<-p.finished
}

// programWriter adapts Program's buffered, mutex-guarded output so the
// renderer can treat it as a plain io.Writer.
type programWriter struct{ p *Program }

func (w *programWriter) Write(b []byte) (int, error) {
	w.p.outputMtx.Lock()
	defer w.p.outputMtx.Unlock()
	return w.p.outputBuf.Write(b)
}

func (p *Program) flush() error {
	p.outputMtx.Lock()
	defer p.outputMtx.Unlock()
	if p.outputBuf.Len() == 0 {
		return nil
	}
	p.logf("output: %q", p.outputBuf.String())
	_, err := p.output.Write(p.outputBuf.Bytes())
	p.outputBuf.Reset()
	if err != nil {
		return &TerminalUnavailableError{Cause: err}
	}
	return nil
}

func (p *Program) handleCommands(cmds chan Cmd, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-p.ctx.Done():
			return
		case cmd := <-cmds:
			if cmd == nil {
				continue
			}
			go func() {
				if !p.withoutCatchPanics {
					defer func() {
						if r := recover(); r != nil {
							p.recoverFromPanic(r)
						}
					}()
				}
				p.Send(cmd())
			}()
		}
	}
}

func (p *Program) checkResize() {
	if !p.isTTYOutput {
		return
	}
	w, h, err := windowSize(p.ttyOutputFd)
	if err != nil {
		p.errs <- err
		return
	}
	p.Send(WindowSizeMsg{Width: w, Height: h})
}

func (p *Program) enableMouse(all bool) {
	if all {
		p.renderer.enableMouseAllMotion()
		p.mouseAllMotion = true
	} else {
		p.renderer.enableMouseCellMotion()
		p.mouseAllMotion = false
	}
	p.renderer.enableMouseSGRMode()
	p.mouseActive = true
}

func (p *Program) disableMouse() {
	if !p.mouseActive {
		return
	}
	if p.mouseAllMotion {
		p.renderer.disableMouseAllMotion()
	} else {
		p.renderer.disableMouseCellMotion()
	}
	p.renderer.disableMouseSGRMode()
	p.mouseActive = false
}

// suspend puts the process to sleep with SIGTSTP after releasing the
// terminal, restoring it again once the shell resumes the job.
func (p *Program) suspend() {
	if err := p.releaseTerminal(); err != nil {
		return
	}
	suspendProcess()
	_ = p.restoreTerminal()
	go p.Send(ResumeMsg{})
}

func (p *Program) resume() {
	go p.Send(ForceRepaint())
}

// ReleaseTerminal restores the original terminal state and cancels the
// input reader, handing the terminal back for another process (for
// example, an editor opened via ExecProcess) to use. Call
// RestoreTerminal to reclaim it. Raw mode, mouse reporting, bracketed
// paste and focus reporting are switched off and the cursor is shown;
// the alternate screen, if active, stays active.
func (p *Program) ReleaseTerminal() error {
	return p.releaseTerminal()
}

func (p *Program) releaseTerminal() error {
	atomic.StoreUint32(&p.ignoreSignals, 1)
	if p.drv != nil {
		p.drv.Cancel()
	}
	if p.renderer != nil {
		p.renderer.stop()
	}
	return p.restoreTerminalState()
}

// RestoreTerminal reinitializes the program's input reader, restores
// raw mode and any previously enabled terminal modes, and forces a
// repaint. Use it after ReleaseTerminal to reclaim the terminal.
func (p *Program) RestoreTerminal() error {
	return p.restoreTerminal()
}

func (p *Program) restoreTerminal() error {
	atomic.StoreUint32(&p.ignoreSignals, 0)

	if err := p.initTerminal(); err != nil {
		return err
	}

	if p.input != nil {
		drv, err := newDriver(p.input, p.msgs, p.errs)
		if err != nil {
			return err
		}
		p.drv = drv
		go p.drv.receiveEvents()
	}

	p.renderer.start()

	if p.bracketedPaste {
		p.renderer.enableBracketedPaste()
	}
	if p.mouseActive {
		if p.mouseAllMotion {
			p.renderer.enableMouseAllMotion()
		} else {
			p.renderer.enableMouseCellMotion()
		}
		p.renderer.enableMouseSGRMode()
	}
	if p.reportingFocus {
		p.renderer.enableReportFocus()
	}

	go p.Send(ForceRepaint())
	go p.checkResize()

	return p.flush()
}

func (p *Program) initTerminal() error {
	if p.isTTYInput {
		t, err := enterRawMode(p.inputFd)
		if err != nil {
			return err
		}
		p.inputTTY = t
		p.logf("raw mode entered, hard tabs supported: %v", t.useHardTabs)
	}
	return nil
}

func (p *Program) restoreTerminalState() error {
	if p.renderer != nil {
		p.renderer.showCursor()
		if p.bracketedPaste {
			p.renderer.disableBracketedPaste()
		}
		if p.mouseActive {
			if p.mouseAllMotion {
				p.renderer.disableMouseAllMotion()
			} else {
				p.renderer.disableMouseCellMotion()
			}
			p.renderer.disableMouseSGRMode()
		}
		if p.reportingFocus {
			p.renderer.disableReportFocus()
		}
	}
	if p.inputTTY != nil {
		if err := p.inputTTY.restore(); err != nil {
			return err
		}
	}
	return p.flush()
}

func (p *Program) shutdown(kill bool) {
	p.shutdownOnce.Do(func() {
		p.cancel()
		p.handlers.shutdown()

		if p.drv != nil {
			p.drv.Cancel()
			_ = p.drv.Close()
		}

		if p.renderer != nil {
			if kill {
				p.renderer.kill()
			} else {
				p.renderer.stop()
			}
			if p.renderer.altScreen() {
				p.renderer.exitAltScreen()
			}
		}

		_ = p.restoreTerminalState()
	})
}

// recoverFromPanic recovers from a panic, prints the panic value, and
// restores the terminal to a usable state.
func (p *Program) recoverFromPanic(r any) {
	select {
	case p.errs <- ErrProgramPanic:
	default:
	}
	p.cancel()
	p.shutdown(true)

	rec := strings.ReplaceAll(fmt.Sprintf("%v", r), "\n", "\r\n")
	fmt.Fprintf(os.Stderr, "Caught panic:\r\n\r\n%s\r\n\r\nRestoring terminal...\r\n\r\n", rec)
}

// Println prints above the program, persisting across renders. Unlike
// fmt.Println, the message always lands on its own line. No output is
// produced while the alt screen is active.
func (p *Program) Println(args ...any) {
	p.msgs <- printLineMessage{messageBody: fmt.Sprint(args...)}
}

// Printf prints above the program using a format string, persisting
// across renders. No output is produced while the alt screen is
// active.
func (p *Program) Printf(template string, args ...any) {
	p.msgs <- printLineMessage{messageBody: fmt.Sprintf(template, args...)}
}

