package matcha

import (
	"io"
	"os"
	"os/exec"
)

// ExecCommand describes a command that can hand the controlling
// terminal to a child process, run it to completion, and report the
// result back to Update as a Msg.
type ExecCommand interface {
	Run() error
	SetStdin(io.Reader)
	SetStdout(io.Writer)
	SetStderr(io.Writer)
}

// wrapExecCommand adapts an *exec.Cmd to ExecCommand, only setting the
// standard streams that the caller didn't already configure.
func wrapExecCommand(c *exec.Cmd) ExecCommand {
	return &osExecCommand{Cmd: c}
}

type osExecCommand struct {
	*exec.Cmd
}

func (c *osExecCommand) SetStdin(r io.Reader) {
	if c.Cmd.Stdin == nil {
		c.Cmd.Stdin = r
	}
}

func (c *osExecCommand) SetStdout(w io.Writer) {
	if c.Cmd.Stdout == nil {
		c.Cmd.Stdout = w
	}
}

func (c *osExecCommand) SetStderr(w io.Writer) {
	if c.Cmd.Stderr == nil {
		c.Cmd.Stderr = w
	}
}

// ExecCallback is used to return a Msg from an ExecProcess or Exec
// command once a child process finishes running.
type ExecCallback func(error) Msg

// execMsg is the internal message carrying the command to run and its
// completion callback.
type execMsg struct {
	cmd ExecCommand
	fn  ExecCallback
}

// ExecProcess runs the given *exec.Cmd, handing it the controlling
// terminal for the duration of its run, and returns fn's result as a
// Msg once it exits (or fails to start).
func ExecProcess(c *exec.Cmd, fn ExecCallback) Cmd {
	return Exec(wrapExecCommand(c), fn)
}

// Exec runs the given ExecCommand, handing it the controlling terminal
// for the duration of its run. fn is optional; if non-nil, its result
// is sent as a Msg once the command finishes.
func Exec(c ExecCommand, fn ExecCallback) Cmd {
	return func() Msg {
		return execMsg{cmd: c, fn: fn}
	}
}

// exec releases the terminal, runs c, restores the terminal, then
// delivers fn's result (if fn is non-nil) as a new Msg.
func (p *Program) exec(c ExecCommand, fn ExecCallback) {
	if err := p.ReleaseTerminal(); err != nil {
		if fn != nil {
			go p.Send(fn(err))
		}
		return
	}

	c.SetStdin(p.input)
	c.SetStdout(p.output)
	c.SetStderr(os.Stderr)

	runErr := c.Run()

	if err := p.RestoreTerminal(); err != nil {
		if fn != nil {
			go p.Send(fn(err))
		}
		return
	}

	if fn != nil {
		go p.Send(fn(runErr))
	}
}
