package matcha

import (
	"bytes"
	"os/exec"
	"testing"
)

func TestExecProducesInternalMsg(t *testing.T) {
	cmd := exec.Command("true")
	called := false
	fn := func(error) Msg { called = true; return "done" }

	c := Exec(wrapExecCommand(cmd), fn)
	msg := c()

	em, ok := msg.(execMsg)
	if !ok {
		t.Fatalf("Exec()() = %#v, want execMsg", msg)
	}
	if called {
		t.Error("the callback must only run once the child process actually completes, not when the Cmd is constructed")
	}
	if em.fn == nil {
		t.Error("execMsg.fn should carry the supplied callback")
	}
}

func TestOsExecCommandOnlySetsUnconfiguredStreams(t *testing.T) {
	var preset bytes.Buffer
	cmd := exec.Command("true")
	cmd.Stdout = &preset

	wrapped := wrapExecCommand(cmd)
	var fallback bytes.Buffer
	wrapped.SetStdout(&fallback)

	if cmd.Stdout != &preset {
		t.Error("SetStdout must not override a stream the caller already set")
	}

	wrapped.SetStdin(bytes.NewReader(nil))
	if cmd.Stdin == nil {
		t.Error("SetStdin should set an unconfigured stream")
	}
}
