package matcha

import (
	"errors"
	"io"
	"testing"
)

func TestTerminalUnavailableErrorUnwraps(t *testing.T) {
	err := &TerminalUnavailableError{Cause: io.ErrClosedPipe}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Error("TerminalUnavailableError should unwrap to its Cause")
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}

func TestInputUnavailableErrorUnwraps(t *testing.T) {
	err := &InputUnavailableError{Cause: io.EOF}
	if !errors.Is(err, io.EOF) {
		t.Error("InputUnavailableError should unwrap to its Cause")
	}
}

func TestKilledErrorIsMatchesSentinel(t *testing.T) {
	err := &KilledError{Signal: "SIGTERM"}
	if !errors.Is(err, ErrProgramKilled) {
		t.Error("KilledError should report errors.Is(err, ErrProgramKilled) == true")
	}
	if got := err.Error(); got == "" {
		t.Error("Error() should not be empty")
	}
}

func TestKilledErrorWithoutSignal(t *testing.T) {
	err := &KilledError{}
	if err.Error() != "program was killed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "program was killed")
	}
}

func TestErrorSentinelsComposeWithWrapf(t *testing.T) {
	wrapped := errors.Join(ErrProgramKilled, &KilledError{Signal: "SIGINT"})
	if !errors.Is(wrapped, ErrProgramKilled) {
		t.Error("joined error should still satisfy errors.Is against ErrProgramKilled")
	}
}
