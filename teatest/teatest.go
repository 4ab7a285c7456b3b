// Package teatest provides helpers for testing matcha.Model values without
// a real terminal.
package teatest

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/aymanbagabas/go-udiff"

	"github.com/rprtr258/matcha"
)

// Program is the subset of matcha.Program's API a test interacts with.
type Program interface {
	Send(matcha.Msg)
}

// TestModelOptions configures TestModel.
type TestModelOptions struct {
	interact      func(p Program, in io.Writer)
	assert        func(out []byte)
	validateModel func(m matcha.Model) error
	size          matcha.WindowSizeMsg
}

// TestOption is a functional option for TestModel.
type TestOption func(opts *TestModelOptions)

// WithProgramInteractions runs fn against the live program, writing
// synthetic input through in.
func WithProgramInteractions(fn func(p Program, in io.Writer)) TestOption {
	return func(opts *TestModelOptions) { opts.interact = fn }
}

// WithRequiredOutputChecker runs fn against the full rendered output once
// the program quits.
func WithRequiredOutputChecker(fn func(out []byte)) TestOption {
	return func(opts *TestModelOptions) { opts.assert = fn }
}

// WithValidateFinalModel runs fn against the model returned once the
// program quits.
func WithValidateFinalModel(fn func(m matcha.Model) error) TestOption {
	return func(opts *TestModelOptions) { opts.validateModel = fn }
}

// WithInitialTermSize sends a fixed WindowSizeMsg before any interaction
// runs, standing in for the initial terminal-size probe.
func WithInitialTermSize(x, y int) TestOption {
	return func(opts *TestModelOptions) {
		opts.size = matcha.WindowSizeMsg{Width: x, Height: y}
	}
}

// TestModel runs m through a real Program wired to in-memory input and
// output, drives it with the given options, and fails tb if anything goes
// wrong.
func TestModel(tb testing.TB, m matcha.Model, options ...TestOption) {
	tb.Helper()

	var in bytes.Buffer
	var out bytes.Buffer

	p := matcha.NewProgram(
		m,
		matcha.WithInput(&in),
		matcha.WithOutput(safe(&out)),
		matcha.WithoutSignals(),
	)

	returnedModel := make(chan matcha.Model, 1)
	go func() {
		fm, err := p.Run()
		if err != nil {
			tb.Errorf("program exited with error: %v", err)
		}
		returnedModel <- fm
	}()

	var opts TestModelOptions
	for _, opt := range options {
		opt(&opts)
	}

	if opts.size.Width != 0 {
		p.Send(opts.size)
	}
	if opts.interact != nil {
		opts.interact(p, safe(&in))
	}

	time.Sleep(100 * time.Millisecond)
	p.Quit()
	if err := p.ReleaseTerminal(); err != nil {
		tb.Fatalf("could not restore terminal: %v", err)
	}

	fm := <-returnedModel

	if opts.validateModel != nil {
		if err := opts.validateModel(fm); err != nil {
			tb.Fatalf("final model failed validation: %v", err)
		}
	}
	if opts.assert != nil {
		opts.assert(out.Bytes())
	}
}

// TypeText sends each byte of s to p as a separate KeyRunes message.
func TypeText(p Program, s string) {
	for _, c := range []byte(s) {
		p.Send(matcha.KeyMsg{
			Runes: []rune{rune(c)},
			Type:  matcha.KeyRunes,
		})
	}
}

var update = flag.Bool("update", false, "update .golden files")

// RequireRegexpOutput fails tb unless out matches the regular expression re.
func RequireRegexpOutput(tb testing.TB, out []byte, re string) {
	tb.Helper()
	rexp, err := regexp.Compile(re)
	if err != nil {
		tb.Fatal("could not compile regular expression:", err)
	}
	if !rexp.Match(out) {
		tb.Fatalf("output does not match %q:\n%s", re, out)
	}
}

// RequireEqualOutput compares out against a golden file under
// testdata/<test name>.golden, printing a unified diff on mismatch. Run
// tests with -update to write or refresh the golden file.
func RequireEqualOutput(tb testing.TB, out []byte) {
	tb.Helper()

	golden := filepath.Join("testdata", tb.Name()+".golden")
	if *update {
		if err := os.MkdirAll(filepath.Dir(golden), 0o755); err != nil {
			tb.Fatal(err)
		}
		if err := os.WriteFile(golden, out, 0o600); err != nil {
			tb.Fatal(err)
		}
		return
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		tb.Fatalf("could not read golden file (run with -update?): %v", err)
	}

	if string(want) == string(out) {
		return
	}

	diff := udiff.Unified(golden, "got", string(want), string(out))
	tb.Fatalf("output does not match golden file, diff:\n\n%s", diff)
}

func safe(w io.Writer) io.Writer {
	return &safeWriter{w: w}
}

type safeWriter struct {
	w io.Writer
	m sync.Mutex
}

func (s *safeWriter) Write(p []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.w.Write(p)
}
