package matcha

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"
)

type counterModel struct {
	n int
}

func (m counterModel) Init() Cmd { return nil }

func (m counterModel) Update(msg Msg) (Model, Cmd) {
	switch msg := msg.(type) {
	case KeyMsg:
		switch msg.String() {
		case "up":
			m.n++
		case "down":
			m.n--
		case "q":
			return m, Quit
		}
	}
	return m, nil
}

func (m counterModel) View() string {
	return "n"
}

func newTestProgram(m Model, extra ...ProgramOption) *Program {
	opts := append([]ProgramOption{
		WithInput(bytes.NewBuffer(nil)),
		WithOutput(&bytes.Buffer{}),
		WithoutSignalHandler(),
		WithWindowSize(80, 24),
	}, extra...)
	return NewProgram(m, opts...)
}

func TestProgramCounterQuitsGracefully(t *testing.T) {
	p := newTestProgram(counterModel{})

	done := make(chan struct{})
	var finalModel Model
	var runErr error
	go func() {
		finalModel, runErr = p.Run()
		close(done)
	}()

	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("up")})
	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("up")})
	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("down")})
	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("q")})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not quit in time")
	}

	if runErr != nil {
		t.Fatalf("Run() returned error: %v", runErr)
	}
	cm, ok := finalModel.(counterModel)
	if !ok {
		t.Fatalf("final model type = %T, want counterModel", finalModel)
	}
	if cm.n != 1 {
		t.Errorf("final count = %d, want 1 (two ups, one down)", cm.n)
	}
}

func TestProgramInterruptReturnsErrInterrupted(t *testing.T) {
	// ErrInterrupted is only returned while catching panics is disabled;
	// otherwise an InterruptMsg quits gracefully.
	p := newTestProgram(counterModel{}, WithoutCatchPanics())

	done := make(chan struct{})
	var runErr error
	go func() {
		_, runErr = p.Run()
		close(done)
	}()

	p.Send(InterruptMsg{})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not exit in time")
	}

	if !errors.Is(runErr, ErrInterrupted) {
		t.Errorf("Run() error = %v, want ErrInterrupted", runErr)
	}
}

func TestProgramFilterCanDropMessages(t *testing.T) {
	dropUp := func(_ Model, msg Msg) Msg {
		if k, ok := msg.(KeyMsg); ok && k.String() == "up" {
			return nil
		}
		return msg
	}

	p := newTestProgram(counterModel{}, WithFilter(dropUp))

	done := make(chan struct{})
	var finalModel Model
	go func() {
		finalModel, _ = p.Run()
		close(done)
	}()

	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("up")})
	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("up")})
	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("q")})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not quit in time")
	}

	if cm := finalModel.(counterModel); cm.n != 0 {
		t.Errorf("final count = %d, want 0 (both ups were filtered)", cm.n)
	}
}

func TestProgramKillReportsErrProgramKilled(t *testing.T) {
	p := newTestProgram(counterModel{})

	done := make(chan struct{})
	var runErr error
	go func() {
		_, runErr = p.Run()
		close(done)
	}()

	// Give Run a moment to reach its event loop before killing it.
	time.Sleep(20 * time.Millisecond)
	p.Kill()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not exit in time")
	}

	if !errors.Is(runErr, ErrProgramKilled) {
		t.Errorf("Run() error = %v, want ErrProgramKilled", runErr)
	}
}

type batchModel struct {
	mu   *sync.Mutex
	seen []string
}

func (m batchModel) Init() Cmd {
	return Batch(
		func() Msg { return "a" },
		func() Msg { return "b" },
	)
}

func (m batchModel) Update(msg Msg) (Model, Cmd) {
	switch s := msg.(type) {
	case string:
		m.mu.Lock()
		m.seen = append(m.seen, s)
		done := len(m.seen) >= 2
		m.mu.Unlock()
		if done {
			return m, Quit
		}
	}
	return m, nil
}

func (m batchModel) View() string { return "" }

func TestProgramBatchRunsBothCommands(t *testing.T) {
	var mu sync.Mutex
	p := newTestProgram(batchModel{mu: &mu})

	done := make(chan struct{})
	var finalModel Model
	go func() {
		finalModel, _ = p.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not quit in time")
	}

	bm := finalModel.(batchModel)
	if len(bm.seen) != 2 {
		t.Fatalf("seen = %v, want 2 messages from the batch", bm.seen)
	}
}

type everyModel struct {
	mu    *sync.Mutex
	ticks int
}

func (m everyModel) Init() Cmd {
	return Every(10*time.Millisecond, func(t time.Time) Msg { return t })
}

func (m everyModel) Update(msg Msg) (Model, Cmd) {
	if _, ok := msg.(time.Time); ok {
		m.mu.Lock()
		m.ticks++
		n := m.ticks
		m.mu.Unlock()
		if n >= 3 {
			return m, Quit
		}
	}
	return m, nil
}

func (m everyModel) View() string { return "" }

func TestProgramEveryRepeatsUntilQuit(t *testing.T) {
	var mu sync.Mutex
	p := newTestProgram(everyModel{mu: &mu})

	done := make(chan struct{})
	var finalModel Model
	var runErr error
	go func() {
		finalModel, runErr = p.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("program did not quit in time")
	}

	if runErr != nil {
		t.Fatalf("Run() returned error: %v", runErr)
	}
	em := finalModel.(everyModel)
	if em.ticks < 3 {
		t.Errorf("ticks = %d, want at least 3 (Every must keep retriggering itself)", em.ticks)
	}
}

func TestProgramWaitBlocksUntilFinished(t *testing.T) {
	p := newTestProgram(counterModel{})

	go func() { _, _ = p.Run() }()
	time.Sleep(10 * time.Millisecond)
	p.Send(KeyMsg{Type: KeyRunes, Runes: []rune("q")})

	waitDone := make(chan struct{})
	go func() {
		p.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait() did not return after the program quit")
	}
}
