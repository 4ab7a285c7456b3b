package matcha

// Msg contains data from the result of an I/O operation or a user input
// event. Msgs trigger the Update function and, henceforth, the UI.
type Msg interface{}

// Model contains a program's state as well as its core functions.
type Model interface {
	// Init is the first function that is called. It returns an optional
	// initial command. Return nil to perform no initial command.
	Init() Cmd

	// Update is called when a message is received. Use it to inspect
	// messages and, in response, update the model and/or return a command.
	Update(Msg) (Model, Cmd)

	// View renders the program's UI, which is just a string. The view is
	// rendered after every Update.
	View() string
}

// Cmd is an IO operation that returns a Msg when it's complete. If it's nil
// it's considered a no-op. Use it for things like HTTP requests, timers,
// saving and loading from disk, and so on.
//
// There's almost never a reason to use a command to send a message to
// another part of your program; that can almost always be done directly in
// Update.
type Cmd func() Msg

// QuitMsg signals that the program should quit. You can send a QuitMsg with
// the Quit command.
type QuitMsg struct{}

// Quit is a special command that tells the program to exit.
func Quit() Msg {
	return QuitMsg{}
}

// SuspendMsg signals that the program should suspend. This usually happens
// when ctrl+z is pressed on common programs, but since matcha puts the
// terminal into raw mode we need to handle it on a per-program basis.
type SuspendMsg struct{}

// Suspend is a special command that tells the program to suspend.
func Suspend() Msg {
	return SuspendMsg{}
}

// ResumeMsg is sent once a suspended program is resumed.
type ResumeMsg struct{}

// InterruptMsg signals that the program received an interrupt (SIGINT, or
// the Interrupt command). The default behavior converts it to a QuitMsg;
// with WithoutCatchPanics, Run instead returns ErrInterrupted. Install a
// filter to intercept it (for example, to prompt the user to confirm).
type InterruptMsg struct{}

// Interrupt is a special command that tells the program it was interrupted.
func Interrupt() Msg {
	return InterruptMsg{}
}
