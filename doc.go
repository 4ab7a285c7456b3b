// Package matcha provides a framework for building interactive full-screen
// terminal applications structured around the model-update-view paradigm
// (a.k.a. The Elm Architecture). A running Program drives a single-threaded
// event loop that reads bytes from a terminal, parses them into typed input
// events, dispatches those events (plus asynchronous command results) to a
// user-supplied Model, and redraws the terminal by diffing the previous and
// current frame.
//
// A typical program looks like:
//
//	type model struct{ count int }
//
//	func (m model) Init() matcha.Cmd { return nil }
//
//	func (m model) Update(msg matcha.Msg) (matcha.Model, matcha.Cmd) {
//		switch msg := msg.(type) {
//		case matcha.KeyMsg:
//			if msg.Type == matcha.KeyCtrlC {
//				return m, matcha.Quit
//			}
//		}
//		return m, nil
//	}
//
//	func (m model) View() string {
//		return fmt.Sprintf("Count: %d\n", m.count)
//	}
//
//	p := matcha.NewProgram(model{})
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// The widget library, a styling helper, and example applications are
// ordinary clients of this package and ship separately.
package matcha
