// Command example is a small interactive demo that exercises the matcha
// runtime: key and mouse input, a ticking command, and alternate-screen
// rendering. It exists for manual smoke-testing during development.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rprtr258/matcha"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var altScreen bool
	var mouse bool
	var fps int

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Run a small matcha demo program",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []matcha.ProgramOption{matcha.WithFPS(fps)}
			if altScreen {
				opts = append(opts, matcha.WithAltScreen())
			}
			if mouse {
				opts = append(opts, matcha.WithMouseCellMotion())
			}

			p := matcha.NewProgram(initialModel(), opts...)
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&altScreen, "altscreen", false, "use the alternate screen buffer")
	cmd.Flags().BoolVar(&mouse, "mouse", false, "enable mouse cell-motion reporting")
	cmd.Flags().IntVar(&fps, "fps", 0, "renderer frame rate (0 for default)")

	return cmd
}

// tickMsg signals that a second has elapsed.
type tickMsg time.Time

func tickEvery() matcha.Cmd {
	return matcha.Tick(time.Second, func(t time.Time) matcha.Msg {
		return tickMsg(t)
	})
}

type model struct {
	choice  int
	seconds int
	last    matcha.MouseMsg
	haveHit bool
}

func initialModel() model {
	return model{seconds: 10}
}

func (m model) Init() matcha.Cmd {
	return tickEvery()
}

func (m model) Update(msg matcha.Msg) (matcha.Model, matcha.Cmd) {
	switch msg := msg.(type) {
	case matcha.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, matcha.Quit
		case "down", "j":
			m.choice = min(m.choice+1, 3)
		case "up", "k":
			m.choice = max(m.choice-1, 0)
		}
	case matcha.MouseMsg:
		m.last = msg
		m.haveHit = true
	case tickMsg:
		if m.seconds == 0 {
			return m, matcha.Quit
		}
		m.seconds--
		return m, tickEvery()
	}
	return m, nil
}

func (m model) View() string {
	choices := [...]string{
		"Plant carrots",
		"Go to the market",
		"Read something",
		"See friends",
	}

	s := "What to do today?\n\n"
	for i, c := range choices {
		mark := " "
		if i == m.choice {
			mark = "x"
		}
		s += fmt.Sprintf("[%s] %s\n", mark, c)
	}
	s += fmt.Sprintf("\nProgram quits in %d seconds.\n", m.seconds)
	if m.haveHit {
		s += fmt.Sprintf("last mouse event: %s\n", m.last)
	}
	s += "\n(press j/k or up/down to select, q or esc to quit)\n"
	return s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
