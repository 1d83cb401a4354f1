package display

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AdmajaBahari/lirik/internal/player"
)

// ErrClosed is returned by Draw once the viewer has quit.
var ErrClosed = errors.New("display closed")

type frameMsg player.Frame

type model struct {
	title string
	frame player.Frame
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = player.Frame(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	return Render(m.title, m.frame)
}

// Terminal draws frames on the alternate screen through a Bubble Tea
// program. Call Start before the first Draw and always Close, which
// restores the terminal.
type Terminal struct {
	program *tea.Program
	run     func() (tea.Model, error)
	done    chan struct{}
	err     error
}

func NewTerminal(title string, opts ...tea.ProgramOption) *Terminal {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	program := tea.NewProgram(model{title: title}, opts...)
	return &Terminal{
		program: program,
		run:     program.Run,
		done:    make(chan struct{}),
	}
}

// Start runs the program in the background.
func (t *Terminal) Start() {
	go func() {
		defer close(t.done)
		_, t.err = t.run()
	}()
}

// Draw hands f to the program. Once the program has exited it returns
// ErrClosed after a user quit, or the program's own failure.
func (t *Terminal) Draw(f player.Frame) error {
	select {
	case <-t.done:
		if err := t.failure(); err != nil {
			return err
		}
		return ErrClosed
	default:
	}
	t.program.Send(frameMsg(f))
	return nil
}

// Close stops the program and waits for it to release the terminal.
func (t *Terminal) Close() error {
	select {
	case <-t.done:
	default:
		t.program.Quit()
		<-t.done
	}
	return t.failure()
}

// failure is the error the program exited with, nil for a normal quit.
// Only valid once done is closed.
func (t *Terminal) failure() error {
	if t.err == nil || errors.Is(t.err, tea.ErrProgramKilled) {
		return nil
	}
	return fmt.Errorf("terminal display failed: %w", t.err)
}
