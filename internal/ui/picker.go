package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/notifctl/rofication-gui/internal/logging/events"
	"github.com/notifctl/rofication-gui/internal/picker"
)

type program interface {
	Run() (tea.Model, error)
}

var newProgram = func(model tea.Model, opts ...tea.ProgramOption) program {
	return tea.NewProgram(model, opts...)
}

// Picker shows entries in the terminal. It implements picker.Picker.
type Picker struct {
	input  io.Reader
	output io.Writer
}

// NewPicker returns a terminal picker reading keys from input and drawing to
// output.
func NewPicker(input io.Reader, output io.Writer) *Picker {
	return &Picker{input: input, output: output}
}

// Pick runs one Bubble Tea program and waits for a terminating key.
func (p *Picker) Pick(ctx context.Context, entries []string, opts picker.Options) (picker.Outcome, error) {
	events.Picker.Invoke("terminal", nil, len(entries))
	model := NewModel(entries, opts)
	prog := newProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
	)
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			outcome := cancelled()
			events.Picker.Result(outcome.Index, outcome.ExitCode, outcome.Action.String())
			return outcome, nil
		}
		return picker.Outcome{Index: picker.NoSelection}, fmt.Errorf("%w: terminal: %v", picker.ErrStart, err)
	}
	outcome := model.Outcome()
	if m, ok := final.(*Model); ok {
		outcome = m.Outcome()
	}
	events.Picker.Result(outcome.Index, outcome.ExitCode, outcome.Action.String())
	return outcome, nil
}
