package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/notifctl/rofication-gui/internal/picker"
	"github.com/notifctl/rofication-gui/internal/theme"
	uistate "github.com/notifctl/rofication-gui/internal/ui/state"
)

const (
	promptLabel = "Notifications"
	// maxRows matches the rofi window height.
	maxRows = 10
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for one picker invocation.
type Model struct {
	level   *uistate.Level
	filter  textinput.Model
	width   int
	height  int
	total   int
	done    bool
	outcome picker.Outcome

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model over formatted entries, applying the urgency and
// selected-row hints.
func NewModel(entries []string, opts picker.Options) *Model {
	level := uistate.NewLevel(rowsFromEntries(entries, opts))
	if opts.SelectedRow >= 0 {
		level.SelectIndex(opts.SelectedRow)
	}
	input := textinput.New()
	input.Prompt = promptLabel + ": "
	if styles.Prompt != nil {
		input.PromptStyle = *styles.Prompt
	}
	if styles.Filter != nil {
		input.TextStyle = *styles.Filter
	}
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()
	m := &Model{
		level:   level,
		filter:  input,
		total:   len(entries),
		outcome: cancelled(),
	}
	m.registerHandlers()
	return m
}

func cancelled() picker.Outcome {
	return picker.Outcome{
		Index:    picker.NoSelection,
		Action:   picker.ActionCancel,
		ExitCode: picker.ActionCancel.ExitCode(),
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	if handler, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		return handler
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.level.EnsureCursorVisible(m.visibleRows())
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	for _, ab := range keys.actionBindings() {
		if key.Matches(keyMsg, ab.binding) {
			return m.finish(ab.action)
		}
	}
	visible := m.visibleRows()
	switch {
	case key.Matches(keyMsg, keys.Up):
		m.level.MoveCursorUp()
	case key.Matches(keyMsg, keys.Down):
		m.level.MoveCursorDown()
	case key.Matches(keyMsg, keys.PageUp):
		m.level.MoveCursorPageUp(visible)
	case key.Matches(keyMsg, keys.PageDown):
		m.level.MoveCursorPageDown(visible)
	case key.Matches(keyMsg, keys.Home):
		m.level.MoveCursorHome()
	case key.Matches(keyMsg, keys.End):
		m.level.MoveCursorEnd()
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(keyMsg)
		if m.filter.Value() != m.level.Filter {
			m.level.SetFilter(m.filter.Value())
		}
		m.level.EnsureCursorVisible(visible)
		return cmd
	}
	m.level.EnsureCursorVisible(visible)
	return nil
}

// finish records the outcome for action and quits the program. Cancel never
// carries a selection; every other action reports the row under the cursor,
// or no selection when the filter left nothing to pick.
func (m *Model) finish(action picker.Action) tea.Cmd {
	m.done = true
	if action == picker.ActionCancel {
		m.outcome = cancelled()
		return tea.Quit
	}
	index := picker.NoSelection
	if row, ok := m.level.Selected(); ok {
		index = row.Index
	}
	m.outcome = picker.Outcome{
		Index:    index,
		Action:   action,
		ExitCode: action.ExitCode(),
	}
	return tea.Quit
}

// Outcome reports what the user chose. It is a cancel until a terminating
// key has been pressed.
func (m *Model) Outcome() picker.Outcome {
	return m.outcome
}

// Done reports whether a terminating key has been pressed.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return maxRows
	}
	// prompt and footer take one line each, every row takes two.
	rows := (m.height - 2) / 2
	if rows < 1 {
		return 1
	}
	if rows > maxRows {
		return maxRows
	}
	return rows
}
