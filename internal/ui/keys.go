package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/notifctl/rofication-gui/internal/picker"
)

type keyMap struct {
	Up                key.Binding
	Down              key.Binding
	PageUp            key.Binding
	PageDown          key.Binding
	Home              key.Binding
	End               key.Binding
	Delete            key.Binding
	Acknowledge       key.Binding
	Refresh           key.Binding
	DeleteApplication key.Binding
	Cancel            key.Binding
}

var keys = keyMap{
	Up:                key.NewBinding(key.WithKeys("up", "ctrl+p", "ctrl+k"), key.WithHelp("↑", "up")),
	Down:              key.NewBinding(key.WithKeys("down", "ctrl+n", "ctrl+j", "tab"), key.WithHelp("↓", "down")),
	PageUp:            key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:          key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Home:              key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
	End:               key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
	Delete:            key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
	Acknowledge:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "seen")),
	Refresh:           key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "refresh")),
	DeleteApplication: key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "delete app")),
	Cancel:            key.NewBinding(key.WithKeys("esc", "ctrl+c", "ctrl+g"), key.WithHelp("esc", "close")),
}

type actionBinding struct {
	binding key.Binding
	action  picker.Action
}

// actionBindings lists the keys that end the program, in footer order.
func (k keyMap) actionBindings() []actionBinding {
	return []actionBinding{
		{k.Acknowledge, picker.ActionAcknowledge},
		{k.Delete, picker.ActionDelete},
		{k.DeleteApplication, picker.ActionDeleteApplication},
		{k.Refresh, picker.ActionRefresh},
		{k.Cancel, picker.ActionCancel},
	}
}
