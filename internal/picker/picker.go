// Package picker defines the synchronous boundary between the selection loop
// and the interactive menu that shows the notifications.
package picker

import (
	"context"
	"errors"
)

// Action is the user's intent, decoded from the picker's exit status.
type Action int

const (
	ActionCancel Action = iota
	ActionDelete
	ActionAcknowledge
	ActionRefresh
	ActionDeleteApplication
)

// Exit codes produced by the custom key bindings of the picker.
const (
	ExitDelete            = 10
	ExitAcknowledge       = 11
	ExitRefresh           = 12
	ExitDeleteApplication = 13
)

// NoSelection is reported when the user closed the picker without choosing.
const NoSelection = -1

// ErrStart reports that the picker process could not be launched or driven.
var ErrStart = errors.New("picker failed to start")

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "delete"
	case ActionAcknowledge:
		return "acknowledge"
	case ActionRefresh:
		return "refresh"
	case ActionDeleteApplication:
		return "delete-application"
	default:
		return "cancel"
	}
}

// ActionForExitCode maps a picker exit status onto an action. Unknown codes
// cancel.
func ActionForExitCode(code int) Action {
	switch code {
	case ExitDelete:
		return ActionDelete
	case ExitAcknowledge:
		return ActionAcknowledge
	case ExitRefresh:
		return ActionRefresh
	case ExitDeleteApplication:
		return ActionDeleteApplication
	default:
		return ActionCancel
	}
}

// ExitCode is the inverse of ActionForExitCode. Cancel maps to 1, the status
// rofi uses when the menu is dismissed.
func (a Action) ExitCode() int {
	switch a {
	case ActionDelete:
		return ExitDelete
	case ActionAcknowledge:
		return ExitAcknowledge
	case ActionRefresh:
		return ExitRefresh
	case ActionDeleteApplication:
		return ExitDeleteApplication
	default:
		return 1
	}
}

// Options carries the per-invocation hints.
type Options struct {
	Urgent      []int
	Low         []int
	SelectedRow int
}

// Outcome is the result of one picker invocation.
type Outcome struct {
	Index    int
	Action   Action
	ExitCode int
}

// Selected reports whether the user picked an entry.
func (o Outcome) Selected() bool {
	return o.Index >= 0
}

// Picker shows entries and blocks until the user responds.
type Picker interface {
	Pick(ctx context.Context, entries []string, opts Options) (Outcome, error)
}

// Func adapts a function to the Picker interface.
type Func func(ctx context.Context, entries []string, opts Options) (Outcome, error)

func (f Func) Pick(ctx context.Context, entries []string, opts Options) (Outcome, error) {
	return f(ctx, entries, opts)
}
