package testutil

import (
	"context"
	"fmt"

	"github.com/notifctl/rofication-gui/internal/picker"
)

// Invocation captures what a picker was shown.
type Invocation struct {
	Entries []string
	Options picker.Options
}

// ScriptedPicker returns canned outcomes in order and records invocations.
// Running past the script cancels.
type ScriptedPicker struct {
	Outcomes    []picker.Outcome
	Err         error
	Invocations []Invocation
}

// Pick implements picker.Picker.
func (s *ScriptedPicker) Pick(_ context.Context, entries []string, opts picker.Options) (picker.Outcome, error) {
	s.Invocations = append(s.Invocations, Invocation{
		Entries: append([]string(nil), entries...),
		Options: opts,
	})
	if s.Err != nil {
		return picker.Outcome{Index: picker.NoSelection}, s.Err
	}
	n := len(s.Invocations) - 1
	if n >= len(s.Outcomes) {
		return picker.Outcome{Index: picker.NoSelection}, nil
	}
	return s.Outcomes[n], nil
}

// Choose builds the outcome of the user picking index with the key bound to
// exit code.
func Choose(index, exitCode int) picker.Outcome {
	return picker.Outcome{Index: index, Action: picker.ActionForExitCode(exitCode), ExitCode: exitCode}
}

// Dismissed is the outcome of closing the picker.
func Dismissed() picker.Outcome {
	return picker.Outcome{Index: picker.NoSelection, ExitCode: 1}
}

// FormatCalls renders calls for failure messages.
func FormatCalls[T fmt.Stringer](calls []T) string {
	s := "["
	for i, c := range calls {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s + "]"
}
