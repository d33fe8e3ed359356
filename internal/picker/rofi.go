package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/notifctl/rofication-gui/internal/logging/events"
)

const defaultRofiPath = "rofi"

// rofiArgs is the fixed menu invocation. Custom bindings 1-4 exit with codes
// 10-13; Return is rebound to custom-2 so a plain accept acknowledges.
var rofiArgs = []string{
	"-dmenu",
	"-p", "Notifications",
	"-markup",
	"-kb-accept-entry", "Control+j,Control+m,KP_Enter",
	"-kb-remove-char-forward", "Control+d",
	"-kb-delete-entry", "",
	"-kb-custom-1", "Delete",
	"-kb-custom-2", "Return",
	"-kb-custom-3", "Alt+r",
	"-kb-custom-4", "Shift+Delete",
	"-markup-rows",
	"-sep", `\0`,
	"-format", "i",
	"-eh", "2",
	"-lines", "10",
}

// Rofi drives rofi in dmenu mode as a one-shot subprocess.
type Rofi struct {
	path  string
	extra []string
}

// NewRofi returns a rofi picker. An empty path resolves "rofi" from PATH.
func NewRofi(path string, extra []string) *Rofi {
	if strings.TrimSpace(path) == "" {
		path = defaultRofiPath
	}
	return &Rofi{path: path, extra: append([]string(nil), extra...)}
}

// Args returns the full argument list for one invocation.
func (r *Rofi) Args(opts Options) []string {
	args := make([]string, 0, len(rofiArgs)+len(r.extra)+6)
	args = append(args, rofiArgs...)
	args = append(args, r.extra...)
	if len(opts.Urgent) > 0 {
		args = append(args, "-u", joinIndices(opts.Urgent))
	}
	if len(opts.Low) > 0 {
		args = append(args, "-a", joinIndices(opts.Low))
	}
	if opts.SelectedRow >= 0 {
		args = append(args, "-selected-row", strconv.Itoa(opts.SelectedRow))
	}
	return args
}

// Pick runs rofi with the entries on stdin and waits for it to exit.
func (r *Rofi) Pick(ctx context.Context, entries []string, opts Options) (Outcome, error) {
	args := r.Args(opts)
	events.Picker.Invoke(r.path, args, len(entries))

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, r.path, args...) //nolint:gosec
	cmd.Stdin = bytes.NewReader(encodeEntries(entries))
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			if ctx.Err() != nil {
				outcome := Outcome{Index: NoSelection, Action: ActionCancel, ExitCode: ActionCancel.ExitCode()}
				events.Picker.Result(outcome.Index, outcome.ExitCode, outcome.Action.String())
				return outcome, nil
			}
			return Outcome{Index: NoSelection}, fmt.Errorf("%w: %s: %v", ErrStart, r.path, err)
		}
		code = exitErr.ExitCode()
	}

	outcome := Outcome{
		Index:    parseSelection(stdout.String()),
		Action:   ActionForExitCode(code),
		ExitCode: code,
	}
	events.Picker.Result(outcome.Index, outcome.ExitCode, outcome.Action.String())
	return outcome, nil
}

func encodeEntries(entries []string) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(strings.ReplaceAll(e, "\x00", ""))
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// parseSelection decodes rofi's "-format i" output. Anything that is not a
// non-negative integer counts as no selection.
func parseSelection(output string) int {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return NoSelection
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		events.Picker.Malformed(trimmed)
		return NoSelection
	}
	if idx < 0 {
		return NoSelection
	}
	return idx
}

func joinIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}
