package events

import "github.com/notifctl/rofication-gui/internal/logging"

type PickerTracer struct{}

var Picker = PickerTracer{}

func (PickerTracer) Invoke(command string, args []string, entries int) {
	logging.Trace("picker.invoke", map[string]interface{}{"command": command, "args": args, "entries": entries})
}

func (PickerTracer) Result(index, exitCode int, action string) {
	logging.Trace("picker.result", map[string]interface{}{"index": index, "exitCode": exitCode, "action": action})
}

func (PickerTracer) Malformed(output string) {
	logging.Trace("picker.malformed", map[string]interface{}{"output": output})
}
