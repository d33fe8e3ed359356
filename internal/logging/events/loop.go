package events

import "github.com/notifctl/rofication-gui/internal/logging"

type LoopTracer struct{}

type StopReason string

const (
	StopNoSelection StopReason = "no-selection"
	StopOutOfRange  StopReason = "out-of-range"
	StopLastEntry   StopReason = "last-entry"
	StopApplication StopReason = "application-cleared"
	StopCancel      StopReason = "cancel"
	StopError       StopReason = "error"
)

var Loop = LoopTracer{}

func (LoopTracer) Iteration(n, count, urgent, low, cursor int) {
	logging.Trace("loop.iteration", map[string]interface{}{
		"iteration": n,
		"count":     count,
		"urgent":    urgent,
		"low":       low,
		"cursor":    cursor,
	})
}

func (LoopTracer) Dispatch(action string, index int, id string) {
	logging.Trace("loop.dispatch", map[string]interface{}{"action": action, "index": index, "id": id})
}

func (LoopTracer) Stop(reason StopReason) {
	logging.Trace("loop.stop", map[string]interface{}{"reason": string(reason)})
}
