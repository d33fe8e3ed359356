package events

import "github.com/notifctl/rofication-gui/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) List(backend string, count int) {
	logging.Trace("backend.list", map[string]interface{}{"backend": backend, "count": count})
}

func (BackendTracer) Mutate(backend, op, target string) {
	logging.Trace("backend.mutate", map[string]interface{}{"backend": backend, "op": op, "target": target})
}

func (BackendTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"op": op, "error": err.Error()})
}
