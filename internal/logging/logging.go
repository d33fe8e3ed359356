package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultLogName = "rofication-gui.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogPath()
	operator     io.Writer = os.Stderr
)

func defaultLogPath() string {
	return filepath.Join(os.TempDir(), defaultLogName)
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Error appends err to the log file.
func Error(err error) {
	if err == nil {
		return
	}
	withFileLogger(func(l *log.Logger) {
		l.Error(err.Error())
	})
}

// Warn records a recoverable problem in the log file and reports it to the
// operator on stderr.
func Warn(msg string, keyvals ...interface{}) {
	withFileLogger(func(l *log.Logger) {
		l.Warn(msg, keyvals...)
	})
	mu.Lock()
	w := operator
	mu.Unlock()
	if w == nil {
		return
	}
	log.NewWithOptions(w, log.Options{Prefix: "rofication-gui"}).Warn(msg, keyvals...)
}

// SetOperatorOutput redirects operator-facing warnings. Nil silences them.
func SetOperatorOutput(w io.Writer) {
	mu.Lock()
	operator = w
	mu.Unlock()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Trace appends a structured JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	path := logPath
	mu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogPath()
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogPath()
		return
	}
	logPath = path
}

func withFileLogger(fn func(*log.Logger)) {
	mu.Lock()
	path := logPath
	mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	fn(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	}))
}
