package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/notifctl/rofication-gui/internal/app"
	"github.com/notifctl/rofication-gui/internal/config"
	"github.com/notifctl/rofication-gui/internal/logging"
	"github.com/notifctl/rofication-gui/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(newStartupReport(runtimeCfg, os.LookupEnv))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupReport is the first trace entry of a run: what was asked for and
// what the environment resolved it to.
type startupReport struct {
	Argv    []string          `json:"argv"`
	Flags   map[string]string `json:"flags"`
	Backend backendReport     `json:"backend"`
	Picker  pickerReport      `json:"picker"`
	Session sessionReport     `json:"session"`
	LogFile string            `json:"log_file"`
}

type backendReport struct {
	Name          string `json:"name"`
	Endpoint      string `json:"endpoint"`
	SocketPresent *bool  `json:"socket_present,omitempty"`
}

type pickerReport struct {
	Requested   string `json:"requested"`
	Resolved    string `json:"resolved"`
	Executable  string `json:"executable,omitempty"`
	LookupError string `json:"lookup_error,omitempty"`
}

type sessionReport struct {
	Display        string `json:"display,omitempty"`
	WaylandDisplay string `json:"wayland_display,omitempty"`
	Graphical      bool   `json:"graphical"`
	StdinTTY       bool   `json:"stdin_tty"`
}

var (
	lookPath   = exec.LookPath
	stdinIsTTY = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

func newStartupReport(cfg config.Config, lookupEnv func(string) (string, bool)) startupReport {
	flags := make(map[string]string, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	display, _ := lookupEnv("DISPLAY")
	wayland, _ := lookupEnv("WAYLAND_DISPLAY")
	return startupReport{
		Argv:    cfg.Args,
		Flags:   flags,
		Backend: describeBackend(cfg.App, lookupEnv),
		Picker:  describePicker(cfg.App),
		Session: sessionReport{
			Display:        display,
			WaylandDisplay: wayland,
			Graphical:      display != "" || wayland != "",
			StdinTTY:       stdinIsTTY(),
		},
		LogFile: logging.Path(),
	}
}

func describeBackend(cfg app.Config, lookupEnv func(string) (string, bool)) backendReport {
	if cfg.Backend == app.BackendDunst {
		endpoint := "session bus (autolaunch)"
		if addr, ok := lookupEnv("DBUS_SESSION_BUS_ADDRESS"); ok && addr != "" {
			endpoint = addr
		}
		return backendReport{Name: cfg.Backend, Endpoint: endpoint}
	}
	_, err := os.Stat(cfg.SocketPath)
	present := err == nil
	return backendReport{Name: app.BackendRofication, Endpoint: cfg.SocketPath, SocketPresent: &present}
}

func describePicker(cfg app.Config) pickerReport {
	report := pickerReport{Requested: cfg.Picker, Resolved: app.ResolvePicker(cfg.Picker)}
	if report.Resolved != app.PickerRofi {
		return report
	}
	if path, err := lookPath(cfg.RofiPath); err == nil {
		report.Executable = path
	} else {
		report.LookupError = err.Error()
	}
	return report
}
