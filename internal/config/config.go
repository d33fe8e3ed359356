package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/notifctl/rofication-gui/internal/app"
	"github.com/notifctl/rofication-gui/internal/backend"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDeleteSeen = "ROFICATION_GUI_DELETE_SEEN"
	envBackend    = "ROFICATION_GUI_BACKEND"
	envSocketPath = "ROFICATION_GUI_SOCKET"
	envPicker     = "ROFICATION_GUI_PICKER"
	envRofi       = "ROFICATION_GUI_ROFI"
	envRofiArgs   = "ROFICATION_GUI_ROFI_ARGS"
	envTimeout    = "ROFICATION_GUI_TIMEOUT"
	envTrace      = "ROFICATION_GUI_TRACE"
	envLogFile    = "ROFICATION_GUI_LOG_FILE"
)

const defaultTimeout = 2 * time.Second

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("rofication-gui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	var deleteSeen bool
	deleteSeenDefault := envOrBool(env, envDeleteSeen, false)
	fs.BoolVar(&deleteSeen, "delete_seen", deleteSeenDefault, "delete notifications once they are marked seen")
	fs.BoolVar(&deleteSeen, "delete-seen", deleteSeenDefault, "alias for --delete_seen")
	backendName := fs.String("backend", envOrDefault(env, envBackend, app.BackendRofication), "notification backend: rofication or dunst")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, backend.DefaultRoficationSocket), "path to the rofication daemon socket")
	pickerName := fs.String("picker", envOrDefault(env, envPicker, app.PickerAuto), "picker: rofi, terminal or auto")
	rofi := fs.String("rofi", envOrDefault(env, envRofi, "rofi"), "rofi executable")
	rofiArgs := fs.String("rofi-args", envOrDefault(env, envRofiArgs, ""), "extra rofi arguments, shell quoted")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, defaultTimeout), "timeout for each backend request")
	list := fs.Bool("list", false, "print notifications and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var extra []string
	if strings.TrimSpace(*rofiArgs) != "" {
		split, err := shlex.Split(*rofiArgs)
		if err != nil {
			return Config{}, fmt.Errorf("parse rofi-args: %w", err)
		}
		extra = split
	}

	cfg := Config{
		App: app.Config{
			Backend:    *backendName,
			SocketPath: *socket,
			Timeout:    *timeout,
			Picker:     *pickerName,
			RofiPath:   *rofi,
			RofiArgs:   extra,
			DeleteSeen: deleteSeen,
			ListOnly:   *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"deleteSeen": strconv.FormatBool(deleteSeen),
			"backend":    *backendName,
			"socket":     *socket,
			"picker":     *pickerName,
			"rofi":       *rofi,
			"rofiArgs":   *rofiArgs,
			"timeout":    timeout.String(),
			"list":       strconv.FormatBool(*list),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the application cannot act on.
func Validate(cfg Config) error {
	switch cfg.App.Backend {
	case app.BackendRofication, app.BackendDunst:
	default:
		return fmt.Errorf("backend must be %q or %q (got %q)", app.BackendRofication, app.BackendDunst, cfg.App.Backend)
	}
	switch cfg.App.Picker {
	case app.PickerAuto, app.PickerRofi, app.PickerTerminal:
	default:
		return fmt.Errorf("picker must be %q, %q or %q (got %q)", app.PickerAuto, app.PickerRofi, app.PickerTerminal, cfg.App.Picker)
	}
	if cfg.App.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	if cfg.App.Backend == app.BackendRofication && strings.TrimSpace(cfg.App.SocketPath) == "" {
		return fmt.Errorf("socket must not be empty")
	}
	return nil
}
