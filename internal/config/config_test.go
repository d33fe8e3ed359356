package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/notifctl/rofication-gui/internal/app"
	"github.com/notifctl/rofication-gui/internal/backend"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{
		Backend:    app.BackendRofication,
		SocketPath: backend.DefaultRoficationSocket,
		Timeout:    2 * time.Second,
		Picker:     app.PickerAuto,
		RofiPath:   "rofi",
	}
	if !reflect.DeepEqual(cfg.App, want) {
		t.Fatalf("expected %+v, got %+v", want, cfg.App)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsDeleteSeenSpellings(t *testing.T) {
	for _, flagName := range []string{"--delete_seen", "--delete-seen"} {
		cfg, err := LoadArgs([]string{flagName}, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", flagName, err)
		}
		if !cfg.App.DeleteSeen {
			t.Fatalf("%s: expected delete seen enabled", flagName)
		}
		if cfg.Flags["deleteSeen"] != "true" {
			t.Fatalf("%s: expected flag map entry, got %q", flagName, cfg.Flags["deleteSeen"])
		}
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	environ := []string{
		envDeleteSeen + "=1",
		envBackend + "=dunst",
		envPicker + "=terminal",
		envTimeout + "=500ms",
		envTrace + "=true",
		envLogFile + "=/tmp/gui.log",
		"UNRELATED",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.DeleteSeen || cfg.App.Backend != app.BackendDunst || cfg.App.Picker != app.PickerTerminal {
		t.Fatalf("expected env values applied, got %+v", cfg.App)
	}
	if cfg.App.Timeout != 500*time.Millisecond {
		t.Fatalf("expected 500ms timeout, got %s", cfg.App.Timeout)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/gui.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--socket", "/run/user/1000/rofication", "--timeout", "5s"}, []string{
		envSocketPath + "=/tmp/other",
		envTimeout + "=bogus",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SocketPath != "/run/user/1000/rofication" {
		t.Fatalf("expected flag socket, got %q", cfg.App.SocketPath)
	}
	if cfg.App.Timeout != 5*time.Second {
		t.Fatalf("expected 5s, got %s", cfg.App.Timeout)
	}
}

func TestLoadArgsRofiArgsAreShellSplit(t *testing.T) {
	cfg, err := LoadArgs([]string{"--rofi-args", `-theme "my theme.rasi" -i`}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"-theme", "my theme.rasi", "-i"}
	if !reflect.DeepEqual(cfg.App.RofiArgs, want) {
		t.Fatalf("expected %q, got %q", want, cfg.App.RofiArgs)
	}
}

func TestLoadArgsRejectsUnbalancedQuotes(t *testing.T) {
	if _, err := LoadArgs([]string{"--rofi-args", `-theme "broken`}, nil); err == nil {
		t.Fatalf("expected error for unbalanced quote")
	}
}

func TestLoadArgsRejectsPositionalArguments(t *testing.T) {
	if _, err := LoadArgs([]string{"extra"}, nil); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.App.Backend = "mako" }},
		{"picker", func(c *Config) { c.App.Picker = "fzf" }},
		{"timeout", func(c *Config) { c.App.Timeout = 0 }},
		{"socket", func(c *Config) { c.App.SocketPath = " " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
