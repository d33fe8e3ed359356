package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/notifctl/rofication-gui/internal/backend"
	"github.com/notifctl/rofication-gui/internal/controller"
	"github.com/notifctl/rofication-gui/internal/format/markup"
	"github.com/notifctl/rofication-gui/internal/format/table"
	"github.com/notifctl/rofication-gui/internal/logging/events"
	"github.com/notifctl/rofication-gui/internal/picker"
	"github.com/notifctl/rofication-gui/internal/ui"
	"golang.org/x/term"
)

const (
	BackendRofication = "rofication"
	BackendDunst      = "dunst"

	PickerAuto     = "auto"
	PickerRofi     = "rofi"
	PickerTerminal = "terminal"
)

// listSummaryWidth caps the summary column of --list output.
const listSummaryWidth = 60

// Config describes user-provided application options.
type Config struct {
	Backend    string
	SocketPath string
	Timeout    time.Duration
	Picker     string
	RofiPath   string
	RofiArgs   []string
	DeleteSeen bool
	ListOnly   bool
}

var (
	newDunst   = func(timeout time.Duration) (dunstClient, error) { return backend.NewDunst(timeout) }
	stdinIsTTY = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	lookupEnv  = os.LookupEnv
)

type dunstClient interface {
	backend.Client
	Close() error
}

// Run wires the backend and picker together and runs until the loop stops or
// the process is interrupted.
func Run(cfg Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunContext(ctx, cfg, os.Stdout)
}

// RunContext is Run with an explicit context and output for --list.
func RunContext(ctx context.Context, cfg Config, out io.Writer) error {
	client, closeClient, err := newBackend(cfg)
	if err != nil {
		return err
	}
	defer closeClient()

	if cfg.ListOnly {
		err := printList(ctx, client, out)
		events.App.Stop("list")
		return err
	}

	p, err := newPicker(cfg)
	if err != nil {
		return err
	}
	ctl := controller.New(client, p, controller.Options{DeleteSeen: cfg.DeleteSeen})
	if err := ctl.Run(ctx); err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("done")
	return nil
}

func newBackend(cfg Config) (backend.Client, func(), error) {
	switch cfg.Backend {
	case "", BackendRofication:
		return backend.NewRofication(cfg.SocketPath, cfg.Timeout), func() {}, nil
	case BackendDunst:
		d, err := newDunst(cfg.Timeout)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to dunst: %w", err)
		}
		return d, func() { _ = d.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func newPicker(cfg Config) (picker.Picker, error) {
	switch ResolvePicker(cfg.Picker) {
	case PickerRofi:
		return picker.NewRofi(cfg.RofiPath, cfg.RofiArgs), nil
	case PickerTerminal:
		return ui.NewPicker(os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown picker %q", cfg.Picker)
	}
}

// ResolvePicker returns the concrete picker for the requested kind, settling
// auto against the current session.
func ResolvePicker(requested string) string {
	if requested == "" || requested == PickerAuto {
		return resolveAutoPicker()
	}
	return requested
}

// graphicalSession reports whether a Wayland or X11 display is reachable
// from the environment.
func graphicalSession() bool {
	for _, key := range []string{"WAYLAND_DISPLAY", "DISPLAY"} {
		if v, ok := lookupEnv(key); ok && v != "" {
			return true
		}
	}
	return false
}

// resolveAutoPicker prefers rofi inside a graphical session and falls back to
// the terminal picker when stdin is a terminal.
func resolveAutoPicker() string {
	if graphicalSession() {
		return PickerRofi
	}
	if stdinIsTTY() {
		return PickerTerminal
	}
	return PickerRofi
}

func printList(ctx context.Context, client backend.Client, out io.Writer) error {
	list, err := client.List(ctx)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, []string{"ID", "URGENCY", "APPLICATION", "SUMMARY"})
	for _, n := range list {
		rows = append(rows, []string{
			n.ID.String(),
			n.Urgency.String(),
			markup.Plain(n.Application),
			table.Truncate(markup.Plain(n.Summary), listSummaryWidth),
		})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight}) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
