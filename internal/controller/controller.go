// Package controller runs the fetch, pick, act loop over the notification
// list.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/notifctl/rofication-gui/internal/backend"
	"github.com/notifctl/rofication-gui/internal/format/markup"
	"github.com/notifctl/rofication-gui/internal/logging"
	"github.com/notifctl/rofication-gui/internal/logging/events"
	"github.com/notifctl/rofication-gui/internal/notification"
	"github.com/notifctl/rofication-gui/internal/picker"
)

// State is the loop state after an iteration.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configures the controller.
type Options struct {
	// DeleteSeen also deletes a notification when it is acknowledged.
	DeleteSeen bool
}

// Controller owns the selection loop. It is not safe for concurrent use.
type Controller struct {
	client    backend.Client
	picker    picker.Picker
	opts      Options
	cursor    int
	iteration int
}

// New returns a controller with no prior selection.
func New(client backend.Client, p picker.Picker, opts Options) *Controller {
	return &Controller{client: client, picker: p, opts: opts, cursor: picker.NoSelection}
}

// Cursor returns the row highlighted on the next invocation, or
// picker.NoSelection.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Run iterates until the user stops or an unrecoverable error occurs.
func (c *Controller) Run(ctx context.Context) error {
	for {
		state, err := c.Step(ctx)
		if err != nil {
			events.Loop.Stop(events.StopError)
			return err
		}
		if state == Stopped {
			return nil
		}
	}
}

// Step runs one iteration against a freshly fetched list. Positions handed
// to the picker are valid for this iteration only.
func (c *Controller) Step(ctx context.Context) (State, error) {
	list, err := c.client.List(ctx)
	if err != nil {
		return Stopped, fmt.Errorf("list notifications: %w", err)
	}
	entries := markup.Entries(list)
	groups := notification.Group(list)
	c.iteration++
	events.Loop.Iteration(c.iteration, len(list), len(groups.Urgent), len(groups.Low), c.cursor)

	outcome, err := c.picker.Pick(ctx, entries, picker.Options{
		Urgent:      groups.Urgent,
		Low:         groups.Low,
		SelectedRow: c.cursor,
	})
	if err != nil {
		return Stopped, fmt.Errorf("show picker: %w", err)
	}
	if !outcome.Selected() {
		return c.stop(events.StopNoSelection), nil
	}
	if outcome.Index >= len(list) {
		return c.stop(events.StopOutOfRange), nil
	}
	return c.dispatch(ctx, list, outcome.Index, outcome.Action)
}

func (c *Controller) dispatch(ctx context.Context, list []notification.Notification, index int, action picker.Action) (State, error) {
	target := list[index]
	events.Loop.Dispatch(action.String(), index, target.ID.String())
	last := len(list) == 1

	switch action {
	case picker.ActionDelete:
		failed, err := c.check("delete", target, c.client.Delete(ctx, target.ID))
		if err != nil {
			return Stopped, err
		}
		if !failed && last {
			return c.stop(events.StopLastEntry), nil
		}
	case picker.ActionAcknowledge:
		failed, err := c.check("see", target, c.client.See(ctx, target.ID))
		if err != nil {
			return Stopped, err
		}
		if !failed && c.opts.DeleteSeen {
			failed, err = c.check("delete", target, c.client.Delete(ctx, target.ID))
			if err != nil {
				return Stopped, err
			}
			if !failed && last {
				return c.stop(events.StopLastEntry), nil
			}
		}
	case picker.ActionRefresh:
	case picker.ActionDeleteApplication:
		if err := c.client.DeleteAll(ctx, target.Application); err != nil {
			if errors.Is(err, backend.ErrUnavailable) {
				return Stopped, fmt.Errorf("delete notifications of %q: %w", target.Application, err)
			}
			logging.Warn("delete all failed", "application", target.Application, "err", err)
		}
		return c.stop(events.StopApplication), nil
	default:
		return c.stop(events.StopCancel), nil
	}

	c.cursor = index
	return Running, nil
}

// check classifies a mutation error. Unavailable daemons stop the loop; any
// other failure is reported and left for the next fetch to reconcile.
func (c *Controller) check(op string, target notification.Notification, err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, backend.ErrUnavailable) {
		return true, fmt.Errorf("%s notification %s: %w", op, target.ID, err)
	}
	logging.Warn(op+" failed", "id", target.ID.String(), "err", err)
	return true, nil
}

func (c *Controller) stop(reason events.StopReason) State {
	events.Loop.Stop(reason)
	return Stopped
}
