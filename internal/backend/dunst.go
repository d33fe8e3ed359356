package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/hashicorp/go-multierror"

	"github.com/notifctl/rofication-gui/internal/logging/events"
	"github.com/notifctl/rofication-gui/internal/notification"
)

const (
	dunstDestination = "org.freedesktop.Notifications"
	dunstPath        = dbus.ObjectPath("/org/freedesktop/Notifications")
	dunstInterface   = "org.dunstproject.cmd0"
	dunstName        = "dunst"
)

// dbusCaller is the part of dbus.BusObject used here.
type dbusCaller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Dunst reads and prunes dunst's notification history over the session bus.
// Dunst keeps no "seen" state, so See only traces the request.
type Dunst struct {
	obj     dbusCaller
	conn    *dbus.Conn
	timeout time.Duration
}

var connectSessionBus = dbus.ConnectSessionBus

// NewDunst connects to the session bus.
func NewDunst(timeout time.Duration) (*Dunst, error) {
	conn, err := connectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: session bus: %v", ErrUnavailable, err)
	}
	return &Dunst{
		obj:     conn.Object(dunstDestination, dunstPath),
		conn:    conn,
		timeout: timeout,
	}, nil
}

// Close releases the bus connection.
func (d *Dunst) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

func (d *Dunst) List(ctx context.Context) ([]notification.Notification, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	call := d.obj.CallWithContext(ctx, dunstInterface+".NotificationListHistory", 0)
	if call.Err != nil {
		err := d.wrapCallErr("NotificationListHistory", call.Err)
		events.Backend.Error("list", err)
		return nil, err
	}
	if len(call.Body) == 0 {
		return nil, fmt.Errorf("NotificationListHistory: empty reply")
	}
	entries, ok := call.Body[0].([]map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("NotificationListHistory: unexpected reply type %T", call.Body[0])
	}
	out := make([]notification.Notification, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dunstNotification(entry))
	}
	events.Backend.List(dunstName, len(out))
	return out, nil
}

func (d *Dunst) See(_ context.Context, id notification.ID) error {
	events.Backend.Mutate(dunstName, "see", id.String())
	return nil
}

func (d *Dunst) Delete(ctx context.Context, id notification.ID) error {
	events.Backend.Mutate(dunstName, "delete", id.String())
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	call := d.obj.CallWithContext(ctx, dunstInterface+".NotificationRemoveFromHistory", 0, uint32(id))
	if call.Err != nil {
		err := d.wrapCallErr("NotificationRemoveFromHistory", call.Err)
		events.Backend.Error("delete", err)
		return err
	}
	return nil
}

// DeleteAll removes every history entry of the application. All matches are
// attempted; failures are aggregated.
func (d *Dunst) DeleteAll(ctx context.Context, application string) error {
	events.Backend.Mutate(dunstName, "delete-all", application)
	list, err := d.List(ctx)
	if err != nil {
		return err
	}
	errs := new(multierror.Error)
	for _, n := range list {
		if n.Application != application {
			continue
		}
		if err := d.Delete(ctx, n.ID); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("remove %s: %w", n.ID, err))
		}
	}
	return errs.ErrorOrNil()
}

func (d *Dunst) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d.timeout)
}

// wrapCallErr separates "nobody answered" from errors dunst itself returned.
func (d *Dunst) wrapCallErr(method string, err error) error {
	name, ok := dbusErrorName(err)
	if !ok {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}
	switch name {
	case "org.freedesktop.DBus.Error.ServiceUnknown",
		"org.freedesktop.DBus.Error.NoReply",
		"org.freedesktop.DBus.Error.UnknownMethod",
		"org.freedesktop.DBus.Error.UnknownInterface":
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}
	return fmt.Errorf("%s: %w", method, err)
}

func dbusErrorName(err error) (string, bool) {
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Name, true
	}
	var ptr *dbus.Error
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Name, true
	}
	return "", false
}

func dunstNotification(entry map[string]dbus.Variant) notification.Notification {
	n := notification.Notification{
		ID:          notification.ID(variantUint(entry["id"])),
		Summary:     variantString(entry["summary"]),
		Body:        variantString(entry["body"]),
		Application: variantString(entry["appname"]),
		Icon:        variantString(entry["icon_path"]),
		Urgency:     notification.Normal,
	}
	if u, err := notification.ParseUrgency(variantString(entry["urgency"])); err == nil {
		n.Urgency = u
	}
	if ts := variantUint(entry["timestamp"]); ts > 0 {
		n.Timestamp = float64(ts)
	}
	if action := variantString(entry["default_action_name"]); action != "" {
		n.Actions = []string{action}
	}
	return n
}

func variantString(v dbus.Variant) string {
	switch val := v.Value().(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

func variantUint(v dbus.Variant) uint64 {
	switch val := v.Value().(type) {
	case int32:
		if val > 0 {
			return uint64(val)
		}
	case uint32:
		return uint64(val)
	case int64:
		if val > 0 {
			return uint64(val)
		}
	case uint64:
		return val
	case byte:
		return uint64(val)
	}
	return 0
}
