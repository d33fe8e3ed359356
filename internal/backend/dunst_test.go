package backend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/notifctl/rofication-gui/internal/notification"
)

type fakeBus struct {
	history   []map[string]dbus.Variant
	listErr   error
	removeErr map[uint32]error
	calls     []string
	removed   []uint32
}

func (f *fakeBus) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	f.calls = append(f.calls, method)
	switch method {
	case dunstInterface + ".NotificationListHistory":
		if f.listErr != nil {
			return &dbus.Call{Err: f.listErr}
		}
		return &dbus.Call{Body: []interface{}{f.history}}
	case dunstInterface + ".NotificationRemoveFromHistory":
		id := args[0].(uint32)
		if err := f.removeErr[id]; err != nil {
			return &dbus.Call{Err: err}
		}
		f.removed = append(f.removed, id)
		return &dbus.Call{}
	}
	return &dbus.Call{Err: dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}}
}

func historyEntry(id int32, app, summary, urgency string) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"id":        dbus.MakeVariant(id),
		"appname":   dbus.MakeVariant(app),
		"summary":   dbus.MakeVariant(summary),
		"body":      dbus.MakeVariant("body of " + summary),
		"urgency":   dbus.MakeVariant(urgency),
		"timestamp": dbus.MakeVariant(int64(1234)),
	}
}

func TestDunstListDecodesHistory(t *testing.T) {
	bus := &fakeBus{history: []map[string]dbus.Variant{
		historyEntry(4, "mail", "new mail", "CRITICAL"),
		historyEntry(2, "chat", "ping", "LOW"),
	}}
	d := &Dunst{obj: bus}
	list, err := d.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}
	first := list[0]
	if first.ID != 4 || first.Application != "mail" || first.Urgency != notification.Critical {
		t.Fatalf("unexpected first notification %#v", first)
	}
	if first.Body != "body of new mail" || first.Timestamp != 1234 {
		t.Fatalf("unexpected body/timestamp %#v", first)
	}
	if list[1].Urgency != notification.Low {
		t.Fatalf("expected low urgency, got %v", list[1].Urgency)
	}
}

func TestDunstListUnknownServiceIsUnavailable(t *testing.T) {
	bus := &fakeBus{listErr: dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}}
	_, err := (&Dunst{obj: bus}).List(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestDunstDeleteRejectedIsNotUnavailable(t *testing.T) {
	bus := &fakeBus{removeErr: map[uint32]error{9: dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}}}
	err := (&Dunst{obj: bus}).Delete(context.Background(), 9)
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected a recoverable error, got %v", err)
	}
}

func TestDunstDeleteAllRemovesMatchingApplication(t *testing.T) {
	bus := &fakeBus{history: []map[string]dbus.Variant{
		historyEntry(1, "mail", "a", "NORMAL"),
		historyEntry(2, "chat", "b", "NORMAL"),
		historyEntry(3, "mail", "c", "NORMAL"),
	}}
	if err := (&Dunst{obj: bus}).DeleteAll(context.Background(), "mail"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bus.removed) != 2 || bus.removed[0] != 1 || bus.removed[1] != 3 {
		t.Fatalf("expected ids [1 3] removed, got %v", bus.removed)
	}
}

func TestDunstDeleteAllAggregatesFailures(t *testing.T) {
	bus := &fakeBus{
		history: []map[string]dbus.Variant{
			historyEntry(1, "mail", "a", "NORMAL"),
			historyEntry(2, "mail", "b", "NORMAL"),
			historyEntry(3, "mail", "c", "NORMAL"),
		},
		removeErr: map[uint32]error{
			1: dbus.Error{Name: "org.example.Failed"},
			3: dbus.Error{Name: "org.example.Failed"},
		},
	}
	err := (&Dunst{obj: bus}).DeleteAll(context.Background(), "mail")
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if !strings.Contains(err.Error(), "2 errors occurred") {
		t.Fatalf("expected two aggregated failures, got %v", err)
	}
	if len(bus.removed) != 1 || bus.removed[0] != 2 {
		t.Fatalf("expected remaining id 2 removed, got %v", bus.removed)
	}
}

func TestDunstSeeIsNoOp(t *testing.T) {
	bus := &fakeBus{}
	if err := (&Dunst{obj: bus}).See(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bus.calls) != 0 {
		t.Fatalf("expected no bus calls, got %v", bus.calls)
	}
}

func TestNewDunstConnectFailure(t *testing.T) {
	prev := connectSessionBus
	t.Cleanup(func() { connectSessionBus = prev })
	connectSessionBus = func(...dbus.ConnOption) (*dbus.Conn, error) {
		return nil, errors.New("no bus")
	}
	if _, err := NewDunst(0); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
