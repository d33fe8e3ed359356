package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/notifctl/rofication-gui/internal/notification"
)

// Call records one backend request.
type Call struct {
	Op     string
	ID     notification.ID
	Target string
}

func (c Call) String() string {
	if c.Op == "delete_all" {
		return fmt.Sprintf("%s(%s)", c.Op, c.Target)
	}
	return fmt.Sprintf("%s(%s)", c.Op, c.ID)
}

// FakeBackend serves scripted lists and records mutations. Each List call
// consumes the next scripted list; the last one repeats.
type FakeBackend struct {
	mu     sync.Mutex
	lists  [][]notification.Notification
	calls  []Call
	served int

	ListErr      error
	SeeErr       error
	DeleteErr    error
	DeleteAllErr error
}

// NewFakeBackend returns a backend serving the given lists in order.
func NewFakeBackend(lists ...[]notification.Notification) *FakeBackend {
	return &FakeBackend{lists: lists}
}

func (f *FakeBackend) List(context.Context) ([]notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: "list"})
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if len(f.lists) == 0 {
		return nil, nil
	}
	idx := f.served
	if idx >= len(f.lists) {
		idx = len(f.lists) - 1
	}
	f.served++
	out := make([]notification.Notification, len(f.lists[idx]))
	copy(out, f.lists[idx])
	return out, nil
}

func (f *FakeBackend) See(_ context.Context, id notification.ID) error {
	return f.record(Call{Op: "see", ID: id}, f.SeeErr)
}

func (f *FakeBackend) Delete(_ context.Context, id notification.ID) error {
	return f.record(Call{Op: "delete", ID: id}, f.DeleteErr)
}

func (f *FakeBackend) DeleteAll(_ context.Context, application string) error {
	return f.record(Call{Op: "delete_all", Target: application}, f.DeleteAllErr)
}

func (f *FakeBackend) record(c Call, err error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return err
}

// Calls returns every request, lists included.
func (f *FakeBackend) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Mutations returns the requests other than list.
func (f *FakeBackend) Mutations() []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Op != "list" {
			out = append(out, c)
		}
	}
	return out
}

// ListCount reports how often the list was fetched.
func (f *FakeBackend) ListCount() int {
	n := 0
	for _, c := range f.Calls() {
		if c.Op == "list" {
			n++
		}
	}
	return n
}
