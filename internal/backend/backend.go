// Package backend talks to the daemon that owns the notifications.
package backend

import (
	"context"
	"errors"

	"github.com/notifctl/rofication-gui/internal/notification"
)

// ErrUnavailable marks failures to reach the daemon at all, as opposed to a
// rejected request.
var ErrUnavailable = errors.New("notification daemon unavailable")

// Client is the request/response surface the selection loop consumes.
type Client interface {
	List(ctx context.Context) ([]notification.Notification, error)
	See(ctx context.Context, id notification.ID) error
	Delete(ctx context.Context, id notification.ID) error
	DeleteAll(ctx context.Context, application string) error
}
