package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/notifctl/rofication-gui/internal/logging/events"
	"github.com/notifctl/rofication-gui/internal/notification"
)

// DefaultRoficationSocket is where the rofication daemon listens by default.
const DefaultRoficationSocket = "/tmp/rofi_notification_daemon"

const roficationName = "rofication"

// Rofication speaks the rofication daemon's line-less text protocol: one
// command per connection, the daemon answers "list" with a JSON array and
// closes.
type Rofication struct {
	socketPath string
	timeout    time.Duration
	dial       func(ctx context.Context, network, address string) (net.Conn, error)
}

// NewRofication returns a client for the daemon socket. A non-positive
// timeout disables per-request deadlines.
func NewRofication(socketPath string, timeout time.Duration) *Rofication {
	if strings.TrimSpace(socketPath) == "" {
		socketPath = DefaultRoficationSocket
	}
	d := &net.Dialer{}
	return &Rofication{socketPath: socketPath, timeout: timeout, dial: d.DialContext}
}

// roficationRecord is the daemon's JSON shape of a notification.
type roficationRecord struct {
	ID          uint32   `json:"id"`
	Summary     string   `json:"summary"`
	Body        string   `json:"body"`
	Application string   `json:"application"`
	Icon        string   `json:"icon"`
	Urgency     int      `json:"urgency"`
	Actions     []string `json:"actions"`
	Timestamp   float64  `json:"timestamp"`
}

func (r roficationRecord) notification() notification.Notification {
	urgency := notification.Urgency(r.Urgency)
	if urgency < notification.Low || urgency > notification.Critical {
		urgency = notification.Normal
	}
	return notification.Notification{
		ID:          notification.ID(r.ID),
		Summary:     r.Summary,
		Body:        r.Body,
		Application: r.Application,
		Urgency:     urgency,
		Icon:        r.Icon,
		Actions:     append([]string(nil), r.Actions...),
		Timestamp:   r.Timestamp,
	}
}

func (c *Rofication) List(ctx context.Context) ([]notification.Notification, error) {
	var records []roficationRecord
	err := c.exchange(ctx, "list", func(r io.Reader) error {
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return fmt.Errorf("decode notification list: %w", err)
		}
		return nil
	})
	if err != nil {
		events.Backend.Error("list", err)
		return nil, err
	}
	out := make([]notification.Notification, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.notification())
	}
	events.Backend.List(roficationName, len(out))
	return out, nil
}

func (c *Rofication) See(ctx context.Context, id notification.ID) error {
	return c.command(ctx, "see", "saw:"+id.String())
}

func (c *Rofication) Delete(ctx context.Context, id notification.ID) error {
	return c.command(ctx, "delete", "del:"+id.String())
}

func (c *Rofication) DeleteAll(ctx context.Context, application string) error {
	return c.command(ctx, "delete-all", "dela:"+application)
}

func (c *Rofication) command(ctx context.Context, op, cmd string) error {
	events.Backend.Mutate(roficationName, op, cmd)
	if err := c.exchange(ctx, cmd, nil); err != nil {
		events.Backend.Error(op, err)
		return err
	}
	return nil
}

// exchange sends one command and, when read is non-nil, hands it the reply.
func (c *Rofication) exchange(ctx context.Context, cmd string, read func(io.Reader) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	conn, err := c.dial(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrUnavailable, c.socketPath, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}
	if _, err := io.WriteString(conn, cmd); err != nil {
		return fmt.Errorf("%w: send %q: %v", ErrUnavailable, cmd, err)
	}
	if read == nil {
		return nil
	}
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}
	return read(conn)
}
