package notification

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a notification within the backend that issued it.
type ID uint32

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Urgency mirrors the freedesktop urgency levels.
type Urgency int

const (
	Low Urgency = iota
	Normal
	Critical
)

func (u Urgency) String() string {
	switch u {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case Critical:
		return "critical"
	default:
		return fmt.Sprintf("urgency(%d)", int(u))
	}
}

// ParseUrgency accepts either the numeric level or its name.
func ParseUrgency(value string) (Urgency, error) {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < int(Low) || n > int(Critical) {
			return Normal, fmt.Errorf("urgency %d out of range", n)
		}
		return Urgency(n), nil
	}
	switch strings.ToLower(trimmed) {
	case "low":
		return Low, nil
	case "normal":
		return Normal, nil
	case "critical":
		return Critical, nil
	}
	return Normal, fmt.Errorf("unknown urgency %q", value)
}

// Notification is a read-only snapshot of a backend notification.
type Notification struct {
	ID          ID
	Summary     string
	Body        string
	Application string
	Urgency     Urgency
	Icon        string
	Actions     []string
	Timestamp   float64
}

// Grouping holds the positions of urgent and low urgency entries of one list.
type Grouping struct {
	Urgent []int
	Low    []int
}

// Group classifies list positions by urgency. Positions are only meaningful
// for the list they were computed from.
func Group(list []Notification) Grouping {
	var g Grouping
	for i, n := range list {
		switch n.Urgency {
		case Critical:
			g.Urgent = append(g.Urgent, i)
		case Low:
			g.Low = append(g.Low, i)
		}
	}
	return g
}
