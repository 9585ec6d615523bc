package events

import (
	"context"
	"sync"
	"time"
)

const (
	LOCATION_CREATED       = "location.created"
	LOCATION_DELETED       = "location.deleted"
	VIEWING_REQUESTED      = "viewing.requested"
	VIEWING_STATUS_CHANGED = "viewing.status_changed"
	VIEWING_CANCELED       = "viewing.canceled"
)

type Event struct {
	Name       string         `json:"name"`
	OccurredAt time.Time      `json:"occurredAt"`
	Data       map[string]any `json:"data"`
}

// Publisher emits domain events. Callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error { return nil }

// Memory keeps published events, for tests.
type Memory struct {
	mu     sync.Mutex
	Events []Event
}

func (m *Memory) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		out = append(out, e.Name)
	}
	return out
}
