// Package eventstore defines the append-only ActionEvent log interface
// Compute reads for calibration, friction, and obviousness context (spec
// §6), and an in-memory implementation suitable for tests and demos.
package eventstore

import (
	"context"
	"sort"
	"sync"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// EventStore is the append-only event log Compute's caller reads from and
// writes to. Compute itself never writes; only a caller's AddEvent call
// after recording a user action does.
type EventStore interface {
	GetEvents(ctx context.Context, companyID string) ([]raw.ActionEvent, error)
	AddEvent(ctx context.Context, event raw.ActionEvent) error
}

// InMemory is a mutex-guarded, non-durable EventStore — the reference
// implementation for tests and the demo command. A durable store belongs
// behind the same interface, not inside this package.
type InMemory struct {
	mu     sync.RWMutex
	events []raw.ActionEvent
}

// NewInMemory returns an empty in-memory event store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// GetEvents returns every event, in timestamp order (equal timestamps in
// append order), whose payload carries a
// matching "companyId" key, plus every event with no companyId at all
// (global events). An empty companyID returns the full log.
func (s *InMemory) GetEvents(_ context.Context, companyID string) ([]raw.ActionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if companyID == "" {
		out := make([]raw.ActionEvent, len(s.events))
		copy(out, s.events)
		return out, nil
	}

	var out []raw.ActionEvent
	for _, e := range s.events {
		id, _ := e.Payload["companyId"].(string)
		if id == "" || id == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

// AddEvent appends one event, keeping the log sorted by timestamp so
// callers reading a time-windowed slice never need to re-sort.
func (s *InMemory) AddEvent(_ context.Context, event raw.ActionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	sort.SliceStable(s.events, func(i, j int) bool {
		return s.events[i].Timestamp.Before(s.events[j].Timestamp)
	})
	return nil
}
