package store

import (
	"context"
	"sync"

	"summit-connect/internal/attendee/models"
)

// InMemory keeps the initial implementation lightweight and testable. It
// intentionally favors clarity over performance.
type InMemory struct {
	mu        sync.RWMutex
	attendees map[string]models.Attendee
}

func NewInMemory() *InMemory {
	return &InMemory{attendees: make(map[string]models.Attendee)}
}

func (s *InMemory) List(_ context.Context) ([]models.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Attendee, 0, len(s.attendees))
	for _, a := range s.attendees {
		out = append(out, a)
	}
	return out, nil
}

func (s *InMemory) Put(_ context.Context, attendee models.Attendee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendees[attendee.ID] = attendee
	return nil
}

func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attendees, id)
	return nil
}
