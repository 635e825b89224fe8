package audit

import (
	"context"
	"slices"
	"sync"
)

type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCompany(ctx context.Context, companyShortName string) ([]Event, error)
}

// InMemoryStore keeps events per tenant in append order.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CompanyShortName] = append(s.events[event.CompanyShortName], event)
	return nil
}

func (s *InMemoryStore) ListByCompany(_ context.Context, companyShortName string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events[companyShortName]), nil
}
