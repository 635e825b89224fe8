package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"credmgr/internal/account/models"
	"credmgr/internal/sentinel"
)

// ErrNotFound is returned when no user matches.
var ErrNotFound = sentinel.ErrNotFound

// InMemory keeps users in memory with unique login and email indexes
// (case-insensitive).
type InMemory struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byLogin map[string]string
	byEmail map[string]string
}

// NewInMemory creates an empty user store.
func NewInMemory() *InMemory {
	return &InMemory{
		users:   make(map[string]*models.User),
		byLogin: make(map[string]string),
		byEmail: make(map[string]string),
	}
}

// Create stores u if both its login and email are unused. An ID is assigned
// when missing.
func (s *InMemory) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	login, email := strings.ToLower(u.Login), strings.ToLower(u.Email)
	if _, ok := s.byLogin[login]; ok {
		return fmt.Errorf("login %q: %w", u.Login, sentinel.ErrAlreadyUsed)
	}
	if _, ok := s.byEmail[email]; ok && email != "" {
		return fmt.Errorf("email %q: %w", u.Email, sentinel.ErrAlreadyUsed)
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users[u.ID] = u.Clone()
	s.byLogin[login] = u.ID
	if email != "" {
		s.byEmail[email] = u.ID
	}
	return nil
}

// Update replaces an existing user. Login and email are immutable.
func (s *InMemory) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return ErrNotFound
	}
	s.users[u.ID] = u.Clone()
	return nil
}

// ExistsByLoginOrEmail reports whether either identifier is taken.
func (s *InMemory) ExistsByLoginOrEmail(_ context.Context, login, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, byLogin := s.byLogin[strings.ToLower(login)]
	_, byEmail := s.byEmail[strings.ToLower(email)]
	return byLogin || (byEmail && email != ""), nil
}

// FindByID returns the user with id.
func (s *InMemory) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return u.Clone(), nil
	}
	return nil, ErrNotFound
}

// FindByEmail returns the user registered with email.
func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byEmail[strings.ToLower(email)]; ok {
		return s.users[id].Clone(), nil
	}
	return nil, ErrNotFound
}

// FindByMobile returns the tenant member registered with mobile.
func (s *InMemory) FindByMobile(_ context.Context, companyShortName, mobile string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.CompanyShortName == companyShortName && u.Mobile == mobile && mobile != "" {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// FindByResetKey returns the user holding an outstanding reset key.
func (s *InMemory) FindByResetKey(_ context.Context, key string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if key != "" && u.ResetKey == key {
			return u.Clone(), nil
		}
	}
	return nil, ErrNotFound
}
