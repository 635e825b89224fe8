package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"credmgr/internal/account/models"
	"credmgr/internal/sentinel"
)

// ErrNotFound is returned when no tenant config matches.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores tenant configs keyed by company short name. Values are
// cloned on the way in and out so callers never share pointers.
type InMemory struct {
	mu            sync.RWMutex
	byShortName   map[string]*models.TenantConfig
	activationIdx map[string]string
}

// NewInMemory creates an empty tenant config store.
func NewInMemory() *InMemory {
	return &InMemory{
		byShortName:   make(map[string]*models.TenantConfig),
		activationIdx: make(map[string]string),
	}
}

// Create stores cfg if its short name is free. An ID is assigned when missing.
func (s *InMemory) Create(_ context.Context, cfg *models.TenantConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byShortName[cfg.CompanyShortName]; exists {
		return fmt.Errorf("company short name %q: %w", cfg.CompanyShortName, sentinel.ErrAlreadyUsed)
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	s.put(cfg)
	return nil
}

// Save upserts cfg by short name.
func (s *InMemory) Save(_ context.Context, cfg *models.TenantConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.byShortName[cfg.CompanyShortName]; ok && prev.ActivationKey != "" {
		delete(s.activationIdx, prev.ActivationKey)
	}
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	s.put(cfg)
	return nil
}

func (s *InMemory) put(cfg *models.TenantConfig) {
	s.byShortName[cfg.CompanyShortName] = cfg.Clone()
	if cfg.ActivationKey != "" {
		s.activationIdx[cfg.ActivationKey] = cfg.CompanyShortName
	}
}

// Delete removes the config for shortName. Missing entries are ignored.
func (s *InMemory) Delete(_ context.Context, shortName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.byShortName[shortName]; ok {
		delete(s.activationIdx, prev.ActivationKey)
		delete(s.byShortName, shortName)
	}
	return nil
}

// FindByCompanyShortName returns the config for shortName.
func (s *InMemory) FindByCompanyShortName(_ context.Context, shortName string) (*models.TenantConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cfg, ok := s.byShortName[shortName]; ok {
		return cfg.Clone(), nil
	}
	return nil, ErrNotFound
}

// FindByActivationKey returns the config whose pending activation key is key.
func (s *InMemory) FindByActivationKey(_ context.Context, key string) (*models.TenantConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if shortName, ok := s.activationIdx[key]; ok && key != "" {
		return s.byShortName[shortName].Clone(), nil
	}
	return nil, ErrNotFound
}
