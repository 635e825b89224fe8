package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"credmgr/internal/account/models"
	"credmgr/internal/sentinel"
	dErrors "credmgr/pkg/domain-errors"
	"credmgr/pkg/requestcontext"
	"credmgr/pkg/validation"
)

// Store persists tenant configs keyed by company short name.
type Store interface {
	FindByCompanyShortName(ctx context.Context, shortName string) (*models.TenantConfig, error)
	Save(ctx context.Context, cfg *models.TenantConfig) error
}

// Service applies admin edits to an existing tenant config.
type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateConfig merges the editable OIDC client settings of in into the stored
// config for in.CompanyShortName and returns the persisted copy. Registration
// state (id, admin link, activation) is never taken from the input, and blank
// secrets keep their previous values.
func (s *Service) UpdateConfig(ctx context.Context, in *models.TenantConfig) (*models.TenantConfig, error) {
	if in == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "config is required")
	}
	in.CompanyShortName = strings.TrimSpace(in.CompanyShortName)
	in.Host = strings.TrimRight(strings.TrimSpace(in.Host), "/")
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	current, err := s.store.FindByCompanyShortName(ctx, in.CompanyShortName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeRetrieveConfig, "tenant config not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load tenant config")
	}

	current.CompanyName = in.CompanyName
	current.Host = in.Host
	current.ClientID = in.ClientID
	current.ClientJKS = in.ClientJKS
	current.ClientKeyID = in.ClientKeyID
	current.AuthenticationLevel = in.AuthenticationLevel
	current.SMSFromNumber = in.SMSFromNumber
	if in.Email != "" {
		current.Email = in.Email
	}
	if in.ClientSecret != "" {
		current.ClientSecret = in.ClientSecret
	}
	if in.JKSPassword != "" {
		current.JKSPassword = in.JKSPassword
	}

	if err := s.store.Save(ctx, current); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save tenant config")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "tenant config updated",
			"company_short_name", current.CompanyShortName,
			"has_keystore", current.HasKeystore(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return current.Clone(), nil
}
