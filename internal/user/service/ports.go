package service

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"credmgr/internal/account/models"
	"credmgr/internal/audit"
	"credmgr/internal/oidc"
)

// OIDCClient talks to the tenant's OpenID provider.
type OIDCClient interface {
	LoginURI(cfg *models.TenantConfig, redirectURI, state string) (string, error)
	LogoutURI(cfg *models.TenantConfig, redirectURI string) (string, error)
	Exchange(ctx context.Context, cfg *models.TenantConfig, redirectURI, code string) (*oidc.Identity, error)
}

// Sessions opens and closes login sessions.
type Sessions interface {
	Issue(ctx context.Context, userID, companyShortName string) (string, time.Time, error)
	Revoke(ctx context.Context, sessionID string)
}

// AuditPublisher records account actions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
