package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"credmgr/internal/account/models"
	"credmgr/internal/audit"
	"credmgr/internal/sentinel"
	dErrors "credmgr/pkg/domain-errors"
	"credmgr/pkg/requestcontext"
	"credmgr/pkg/secrets"
	"credmgr/pkg/validation"
)

// DefaultResetKeyTTL bounds how long a password reset key stays usable.
const DefaultResetKeyTTL = 24 * time.Hour

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	ExistsByLoginOrEmail(ctx context.Context, login, email string) (bool, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByMobile(ctx context.Context, companyShortName, mobile string) (*models.User, error)
	FindByResetKey(ctx context.Context, key string) (*models.User, error)
}

type ConfigStore interface {
	Create(ctx context.Context, cfg *models.TenantConfig) error
	Save(ctx context.Context, cfg *models.TenantConfig) error
	Delete(ctx context.Context, shortName string) error
	FindByCompanyShortName(ctx context.Context, shortName string) (*models.TenantConfig, error)
	FindByActivationKey(ctx context.Context, key string) (*models.TenantConfig, error)
}

// Service manages tenant admin registration, OIDC-backed login and the
// password lifecycle of account users.
type Service struct {
	users       UserStore
	configs     ConfigStore
	oidc        OIDCClient
	sessions    Sessions
	audit       AuditPublisher
	logger      *slog.Logger
	hasher      *secrets.Hasher
	resetKeyTTL time.Duration
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.hasher = secrets.NewHasher(cost)
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

func WithResetKeyTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.resetKeyTTL = ttl
		}
	}
}

func New(users UserStore, configs ConfigStore, oidcClient OIDCClient, sessions Sessions, opts ...Option) *Service {
	s := &Service{
		users:       users,
		configs:     configs,
		oidc:        oidcClient,
		sessions:    sessions,
		logger:      slog.Default(),
		hasher:      secrets.NewHasher(secrets.DefaultCost),
		resetKeyTTL: DefaultResetKeyTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAdmin registers a tenant together with its (not yet activated) admin
// user and returns the new tenant config carrying the activation key.
func (s *Service) CreateAdmin(ctx context.Context, reg *models.Registration) (*models.TenantConfig, error) {
	if reg == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "registration is required")
	}
	reg.Normalize()
	if err := validation.Validate(reg); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByLoginOrEmail(ctx, reg.Login, reg.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check existing users")
	}
	if exists {
		return nil, dErrors.New(dErrors.CodeConflict, "email or login already in use")
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, err
	}
	key, err := secrets.GenerateKey()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Login:            reg.Login,
		Email:            reg.Email,
		CompanyShortName: reg.CompanyShortName,
		Authorities:      []models.Authority{models.AuthorityAdmin, models.AuthorityUser},
		PasswordHash:     hash,
	}
	cfg := &models.TenantConfig{
		CompanyName:      reg.CompanyName,
		CompanyShortName: reg.CompanyShortName,
		Email:            reg.Email,
		ActivationKey:    key,
	}

	if err := s.configs.Create(ctx, cfg); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "company short name already in use")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create tenant config")
	}
	if err := s.users.Create(ctx, user); err != nil {
		if derr := s.configs.Delete(ctx, cfg.CompanyShortName); derr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back tenant config",
				"error", derr,
				"company_short_name", cfg.CompanyShortName,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "email or login already in use")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create admin user")
	}

	cfg.AdminUserID = user.ID
	if err := s.configs.Save(ctx, cfg); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to link admin user")
	}

	s.logger.InfoContext(ctx, "tenant admin registered",
		"company_short_name", cfg.CompanyShortName,
		"user_id", user.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emit(ctx, audit.ActionAdminRegistered, user)
	return cfg.Clone(), nil
}

// ActivateAdmin consumes an activation key, activating the tenant and its admin.
func (s *Service) ActivateAdmin(ctx context.Context, key string) error {
	if key == "" {
		return dErrors.New(dErrors.CodeInvalidActivationKey, "activation key is required")
	}
	cfg, err := s.configs.FindByActivationKey(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeInvalidActivationKey, "no registration found for activation key")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load tenant config")
	}
	user, err := s.users.FindByID(ctx, cfg.AdminUserID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin user")
	}

	user.Activated = true
	if err := s.users.Update(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to activate admin user")
	}
	cfg.Activated = true
	cfg.ActivationKey = ""
	if err := s.configs.Save(ctx, cfg); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to activate tenant config")
	}
	s.emit(ctx, audit.ActionAdminActivated, user)
	return nil
}

// LoginURI returns the provider login URL for the tenant. The tenant short
// name travels as the OAuth state so the redirect can be matched to it.
func (s *Service) LoginURI(ctx context.Context, companyShortName, redirectURI string) (string, error) {
	cfg, err := s.findConfig(ctx, companyShortName)
	if err != nil {
		return "", err
	}
	uri, err := s.oidc.LoginURI(cfg, redirectURI, cfg.CompanyShortName)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "tenant OpenID client is not configured")
	}
	return uri, nil
}

// LogoutURI returns the provider end-session URL for the current principal's
// tenant, or redirectURI itself when there is no provider to notify.
func (s *Service) LogoutURI(ctx context.Context, redirectURI string) (string, error) {
	user, err := s.Principal(ctx)
	if err != nil || user == nil {
		return redirectURI, err
	}
	cfg, err := s.configs.FindByCompanyShortName(ctx, user.CompanyShortName)
	if err != nil {
		return redirectURI, nil
	}
	uri, err := s.oidc.LogoutURI(cfg, redirectURI)
	if err != nil {
		return redirectURI, nil
	}
	return uri, nil
}

// Login redeems an authorization code for the tenant named by state and opens
// a session for the matching, activated account. Every failure is a login error.
func (s *Service) Login(ctx context.Context, redirectURI, code, state string) (*models.LoginResult, error) {
	res, err := s.login(ctx, redirectURI, code, state)
	if err != nil {
		s.emitEvent(ctx, audit.Event{
			Action:           audit.ActionLoginFailed,
			CompanyShortName: state,
			Outcome:          audit.OutcomeFailure,
			Reason:           err.Error(),
		})
		return nil, err
	}
	s.emit(ctx, audit.ActionLoginSucceeded, res.User)
	return res, nil
}

func (s *Service) login(ctx context.Context, redirectURI, code, state string) (*models.LoginResult, error) {
	if code == "" || state == "" {
		return nil, dErrors.New(dErrors.CodeLogin, "missing authorization code or state")
	}
	cfg, err := s.configs.FindByCompanyShortName(ctx, state)
	if err != nil {
		return nil, dErrors.Collapse(err, dErrors.CodeLogin, "unknown tenant")
	}
	identity, err := s.oidc.Exchange(ctx, cfg, redirectURI, code)
	if err != nil {
		return nil, dErrors.Collapse(err, dErrors.CodeLogin, "authorization code rejected")
	}
	user, err := s.users.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, dErrors.Collapse(err, dErrors.CodeLogin, "no account for authenticated user")
	}
	if user.CompanyShortName != cfg.CompanyShortName {
		return nil, dErrors.New(dErrors.CodeLogin, "account belongs to another tenant")
	}
	if !user.Activated {
		return nil, dErrors.New(dErrors.CodeLogin, "account is not activated")
	}

	token, expiresAt, err := s.sessions.Issue(ctx, user.ID, user.CompanyShortName)
	if err != nil {
		return nil, dErrors.Collapse(err, dErrors.CodeLogin, "failed to open session")
	}
	return &models.LoginResult{User: user, SessionToken: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the current session, if any.
func (s *Service) Logout(ctx context.Context) error {
	s.sessions.Revoke(ctx, requestcontext.SessionID(ctx))
	return nil
}

// AdminConfig returns the tenant config administered by user.
func (s *Service) AdminConfig(ctx context.Context, user *models.User) (*models.TenantConfig, error) {
	if !user.IsAdmin() {
		return nil, dErrors.New(dErrors.CodeForbidden, "user is not a tenant admin")
	}
	cfg, err := s.findConfig(ctx, user.CompanyShortName)
	if err != nil {
		return nil, err
	}
	if cfg.AdminUserID != user.ID {
		return nil, dErrors.New(dErrors.CodeRetrieveConfig, "tenant config not found")
	}
	return cfg, nil
}

// Principal returns the logged-in user, or nil for anonymous requests.
func (s *Service) Principal(ctx context.Context) (*models.User, error) {
	userID := requestcontext.UserID(ctx)
	if userID == "" {
		return nil, nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load principal")
	}
	return user, nil
}

func (s *Service) requirePrincipal(ctx context.Context) (*models.User, error) {
	user, err := s.Principal(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return user, nil
}

// ChangePassword replaces the principal's password.
func (s *Service) ChangePassword(ctx context.Context, password string) error {
	user, err := s.requirePrincipal(ctx)
	if err != nil {
		return err
	}
	if err := s.setPassword(user, password); err != nil {
		return err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to change password")
	}
	s.emit(ctx, audit.ActionPasswordChanged, user)
	return nil
}

// UnregisterFIDO removes every FIDO authenticator registered by the principal.
func (s *Service) UnregisterFIDO(ctx context.Context) error {
	user, err := s.requirePrincipal(ctx)
	if err != nil {
		return err
	}
	removed := len(user.FIDODevices)
	user.FIDODevices = nil
	if err := s.users.Update(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to unregister FIDO devices")
	}
	s.logger.InfoContext(ctx, "fido devices unregistered",
		"user_id", user.ID,
		"count", removed,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emit(ctx, audit.ActionFIDOUnregistered, user)
	return nil
}

// RequestResetByEmail issues a reset key to the tenant member with req.Email.
func (s *Service) RequestResetByEmail(ctx context.Context, req *models.ResetPasswordRequest) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil || user.CompanyShortName != req.CompanyShortName {
		return nil, dErrors.New(dErrors.CodeNotFound, "email address not registered")
	}
	return s.issueResetKey(ctx, user)
}

// RequestResetByMobile issues a reset key to the tenant member with req.Mobile.
func (s *Service) RequestResetByMobile(ctx context.Context, req *models.ResetPasswordRequest) (*models.User, error) {
	user, err := s.users.FindByMobile(ctx, req.CompanyShortName, req.Mobile)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "mobile number not registered")
	}
	return s.issueResetKey(ctx, user)
}

func (s *Service) issueResetKey(ctx context.Context, user *models.User) (*models.User, error) {
	key, err := secrets.GenerateKey()
	if err != nil {
		return nil, err
	}
	user.ResetKey = key
	user.ResetIssuedAt = requestcontext.Now(ctx)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store reset key")
	}
	s.emit(ctx, audit.ActionPasswordResetRequested, user)
	return user.Clone(), nil
}

// CompleteReset sets a new password using a reset key. Keys are single use
// and expire after the configured TTL.
func (s *Service) CompleteReset(ctx context.Context, kp *models.KeyAndPassword) error {
	if kp == nil || kp.Key == "" {
		return dErrors.New(dErrors.CodeInvalidResetKey, "reset key is required")
	}
	user, err := s.users.FindByResetKey(ctx, kp.Key)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidResetKey, "no user found for reset key")
	}
	if requestcontext.Now(ctx).Sub(user.ResetIssuedAt) > s.resetKeyTTL {
		return dErrors.New(dErrors.CodeInvalidResetKey, "reset key expired")
	}
	if err := s.setPassword(user, kp.NewPassword); err != nil {
		return err
	}
	user.ResetKey = ""
	user.ResetIssuedAt = time.Time{}
	if err := s.users.Update(ctx, user); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset password")
	}
	s.emit(ctx, audit.ActionPasswordResetCompleted, user)
	return nil
}

func (s *Service) setPassword(user *models.User, password string) error {
	if !models.ValidPasswordLength(password) {
		return dErrors.New(dErrors.CodeValidation, "password length is out of range")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}

func (s *Service) findConfig(ctx context.Context, shortName string) (*models.TenantConfig, error) {
	cfg, err := s.configs.FindByCompanyShortName(ctx, shortName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeRetrieveConfig, "tenant config not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load tenant config")
	}
	return cfg, nil
}

func (s *Service) emit(ctx context.Context, action audit.Action, user *models.User) {
	s.emitEvent(ctx, audit.Event{
		Action:           action,
		UserID:           user.ID,
		CompanyShortName: user.CompanyShortName,
		Outcome:          audit.OutcomeSuccess,
	})
}

func (s *Service) emitEvent(ctx context.Context, e audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"error", err,
			"action", e.Action,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
