package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"credmgr/internal/account/device"
	"credmgr/internal/account/metrics"
	"credmgr/internal/account/models"
	dErrors "credmgr/pkg/domain-errors"
	"credmgr/pkg/platform/httputil"
	"credmgr/pkg/requestcontext"
)

// Browser routes the gateway redirects to.
const (
	RouteSettings      = "/#/settings"
	RouteResetPassword = "/#/reset-password/"
	RouteHome          = "/#/"
	routeError         = "/#/error?detailMessage="

	loginRedirectPath  = "/api/openid/login-redirect"
	logoutRedirectPath = "/api/openid/logout-redirect"

	incorrectPassword = "Incorrect password"
)

// UserService owns accounts, login sessions and password lifecycles.
type UserService interface {
	CreateAdmin(ctx context.Context, reg *models.Registration) (*models.TenantConfig, error)
	ActivateAdmin(ctx context.Context, key string) error
	LoginURI(ctx context.Context, companyShortName, redirectURI string) (string, error)
	LogoutURI(ctx context.Context, redirectURI string) (string, error)
	Login(ctx context.Context, redirectURI, code, state string) (*models.LoginResult, error)
	Logout(ctx context.Context) error
	AdminConfig(ctx context.Context, user *models.User) (*models.TenantConfig, error)
	Principal(ctx context.Context) (*models.User, error)
	ChangePassword(ctx context.Context, password string) error
	UnregisterFIDO(ctx context.Context) error
	RequestResetByEmail(ctx context.Context, req *models.ResetPasswordRequest) (*models.User, error)
	RequestResetByMobile(ctx context.Context, req *models.ResetPasswordRequest) (*models.User, error)
	CompleteReset(ctx context.Context, kp *models.KeyAndPassword) error
}

// Mailer delivers account emails.
type Mailer interface {
	SendActivationEmail(ctx context.Context, cfg *models.TenantConfig, baseURL string) error
	SendPasswordResetEmail(ctx context.Context, user *models.User, baseURL string, cfg *models.TenantConfig) error
}

// SMSSender delivers account text messages.
type SMSSender interface {
	SendPasswordResetSMS(ctx context.Context, user *models.User, baseURL string, cfg *models.TenantConfig) error
}

// ConfigUpdater applies settings edits to a tenant config.
type ConfigUpdater interface {
	UpdateConfig(ctx context.Context, cfg *models.TenantConfig) (*models.TenantConfig, error)
}

// ConfigStore looks up tenant configs.
type ConfigStore interface {
	FindByCompanyShortName(ctx context.Context, shortName string) (*models.TenantConfig, error)
}

// KeystoreStore persists uploaded keystores and returns their reference.
type KeystoreStore interface {
	Save(ctx context.Context, tenant, filename string, r io.Reader) (string, error)
}

// SessionCookies writes the login session cookie.
type SessionCookies interface {
	SetCookie(w http.ResponseWriter, token string, expiresAt time.Time)
	ClearCookie(w http.ResponseWriter)
}

// Deps are the collaborators the gateway delegates to.
type Deps struct {
	Users     UserService
	Mailer    Mailer
	SMS       SMSSender
	Configs   ConfigUpdater
	Tenants   ConfigStore
	Keystores KeystoreStore
	Cookies   SessionCookies
}

// Handler serves the OpenID account endpoints. It holds no per-request state.
type Handler struct {
	Deps
	logger         *slog.Logger
	metrics        *metrics.Metrics
	contextPath    string
	maxUploadBytes int64
}

type Option func(*Handler)

// WithContextPath sets the path prefix the application is served under. It is
// appended to every absolute link the gateway builds.
func WithContextPath(p string) Option {
	return func(h *Handler) {
		h.contextPath = strings.TrimRight(p, "/")
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

func WithMaxUploadBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

func New(deps Deps, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		Deps:           deps,
		logger:         logger,
		maxUploadBytes: 10 << 20,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the account routes. Callers mount it under /api.
func (h *Handler) Register(r chi.Router) {
	r.Route("/openid", func(r chi.Router) {
		r.Post("/settings-update", h.HandleUpdateSettings)
		r.Post("/register", h.HandleRegister)
		r.Get("/activate", h.HandleActivate)
		r.Get("/login-uri", h.HandleLoginURI)
		r.Get("/logout-uri", h.HandleLogoutURI)
		r.Get("/login-redirect", h.HandleLoginRedirect)
		r.Get("/logout-redirect", h.HandleLogoutRedirect)
		r.Get("/account", h.HandleAccount)
		r.Post("/change_password", h.HandleChangePassword)
		r.Post("/fido/unregister", h.HandleUnregisterFIDO)
		r.Post("/reset_password/init", h.HandleResetPasswordInit)
		r.Post("/reset_password/finish", h.HandleResetPasswordFinish)
	})
}

// HandleUpdateSettings implements POST /openid/settings-update.
// The multipart form carries the tenant config fields plus an optional
// keystore "file". Without a file, the form must reference an existing keystore.
// Only the admin of the tenant being edited may call it.
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	admin, err := h.requireAdmin(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "settings update rejected",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.logger.WarnContext(ctx, "failed to parse settings form",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid multipart form"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	cfg, err := configFromForm(r.MultipartForm)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if cfg.CompanyShortName != admin.CompanyShortName {
		h.logger.WarnContext(ctx, "settings update for another tenant rejected",
			"user_id", admin.ID,
			"admin_of", admin.CompanyShortName,
			"company_short_name", cfg.CompanyShortName,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "not an administrator of this company"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid keystore upload"))
		return
	}
	if file != nil {
		defer file.Close()
	}
	hasFile := file != nil && header.Size > 0

	saved, err := h.updateSettings(ctx, cfg, file, header, hasFile)
	h.observe(func(m *metrics.Metrics) { m.ObserveSettingsUpdate(err) })
	if err != nil {
		h.logger.ErrorContext(ctx, "settings update failed",
			"error", err,
			"company_short_name", cfg.CompanyShortName,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "settings updated",
		"company_short_name", saved.CompanyShortName,
		"keystore_uploaded", hasFile,
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, saved)
}

// requireAdmin returns the logged-in principal when it administers a tenant.
func (h *Handler) requireAdmin(ctx context.Context) (*models.User, error) {
	user, err := h.Users.Principal(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !user.IsAdmin() {
		return nil, dErrors.New(dErrors.CodeForbidden, "administrator role required")
	}
	return user, nil
}

func (h *Handler) updateSettings(ctx context.Context, cfg *models.TenantConfig, file multipart.File, header *multipart.FileHeader, hasFile bool) (*models.TenantConfig, error) {
	if !hasFile && !cfg.HasKeystore() {
		return nil, dErrors.New(dErrors.CodeConfigUpdate, "a keystore file or an existing keystore reference is required")
	}
	if hasFile {
		ref, err := h.Keystores.Save(ctx, cfg.CompanyShortName, header.Filename, file)
		if err != nil {
			return nil, dErrors.Collapse(err, dErrors.CodeConfigUpdate, "failed to store keystore")
		}
		cfg.ClientJKS = ref
		h.observe(func(m *metrics.Metrics) { m.ObserveKeystoreUpload(header.Size) })
	}
	saved, err := h.Configs.UpdateConfig(ctx, cfg)
	if err != nil {
		return nil, dErrors.Collapse(err, dErrors.CodeConfigUpdate, "failed to update tenant config")
	}
	return saved, nil
}

// configFromForm binds the multipart text fields onto a TenantConfig.
func configFromForm(form *multipart.Form) (*models.TenantConfig, error) {
	get := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	cfg := &models.TenantConfig{
		CompanyName:      get("companyName"),
		CompanyShortName: get("companyShortName"),
		Email:            get("email"),
		Host:             get("host"),
		ClientID:         get("clientId"),
		ClientSecret:     get("clientSecret"),
		ClientJKS:        get("clientJKS"),
		JKSPassword:      get("jksPassword"),
		ClientKeyID:      get("clientKeyId"),
		SMSFromNumber:    get("smsFromNumber"),
	}
	if lvl := get("authenticationLevel"); lvl != "" {
		n, err := strconv.Atoi(lvl)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, "authenticationLevel must be an integer")
		}
		cfg.AuthenticationLevel = n
	}
	return cfg, nil
}

// HandleRegister implements POST /openid/register. Malformed payloads are
// rejected as bad_request or validation_failed; every failure after that is
// reported as email_or_login_already_exists.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.Registration](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	err := h.register(ctx, req, h.baseURL(r))
	h.observe(func(m *metrics.Metrics) { m.ObserveRegistration(err) })
	if err != nil {
		h.logger.WarnContext(ctx, "registration failed",
			"error", err,
			"company_short_name", req.CompanyShortName,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.Collapse(err, dErrors.CodeEmailOrLoginExists, "email or login already exists"))
		return
	}

	h.logger.InfoContext(ctx, "registration accepted",
		"company_short_name", req.CompanyShortName,
		"request_id", requestID,
	)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) register(ctx context.Context, req *models.Registration, baseURL string) error {
	cfg, err := h.Users.CreateAdmin(ctx, req)
	if err != nil {
		return err
	}
	return h.Mailer.SendActivationEmail(ctx, cfg, baseURL)
}

// HandleActivate implements GET /openid/activate?key=.
func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	err := h.Users.ActivateAdmin(ctx, r.URL.Query().Get("key"))
	h.observe(func(m *metrics.Metrics) { m.ObserveActivation(err) })
	if err != nil {
		h.logger.WarnContext(ctx, "activation failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleLoginURI implements GET /openid/login-uri?companyShortName=.
func (h *Handler) HandleLoginURI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	shortName := strings.TrimSpace(r.URL.Query().Get("companyShortName"))
	if shortName == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "companyShortName is required"))
		return
	}

	uri, err := h.Users.LoginURI(ctx, shortName, h.baseURL(r)+loginRedirectPath)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build login uri",
			"error", err,
			"company_short_name", shortName,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.SingleValue{Value: uri})
}

// HandleLogoutURI implements GET /openid/logout-uri.
func (h *Handler) HandleLogoutURI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uri, err := h.Users.LogoutURI(ctx, h.baseURL(r)+logoutRedirectPath)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build logout uri",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.SingleValue{Value: uri})
}

// HandleLoginRedirect implements GET /openid/login-redirect?code=&state=.
// It always answers with a redirect; failures go to the error route with the
// message in detailMessage.
func (h *Handler) HandleLoginRedirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	q := r.URL.Query()

	target, err := h.login(ctx, w, h.baseURL(r)+loginRedirectPath, q.Get("code"), q.Get("state"))
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"error", err,
			"device", device.Describe(r.UserAgent()).String(),
			"request_id", requestID,
		)
		h.observe(func(m *metrics.Metrics) { m.IncrementLoginRedirect(metrics.OutcomeError) })
		http.Redirect(w, r, routeError+url.QueryEscape(loginFailureMessage(err)), http.StatusFound)
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		"target", target,
		"device", device.Describe(r.UserAgent()).String(),
		"request_id", requestID,
	)
	outcome := metrics.OutcomeReset
	if target == RouteSettings {
		outcome = metrics.OutcomeSettings
	}
	h.observe(func(m *metrics.Metrics) { m.IncrementLoginRedirect(outcome) })
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) login(ctx context.Context, w http.ResponseWriter, redirectURI, code, state string) (string, error) {
	res, err := h.Users.Login(ctx, redirectURI, code, state)
	if err != nil {
		return "", err
	}
	h.Cookies.SetCookie(w, res.SessionToken, res.ExpiresAt)

	if !res.User.IsAdmin() {
		return RouteResetPassword, nil
	}
	cfg, err := h.Users.AdminConfig(ctx, res.User)
	if err != nil {
		return "", dErrors.Collapse(err, dErrors.CodeLogin, "no configuration found for admin")
	}
	if !cfg.HasKeystore() {
		return RouteSettings, nil
	}
	return RouteResetPassword, nil
}

func loginFailureMessage(err error) string {
	var de *dErrors.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return string(dErrors.CodeLogin)
}

// HandleLogoutRedirect implements GET /openid/logout-redirect.
func (h *Handler) HandleLogoutRedirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Users.Logout(ctx); err != nil {
		h.logger.WarnContext(ctx, "logout failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	h.Cookies.ClearCookie(w)
	http.Redirect(w, r, RouteHome, http.StatusFound)
}

// HandleAccount implements GET /openid/account. Anonymous callers get a bare 404.
func (h *Handler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.Users.Principal(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load principal",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	if user == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

// HandleChangePassword implements POST /openid/change_password. The body is
// the new password as raw text.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, 4*models.PasswordMaxLength+1))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "failed to read request body"))
		return
	}
	password := string(body)
	if !models.ValidPasswordLength(password) {
		httputil.WriteText(w, http.StatusBadRequest, incorrectPassword)
		return
	}

	if err := h.Users.ChangePassword(ctx, password); err != nil {
		h.logger.WarnContext(ctx, "change password failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleUnregisterFIDO implements POST /openid/fido/unregister.
func (h *Handler) HandleUnregisterFIDO(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Users.UnregisterFIDO(ctx); err != nil {
		h.logger.WarnContext(ctx, "fido unregister failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleResetPasswordInit implements POST /openid/reset_password/init.
// Email takes precedence over mobile. A request naming neither channel
// sends nothing and still succeeds.
func (h *Handler) HandleResetPasswordInit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.ResetPasswordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cfg, err := h.Tenants.FindByCompanyShortName(ctx, req.CompanyShortName)
	if err != nil {
		h.logger.WarnContext(ctx, "password reset for unknown tenant",
			"error", err,
			"company_short_name", req.CompanyShortName,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.Collapse(err, dErrors.CodeRetrieveConfig, "tenant config not found"))
		return
	}

	channel, err := h.requestReset(ctx, req, cfg, h.baseURL(r))
	if err != nil {
		h.logger.WarnContext(ctx, "password reset request failed",
			"error", err,
			"channel", channel,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	if channel == "none" {
		h.logger.WarnContext(ctx, "password reset request without email or mobile",
			"company_short_name", req.CompanyShortName,
			"request_id", requestID,
		)
	}
	h.observe(func(m *metrics.Metrics) { m.IncrementPasswordReset(channel) })
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) requestReset(ctx context.Context, req *models.ResetPasswordRequest, cfg *models.TenantConfig, baseURL string) (string, error) {
	switch {
	case req.Email != "":
		user, err := h.Users.RequestResetByEmail(ctx, req)
		if err != nil {
			return "email", err
		}
		return "email", h.Mailer.SendPasswordResetEmail(ctx, user, baseURL, cfg)
	case req.Mobile != "":
		user, err := h.Users.RequestResetByMobile(ctx, req)
		if err != nil {
			return "sms", err
		}
		return "sms", h.SMS.SendPasswordResetSMS(ctx, user, baseURL, cfg)
	default:
		return "none", nil
	}
}

// HandleResetPasswordFinish implements POST /openid/reset_password/finish.
func (h *Handler) HandleResetPasswordFinish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeJSON[models.KeyAndPassword](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if !models.ValidPasswordLength(req.NewPassword) {
		httputil.WriteText(w, http.StatusBadRequest, incorrectPassword)
		return
	}

	if err := h.Users.CompleteReset(ctx, req); err != nil {
		h.logger.WarnContext(ctx, "password reset failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// baseURL rebuilds scheme://host:port<contextPath> from the request. The
// port defaults to the scheme's when the Host header has none.
func (h *Handler) baseURL(r *http.Request) string {
	scheme, port := "http", "80"
	if r.TLS != nil {
		scheme, port = "https", "443"
	}
	host := r.Host
	if hst, p, err := net.SplitHostPort(r.Host); err == nil {
		host, port = hst, p
	}
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		host = "[" + host + "]"
	}
	return scheme + "://" + host + ":" + port + h.contextPath
}

func (h *Handler) observe(fn func(*metrics.Metrics)) {
	if h.metrics != nil {
		fn(h.metrics)
	}
}
