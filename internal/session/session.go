// Package session issues and validates the signed cookie that carries a
// logged-in user between requests.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "credmgr/pkg/domain-errors"
	"credmgr/pkg/requestcontext"
)

const issuer = "credmgr"

// Claims are the session token claims. RegisteredClaims.ID is the session ID.
type Claims struct {
	UserID           string `json:"uid"`
	CompanyShortName string `json:"tenant,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs session tokens with HS256 and tracks logged-out sessions
// until their natural expiry.
type Manager struct {
	signingKey []byte
	ttl        time.Duration
	cookieName string
	secure     bool

	mu      sync.Mutex
	revoked map[string]time.Time
}

type Option func(*Manager)

func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.cookieName = name
		}
	}
}

func WithSecureCookies(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

func New(signingKey string, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		cookieName: "credmgr_session",
		revoked:    make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue signs a new session for userID and returns the token and its expiry.
func (m *Manager) Issue(ctx context.Context, userID, companyShortName string) (string, time.Time, error) {
	now := requestcontext.Now(ctx)
	expiresAt := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           userID,
		CompanyShortName: companyShortName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a session token and returns its claims.
func (m *Manager) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "missing session")
	}
	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return requestcontext.Now(ctx) }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	if !parsed.Valid || claims.UserID == "" || claims.ID == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session")
	}
	if m.isRevoked(claims.ID) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session revoked")
	}
	return claims, nil
}

// Revoke invalidates sessionID. Entries are dropped once the session would
// have expired anyway.
func (m *Manager) Revoke(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	now := requestcontext.Now(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, until := range m.revoked {
		if now.After(until) {
			delete(m.revoked, id)
		}
	}
	m.revoked[sessionID] = now.Add(m.ttl)
}

func (m *Manager) isRevoked(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[sessionID]
	return ok
}

// SetCookie writes the session cookie.
func (m *Manager) SetCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie in the browser.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware resolves the session cookie into request context values.
// Requests without a valid session continue anonymously.
func (m *Manager) Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(m.cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			claims, err := m.Parse(ctx, cookie.Value)
			if err != nil {
				logger.DebugContext(ctx, "ignoring session cookie",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}
			ctx = requestcontext.WithSession(ctx, claims.UserID, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
