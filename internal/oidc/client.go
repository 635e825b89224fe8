// Package oidc talks to a tenant's OpenID provider: it builds the browser
// login and logout URLs and redeems authorization codes for a verified
// identity. Provider endpoints follow the Gluu oxAuth layout under the
// tenant's configured host.
package oidc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"credmgr/internal/account/models"
	"credmgr/internal/platform/tracer"
)

const (
	authorizePath  = "/oxauth/restv1/authorize"
	tokenPath      = "/oxauth/restv1/token"
	endSessionPath = "/oxauth/restv1/end_session"
	jwksPath       = "/oxauth/restv1/jwks"
)

// ErrNotConfigured is returned when a tenant lacks the host or client ID
// needed to reach its provider.
var ErrNotConfigured = errors.New("tenant OpenID client is not configured")

// Endpoints are the provider URLs for one tenant.
type Endpoints struct {
	Issuer     string
	Authorize  string
	Token      string
	EndSession string
	JWKS       string
}

// EndpointsFor derives provider endpoints from a tenant host URL.
func EndpointsFor(host string) Endpoints {
	host = strings.TrimRight(host, "/")
	return Endpoints{
		Issuer:     host,
		Authorize:  host + authorizePath,
		Token:      host + tokenPath,
		EndSession: host + endSessionPath,
		JWKS:       host + jwksPath,
	}
}

// Identity is the verified subject of an ID token.
type Identity struct {
	Subject string
	Email   string
}

// KeySetFunc returns the key set used to verify ID tokens for a tenant.
type KeySetFunc func(ctx context.Context, e Endpoints) gooidc.KeySet

// Client exchanges codes against tenant providers.
type Client struct {
	httpClient *http.Client
	tracer     tracer.Tracer
	keySet     KeySetFunc

	mu      sync.Mutex
	remotes map[string]gooidc.KeySet
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(cl *Client) {
		cl.tracer = t
	}
}

// WithKeySet overrides JWKS discovery, typically with a static key set in tests.
func WithKeySet(f KeySetFunc) Option {
	return func(cl *Client) {
		cl.keySet = f
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		tracer:     tracer.NewNoop(),
		remotes:    make(map[string]gooidc.KeySet),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.keySet == nil {
		c.keySet = c.remoteKeySet
	}
	return c
}

// remoteKeySet caches one JWKS fetcher per provider so signing keys are only
// refetched on rotation.
func (c *Client) remoteKeySet(_ context.Context, e Endpoints) gooidc.KeySet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ks, ok := c.remotes[e.JWKS]; ok {
		return ks
	}
	ks := gooidc.NewRemoteKeySet(gooidc.ClientContext(context.Background(), c.httpClient), e.JWKS)
	c.remotes[e.JWKS] = ks
	return ks
}

func oauthConfig(cfg *models.TenantConfig, redirectURI string) (*oauth2.Config, Endpoints, error) {
	if cfg == nil || cfg.Host == "" || cfg.ClientID == "" {
		return nil, Endpoints{}, ErrNotConfigured
	}
	e := EndpointsFor(cfg.Host)
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  e.Authorize,
			TokenURL: e.Token,
		},
		Scopes: []string{gooidc.ScopeOpenID, "profile", "email"},
	}, e, nil
}

// LoginURI returns the provider authorization URL for an authorization-code
// login that comes back to redirectURI carrying state.
func (c *Client) LoginURI(cfg *models.TenantConfig, redirectURI, state string) (string, error) {
	conf, _, err := oauthConfig(cfg, redirectURI)
	if err != nil {
		return "", err
	}
	var opts []oauth2.AuthCodeOption
	if cfg.AuthenticationLevel > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("acr_values", fmt.Sprintf("%d", cfg.AuthenticationLevel)))
	}
	return conf.AuthCodeURL(state, opts...), nil
}

// LogoutURI returns the provider end-session URL that returns to redirectURI.
func (c *Client) LogoutURI(cfg *models.TenantConfig, redirectURI string) (string, error) {
	if cfg == nil || cfg.Host == "" {
		return "", ErrNotConfigured
	}
	u, err := url.Parse(EndpointsFor(cfg.Host).EndSession)
	if err != nil {
		return "", fmt.Errorf("parse end session endpoint: %w", err)
	}
	q := u.Query()
	q.Set("post_logout_redirect_uri", redirectURI)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Exchange redeems code and verifies the returned ID token.
func (c *Client) Exchange(ctx context.Context, cfg *models.TenantConfig, redirectURI, code string) (id *Identity, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanOIDCExchange)
	defer func() { span.End(err) }()

	conf, endpoints, err := oauthConfig(cfg, redirectURI)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(tracer.String(tracer.AttrTenant, cfg.CompanyShortName))

	ctx = gooidc.ClientContext(ctx, c.httpClient)
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("token response has no id_token")
	}

	verifier := gooidc.NewVerifier(endpoints.Issuer, c.keySet(ctx, endpoints), &gooidc.Config{ClientID: cfg.ClientID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("decode id token claims: %w", err)
	}
	return &Identity{Subject: idToken.Subject, Email: strings.ToLower(claims.Email)}, nil
}
