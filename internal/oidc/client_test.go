package oidc

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"credmgr/internal/account/models"
)

func TestEndpointsFor(t *testing.T) {
	e := EndpointsFor("https://op.acme.test/")
	assert.Equal(t, "https://op.acme.test", e.Issuer)
	assert.Equal(t, "https://op.acme.test/oxauth/restv1/authorize", e.Authorize)
	assert.Equal(t, "https://op.acme.test/oxauth/restv1/token", e.Token)
	assert.Equal(t, "https://op.acme.test/oxauth/restv1/end_session", e.EndSession)
}

func TestLoginURI(t *testing.T) {
	c := New()
	cfg := &models.TenantConfig{Host: "https://op.acme.test", ClientID: "client-1", AuthenticationLevel: 2}

	raw, err := c.LoginURI(cfg, "http://localhost:8080/api/openid/login-redirect", "acme")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/oxauth/restv1/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "acme", q.Get("state"))
	assert.Equal(t, "2", q.Get("acr_values"))
	assert.Equal(t, "http://localhost:8080/api/openid/login-redirect", q.Get("redirect_uri"))
	assert.Contains(t, q.Get("scope"), "openid")

	_, err = c.LoginURI(&models.TenantConfig{Host: "https://op.acme.test"}, "x", "y")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLogoutURI(t *testing.T) {
	c := New()
	raw, err := c.LogoutURI(&models.TenantConfig{Host: "https://op.acme.test"}, "http://localhost:8080/api/openid/logout-redirect")
	require.NoError(t, err)
	assert.Equal(t,
		"https://op.acme.test/oxauth/restv1/end_session?post_logout_redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Fapi%2Fopenid%2Flogout-redirect",
		raw)

	_, err = c.LogoutURI(nil, "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

type ExchangeSuite struct {
	suite.Suite
	key    *rsa.PrivateKey
	server *httptest.Server
	cfg    *models.TenantConfig
	claims jwt.MapClaims
	client *Client
}

func TestExchangeSuite(t *testing.T) {
	suite.Run(t, new(ExchangeSuite))
}

func (s *ExchangeSuite) SetupTest() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	s.key = key

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != tokenPath {
			http.NotFound(w, r)
			return
		}
		_ = r.ParseForm()
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, s.claims)
		signed, err := token.SignedString(s.key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "at",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     signed,
		})
	}))
	s.T().Cleanup(s.server.Close)

	s.cfg = &models.TenantConfig{CompanyShortName: "acme", Host: s.server.URL, ClientID: "client-1", ClientSecret: "secret"}
	s.claims = jwt.MapClaims{
		"iss":   s.server.URL,
		"aud":   "client-1",
		"sub":   "subject-1",
		"email": "Admin@Acme.Test",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	s.client = New(
		WithHTTPClient(s.server.Client()),
		WithKeySet(func(context.Context, Endpoints) gooidc.KeySet {
			return &gooidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&s.key.PublicKey}}
		}),
	)
}

func (s *ExchangeSuite) TestExchangeReturnsVerifiedIdentity() {
	id, err := s.client.Exchange(context.Background(), s.cfg, "http://localhost/cb", "good-code")
	s.Require().NoError(err)
	s.Equal("subject-1", id.Subject)
	s.Equal("admin@acme.test", id.Email)
}

func (s *ExchangeSuite) TestExchangeRejectsBadCode() {
	_, err := s.client.Exchange(context.Background(), s.cfg, "http://localhost/cb", "bad-code")
	s.Error(err)
}

func (s *ExchangeSuite) TestExchangeRejectsWrongAudience() {
	s.claims["aud"] = "someone-else"
	_, err := s.client.Exchange(context.Background(), s.cfg, "http://localhost/cb", "good-code")
	s.ErrorContains(err, "verify id token")
}

func (s *ExchangeSuite) TestExchangeRejectsExpiredToken() {
	s.claims["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err := s.client.Exchange(context.Background(), s.cfg, "http://localhost/cb", "good-code")
	s.ErrorContains(err, "verify id token")
}

func (s *ExchangeSuite) TestExchangeRequiresConfiguredTenant() {
	_, err := s.client.Exchange(context.Background(), &models.TenantConfig{}, "x", "good-code")
	s.ErrorIs(err, ErrNotConfigured)
}
