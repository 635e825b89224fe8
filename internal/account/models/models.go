// Package models holds the value objects exchanged between the account
// gateway and its collaborators. None of them carry persistence logic.
package models

import (
	"slices"
	"strings"
	"time"

	"credmgr/pkg/validation"
)

// Password length bounds enforced on every password the gateway accepts.
const (
	PasswordMinLength = 4
	PasswordMaxLength = 100
)

// ValidPasswordLength reports whether p is non-empty and within
// [PasswordMinLength, PasswordMaxLength] characters.
func ValidPasswordLength(p string) bool {
	n := len([]rune(p))
	return n > 0 && n >= PasswordMinLength && n <= PasswordMaxLength
}

// Authority is a role granted to a user.
type Authority string

const (
	AuthorityAdmin Authority = "ROLE_OP_ADMIN"
	AuthorityUser  Authority = "ROLE_OP_USER"
)

// TenantConfig is the per-company OIDC client configuration.
// CompanyShortName is the unique key.
type TenantConfig struct {
	ID                  string `json:"id,omitempty"`
	CompanyName         string `json:"companyName" validate:"max=255"`
	CompanyShortName    string `json:"companyShortName" validate:"notblank,shortname,max=64"`
	Email               string `json:"email,omitempty" validate:"omitempty,email"`
	Host                string `json:"host,omitempty" validate:"omitempty,url"`
	ClientID            string `json:"clientId,omitempty"`
	ClientSecret        string `json:"-"`
	ClientJKS           string `json:"clientJKS,omitempty"`
	JKSPassword         string `json:"-"`
	ClientKeyID         string `json:"clientKeyId,omitempty"`
	AuthenticationLevel int    `json:"authenticationLevel"`
	SMSFromNumber       string `json:"smsFromNumber,omitempty"`
	Activated           bool   `json:"activated"`

	AdminUserID   string `json:"-"`
	ActivationKey string `json:"-"`
}

// HasKeystore reports whether a keystore reference has been recorded.
func (c *TenantConfig) HasKeystore() bool {
	return c != nil && strings.TrimSpace(c.ClientJKS) != ""
}

// Clone returns a copy safe to hand across goroutines.
func (c *TenantConfig) Clone() *TenantConfig {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// User is an account principal. Secrets never serialize.
type User struct {
	ID               string      `json:"id"`
	Login            string      `json:"login"`
	Email            string      `json:"email,omitempty"`
	Mobile           string      `json:"mobile,omitempty"`
	CompanyShortName string      `json:"companyShortName"`
	Authorities      []Authority `json:"authorities"`
	Activated        bool        `json:"activated"`
	FIDODevices      []string    `json:"fidoDevices,omitempty"`

	PasswordHash  []byte    `json:"-"`
	ResetKey      string    `json:"-"`
	ResetIssuedAt time.Time `json:"-"`
}

// HasAuthority reports whether the user holds a.
func (u *User) HasAuthority(a Authority) bool {
	return u != nil && slices.Contains(u.Authorities, a)
}

// IsAdmin reports whether the user administers its tenant.
func (u *User) IsAdmin() bool {
	return u.HasAuthority(AuthorityAdmin)
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Authorities = slices.Clone(u.Authorities)
	cp.FIDODevices = slices.Clone(u.FIDODevices)
	cp.PasswordHash = slices.Clone(u.PasswordHash)
	return &cp
}

// Registration is the input of an admin self-registration.
type Registration struct {
	CompanyName      string `json:"companyName" validate:"notblank,max=255"`
	CompanyShortName string `json:"companyShortName" validate:"notblank,shortname,max=64"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Login            string `json:"login" validate:"max=100"`
	Password         string `json:"password" validate:"min=4,max=100"`
}

// Normalize trims identifiers and defaults the login to the email address.
func (r *Registration) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.CompanyShortName = strings.TrimSpace(r.CompanyShortName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Login = strings.ToLower(strings.TrimSpace(r.Login))
	if r.Login == "" {
		r.Login = r.Email
	}
}

// Validate checks field formats and lengths.
func (r *Registration) Validate() error {
	return validation.Validate(r)
}

// ResetPasswordRequest selects the notification channel for a password reset:
// Email wins when both are set. Empty strings count as absent.
type ResetPasswordRequest struct {
	CompanyShortName string `json:"companyShortName"`
	Email            string `json:"email,omitempty"`
	Mobile           string `json:"mobile,omitempty"`
}

// Normalize trims all fields.
func (r *ResetPasswordRequest) Normalize() {
	r.CompanyShortName = strings.TrimSpace(r.CompanyShortName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
}

// KeyAndPassword completes a password reset.
type KeyAndPassword struct {
	Key         string `json:"key"`
	NewPassword string `json:"newPassword"`
}

// SingleValue wraps a scalar JSON response.
type SingleValue struct {
	Value string `json:"value"`
}

// LoginResult is what a successful authorization-code login yields.
type LoginResult struct {
	User         *User
	SessionToken string
	ExpiresAt    time.Time
}
