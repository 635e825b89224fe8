package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPasswordLength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"empty", "", false},
		{"below minimum", strings.Repeat("a", PasswordMinLength-1), false},
		{"at minimum", strings.Repeat("a", PasswordMinLength), true},
		{"at maximum", strings.Repeat("a", PasswordMaxLength), true},
		{"above maximum", strings.Repeat("a", PasswordMaxLength+1), false},
		{"multibyte counted by rune", strings.Repeat("é", PasswordMinLength), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPasswordLength(tt.password))
		})
	}
}

func TestTenantConfigHasKeystore(t *testing.T) {
	var nilCfg *TenantConfig
	assert.False(t, nilCfg.HasKeystore())
	assert.False(t, (&TenantConfig{ClientJKS: "  "}).HasKeystore())
	assert.True(t, (&TenantConfig{ClientJKS: "/acme/keystore.jks"}).HasKeystore())
}

func TestRegistrationNormalize(t *testing.T) {
	r := &Registration{CompanyShortName: " acme ", Email: " Admin@Acme.Test "}
	r.Normalize()

	assert.Equal(t, "acme", r.CompanyShortName)
	assert.Equal(t, "admin@acme.test", r.Email)
	assert.Equal(t, "admin@acme.test", r.Login)
}

func TestUserClone(t *testing.T) {
	u := &User{Authorities: []Authority{AuthorityAdmin}, FIDODevices: []string{"key-1"}}
	cp := u.Clone()
	cp.FIDODevices[0] = "changed"

	assert.True(t, cp.IsAdmin())
	assert.Equal(t, "key-1", u.FIDODevices[0])
}
