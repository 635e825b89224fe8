package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message wins", &Error{Code: CodeLogin, Message: "tenant mismatch"}, "tenant mismatch"},
		{"falls back to code", &Error{Code: CodeRetrieveConfig}, "config_not_found"},
		{"cause is not rendered", &Error{Code: CodeConfigUpdate, Message: "config update failed", Err: errors.New("disk full")}, "config update failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	target := &Error{Code: CodeEmailOrLoginExists}

	assert.True(t, errors.Is(New(CodeEmailOrLoginExists, "login taken"), target))
	assert.False(t, errors.Is(New(CodeConflict, "login taken"), target))
	assert.False(t, errors.Is(errors.New("email_or_login_already_exists"), target))

	nested := &Error{Code: CodeInternal, Err: fmt.Errorf("store: %w", New(CodeEmailOrLoginExists, "dup"))}
	assert.True(t, errors.Is(nested, target), "match through a wrapped chain")
}

func TestWrapKeepsExistingCode(t *testing.T) {
	notFound := New(CodeNotFound, "user not found")

	wrapped := Wrap(notFound, CodeInternal, "load user")
	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.Equal(t, "load user", wrapped.Error())

	plain := Wrap(errors.New("timeout"), CodeTimeout, "exchange code")
	assert.True(t, HasCode(plain, CodeTimeout))
	assert.Equal(t, "timeout", errors.Unwrap(plain).Error())
}

func TestCollapse(t *testing.T) {
	causes := map[string]error{
		"domain conflict":   New(CodeConflict, "email taken"),
		"validation":        New(CodeValidation, "email is required"),
		"io failure":        errors.New("write /jks/acme/client.jks: no space left on device"),
		"wrapped not found": Wrap(New(CodeNotFound, "config"), CodeInternal, "lookup"),
	}
	for name, cause := range causes {
		t.Run(name, func(t *testing.T) {
			collapsed := Collapse(cause, CodeEmailOrLoginExists, "email or login already in use")

			var de *Error
			require.True(t, errors.As(collapsed, &de))
			assert.Equal(t, CodeEmailOrLoginExists, de.Code)
			assert.Equal(t, "email or login already in use", collapsed.Error())
			assert.True(t, errors.Is(collapsed, cause), "cause stays reachable for logs")
		})
	}
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(New(CodeInvalidResetKey, "expired"), CodeInvalidResetKey))
	assert.True(t, HasCode(fmt.Errorf("handler: %w", New(CodeLogin, "x")), CodeLogin))
	assert.False(t, HasCode(New(CodeLogin, "x"), CodeUnauthorized))
	assert.False(t, HasCode(errors.New("login_failed"), CodeLogin))
	assert.False(t, HasCode(nil, CodeLogin))
}
