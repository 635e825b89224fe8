// Package notify renders account notifications and hands them to the
// structured log. Mail and SMS transports are wired elsewhere.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"credmgr/internal/account/models"
	"credmgr/pkg/requestcontext"
)

var (
	activationMail = template.Must(template.New("activation").Parse(
		`Hello {{.Config.CompanyName}},

Your credential manager account for "{{.Config.CompanyShortName}}" is ready.
Activate it here: {{.BaseURL}}/#/activate?key={{.Config.ActivationKey}}
`))

	resetMail = template.Must(template.New("reset").Parse(
		`Hello {{.User.Login}},

A password reset was requested for your {{.Config.CompanyName}} account.
Choose a new password here: {{.BaseURL}}/#/reset/finish?key={{.User.ResetKey}}
`))

	resetSMS = template.Must(template.New("reset-sms").Parse(
		`{{.Config.CompanyName}} password reset: {{.BaseURL}}/#/reset/finish?key={{.User.ResetKey}}`))
)

type message struct {
	User    *models.User
	Config  *models.TenantConfig
	BaseURL string
}

func render(t *template.Template, m message) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, m); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// LogMailer writes outgoing mail to the logger instead of an SMTP relay.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendActivationEmail sends the tenant admin their activation link.
func (m *LogMailer) SendActivationEmail(ctx context.Context, cfg *models.TenantConfig, baseURL string) error {
	body, err := render(activationMail, message{Config: cfg, BaseURL: baseURL})
	if err != nil {
		return err
	}
	m.deliver(ctx, cfg.Email, "Account activation", body)
	return nil
}

// SendPasswordResetEmail sends user a link to finish a password reset.
func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, user *models.User, baseURL string, cfg *models.TenantConfig) error {
	body, err := render(resetMail, message{User: user, Config: cfg, BaseURL: baseURL})
	if err != nil {
		return err
	}
	m.deliver(ctx, user.Email, "Password reset", body)
	return nil
}

func (m *LogMailer) deliver(ctx context.Context, to, subject, body string) {
	m.logger.InfoContext(ctx, "mail queued",
		"to", to,
		"subject", subject,
		"body", body,
		"request_id", requestcontext.RequestID(ctx),
	)
}

// LogSMSSender writes outgoing text messages to the logger.
type LogSMSSender struct {
	logger *slog.Logger
}

func NewLogSMSSender(logger *slog.Logger) *LogSMSSender {
	return &LogSMSSender{logger: logger}
}

// SendPasswordResetSMS texts user a password reset link from the tenant's
// configured sender number.
func (s *LogSMSSender) SendPasswordResetSMS(ctx context.Context, user *models.User, baseURL string, cfg *models.TenantConfig) error {
	body, err := render(resetSMS, message{User: user, Config: cfg, BaseURL: baseURL})
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "sms queued",
		"from", cfg.SMSFromNumber,
		"to", user.Mobile,
		"body", body,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}
