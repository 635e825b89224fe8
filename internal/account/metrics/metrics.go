package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login redirect outcomes.
const (
	OutcomeSettings = "settings"
	OutcomeReset    = "reset_password"
	OutcomeError    = "error"
)

// Metrics holds Prometheus collectors for account gateway operations.
type Metrics struct {
	Registrations   *prometheus.CounterVec
	Activations     *prometheus.CounterVec
	LoginRedirects  *prometheus.CounterVec
	PasswordResets  *prometheus.CounterVec
	SettingsUpdates *prometheus.CounterVec
	KeystoreBytes   prometheus.Histogram
}

// New registers the account collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "credmgr_registrations_total",
			Help: "Total number of tenant admin registrations",
		}, []string{"result"}),
		Activations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "credmgr_activations_total",
			Help: "Total number of account activation attempts",
		}, []string{"result"}),
		LoginRedirects: f.NewCounterVec(prometheus.CounterOpts{
			Name: "credmgr_login_redirects_total",
			Help: "Total number of OpenID login redirects, by landing page",
		}, []string{"outcome"}),
		PasswordResets: f.NewCounterVec(prometheus.CounterOpts{
			Name: "credmgr_password_reset_requests_total",
			Help: "Total number of password reset requests, by notification channel",
		}, []string{"channel"}),
		SettingsUpdates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "credmgr_settings_updates_total",
			Help: "Total number of tenant settings updates",
		}, []string{"result"}),
		KeystoreBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "credmgr_keystore_upload_bytes",
			Help:    "Size of uploaded client keystores in bytes",
			Buckets: prometheus.ExponentialBuckets(512, 4, 7),
		}),
	}
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

func (m *Metrics) ObserveRegistration(err error) {
	m.Registrations.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) ObserveActivation(err error) {
	m.Activations.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) IncrementLoginRedirect(outcome string) {
	m.LoginRedirects.WithLabelValues(outcome).Inc()
}

// IncrementPasswordReset counts a reset request; channel is "email", "sms" or "none".
func (m *Metrics) IncrementPasswordReset(channel string) {
	m.PasswordResets.WithLabelValues(channel).Inc()
}

func (m *Metrics) ObserveSettingsUpdate(err error) {
	m.SettingsUpdates.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) ObserveKeystoreUpload(size int64) {
	m.KeystoreBytes.Observe(float64(size))
}
