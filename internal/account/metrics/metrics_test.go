package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRegistration(nil)
	m.ObserveRegistration(errors.New("dup"))
	m.ObserveRegistration(errors.New("dup"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues("failure")))

	m.IncrementLoginRedirect(OutcomeSettings)
	m.IncrementLoginRedirect(OutcomeError)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginRedirects.WithLabelValues(OutcomeSettings)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LoginRedirects.WithLabelValues(OutcomeReset)))

	m.IncrementPasswordReset("sms")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PasswordResets.WithLabelValues("sms")))

	m.ObserveKeystoreUpload(2048)
	assert.Equal(t, 1, testutil.CollectAndCount(m.KeystoreBytes))
}

func TestNewPerRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
