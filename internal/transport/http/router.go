package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"credmgr/internal/platform/health"
	"credmgr/pkg/platform/middleware/request"
)

// Routes registers a group of endpoints on a router.
type Routes interface {
	Register(r chi.Router)
}

// RouterConfig carries everything the top-level router mounts.
type RouterConfig struct {
	Logger  *slog.Logger
	Account Routes
	Health  *health.Handler

	// Session resolves the login cookie into the request context.
	Session func(http.Handler) http.Handler

	Metrics  *request.Metrics
	Gatherer prometheus.Gatherer

	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter wires the public endpoints with the shared middleware stack.
// Account routes live under /api; probes and /metrics sit at the root.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.RequestTime)
	r.Use(request.ClientIP)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.LatencyMiddleware(cfg.Metrics))

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(request.Timeout(cfg.RequestTimeout))
		}
		if cfg.MaxBodyBytes > 0 {
			r.Use(request.BodyLimit(cfg.MaxBodyBytes))
		}
		if cfg.Session != nil {
			r.Use(cfg.Session)
		}
		cfg.Account.Register(r)
	})

	return r
}
