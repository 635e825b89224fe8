package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"credmgr/internal/account/handler"
	accountmetrics "credmgr/internal/account/metrics"
	"credmgr/internal/audit"
	"credmgr/internal/keystore"
	"credmgr/internal/notify"
	"credmgr/internal/oidc"
	"credmgr/internal/platform/config"
	"credmgr/internal/platform/health"
	"credmgr/internal/platform/logger"
	"credmgr/internal/platform/tracer"
	"credmgr/internal/session"
	tenantservice "credmgr/internal/tenantconfig/service"
	tenantstore "credmgr/internal/tenantconfig/store"
	httptransport "credmgr/internal/transport/http"
	userservice "credmgr/internal/user/service"
	userstore "credmgr/internal/user/store"
	"credmgr/pkg/platform/middleware/request"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// run wires the stores, services and HTTP router, then serves until SIGINT
// or SIGTERM.
func run(cfg config.Server, log *slog.Logger) error {
	log.Info("initializing credmgr",
		"addr", cfg.Addr,
		"context_path", cfg.ContextPath,
		"jks_store_path", cfg.JKSStorePath,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tr := tracer.NewOTel("credmgr")

	tenants := tenantstore.NewInMemory()
	users := userstore.NewInMemory()
	keystores := keystore.NewFileStore(cfg.JKSStorePath, keystore.WithTracer(tr))
	sessions := session.New(cfg.SessionSigningKey, cfg.SessionTTL,
		session.WithCookieName(cfg.SessionCookie),
		session.WithSecureCookies(cfg.SecureCookies),
	)
	oidcClient := oidc.New(
		oidc.WithHTTPClient(&http.Client{Timeout: cfg.OPRequestTimeout}),
		oidc.WithTracer(tr),
	)

	auditor := audit.NewPublisher(audit.NewInMemoryStore(),
		audit.WithAsyncBuffer(1024),
		audit.WithPublisherLogger(log),
	)
	defer auditor.Close()

	userSvc := userservice.New(users, tenants, oidcClient, sessions,
		userservice.WithLogger(log),
		userservice.WithAuditPublisher(auditor),
	)
	configSvc := tenantservice.New(tenants, tenantservice.WithLogger(log))

	account := handler.New(handler.Deps{
		Users:     userSvc,
		Mailer:    notify.NewLogMailer(log),
		SMS:       notify.NewLogSMSSender(log),
		Configs:   configSvc,
		Tenants:   tenants,
		Keystores: keystores,
		Cookies:   sessions,
	}, log,
		handler.WithContextPath(cfg.ContextPath),
		handler.WithMetrics(accountmetrics.New(reg)),
		handler.WithMaxUploadBytes(cfg.MaxUploadBytes),
	)

	probes := health.New()
	probes.RegisterCheck("keystore", keystores.CheckWritable)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Account:        account,
		Health:         probes,
		Session:        sessions.Middleware(log),
		Metrics:        request.NewMetrics(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxUploadBytes + 1<<20,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
