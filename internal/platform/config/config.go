package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	ContextPath string
	LogLevel    string

	// JKSStorePath is the root under which uploaded tenant keystores are written.
	JKSStorePath string

	SessionSigningKey string
	SessionTTL        time.Duration
	SessionCookie     string
	SecureCookies     bool

	MaxUploadBytes   int64
	RequestTimeout   time.Duration
	OPRequestTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	signingKey := os.Getenv("SESSION_SIGNING_KEY")
	if signingKey == "" {
		// Use a default for development - should be overridden in production
		signingKey = "dev-session-key-change-in-production"
	}

	return Server{
		Addr:              envOr("CREDMGR_ADDR", ":8080"),
		ContextPath:       os.Getenv("CREDMGR_CONTEXT_PATH"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		JKSStorePath:      envOr("CREDMGR_JKS_STORE_PATH", "./jks"),
		SessionSigningKey: signingKey,
		SessionTTL:        durationOr("SESSION_TTL", 8*time.Hour),
		SessionCookie:     envOr("SESSION_COOKIE", "credmgr_session"),
		SecureCookies:     os.Getenv("SECURE_COOKIES") == "true",
		MaxUploadBytes:    int64Or("MAX_UPLOAD_BYTES", 10<<20),
		RequestTimeout:    durationOr("REQUEST_TIMEOUT", 30*time.Second),
		OPRequestTimeout:  durationOr("OP_REQUEST_TIMEOUT", 10*time.Second),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func int64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
