package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"travel-journal/internal/config"
	"travel-journal/internal/infra/adapter/persistence/memory"
	"travel-journal/internal/observability/logging"
	"travel-journal/internal/observability/metrics"
	"travel-journal/internal/observability/tracing"
	"travel-journal/internal/repository"
	pkgconfig "travel-journal/pkg/config"

	entryUC "travel-journal/internal/usecase/entry"

	hhttp "travel-journal/internal/handler/http"
	hauth "travel-journal/internal/handler/http/auth"
	hentry "travel-journal/internal/handler/http/entry"
	"travel-journal/internal/handler/http/middleware"
	"travel-journal/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	validateJWTSecret(logger)
	secCfg := loadSecurityConfig(logger)
	version := getVersion()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, "travel-journal", version)
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	repo := memory.NewEntryRepo()
	handler := setupServer(logger, repo, secCfg, version)

	runServer(ctx, logger, handler, repo, version)
}

// validateJWTSecret enforces minimum secret strength at startup so a
// misconfigured deployment fails fast instead of issuing forgeable tokens.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// loadSecurityConfig reads the YAML security config when SECURITY_CONFIG_PATH
// is set, otherwise falls back to the built-in defaults.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG_PATH")
	if path == "" {
		return config.DefaultSecurityConfig()
	}

	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("security configuration loaded", slog.String("path", path))
	return cfg
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the repositories, services, routes and middleware into
// the root HTTP handler.
func setupServer(logger *slog.Logger, repo repository.EntryRepository, secCfg *config.SecurityConfig, version string) http.Handler {
	entrySvc := &entryUC.Service{Repo: repo}

	if base := secCfg.GetShareBaseURL(); base != "" && os.Getenv("SHARE_BASE_URL") == "" {
		os.Setenv("SHARE_BASE_URL", base)
	}

	authProvider := hauth.NewEnvProvider(secCfg.GetMinPasswordLength())
	tokenTTL := time.Duration(secCfg.GetJWTExpiryHours()) * time.Hour

	// Token issuance is the main brute-force surface, so it gets its own
	// tight per-IP limiter.
	authLimiter := hhttp.NewRateLimiter(rate.Every(12*time.Second), 5)

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(authProvider, tokenTTL)))

	mux.Handle("GET /health", &hhttp.HealthHandler{Repo: repo, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Repo: repo})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hentry.Register(mux, entrySvc)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain, outermost
// first: CORS → request ID → recovery → logging → body limit → tracing →
// metrics. Authentication is applied per-route in the entry handlers.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	corsConfig.Logger = logger

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	maxBodyBytes := int64(pkgconfig.GetEnvInt("MAX_REQUEST_BODY_BYTES", 8<<20))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.LimitRequestBody(maxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server plus the background gauge updater and
// blocks until shutdown completes.
func runServer(ctx context.Context, logger *slog.Logger, handler http.Handler, repo repository.EntryRepository, version string) {
	addr := pkgconfig.GetEnvString("LISTEN_ADDR", ":8080")
	shutdownTimeout := pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		updateEntriesGauge(gCtx, logger, repo)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// updateEntriesGauge keeps the stored-entries gauge current. The gauge only
// needs to be roughly live, so a 30 second tick is plenty.
func updateEntriesGauge(ctx context.Context, logger *slog.Logger, repo repository.EntryRepository) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := repo.Count(ctx)
			if err != nil {
				logger.Warn("failed to count entries for gauge", slog.Any("error", err))
				continue
			}
			metrics.UpdateEntriesTotal(count)
		}
	}
}
