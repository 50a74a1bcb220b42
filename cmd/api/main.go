// Package main is the entrypoint for the Dailydo API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dailydo/dailydo/internal/cache"
	"github.com/dailydo/dailydo/internal/config"
	"github.com/dailydo/dailydo/internal/handler"
	"github.com/dailydo/dailydo/internal/metrics"
	"github.com/dailydo/dailydo/internal/middleware"
	"github.com/dailydo/dailydo/internal/repository"
	"github.com/dailydo/dailydo/internal/server"
	"github.com/dailydo/dailydo/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize session store
	sessionCache, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer sessionCache.Close()
	logger.Info("connected to Redis")

	// Initialize services
	metricsRecorder := metrics.NewNoop()
	authService := service.NewAuthService(repo, sessionCache, cfg.SessionTTL, metricsRecorder)
	todoService := service.NewTodoService(repo, metricsRecorder)
	statsService := service.NewStatsService(repo)

	// Initialize handlers
	h := handler.New()
	healthHandler := handler.NewHealthHandler(repo, sessionCache)
	authHandler := handler.NewAuthHandler(authService, sessionCache, logger, cfg.SessionCookie, cfg.IsProduction())
	todoHandler := handler.NewTodoHandler(todoService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, authHandler, todoHandler, statsHandler, sessionCache, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger builds the slog logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the process default.
func initLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.LogFormat == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	todoHandler *handler.TodoHandler,
	statsHandler *handler.StatsHandler,
	sessionCache *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment: cfg.IsDevelopment(),
	}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	if origins := cfg.GetCORSAllowedOrigins(); len(origins) > 0 {
		corsCfg := middleware.DefaultCORSConfig()
		corsCfg.AllowedOrigins = origins
		r.Use(middleware.CORS(corsCfg))
	}

	// Health endpoints (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	// Root page
	r.Get("/", h.Index)

	// Session gate configuration
	sessionCfg := middleware.SessionConfig{
		Logger:     logger,
		Store:      sessionCache,
		CookieName: cfg.SessionCookie,
	}

	r.Route("/api", func(r chi.Router) {
		// Account routes (no session required)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/check-auth", authHandler.CheckAuth)

		// Todo and stats routes sit behind the session gate
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(sessionCfg))

			r.Route("/todos", func(r chi.Router) {
				r.Get("/", todoHandler.List)
				r.Post("/", todoHandler.Create)
				r.Put("/{id}", todoHandler.Update)
				r.Delete("/{id}", todoHandler.Delete)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/today", statsHandler.Today)
				r.Get("/week", statsHandler.Week)
				r.Get("/monthly", statsHandler.Monthly)
			})
		})
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

// redactURL masks the password component of a connection URL for logging.
func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}
	return parsed.Redacted()
}

// sanitizeError replaces any embedded connection URLs in an error message
// with their redacted form. Driver errors often echo the full DSN.
func sanitizeError(err error, secrets ...string) string {
	msg := err.Error()
	for _, secret := range secrets {
		if secret != "" {
			msg = strings.ReplaceAll(msg, secret, redactURL(secret))
		}
	}
	return msg
}
