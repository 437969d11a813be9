// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldpro/fieldpro-api/internal/auth"
	"github.com/fieldpro/fieldpro-api/internal/client"
	"github.com/fieldpro/fieldpro-api/internal/company"
	"github.com/fieldpro/fieldpro-api/internal/config"
	"github.com/fieldpro/fieldpro-api/internal/core"
	"github.com/fieldpro/fieldpro-api/internal/dashboard"
	"github.com/fieldpro/fieldpro-api/internal/email"
	"github.com/fieldpro/fieldpro-api/internal/events"
	"github.com/fieldpro/fieldpro-api/internal/health"
	"github.com/fieldpro/fieldpro-api/internal/invoice"
	"github.com/fieldpro/fieldpro-api/internal/job"
	"github.com/fieldpro/fieldpro-api/internal/middleware"
	"github.com/fieldpro/fieldpro-api/internal/notify"
	"github.com/fieldpro/fieldpro-api/internal/server"
	"github.com/fieldpro/fieldpro-api/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	if cfg.App.Environment == "development" {
		if _, statErr := os.Stat(cfg.JWT.PrivateKeyPath); os.IsNotExist(statErr) {
			logger.Info("generating development signing keys",
				"path", cfg.JWT.PrivateKeyPath,
			)
			if genErr := auth.GenerateKeyPair(
				cfg.JWT.PrivateKeyPath,
				cfg.JWT.PublicKeyPath,
			); genErr != nil {
				return genErr
			}
		}
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	var sender email.Sender
	if resendSender := email.NewResendSender(cfg.Email.ResendAPIKey); resendSender != nil {
		sender = resendSender
		logger.Info("email provider configured",
			"from", cfg.Email.FromAddress,
		)
	} else {
		logger.Warn("email provider not configured; delivery disabled")
	}

	bus := events.NewBus()
	bus.Subscribe(func(ctx context.Context, ev events.AuthEvent) {
		logger.InfoContext(ctx, "auth event",
			"type", string(ev.Type),
			"user_id", ev.UserID,
		)
	})

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(
		authRepo,
		jwtManager,
		userSvc,
		redis.Client,
		bus,
		sender,
		cfg.Email.FromAddress,
		cfg.App.BaseURL,
	)
	authHandler := auth.NewHandler(authSvc)

	clientRepo := client.NewRepository(db.DB)
	clientSvc := client.NewService(clientRepo)
	clientHandler := client.NewHandler(clientSvc)

	jobRepo := job.NewRepository(db.DB)
	jobSvc := job.NewService(jobRepo)
	jobHandler := job.NewHandler(jobSvc)

	companyRepo := company.NewRepository(db.DB)
	companySvc := company.NewService(companyRepo)
	companyHandler := company.NewHandler(companySvc)

	invoiceRepo := invoice.NewRepository(db.DB)
	invoiceSvc := invoice.NewService(invoiceRepo)
	invoiceHandler := invoice.NewHandler(invoiceSvc, clientSvc, companySvc)

	notifyHandler := notify.NewHandler(
		invoiceSvc,
		clientSvc,
		companySvc,
		jobSvc,
		sender,
		cfg.Email,
		cfg.App.BaseURL,
	)

	dashboardHandler := dashboard.NewHandler(dashboard.HandlerConfig{
		JobStats: jobSvc.Stats,
		ClientCount: func(ctx context.Context, userID string) (int, error) {
			clients, err := clientSvc.List(ctx, userID)
			if err != nil {
				return 0, err
			}
			return len(clients), nil
		},
		InvoiceCount: func(ctx context.Context, userID string) (int, error) {
			invoices, err := invoiceSvc.List(ctx, userID)
			if err != nil {
				return 0, err
			}
			return len(invoices), nil
		},
	})

	healthHandler := health.NewHandler()
	healthHandler.AddCheck("database", health.CheckFunc(db.Ping))
	healthHandler.AddCheck("redis", health.CheckFunc(redis.Ping))

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(
		jwtManager,
		func(ctx context.Context, claims *middleware.AccessTokenClaims) error {
			blacklisted, err := authSvc.IsAccessTokenBlacklisted(ctx, claims.JTI)
			if err != nil {
				// redis outage fails open; version check below still runs
				return nil
			}
			if blacklisted {
				return core.ErrTokenRevoked
			}
			return nil
		},
		func(ctx context.Context, claims *middleware.AccessTokenClaims) error {
			return authSvc.ValidateTokenVersion(
				ctx,
				claims.UserID,
				claims.TokenVersion,
			)
		},
	)

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		clientHandler.RegisterRoutes(r, authenticator)
		jobHandler.RegisterRoutes(r, authenticator)
		invoiceHandler.RegisterRoutes(r, authenticator)
		companyHandler.RegisterRoutes(r, authenticator)
		dashboardHandler.RegisterRoutes(r, authenticator)
	})

	sendLimiter := middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
		Limit:    middleware.PerHour(cfg.RateLimit.EmailPerHour, cfg.RateLimit.EmailPerHour),
		KeyFunc:  middleware.KeyByUserAndEndpoint,
		FailOpen: true,
	})
	notifyHandler.RegisterRoutes(router, authenticator, sendLimiter.Handler)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
