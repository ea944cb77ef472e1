package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/martiny880/ooo-dashboard/internal/adapter/postgres"
	auditrepo "github.com/martiny880/ooo-dashboard/internal/adapter/postgres/audit"
	secretrepo "github.com/martiny880/ooo-dashboard/internal/adapter/postgres/secret"
	"github.com/martiny880/ooo-dashboard/internal/adapter/provider/graph"
	"github.com/martiny880/ooo-dashboard/internal/adapter/provider/microsoft"
	"github.com/martiny880/ooo-dashboard/internal/adapter/webhook"
	"github.com/martiny880/ooo-dashboard/internal/auth"
	"github.com/martiny880/ooo-dashboard/internal/config"
	"github.com/martiny880/ooo-dashboard/internal/service/audit"
	"github.com/martiny880/ooo-dashboard/internal/service/execution"
	"github.com/martiny880/ooo-dashboard/internal/service/mailbox"
	"github.com/martiny880/ooo-dashboard/internal/service/settings"
	"github.com/martiny880/ooo-dashboard/internal/service/token"
	"github.com/martiny880/ooo-dashboard/internal/transport/middleware"
	"github.com/martiny880/ooo-dashboard/internal/transport/rest"
	"github.com/martiny880/ooo-dashboard/internal/vault"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("default_mode", cfg.Execution.DefaultMode),
		slog.Bool("webhook_configured", cfg.Webhook.Configured()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	v, err := vault.New(cfg.Vault.Key)
	if err != nil {
		return err
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, v, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler builds the full service graph over pool and returns the root
// HTTP handler with the middleware chain applied.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	v *vault.Vault,
	rateLimiter *middleware.RateLimiter,
) http.Handler {
	// Adapters
	secrets := secretrepo.New(pool)
	audits := auditrepo.New(pool)
	exchanger := microsoft.NewExchanger(cfg.Identity, logger)
	graphClient := graph.NewClient(cfg.Graph, logger)
	dispatcher := webhook.New(cfg.Webhook, logger)

	// Services
	broker := token.NewBroker(logger, secrets, v, exchanger)
	mailboxClient := mailbox.NewClient(logger, broker, graphClient)
	recorder := audit.NewRecorder(logger, audits, cfg.Audit)
	router := execution.NewRouter(logger, mailboxClient, dispatcher, recorder, cfg.Execution.Mode())
	settingsSvc := settings.NewService(logger, router, mailboxClient, recorder, cfg.Execution.AllowExternalForwarding)

	// Transport
	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(pool, rest.HealthInfo{
			Version:           BuildVersion(),
			DefaultMode:       cfg.Execution.Mode(),
			WebhookConfigured: cfg.Webhook.Configured(),
		}),
		Settings: rest.NewSettingsHandler(settingsSvc, logger),
		Auth:     rest.NewAuthHandler(broker, logger),
		Callback: rest.NewCallbackHandler(dispatcher, recorder, logger),
	}

	sessions := auth.NewJWTManager(cfg.Session.JWTSecret, cfg.Session.JWTIssuer, cfg.Session.TTL)

	root := rest.NewRouter(handlers, cfg.Server.MetricsPath, rateLimiter.Limit(cfg.Server.RateLimit))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(sessions, logger),
	)(root)
}
