// Command cleanup removes audit records older than the configured retention
// period. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/martiny880/ooo-dashboard/internal/adapter/postgres"
	"github.com/martiny880/ooo-dashboard/internal/adapter/postgres/audit"
	"github.com/martiny880/ooo-dashboard/internal/app"
	"github.com/martiny880/ooo-dashboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Audit.RetentionDays <= 0 {
		logger.Info("audit retention disabled, nothing to do")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	auditRepo := audit.New(pool)

	threshold := time.Now().UTC().AddDate(0, 0, -cfg.Audit.RetentionDays)

	deleted, err := auditRepo.DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("audit cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("audit cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
