// Package audit records every execution attempt. Recording is best-effort:
// storage failures are logged and counted but never reach the caller.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/martiny880/ooo-dashboard/internal/config"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/metrics"
)

// auditRepo defines the audit store needed by the recorder.
type auditRepo interface {
	Append(ctx context.Context, record domain.AuditRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.AuditRecord, error)
}

// Recorder appends audit records and lists them back.
type Recorder struct {
	log          *slog.Logger
	repo         auditRepo
	defaultLimit int
	maxLimit     int
	now          func() time.Time
}

// NewRecorder creates a new audit recorder.
func NewRecorder(logger *slog.Logger, repo auditRepo, cfg config.AuditConfig) *Recorder {
	return &Recorder{
		log:          logger.With("service", "audit"),
		repo:         repo,
		defaultLimit: cfg.DefaultListLimit,
		maxLimit:     cfg.MaxListLimit,
		now:          time.Now,
	}
}

// Record stores rec with a new ID and the current UTC time. Any ID or
// CreatedAt already set on rec is replaced. The write ignores cancellation
// of ctx so an attempt aborted by its caller is still recorded.
func (r *Recorder) Record(ctx context.Context, rec domain.AuditRecord) {
	ctx = context.WithoutCancel(ctx)
	rec.ID = uuid.New()
	rec.CreatedAt = r.now().UTC()

	if err := r.repo.Append(ctx, rec); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		r.log.ErrorContext(ctx, "audit write failed",
			slog.String("user_id", rec.UserID),
			slog.String("action", rec.Action.String()),
			slog.String("status", rec.Status.String()),
			slog.String("error", fmt.Errorf("%w: %w", domain.ErrAudit, err).Error()))
	}
}

// List returns the user's most recent records, newest first. A non-positive
// limit selects the default; larger limits are capped. Storage failures
// yield an empty list.
func (r *Recorder) List(ctx context.Context, userID string, limit int) []domain.AuditRecord {
	if limit <= 0 {
		limit = r.defaultLimit
	}
	if limit > r.maxLimit {
		limit = r.maxLimit
	}

	records, err := r.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		r.log.ErrorContext(ctx, "audit list failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return []domain.AuditRecord{}
	}
	if records == nil {
		return []domain.AuditRecord{}
	}
	return records
}
