// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for execution audit records.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/martiny880/ooo-dashboard/internal/adapter/postgres"
	"github.com/martiny880/ooo-dashboard/internal/domain"
)

const table = "audit_logs"

var columns = []string{
	"id", "user_id", "user_email", "action", "mode", "status",
	"payload", "response_data", "error", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a new audit record. Records are never updated.
func (r *Repo) Append(ctx context.Context, record domain.AuditRecord) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			record.ID,
			record.UserID,
			record.UserEmail,
			string(record.Action),
			string(record.Mode),
			string(record.Status),
			nullable(record.Payload),
			nullable(record.ResponseData),
			nullable(record.Error),
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append audit query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_log", record.ID.String())
	}

	return nil
}

// DeleteOlderThan removes records created before cutoff and returns the
// number of deleted rows. Used by the retention cleanup command.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete audit query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete audit_logs older than %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns a user's audit records, newest first, limited to `limit` rows.
func (r *Repo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_logs by user: %w", err)
	}

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("scan audit_logs: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.CollectableRow) (domain.AuditRecord, error) {
	var (
		rec                           domain.AuditRecord
		action, mode, status          string
		payload, responseData, errMsg *string
	)

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.UserEmail, &action, &mode, &status,
		&payload, &responseData, &errMsg, &rec.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, err
	}

	rec.Action = domain.Action(action)
	rec.Mode = domain.ExecutionMode(mode)
	rec.Status = domain.AuditStatus(status)
	rec.Payload = deref(payload)
	rec.ResponseData = deref(responseData)
	rec.Error = deref(errMsg)
	rec.CreatedAt = rec.CreatedAt.UTC()

	return rec, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
