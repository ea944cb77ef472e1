package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martiny880/ooo-dashboard/internal/domain"
)

// UniqueUserID returns a directory-style user ID that does not collide with
// other tests sharing the container.
func UniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}

// SeedSecret inserts a secret row directly and returns it.
func SeedSecret(t *testing.T, pool *pgxpool.Pool, userID, provider, encrypted string) domain.Secret {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO secrets (user_id, provider, encrypted_value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		userID, provider, encrypted, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSecret: %v", err)
	}

	return domain.Secret{
		UserID:         userID,
		Provider:       provider,
		EncryptedValue: encrypted,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SeedAuditRecord inserts an audit row with the given creation time and returns it.
func SeedAuditRecord(t *testing.T, pool *pgxpool.Pool, userID string, status domain.AuditStatus, createdAt time.Time) domain.AuditRecord {
	t.Helper()

	rec := domain.AuditRecord{
		ID:        uuid.New(),
		UserID:    userID,
		UserEmail: userID + "@contoso.com",
		Action:    domain.ActionSetOof,
		Mode:      domain.ExecutionModeGraph,
		Status:    status,
		Payload:   `{"status":"disabled"}`,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO audit_logs (id, user_id, user_email, action, mode, status, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.UserEmail, string(rec.Action), string(rec.Mode), string(rec.Status), rec.Payload, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuditRecord: %v", err)
	}

	return rec
}
