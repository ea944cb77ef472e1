// Package secret implements the encrypted per-user credential store using PostgreSQL.
// Values are stored exactly as handed in; encryption happens in the vault.
package secret

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/martiny880/ooo-dashboard/internal/adapter/postgres"
)

const table = "secrets"

// Repo provides secret persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new secret repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the stored ciphertext for (userID, provider).
// Returns domain.ErrNotFound when no row exists.
func (r *Repo) Get(ctx context.Context, userID, provider string) (string, error) {
	query, args, err := postgres.Builder().
		Select("encrypted_value").
		From(table).
		Where(sq.Eq{"user_id": userID, "provider": provider}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get secret query: %w", err)
	}

	var value string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return "", postgres.MapError(err, "secret", key(userID, provider))
	}

	return value, nil
}

// Put inserts or replaces the ciphertext for (userID, provider).
// created_at is preserved on update; updated_at is refreshed.
func (r *Repo) Put(ctx context.Context, userID, provider, encrypted string) error {
	now := time.Now().UTC()

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "provider", "encrypted_value", "created_at", "updated_at").
		Values(userID, provider, encrypted, now, now).
		Suffix("ON CONFLICT (user_id, provider) DO UPDATE SET encrypted_value = EXCLUDED.encrypted_value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build put secret query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "secret", key(userID, provider))
	}

	return nil
}

// Delete removes the secret for (userID, provider). Deleting a missing
// secret is not an error.
func (r *Repo) Delete(ctx context.Context, userID, provider string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID, "provider": provider}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete secret query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "secret", key(userID, provider))
	}

	return nil
}

func key(userID, provider string) string {
	return userID + "/" + provider
}
