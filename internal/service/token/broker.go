// Package token turns a user's stored refresh token into short-lived
// access tokens for the mail provider.
package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/metrics"
)

// secretRepo defines the secret store needed by the broker.
type secretRepo interface {
	Get(ctx context.Context, userID, provider string) (string, error)
	Put(ctx context.Context, userID, provider, encrypted string) error
	Delete(ctx context.Context, userID, provider string) error
}

// secretCipher defines the encryption needed by the broker.
type secretCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// tokenExchanger defines the identity-provider grant needed by the broker.
type tokenExchanger interface {
	RefreshToken(ctx context.Context, refreshToken string, scopes []string) (domain.TokenSet, error)
}

// Broker issues access tokens from stored refresh tokens and persists
// rotated refresh tokens. Nothing is cached between calls.
type Broker struct {
	log       *slog.Logger
	secrets   secretRepo
	cipher    secretCipher
	exchanger tokenExchanger
}

// NewBroker creates a new token broker.
func NewBroker(logger *slog.Logger, secrets secretRepo, cipher secretCipher, exchanger tokenExchanger) *Broker {
	return &Broker{
		log:       logger.With("service", "token"),
		secrets:   secrets,
		cipher:    cipher,
		exchanger: exchanger,
	}
}

// AccessToken returns a fresh access token for userID with the given scopes.
//
// Errors:
//   - domain.ErrNoCredential when the user has no stored refresh token
//   - domain.ErrIntegrity when the stored value cannot be decrypted
//   - domain.ErrAuthentication when the identity provider rejects the grant
func (b *Broker) AccessToken(ctx context.Context, userID string, scopes []string) (string, error) {
	stored, err := b.secrets.Get(ctx, userID, domain.ProviderMicrosoft)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("token.AccessToken: %w", domain.ErrNoCredential)
		}
		return "", fmt.Errorf("token.AccessToken get secret: %w", err)
	}

	refreshToken, err := b.cipher.Decrypt(stored)
	if err != nil {
		b.log.ErrorContext(ctx, "stored refresh token failed integrity check",
			slog.String("user_id", userID))
		return "", fmt.Errorf("token.AccessToken decrypt: %w", err)
	}

	set, err := b.exchanger.RefreshToken(ctx, refreshToken, scopes)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		b.log.WarnContext(ctx, "refresh token grant failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("token.AccessToken exchange: %w: %w", domain.ErrAuthentication, err)
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()

	if set.RefreshToken != "" && set.RefreshToken != refreshToken {
		if err := b.store(ctx, userID, set.RefreshToken); err != nil {
			return "", fmt.Errorf("token.AccessToken rotate: %w", err)
		}
		metrics.TokenRotationsTotal.Inc()
		b.log.DebugContext(ctx, "refresh token rotated", slog.String("user_id", userID))
	}

	return set.AccessToken, nil
}

// StoreRefreshToken encrypts and saves a refresh token obtained at sign-in,
// replacing any previous one.
func (b *Broker) StoreRefreshToken(ctx context.Context, userID, refreshToken string) error {
	if userID == "" {
		return domain.NewValidationError("userId", "required")
	}
	if refreshToken == "" {
		return domain.NewValidationError("refreshToken", "required")
	}
	if err := b.store(ctx, userID, refreshToken); err != nil {
		return fmt.Errorf("token.StoreRefreshToken: %w", err)
	}
	b.log.InfoContext(ctx, "refresh token stored", slog.String("user_id", userID))
	return nil
}

// Revoke deletes the user's stored refresh token. Revoking a user without a
// stored token succeeds.
func (b *Broker) Revoke(ctx context.Context, userID string) error {
	if err := b.secrets.Delete(ctx, userID, domain.ProviderMicrosoft); err != nil {
		return fmt.Errorf("token.Revoke: %w", err)
	}
	b.log.InfoContext(ctx, "refresh token revoked", slog.String("user_id", userID))
	return nil
}

func (b *Broker) store(ctx context.Context, userID, refreshToken string) error {
	encrypted, err := b.cipher.Encrypt(refreshToken)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	if err := b.secrets.Put(ctx, userID, domain.ProviderMicrosoft, encrypted); err != nil {
		return fmt.Errorf("put secret: %w", err)
	}
	return nil
}
