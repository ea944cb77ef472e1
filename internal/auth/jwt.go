package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/martiny880/ooo-dashboard/internal/domain"
)

// JWTManager issues and validates dashboard session tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// sessionClaims carries the user's email next to the standard claims.
// Subject is the user ID.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateSessionToken creates a signed HS256 JWT for id.
func (m *JWTManager) GenerateSessionToken(id domain.UserIdentity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: id.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses a session token and returns the identity it names.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (domain.UserIdentity, error) {
	if tokenString == "" {
		return domain.UserIdentity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return domain.UserIdentity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return domain.UserIdentity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.UserIdentity{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return domain.UserIdentity{}, fmt.Errorf("missing subject")
	}
	if err := domain.ValidateEmail(claims.Email); err != nil {
		return domain.UserIdentity{}, fmt.Errorf("invalid email claim: %w", err)
	}

	return domain.UserIdentity{UserID: claims.Subject, Email: claims.Email}, nil
}
