// Package microsoft talks to the Microsoft identity platform token endpoint.
package microsoft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/martiny880/ooo-dashboard/internal/config"
	"github.com/martiny880/ooo-dashboard/internal/domain"
)

// offlineAccess is requested on every grant so the response carries a
// rotated refresh token.
const offlineAccess = "offline_access"

// Exchanger redeems refresh tokens for access tokens.
type Exchanger struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewExchanger creates an Exchanger for the configured tenant and application.
func NewExchanger(cfg config.IdentityConfig, logger *slog.Logger) *Exchanger {
	authority := strings.TrimRight(cfg.AuthorityURL, "/")
	return &Exchanger{
		tokenURL:     authority + "/" + url.PathEscape(cfg.TenantID) + "/oauth2/v2.0/token",
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		log:          logger.With("adapter", "microsoft_identity"),
	}
}

// tokenResponse represents the response from the token endpoint.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// errorResponse represents the identity platform's error response format.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RefreshToken performs a refresh_token grant for the given scopes.
// The grant is attempted exactly once.
func (e *Exchanger) RefreshToken(ctx context.Context, refreshToken string, scopes []string) (domain.TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", e.clientID)
	data.Set("client_secret", e.clientSecret)
	data.Set("scope", scopeParam(scopes))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return domain.TokenSet{}, fmt.Errorf("microsoft: create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.log.ErrorContext(ctx, "token exchange failed", slog.String("error", err.Error()))
		return domain.TokenSet{}, fmt.Errorf("microsoft: token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.TokenSet{}, fmt.Errorf("microsoft: read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			e.log.WarnContext(ctx, "token exchange rejected",
				slog.Int("status", resp.StatusCode),
				slog.String("error", errResp.Error))
			return domain.TokenSet{}, fmt.Errorf("microsoft: token endpoint returned %d: %s", resp.StatusCode, errResp.Error)
		}

		e.log.ErrorContext(ctx, "token exchange failed", slog.Int("status", resp.StatusCode))
		return domain.TokenSet{}, fmt.Errorf("microsoft: token endpoint returned %d", resp.StatusCode)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return domain.TokenSet{}, fmt.Errorf("microsoft: invalid token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return domain.TokenSet{}, fmt.Errorf("microsoft: token response missing access_token")
	}

	e.log.DebugContext(ctx, "token exchange succeeded",
		slog.Bool("rotated", tokenResp.RefreshToken != ""),
		slog.Int("expires_in", tokenResp.ExpiresIn))

	return domain.TokenSet{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ExpiresIn:    tokenResp.ExpiresIn,
	}, nil
}

// scopeParam joins scopes with spaces and appends offline_access once.
func scopeParam(scopes []string) string {
	out := make([]string, 0, len(scopes)+1)
	hasOffline := false
	for _, s := range scopes {
		if s == offlineAccess {
			hasOffline = true
		}
		out = append(out, s)
	}
	if !hasOffline {
		out = append(out, offlineAccess)
	}
	return strings.Join(out, " ")
}
