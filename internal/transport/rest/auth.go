package rest

import (
	"context"
	"log/slog"
	"net/http"
)

// credentialService stores and revokes the user's provider refresh token.
type credentialService interface {
	StoreRefreshToken(ctx context.Context, userID, refreshToken string) error
	Revoke(ctx context.Context, userID string) error
}

// AuthHandler serves the sign-in credential endpoints.
type AuthHandler struct {
	svc credentialService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc credentialService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type storeCredentialRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// StoreCredential handles POST /api/auth/credential. The sign-in flow calls
// it with the refresh token obtained from the identity provider.
func (h *AuthHandler) StoreCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req storeCredentialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.svc.StoreRefreshToken(r.Context(), id.UserID, req.RefreshToken); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "credential stored", slog.String("user_id", id.UserID))
	writeSuccess(w, map[string]string{"status": "ok"})
}

// RevokeCredential handles DELETE /api/auth/credential (sign-out).
func (h *AuthHandler) RevokeCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.svc.Revoke(r.Context(), id.UserID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "credential revoked", slog.String("user_id", id.UserID))
	writeSuccess(w, map[string]string{"status": "ok"})
}
