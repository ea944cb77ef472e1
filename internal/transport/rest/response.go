package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/pkg/ctxutil"
)

// maxBodyBytes caps request bodies read by the API handlers.
const maxBodyBytes = 1 << 20

const msgSignInAgain = "authentication required: please sign in again"

// dataEnvelope and errorEnvelope are the response shapes of every /api endpoint.
type dataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, dataEnvelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Error: message})
}

// handleError classifies err into an HTTP status and writes the error envelope.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: verr.Error(), Details: verr.Errors})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoCredential), errors.Is(err, domain.ErrAuthentication):
		log.WarnContext(r.Context(), "authentication required",
			slog.String("user_id", ctxutil.UserIDFromCtx(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, msgSignInAgain)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrProvider), errors.Is(err, domain.ErrWebhook):
		log.ErrorContext(r.Context(), "upstream error",
			slog.String("user_id", ctxutil.UserIDFromCtx(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("user_id", ctxutil.UserIDFromCtx(r.Context())),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireIdentity returns the session identity or writes 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (domain.UserIdentity, bool) {
	id, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgSignInAgain)
		return domain.UserIdentity{}, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into v, writing 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
