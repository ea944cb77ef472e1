package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/martiny880/ooo-dashboard/internal/adapter/webhook"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/metrics"
)

// signatureVerifier checks the HMAC signature of an inbound body.
type signatureVerifier interface {
	Verify(body []byte, signature string) bool
}

// callbackRecorder appends the completion result reported by the automation engine.
type callbackRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord)
}

// CallbackHandler receives signed completion callbacks from the automation engine.
type CallbackHandler struct {
	verifier signatureVerifier
	audit    callbackRecorder
	log      *slog.Logger
}

// NewCallbackHandler creates a CallbackHandler.
func NewCallbackHandler(verifier signatureVerifier, audit callbackRecorder, logger *slog.Logger) *CallbackHandler {
	return &CallbackHandler{verifier: verifier, audit: audit, log: logger.With("handler", "callback")}
}

// callbackRequest reports how the automation engine finished a dispatched action.
type callbackRequest struct {
	SubjectID string             `json:"subjectId"`
	UPN       string             `json:"upn"`
	Action    domain.Action      `json:"action"`
	Status    domain.AuditStatus `json:"status"`
	Error     string             `json:"error"`
	Data      json.RawMessage    `json:"data"`
}

func (c callbackRequest) validate() error {
	var errs []domain.FieldError
	if c.SubjectID == "" {
		errs = append(errs, domain.FieldError{Field: "subjectId", Message: "required"})
	}
	if !c.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if c.Status != domain.AuditStatusSuccess && c.Status != domain.AuditStatusError {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be success or error"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// N8n handles POST /api/webhooks/n8n. The request is authenticated by its
// X-Signature header instead of a session.
func (h *CallbackHandler) N8n(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.verifier.Verify(body, r.Header.Get(webhook.SignatureHeader)) {
		metrics.WebhookCallbacksTotal.WithLabelValues("rejected").Inc()
		h.log.WarnContext(r.Context(), "callback signature rejected", slog.String("remote_addr", r.RemoteAddr))
		writeError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var req callbackRequest
	if err := json.Unmarshal(body, &req); err != nil {
		metrics.WebhookCallbacksTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		metrics.WebhookCallbacksTotal.WithLabelValues("invalid").Inc()
		handleError(h.log, w, r, err)
		return
	}

	rec := domain.AuditRecord{
		UserID:    req.SubjectID,
		UserEmail: req.UPN,
		Action:    req.Action,
		Mode:      domain.ExecutionModeN8n,
		Status:    req.Status,
		Error:     req.Error,
	}
	if len(req.Data) > 0 && string(req.Data) != "null" {
		rec.ResponseData = string(req.Data)
	}
	h.audit.Record(r.Context(), rec)

	metrics.WebhookCallbacksTotal.WithLabelValues("accepted").Inc()
	h.log.InfoContext(r.Context(), "callback accepted",
		slog.String("user_id", req.SubjectID),
		slog.String("action", req.Action.String()),
		slog.String("status", req.Status.String()))

	writeSuccess(w, map[string]bool{"received": true})
}
