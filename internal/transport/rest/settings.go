package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/service/execution"
	"github.com/martiny880/ooo-dashboard/internal/service/settings"
)

// settingsService defines the mailbox-settings operations served over HTTP.
type settingsService interface {
	SetOofSettings(ctx context.Context, id domain.UserIdentity, intent domain.OofIntent, mode domain.ExecutionMode) (execution.Outcome, error)
	GetOofSettings(ctx context.Context, id domain.UserIdentity) (domain.OofSettings, error)
	SetForwarding(ctx context.Context, id domain.UserIdentity, intent domain.ForwardingIntent, mode domain.ExecutionMode) (execution.Outcome, error)
	ClearForwarding(ctx context.Context, id domain.UserIdentity, forwardTo string, mode domain.ExecutionMode) (execution.Outcome, error)
	GetForwardingStatus(ctx context.Context, id domain.UserIdentity) (domain.ForwardingStatus, error)
	SearchUsers(ctx context.Context, id domain.UserIdentity, query string) ([]domain.DirectoryUser, error)
	AuditHistory(ctx context.Context, id domain.UserIdentity, limit int) []domain.AuditRecord
	Summary(ctx context.Context, id domain.UserIdentity) (settings.Summary, error)
}

// SettingsHandler serves the OOF, forwarding, directory and audit endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type setOofRequest struct {
	Settings domain.OofIntent     `json:"settings"`
	Mode     domain.ExecutionMode `json:"mode"`
}

// forwardingRule mirrors domain.ForwardingIntent with optional flags.
// Omitted flags default to true.
type forwardingRule struct {
	ForwardTo string `json:"forwardTo"`
	KeepCopy  *bool  `json:"keepCopy"`
	Enabled   *bool  `json:"enabled"`
}

func (f forwardingRule) intent() domain.ForwardingIntent {
	return domain.ForwardingIntent{
		ForwardTo: f.ForwardTo,
		KeepCopy:  f.KeepCopy == nil || *f.KeepCopy,
		Enabled:   f.Enabled == nil || *f.Enabled,
	}
}

type setForwardingRequest struct {
	Rule forwardingRule       `json:"rule"`
	Mode domain.ExecutionMode `json:"mode"`
}

// GetOof handles GET /api/oof.
func (h *SettingsHandler) GetOof(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	oof, err := h.svc.GetOofSettings(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, oof)
}

// SetOof handles POST /api/oof.
func (h *SettingsHandler) SetOof(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req setOofRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.SetOofSettings(r.Context(), id, req.Settings, req.Mode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, out.Data)
}

// GetForwarding handles GET /api/forwarding.
func (h *SettingsHandler) GetForwarding(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	status, err := h.svc.GetForwardingStatus(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, status)
}

// SetForwarding handles POST /api/forwarding.
func (h *SettingsHandler) SetForwarding(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req setForwardingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.svc.SetForwarding(r.Context(), id, req.Rule.intent(), req.Mode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, out.Data)
}

// ClearForwarding handles DELETE /api/forwarding?forwardTo=&mode=.
func (h *SettingsHandler) ClearForwarding(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	if q.Get("forwardTo") == "" {
		writeError(w, http.StatusBadRequest, "forwardTo parameter is required")
		return
	}

	out, err := h.svc.ClearForwarding(r.Context(), id, q.Get("forwardTo"), domain.ExecutionMode(q.Get("mode")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, out.Data)
}

// SearchUsers handles GET /api/users?search=.
func (h *SettingsHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	users, err := h.svc.SearchUsers(r.Context(), id, r.URL.Query().Get("search"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, users)
}

// AuditHistory handles GET /api/audit?limit=.
func (h *SettingsHandler) AuditHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	writeSuccess(w, h.svc.AuditHistory(r.Context(), id, limit))
}

// Summary handles GET /api/summary.
func (h *SettingsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	sum, err := h.svc.Summary(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeSuccess(w, sum)
}
