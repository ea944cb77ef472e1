// Package execution applies validated mailbox-settings intents through one
// of two backends and audits every attempt.
package execution

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/martiny880/ooo-dashboard/internal/adapter/webhook"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/metrics"
)

// Result messages returned for graph-mode executions.
const (
	MessageOofUpdated        = "OOF settings updated successfully"
	MessageForwardingCreated = "Forwarding rule created successfully"
	MessageForwardingDeleted = "Forwarding rule deleted successfully"
)

// mailboxClient applies intents directly against the mail provider.
type mailboxClient interface {
	SetOof(ctx context.Context, userID string, intent domain.OofIntent) error
	CreateForwardingRule(ctx context.Context, userID string, intent domain.ForwardingIntent) error
	DeleteForwardingRule(ctx context.Context, userID, forwardTo string) error
}

// webhookSender posts intents to the automation engine.
type webhookSender interface {
	Configured() bool
	Send(ctx context.Context, p webhook.Payload) (json.RawMessage, error)
}

// auditRecorder appends audit records. It never fails.
type auditRecorder interface {
	Record(ctx context.Context, rec domain.AuditRecord)
}

// Request is one settings mutation. Intent must be the type matching Action:
// domain.OofIntent, domain.ForwardingIntent or domain.ForwardingClear.
// An empty Mode selects the router's default.
type Request struct {
	Identity domain.UserIdentity
	Action   domain.Action
	Intent   any
	Mode     domain.ExecutionMode
}

// Outcome is the result of a successful execution.
type Outcome struct {
	Mode domain.ExecutionMode `json:"mode"`
	Data json.RawMessage      `json:"data"`
}

// Router dispatches requests to the mail provider or the webhook.
type Router struct {
	log         *slog.Logger
	mailbox     mailboxClient
	webhook     webhookSender
	audit       auditRecorder
	defaultMode domain.ExecutionMode
}

// NewRouter creates a Router. defaultMode is used when a request carries none.
func NewRouter(
	logger *slog.Logger,
	mailbox mailboxClient,
	sender webhookSender,
	audit auditRecorder,
	defaultMode domain.ExecutionMode,
) *Router {
	return &Router{
		log:         logger.With("service", "execution"),
		mailbox:     mailbox,
		webhook:     sender,
		audit:       audit,
		defaultMode: defaultMode,
	}
}

// ResolveMode returns mode, or the default when mode is empty. n8n is
// rejected up front when the webhook URL or signature secret is missing.
func (r *Router) ResolveMode(mode domain.ExecutionMode) (domain.ExecutionMode, error) {
	if mode == "" {
		mode = r.defaultMode
	} else if !mode.IsValid() {
		return "", domain.NewValidationError("mode", "must be graph or n8n")
	}
	if mode == domain.ExecutionModeN8n && !r.webhook.Configured() {
		return "", domain.NewValidationError("mode", "n8n mode is not configured")
	}
	return mode, nil
}

// Execute applies req and records the attempt. The audit record is written
// whether or not execution succeeds; on failure the backend error is
// returned unchanged.
func (r *Router) Execute(ctx context.Context, req Request) (Outcome, error) {
	mode, err := r.ResolveMode(req.Mode)
	if err != nil {
		return Outcome{}, err
	}

	payload, err := json.Marshal(req.Intent)
	if err != nil {
		return Outcome{}, fmt.Errorf("execution.Execute marshal intent: %w", err)
	}

	r.log.InfoContext(ctx, "executing",
		slog.String("user_id", req.Identity.UserID),
		slog.String("action", req.Action.String()),
		slog.String("mode", mode.String()))

	start := time.Now()
	var data json.RawMessage
	switch mode {
	case domain.ExecutionModeN8n:
		data, err = r.viaWebhook(ctx, req)
	default:
		data, err = r.viaGraph(ctx, req)
	}
	metrics.ExecutionDuration.WithLabelValues(req.Action.String(), mode.String()).Observe(time.Since(start).Seconds())

	// The attempt is recorded even when the request was cancelled mid-flight.
	actx := context.WithoutCancel(ctx)

	rec := domain.AuditRecord{
		UserID:    req.Identity.UserID,
		UserEmail: req.Identity.Email,
		Action:    req.Action,
		Mode:      mode,
		Payload:   string(payload),
	}

	if err != nil {
		metrics.ExecutionsTotal.WithLabelValues(req.Action.String(), mode.String(), domain.AuditStatusError.String()).Inc()
		rec.Status = domain.AuditStatusError
		rec.Error = err.Error()
		r.audit.Record(actx, rec)

		r.log.ErrorContext(ctx, "execution failed",
			slog.String("user_id", req.Identity.UserID),
			slog.String("action", req.Action.String()),
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()))
		return Outcome{}, err
	}

	metrics.ExecutionsTotal.WithLabelValues(req.Action.String(), mode.String(), domain.AuditStatusSuccess.String()).Inc()
	rec.Status = domain.AuditStatusSuccess
	rec.ResponseData = string(data)
	r.audit.Record(actx, rec)

	return Outcome{Mode: mode, Data: data}, nil
}

func (r *Router) viaGraph(ctx context.Context, req Request) (json.RawMessage, error) {
	userID := req.Identity.UserID

	var (
		message string
		err     error
	)
	switch intent := req.Intent.(type) {
	case domain.OofIntent:
		err = r.mailbox.SetOof(ctx, userID, intent)
		message = MessageOofUpdated
	case domain.ForwardingIntent:
		err = r.mailbox.CreateForwardingRule(ctx, userID, intent)
		message = MessageForwardingCreated
	case domain.ForwardingClear:
		err = r.mailbox.DeleteForwardingRule(ctx, userID, intent.ForwardTo)
		message = MessageForwardingDeleted
	default:
		return nil, fmt.Errorf("execution: unsupported intent %T for action %s", req.Intent, req.Action)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]string{"message": message})
}

func (r *Router) viaWebhook(ctx context.Context, req Request) (json.RawMessage, error) {
	return r.webhook.Send(ctx, webhook.Payload{
		SubjectID: req.Identity.UserID,
		UPN:       req.Identity.Email,
		Action:    req.Action,
		Data:      req.Intent,
	})
}
