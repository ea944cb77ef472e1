// Package webhook delivers signed settings-change requests to the external
// automation engine and verifies signed callbacks from it.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/martiny880/ooo-dashboard/internal/config"
	"github.com/martiny880/ooo-dashboard/internal/domain"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Signature"

// timestampLayout is RFC 3339 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Payload is the JSON document posted to the automation engine.
// Timestamp is overwritten at send time.
type Payload struct {
	SubjectID string        `json:"subjectId"`
	UPN       string        `json:"upn"`
	Action    domain.Action `json:"action"`
	Data      any           `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// Dispatcher signs and posts payloads. URL and secret may be empty when
// only graph mode is in use; Send then fails with domain.ErrConfiguration.
type Dispatcher struct {
	url        string
	secret     []byte
	httpClient *http.Client
	now        func() time.Time
	log        *slog.Logger
}

// New creates a Dispatcher from WebhookConfig.
func New(cfg config.WebhookConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		url:        cfg.URL,
		secret:     []byte(cfg.SignatureSecret),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		now:        time.Now,
		log:        logger.With("adapter", "webhook"),
	}
}

// Configured reports whether both the URL and the signature secret are set.
func (d *Dispatcher) Configured() bool {
	return d.url != "" && len(d.secret) > 0
}

// Send stamps, signs and posts p, returning the decoded 2xx response body.
// An empty response body is returned as {}. There is no retry.
func (d *Dispatcher) Send(ctx context.Context, p Payload) (json.RawMessage, error) {
	if !d.Configured() {
		return nil, fmt.Errorf("%w: webhook url or signature secret not set", domain.ErrConfiguration)
	}

	p.Timestamp = d.now().UTC().Format(timestampLayout)

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("webhook: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, d.Sign(body))

	d.log.InfoContext(ctx, "sending webhook",
		slog.String("action", p.Action.String()),
		slog.String("subject_id", p.SubjectID))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.log.ErrorContext(ctx, "webhook request failed",
			slog.String("action", p.Action.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("webhook: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.log.WarnContext(ctx, "webhook rejected request",
			slog.String("action", p.Action.String()),
			slog.Int("status", resp.StatusCode))
		return nil, &domain.WebhookError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}
	if !json.Valid(trimmed) {
		return nil, &domain.WebhookError{Status: resp.StatusCode, Body: "invalid JSON response: " + string(trimmed)}
	}

	d.log.InfoContext(ctx, "webhook response received",
		slog.String("action", p.Action.String()),
		slog.Int("status", resp.StatusCode))

	return json.RawMessage(trimmed), nil
}

// Sign returns the lowercase hex HMAC-SHA256 of body under the shared secret.
func (d *Dispatcher) Sign(body []byte) string {
	mac := hmac.New(sha256.New, d.secret)
	_, _ = mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches body. Without a configured
// secret nothing verifies.
func (d *Dispatcher) Verify(body []byte, signature string) bool {
	if len(d.secret) == 0 {
		d.log.Warn("cannot verify webhook signature: signature secret not set")
		return false
	}
	expected := d.Sign(body)
	return hmac.Equal([]byte(strings.ToLower(strings.TrimSpace(signature))), []byte(expected))
}
