// Package mailbox performs mailbox operations on behalf of a user, acquiring
// access tokens per call and retrying once when the provider reports the
// token as expired.
package mailbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/metrics"
)

// Delegated permission scopes requested per operation.
const (
	ScopeMailboxSettingsRead      = "https://graph.microsoft.com/MailboxSettings.Read"
	ScopeMailboxSettingsReadWrite = "https://graph.microsoft.com/MailboxSettings.ReadWrite"
	ScopeMailReadWrite            = "https://graph.microsoft.com/Mail.ReadWrite"
	ScopeUserReadBasicAll         = "https://graph.microsoft.com/User.ReadBasic.All"
)

// RuleNamePrefix marks forwarding rules created by the dashboard.
const RuleNamePrefix = "Auto-forward to "

// maxUnauthorizedRetries is how many times a call is repeated with a fresh
// token after the provider answers 401.
const maxUnauthorizedRetries = 1

// minSearchLength is the shortest directory query sent to the provider.
const minSearchLength = 2

// tokenSource defines the token broker needed by the client.
type tokenSource interface {
	AccessToken(ctx context.Context, userID string, scopes []string) (string, error)
}

// mailAPI defines the mail-provider calls needed by the client.
type mailAPI interface {
	GetAutomaticReplies(ctx context.Context, accessToken string) (domain.OofSettings, error)
	UpdateAutomaticReplies(ctx context.Context, accessToken string, intent domain.OofIntent) error
	ListMessageRules(ctx context.Context, accessToken string) ([]domain.MessageRule, error)
	CreateMessageRule(ctx context.Context, accessToken string, rule domain.MessageRule) error
	DeleteMessageRule(ctx context.Context, accessToken, ruleID string) error
	SearchUsers(ctx context.Context, accessToken, query string) ([]domain.DirectoryUser, error)
}

// Client is the token-aware mail-provider client.
type Client struct {
	log    *slog.Logger
	tokens tokenSource
	api    mailAPI
}

// NewClient creates a new mailbox client.
func NewClient(logger *slog.Logger, tokens tokenSource, api mailAPI) *Client {
	return &Client{
		log:    logger.With("service", "mailbox"),
		tokens: tokens,
		api:    api,
	}
}

// RuleName returns the display name of the forwarding rule for forwardTo.
func RuleName(forwardTo string) string {
	return RuleNamePrefix + forwardTo
}

// GetOofSettings returns the user's current automatic-replies setting.
func (c *Client) GetOofSettings(ctx context.Context, userID string) (domain.OofSettings, error) {
	var out domain.OofSettings
	err := c.withRetry(ctx, userID, "GetOofSettings", []string{ScopeMailboxSettingsRead}, func(token string) error {
		var err error
		out, err = c.api.GetAutomaticReplies(ctx, token)
		return err
	})
	if err != nil {
		return domain.OofSettings{}, err
	}
	return out, nil
}

// SetOof replaces the user's automatic-replies setting with intent.
func (c *Client) SetOof(ctx context.Context, userID string, intent domain.OofIntent) error {
	err := c.withRetry(ctx, userID, "SetOof", []string{ScopeMailboxSettingsReadWrite}, func(token string) error {
		return c.api.UpdateAutomaticReplies(ctx, token, intent)
	})
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "automatic replies updated",
		slog.String("user_id", userID),
		slog.String("status", intent.Status.String()))
	return nil
}

// GetForwardingStatus reports the first dashboard-created forwarding rule.
// Provider failures are returned, not reported as "no rule".
func (c *Client) GetForwardingStatus(ctx context.Context, userID string) (domain.ForwardingStatus, error) {
	rules, err := c.listRules(ctx, userID, "GetForwardingStatus")
	if err != nil {
		return domain.ForwardingStatus{}, err
	}

	for _, r := range rules {
		if !strings.HasPrefix(r.DisplayName, RuleNamePrefix) {
			continue
		}
		keepCopy := !r.Delete
		status := domain.ForwardingStatus{HasRule: true, KeepCopy: &keepCopy}
		if len(r.ForwardTo) > 0 {
			status.ForwardTo = r.ForwardTo[0]
		}
		return status, nil
	}

	return domain.ForwardingStatus{HasRule: false}, nil
}

// CreateForwardingRule creates an inbox rule forwarding all mail to
// intent.ForwardTo. Messages are also deleted when KeepCopy is false.
func (c *Client) CreateForwardingRule(ctx context.Context, userID string, intent domain.ForwardingIntent) error {
	rule := domain.MessageRule{
		DisplayName: RuleName(intent.ForwardTo),
		Enabled:     intent.Enabled,
		ForwardTo:   []string{intent.ForwardTo},
		Delete:      !intent.KeepCopy,
	}

	err := c.withRetry(ctx, userID, "CreateForwardingRule", []string{ScopeMailReadWrite}, func(token string) error {
		return c.api.CreateMessageRule(ctx, token, rule)
	})
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "forwarding rule created",
		slog.String("user_id", userID),
		slog.String("forward_to", intent.ForwardTo))
	return nil
}

// DeleteForwardingRule removes the rule named for forwardTo. A missing rule
// is not an error.
func (c *Client) DeleteForwardingRule(ctx context.Context, userID, forwardTo string) error {
	name := RuleName(forwardTo)
	deleted := false

	err := c.withRetry(ctx, userID, "DeleteForwardingRule", []string{ScopeMailReadWrite}, func(token string) error {
		rules, err := c.api.ListMessageRules(ctx, token)
		if err != nil {
			return err
		}
		for _, r := range rules {
			if r.DisplayName == name {
				if err := c.api.DeleteMessageRule(ctx, token, r.ID); err != nil {
					return err
				}
				deleted = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		c.log.InfoContext(ctx, "forwarding rule deleted",
			slog.String("user_id", userID),
			slog.String("forward_to", forwardTo))
	} else {
		c.log.WarnContext(ctx, "forwarding rule not found",
			slog.String("user_id", userID),
			slog.String("rule_name", name))
	}
	return nil
}

// SearchUsers looks up directory users by name or address prefix.
// Queries shorter than two characters return no results without a call.
func (c *Client) SearchUsers(ctx context.Context, userID, query string) ([]domain.DirectoryUser, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLength {
		return []domain.DirectoryUser{}, nil
	}

	var out []domain.DirectoryUser
	err := c.withRetry(ctx, userID, "SearchUsers", []string{ScopeUserReadBasicAll}, func(token string) error {
		var err error
		out, err = c.api.SearchUsers(ctx, token, query)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "directory search",
		slog.String("user_id", userID),
		slog.Int("count", len(out)))
	return out, nil
}

func (c *Client) listRules(ctx context.Context, userID, op string) ([]domain.MessageRule, error) {
	var rules []domain.MessageRule
	err := c.withRetry(ctx, userID, op, []string{ScopeMailReadWrite}, func(token string) error {
		var err error
		rules, err = c.api.ListMessageRules(ctx, token)
		return err
	})
	return rules, err
}

// withRetry obtains a token and runs fn. When fn fails with
// domain.ErrUnauthorized a new token is obtained and fn runs again, up to
// maxUnauthorizedRetries times; after that the failure becomes
// domain.ErrAuthentication. Other errors, including token errors, are
// returned immediately.
func (c *Client) withRetry(ctx context.Context, userID, op string, scopes []string, fn func(accessToken string) error) error {
	for attempt := 0; ; attempt++ {
		token, err := c.tokens.AccessToken(ctx, userID, scopes)
		if err != nil {
			return fmt.Errorf("mailbox.%s: %w", op, err)
		}

		err = fn(token)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			return fmt.Errorf("mailbox.%s: %w", op, err)
		}
		if attempt >= maxUnauthorizedRetries {
			return fmt.Errorf("mailbox.%s: %w: provider rejected a freshly issued token", op, domain.ErrAuthentication)
		}

		metrics.UnauthorizedRetriesTotal.WithLabelValues(op).Inc()
		c.log.WarnContext(ctx, "mail provider returned 401, retrying with a fresh token",
			slog.String("user_id", userID),
			slog.String("operation", op))
	}
}
