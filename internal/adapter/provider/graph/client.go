// Package graph is a thin Microsoft Graph v1.0 client for mailbox settings,
// inbox message rules and directory search. Every call takes a bearer
// token; acquiring and refreshing it is the caller's concern.
package graph

import (
	"bytes"
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

const (
	mailboxSettingsPath = "/me/mailboxSettings"
	messageRulesPath    = "/me/mailFolders/Inbox/messageRules"
	usersPath           = "/users"

	searchTop = 10
)

// Client calls the Graph REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Graph client from GraphConfig.
func NewClient(cfg config.GraphConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "graph"),
	}
}

// ---------------------------------------------------------------------------
// Mailbox settings
// ---------------------------------------------------------------------------

type mailboxSettings struct {
	AutomaticRepliesSetting automaticReplies `json:"automaticRepliesSetting"`
}

type automaticReplies struct {
	Status                 domain.OofStatus         `json:"status"`
	ExternalAudience       string                   `json:"externalAudience,omitempty"`
	InternalReplyMessage   string                   `json:"internalReplyMessage,omitempty"`
	ExternalReplyMessage   string                   `json:"externalReplyMessage,omitempty"`
	ScheduledStartDateTime *domain.DateTimeTimeZone `json:"scheduledStartDateTime,omitempty"`
	ScheduledEndDateTime   *domain.DateTimeTimeZone `json:"scheduledEndDateTime,omitempty"`
}

// GetAutomaticReplies reads the signed-in user's automatic-replies setting.
func (c *Client) GetAutomaticReplies(ctx context.Context, accessToken string) (domain.OofSettings, error) {
	var out mailboxSettings
	if err := c.do(ctx, http.MethodGet, mailboxSettingsPath, accessToken, nil, &out); err != nil {
		return domain.OofSettings{}, err
	}

	ar := out.AutomaticRepliesSetting
	return domain.OofSettings{
		Status:                 ar.Status,
		ExternalAudience:       ar.ExternalAudience,
		InternalReplyMessage:   ar.InternalReplyMessage,
		ExternalReplyMessage:   ar.ExternalReplyMessage,
		ScheduledStartDateTime: ar.ScheduledStartDateTime,
		ScheduledEndDateTime:   ar.ScheduledEndDateTime,
	}, nil
}

// UpdateAutomaticReplies patches the automatic-replies setting with intent.
func (c *Client) UpdateAutomaticReplies(ctx context.Context, accessToken string, intent domain.OofIntent) error {
	body := mailboxSettings{AutomaticRepliesSetting: automaticReplies{
		Status:                 intent.Status,
		InternalReplyMessage:   intent.InternalReplyMessage,
		ExternalReplyMessage:   intent.ExternalReplyMessage,
		ScheduledStartDateTime: intent.ScheduledStartDateTime,
		ScheduledEndDateTime:   intent.ScheduledEndDateTime,
	}}
	return c.do(ctx, http.MethodPatch, mailboxSettingsPath, accessToken, body, nil)
}

// ---------------------------------------------------------------------------
// Message rules
// ---------------------------------------------------------------------------

type messageRule struct {
	ID          string         `json:"id,omitempty"`
	DisplayName string         `json:"displayName"`
	Sequence    int            `json:"sequence"`
	IsEnabled   bool           `json:"isEnabled"`
	Conditions  map[string]any `json:"conditions"`
	Actions     ruleActions    `json:"actions"`
}

type ruleActions struct {
	ForwardTo           []recipient `json:"forwardTo,omitempty"`
	StopProcessingRules bool        `json:"stopProcessingRules"`
	Delete              bool        `json:"delete,omitempty"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type ruleList struct {
	Value []messageRule `json:"value"`
}

// ListMessageRules returns the rules of the user's Inbox.
func (c *Client) ListMessageRules(ctx context.Context, accessToken string) ([]domain.MessageRule, error) {
	var out ruleList
	if err := c.do(ctx, http.MethodGet, messageRulesPath, accessToken, nil, &out); err != nil {
		return nil, err
	}

	rules := make([]domain.MessageRule, 0, len(out.Value))
	for _, r := range out.Value {
		rule := domain.MessageRule{
			ID:          r.ID,
			DisplayName: r.DisplayName,
			Enabled:     r.IsEnabled,
			Delete:      r.Actions.Delete,
		}
		for _, to := range r.Actions.ForwardTo {
			rule.ForwardTo = append(rule.ForwardTo, to.EmailAddress.Address)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// CreateMessageRule creates a first-in-sequence rule that matches every
// message, forwards it, and stops further rule processing.
func (c *Client) CreateMessageRule(ctx context.Context, accessToken string, rule domain.MessageRule) error {
	body := messageRule{
		DisplayName: rule.DisplayName,
		Sequence:    1,
		IsEnabled:   rule.Enabled,
		Conditions:  map[string]any{},
		Actions: ruleActions{
			StopProcessingRules: true,
			Delete:              rule.Delete,
		},
	}
	for _, addr := range rule.ForwardTo {
		body.Actions.ForwardTo = append(body.Actions.ForwardTo, recipient{EmailAddress: emailAddress{Address: addr}})
	}
	return c.do(ctx, http.MethodPost, messageRulesPath, accessToken, body, nil)
}

// DeleteMessageRule deletes the rule with the given ID.
func (c *Client) DeleteMessageRule(ctx context.Context, accessToken, ruleID string) error {
	return c.do(ctx, http.MethodDelete, messageRulesPath+"/"+url.PathEscape(ruleID), accessToken, nil, nil)
}

// ---------------------------------------------------------------------------
// Directory
// ---------------------------------------------------------------------------

type directoryUser struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}

type userList struct {
	Value []directoryUser `json:"value"`
}

// SearchUsers returns up to ten users whose display name, mail or UPN
// starts with query.
func (c *Client) SearchUsers(ctx context.Context, accessToken, query string) ([]domain.DirectoryUser, error) {
	q := escapeOData(query)
	params := url.Values{}
	params.Set("$filter", fmt.Sprintf(
		"startswith(displayName,'%s') or startswith(mail,'%s') or startswith(userPrincipalName,'%s')", q, q, q))
	params.Set("$select", "id,displayName,mail,userPrincipalName")
	params.Set("$top", fmt.Sprint(searchTop))

	var out userList
	if err := c.do(ctx, http.MethodGet, usersPath+"?"+params.Encode(), accessToken, nil, &out); err != nil {
		return nil, err
	}

	users := make([]domain.DirectoryUser, 0, len(out.Value))
	for _, u := range out.Value {
		email := u.Mail
		if email == "" {
			email = u.UserPrincipalName
		}
		users = append(users, domain.DirectoryUser{
			Value: email,
			Label: fmt.Sprintf("%s (%s)", u.DisplayName, email),
			Email: email,
			Name:  u.DisplayName,
		})
	}
	return users, nil
}

// escapeOData doubles single quotes so query cannot break out of a string literal.
func escapeOData(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request. 401 maps to domain.ErrUnauthorized so the caller can
// refresh its token; any other non-2xx status maps to *domain.ProviderError.
func (c *Client) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("graph: marshal %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("graph: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "graph request failed",
			slog.String("method", method),
			slog.String("path", stripQuery(path)),
			slog.String("error", err.Error()))
		return fmt.Errorf("graph: %s %s: %w", method, stripQuery(path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("graph: read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.DebugContext(ctx, "graph returned 401", slog.String("path", stripQuery(path)))
		return fmt.Errorf("graph: %s %s: %w", method, stripQuery(path), domain.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		perr := &domain.ProviderError{Status: resp.StatusCode}
		var ge graphError
		if json.Unmarshal(raw, &ge) == nil && ge.Error.Code != "" {
			perr.Code = ge.Error.Code
			perr.Message = ge.Error.Message
		} else {
			perr.Message = strings.TrimSpace(string(raw))
		}

		c.log.WarnContext(ctx, "graph request rejected",
			slog.String("method", method),
			slog.String("path", stripQuery(path)),
			slog.Int("status", resp.StatusCode),
			slog.String("code", perr.Code))
		return perr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("graph: decode %s %s: %w", method, stripQuery(path), err)
	}
	return nil
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
