package config

import (
	"fmt"
	"net/url"

	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/vault"
)

// KeySize is the required length of the decoded vault key (AES-256).
const KeySize = vault.KeySize

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Every returned error wraps domain.ErrConfiguration.
func (c *Config) Validate() error {
	if len(c.Session.JWTSecret) < 32 {
		return configErr("session.jwt_secret must be at least 32 characters (got %d)", len(c.Session.JWTSecret))
	}

	key, err := vault.ParseKey(c.Vault.EncryptionKeyBase64)
	if err != nil {
		return fmt.Errorf("vault.encryption_key: %w", err)
	}
	c.Vault.Key = key

	if err := c.Identity.validate(); err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	if err := c.Webhook.validate(); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}

	mode := c.Execution.Mode()
	if !mode.IsValid() {
		return configErr("execution.default_mode must be graph or n8n (got %q)", c.Execution.DefaultMode)
	}
	if mode == domain.ExecutionModeN8n && !c.Webhook.Configured() {
		return configErr("execution.default_mode is n8n but webhook url or signature secret is not set")
	}

	if c.Audit.DefaultListLimit <= 0 || c.Audit.MaxListLimit < c.Audit.DefaultListLimit {
		return configErr("audit list limits must satisfy 0 < default (%d) <= max (%d)",
			c.Audit.DefaultListLimit, c.Audit.MaxListLimit)
	}

	return nil
}

func (i IdentityConfig) validate() error {
	if i.TenantID == "" || i.ClientID == "" || i.ClientSecret == "" {
		return configErr("tenant_id, client_id and client_secret are required")
	}
	if _, err := url.ParseRequestURI(i.AuthorityURL); err != nil {
		return configErr("authority_url: %v", err)
	}
	return nil
}

func (w WebhookConfig) validate() error {
	if w.URL == "" {
		return nil
	}
	u, err := url.ParseRequestURI(w.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return configErr("url must be an absolute http(s) URL (got %q)", w.URL)
	}
	return nil
}

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrConfiguration, fmt.Sprintf(format, args...))
}
