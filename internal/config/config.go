package config

import (
	"time"

	"github.com/martiny880/ooo-dashboard/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Session   SessionConfig   `yaml:"session"`
	Vault     VaultConfig     `yaml:"vault"`
	Identity  IdentityConfig  `yaml:"identity"`
	Graph     GraphConfig     `yaml:"graph"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Execution ExecutionConfig `yaml:"execution"`
	Audit     AuditConfig     `yaml:"audit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MetricsPath     string        `yaml:"metrics_path"     env:"SERVER_METRICS_PATH"     env-default:"/metrics"`
	RateLimit       int           `yaml:"rate_limit"       env:"SERVER_RATE_LIMIT"       env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SessionConfig holds the settings used to validate dashboard session tokens.
type SessionConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"SESSION_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"SESSION_JWT_ISSUER" env-default:"ooo-dashboard"`
	TTL       time.Duration `yaml:"ttl"        env:"SESSION_TTL"        env-default:"8h"`
}

// VaultConfig holds the process-wide key for encrypting stored refresh tokens.
type VaultConfig struct {
	EncryptionKeyBase64 string `yaml:"encryption_key" env:"ENCRYPTION_KEY_32B_BASE64" env-required:"true"`

	// Key is decoded from EncryptionKeyBase64 during validation.
	Key []byte `yaml:"-" env:"-"`
}

// IdentityConfig holds the Azure AD application used for refresh-token grants.
type IdentityConfig struct {
	TenantID     string        `yaml:"tenant_id"     env:"AZURE_TENANT_ID"`
	ClientID     string        `yaml:"client_id"     env:"AZURE_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"AZURE_CLIENT_SECRET"`
	AuthorityURL string        `yaml:"authority_url" env:"AZURE_AUTHORITY_URL" env-default:"https://login.microsoftonline.com"`
	Timeout      time.Duration `yaml:"timeout"       env:"IDENTITY_TIMEOUT"    env-default:"10s"`
}

// GraphConfig holds Microsoft Graph API settings.
type GraphConfig struct {
	BaseURL string        `yaml:"base_url" env:"GRAPH_BASE_URL" env-default:"https://graph.microsoft.com/v1.0"`
	Timeout time.Duration `yaml:"timeout"  env:"GRAPH_TIMEOUT"  env-default:"15s"`
}

// WebhookConfig holds the automation-engine webhook settings.
// Both URL and SignatureSecret may be empty when only graph mode is used.
type WebhookConfig struct {
	URL             string        `yaml:"url"              env:"N8N_WEBHOOK_URL"`
	SignatureSecret string        `yaml:"signature_secret" env:"N8N_SIGNATURE_SECRET"`
	Timeout         time.Duration `yaml:"timeout"          env:"N8N_TIMEOUT"          env-default:"15s"`
}

// Configured reports whether outbound dispatch is possible.
func (c WebhookConfig) Configured() bool {
	return c.URL != "" && c.SignatureSecret != ""
}

// ExecutionConfig holds settings for the settings-mutation pipeline.
type ExecutionConfig struct {
	DefaultMode             string `yaml:"default_mode"              env:"EXECUTION_MODE"            env-default:"graph"`
	AllowExternalForwarding bool   `yaml:"allow_external_forwarding" env:"ALLOW_EXTERNAL_FORWARDING" env-default:"false"`
}

// Mode returns DefaultMode as a domain.ExecutionMode.
func (c ExecutionConfig) Mode() domain.ExecutionMode {
	return domain.ExecutionMode(c.DefaultMode)
}

// AuditConfig holds audit log settings.
type AuditConfig struct {
	DefaultListLimit int `yaml:"default_list_limit" env:"AUDIT_DEFAULT_LIST_LIMIT" env-default:"50"`
	MaxListLimit     int `yaml:"max_list_limit"     env:"AUDIT_MAX_LIST_LIMIT"     env-default:"200"`
	RetentionDays    int `yaml:"retention_days"     env:"AUDIT_RETENTION_DAYS"     env-default:"365"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
