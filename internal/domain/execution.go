package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserIdentity is the acting principal of a request.
type UserIdentity struct {
	UserID string
	Email  string
}

// ExecutionMode selects the backend that applies an intent.
type ExecutionMode string

const (
	ExecutionModeGraph ExecutionMode = "graph"
	ExecutionModeN8n   ExecutionMode = "n8n"
)

func (m ExecutionMode) String() string { return string(m) }

func (m ExecutionMode) IsValid() bool {
	switch m {
	case ExecutionModeGraph, ExecutionModeN8n:
		return true
	}
	return false
}

// Action names a settings mutation. The values are part of the webhook wire contract.
type Action string

const (
	ActionSetOof          Action = "set-oof"
	ActionSetForwarding   Action = "set-forwarding"
	ActionClearForwarding Action = "clear-forwarding"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionSetOof, ActionSetForwarding, ActionClearForwarding:
		return true
	}
	return false
}

// AuditStatus is the outcome recorded for one execution attempt.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
	AuditStatusPending AuditStatus = "pending"
)

func (s AuditStatus) String() string { return string(s) }

// AuditRecord is an append-only log entry for one execution attempt.
// Payload and ResponseData hold serialized JSON.
type AuditRecord struct {
	ID           uuid.UUID     `json:"id"`
	UserID       string        `json:"userId"`
	UserEmail    string        `json:"userEmail"`
	Action       Action        `json:"action"`
	Mode         ExecutionMode `json:"mode"`
	Status       AuditStatus   `json:"status"`
	Payload      string        `json:"payload,omitempty"`
	ResponseData string        `json:"responseData,omitempty"`
	Error        string        `json:"error,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// ProviderMicrosoft is the secret-store provider key for Microsoft refresh tokens.
const ProviderMicrosoft = "microsoft"

// Secret is an encrypted per-user, per-provider credential.
type Secret struct {
	UserID         string
	Provider       string
	EncryptedValue string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TokenSet is the result of a refresh-token grant. RefreshToken is empty
// when the identity provider did not rotate it.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}
