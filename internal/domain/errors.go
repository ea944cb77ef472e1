package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")

	// ErrConfiguration marks missing or malformed process configuration
	// (keys, secrets, URLs). It is fatal at startup and never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrNoCredential means no refresh token is stored for the user.
	ErrNoCredential = errors.New("no stored credential: user must re-authenticate")

	// ErrIntegrity means decrypted data failed authentication (tampering or wrong key).
	ErrIntegrity = errors.New("integrity check failed")

	// ErrAuthentication means the token exchange failed or the mail provider
	// kept rejecting the access token after a refresh. Surfaced as "sign in again".
	ErrAuthentication = errors.New("authentication required: please sign in again")

	// ErrUnauthorized is the remote "token rejected" signal. The mailbox
	// client consumes it for its single retry; callers only ever observe
	// ErrAuthentication.
	ErrUnauthorized = errors.New("unauthorized")

	ErrProvider = errors.New("mail provider error")
	ErrWebhook  = errors.New("webhook error")

	// ErrAudit wraps audit storage failures. It is logged, never returned to callers.
	ErrAudit = errors.New("audit error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ProviderError is a non-auth failure returned by the mail provider API.
type ProviderError struct {
	Status  int
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("mail provider returned %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("mail provider returned %d: %s", e.Status, e.Message)
}

func (e *ProviderError) Unwrap() error { return ErrProvider }

// WebhookError is a non-2xx (or undecodable) response from the automation endpoint.
type WebhookError struct {
	Status int
	Body   string
}

func (e *WebhookError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.Status, e.Body)
}

func (e *WebhookError) Unwrap() error { return ErrWebhook }
