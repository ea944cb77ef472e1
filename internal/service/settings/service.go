// Package settings is the entry point for reading and changing a user's
// out-of-office replies and inbox forwarding.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/service/execution"
)

// executor applies a validated intent and audits it.
type executor interface {
	Execute(ctx context.Context, req execution.Request) (execution.Outcome, error)
}

// mailboxReader reads live state from the mail provider.
type mailboxReader interface {
	GetOofSettings(ctx context.Context, userID string) (domain.OofSettings, error)
	GetForwardingStatus(ctx context.Context, userID string) (domain.ForwardingStatus, error)
	SearchUsers(ctx context.Context, userID, query string) ([]domain.DirectoryUser, error)
}

// auditLister lists a user's audit history.
type auditLister interface {
	List(ctx context.Context, userID string, limit int) []domain.AuditRecord
}

// Service validates intents and hands them to the execution router.
type Service struct {
	log           *slog.Logger
	exec          executor
	mailbox       mailboxReader
	audit         auditLister
	allowExternal bool
}

// NewService creates a new settings service. When allowExternal is false,
// forwarding is only permitted within the user's own email domain.
func NewService(
	logger *slog.Logger,
	exec executor,
	mailbox mailboxReader,
	audit auditLister,
	allowExternal bool,
) *Service {
	return &Service{
		log:           logger.With("service", "settings"),
		exec:          exec,
		mailbox:       mailbox,
		audit:         audit,
		allowExternal: allowExternal,
	}
}

// SetOofSettings validates intent and applies it.
func (s *Service) SetOofSettings(ctx context.Context, id domain.UserIdentity, intent domain.OofIntent, mode domain.ExecutionMode) (execution.Outcome, error) {
	if err := intent.Validate(); err != nil {
		return execution.Outcome{}, err
	}

	return s.exec.Execute(ctx, execution.Request{
		Identity: id,
		Action:   domain.ActionSetOof,
		Intent:   intent,
		Mode:     mode,
	})
}

// GetOofSettings reads the current automatic-replies configuration.
func (s *Service) GetOofSettings(ctx context.Context, id domain.UserIdentity) (domain.OofSettings, error) {
	return s.mailbox.GetOofSettings(ctx, id.UserID)
}

// SetForwarding validates intent against the forwarding policy and applies it.
func (s *Service) SetForwarding(ctx context.Context, id domain.UserIdentity, intent domain.ForwardingIntent, mode domain.ExecutionMode) (execution.Outcome, error) {
	if err := intent.Validate(); err != nil {
		return execution.Outcome{}, err
	}
	if err := s.checkForwardingPolicy(id, intent.ForwardTo); err != nil {
		s.log.WarnContext(ctx, "external forwarding rejected",
			slog.String("user_id", id.UserID),
			slog.String("forward_to", intent.ForwardTo))
		return execution.Outcome{}, err
	}

	return s.exec.Execute(ctx, execution.Request{
		Identity: id,
		Action:   domain.ActionSetForwarding,
		Intent:   intent,
		Mode:     mode,
	})
}

// ClearForwarding removes the forwarding rule for forwardTo.
func (s *Service) ClearForwarding(ctx context.Context, id domain.UserIdentity, forwardTo string, mode domain.ExecutionMode) (execution.Outcome, error) {
	forwardTo = strings.TrimSpace(forwardTo)
	if forwardTo == "" {
		return execution.Outcome{}, domain.NewValidationError("forwardTo", "required")
	}

	return s.exec.Execute(ctx, execution.Request{
		Identity: id,
		Action:   domain.ActionClearForwarding,
		Intent:   domain.ForwardingClear{ForwardTo: forwardTo},
		Mode:     mode,
	})
}

// GetForwardingStatus reports the live forwarding rule, if any.
func (s *Service) GetForwardingStatus(ctx context.Context, id domain.UserIdentity) (domain.ForwardingStatus, error) {
	return s.mailbox.GetForwardingStatus(ctx, id.UserID)
}

// SearchUsers looks up organization members by name or address prefix.
func (s *Service) SearchUsers(ctx context.Context, id domain.UserIdentity, query string) ([]domain.DirectoryUser, error) {
	return s.mailbox.SearchUsers(ctx, id.UserID, query)
}

// AuditHistory returns the user's most recent audit records, newest first.
func (s *Service) AuditHistory(ctx context.Context, id domain.UserIdentity, limit int) []domain.AuditRecord {
	return s.audit.List(ctx, id.UserID, limit)
}

// Summary is the dashboard overview. A section that failed to load is nil
// and its error message is set instead.
type Summary struct {
	Oof             *domain.OofSettings      `json:"oof"`
	OofError        string                   `json:"oofError,omitempty"`
	Forwarding      *domain.ForwardingStatus `json:"forwarding"`
	ForwardingError string                   `json:"forwardingError,omitempty"`
}

// Summary loads OOF settings and forwarding status concurrently. A failed
// section does not fail the other; only when both fail is an error returned.
func (s *Service) Summary(ctx context.Context, id domain.UserIdentity) (Summary, error) {
	var (
		sum           Summary
		oofErr, fwErr error
		g             errgroup.Group
	)

	g.Go(func() error {
		oof, err := s.mailbox.GetOofSettings(ctx, id.UserID)
		if err != nil {
			oofErr = err
			return nil
		}
		sum.Oof = &oof
		return nil
	})
	g.Go(func() error {
		fw, err := s.mailbox.GetForwardingStatus(ctx, id.UserID)
		if err != nil {
			fwErr = err
			return nil
		}
		sum.Forwarding = &fw
		return nil
	})
	_ = g.Wait()

	if oofErr != nil && fwErr != nil {
		return Summary{}, fmt.Errorf("settings.Summary: %w", oofErr)
	}
	if oofErr != nil {
		sum.OofError = oofErr.Error()
		s.log.WarnContext(ctx, "summary: oof section failed", slog.String("user_id", id.UserID), slog.String("error", oofErr.Error()))
	}
	if fwErr != nil {
		sum.ForwardingError = fwErr.Error()
		s.log.WarnContext(ctx, "summary: forwarding section failed", slog.String("user_id", id.UserID), slog.String("error", fwErr.Error()))
	}
	return sum, nil
}

func (s *Service) checkForwardingPolicy(id domain.UserIdentity, forwardTo string) error {
	if s.allowExternal {
		return nil
	}
	userDomain := domain.EmailDomain(id.Email)
	if userDomain == "" || userDomain != domain.EmailDomain(forwardTo) {
		return fmt.Errorf("%w: external forwarding is disabled, must forward to @%s", domain.ErrForbidden, userDomain)
	}
	return nil
}
