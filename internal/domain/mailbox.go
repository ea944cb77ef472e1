package domain

import (
	"net/mail"
	"strings"
	"time"
)

// OofStatus is the automatic-replies state of a mailbox.
type OofStatus string

const (
	OofStatusDisabled      OofStatus = "disabled"
	OofStatusAlwaysEnabled OofStatus = "alwaysEnabled"
	OofStatusScheduled     OofStatus = "scheduled"
)

func (s OofStatus) String() string { return string(s) }

func (s OofStatus) IsValid() bool {
	switch s {
	case OofStatusDisabled, OofStatusAlwaysEnabled, OofStatusScheduled:
		return true
	}
	return false
}

// DateTimeTimeZone is a wall-clock time paired with the zone it is expressed in.
type DateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// dateTimeLayouts are the ISO 8601 shapes accepted for schedule bounds.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// Time parses DateTime ignoring TimeZone.
func (d DateTimeTimeZone) Time() (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, d.DateTime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// OofIntent is a requested change to a user's automatic replies.
type OofIntent struct {
	Status                 OofStatus         `json:"status"`
	InternalReplyMessage   string            `json:"internalReplyMessage,omitempty"`
	ExternalReplyMessage   string            `json:"externalReplyMessage,omitempty"`
	ScheduledStartDateTime *DateTimeTimeZone `json:"scheduledStartDateTime,omitempty"`
	ScheduledEndDateTime   *DateTimeTimeZone `json:"scheduledEndDateTime,omitempty"`
}

// Validate enforces that a scheduled intent carries both schedule bounds.
// Bounds on other statuses are not inspected.
func (o OofIntent) Validate() error {
	var errs []FieldError

	if !o.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of disabled, alwaysEnabled, scheduled"})
	}

	if o.Status == OofStatusScheduled {
		errs = append(errs, o.validateSchedule()...)
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func (o OofIntent) validateSchedule() []FieldError {
	if o.ScheduledStartDateTime == nil || o.ScheduledEndDateTime == nil {
		return []FieldError{{
			Field:   "scheduledStartDateTime",
			Message: "start and end date/time are required for scheduled status",
		}}
	}

	var errs []FieldError
	errs = append(errs, validateBound("scheduledStartDateTime", o.ScheduledStartDateTime)...)
	errs = append(errs, validateBound("scheduledEndDateTime", o.ScheduledEndDateTime)...)
	if len(errs) > 0 {
		return errs
	}

	// Bounds in different zones are left for the provider to reconcile.
	if o.ScheduledStartDateTime.TimeZone == o.ScheduledEndDateTime.TimeZone {
		start, _ := o.ScheduledStartDateTime.Time()
		end, _ := o.ScheduledEndDateTime.Time()
		if end.Before(start) {
			errs = append(errs, FieldError{Field: "scheduledEndDateTime", Message: "must not be before start"})
		}
	}
	return errs
}

func validateBound(field string, d *DateTimeTimeZone) []FieldError {
	if d == nil {
		return nil
	}
	var errs []FieldError
	if _, ok := d.Time(); !ok {
		errs = append(errs, FieldError{Field: field + ".dateTime", Message: "must be an ISO 8601 date-time"})
	}
	if strings.TrimSpace(d.TimeZone) == "" {
		errs = append(errs, FieldError{Field: field + ".timeZone", Message: "required"})
	}
	return errs
}

// OofSettings is the automatic-replies configuration as reported by the provider.
type OofSettings struct {
	Status                 OofStatus         `json:"status"`
	ExternalAudience       string            `json:"externalAudience,omitempty"`
	InternalReplyMessage   string            `json:"internalReplyMessage,omitempty"`
	ExternalReplyMessage   string            `json:"externalReplyMessage,omitempty"`
	ScheduledStartDateTime *DateTimeTimeZone `json:"scheduledStartDateTime,omitempty"`
	ScheduledEndDateTime   *DateTimeTimeZone `json:"scheduledEndDateTime,omitempty"`
}

// ForwardingIntent is a requested inbox forwarding rule.
type ForwardingIntent struct {
	ForwardTo string `json:"forwardTo"`
	KeepCopy  bool   `json:"keepCopy"`
	Enabled   bool   `json:"enabled"`
}

// Validate checks that ForwardTo is a bare, well-formed email address.
func (f ForwardingIntent) Validate() error {
	if err := ValidateEmail(f.ForwardTo); err != nil {
		return NewValidationError("forwardTo", err.Error())
	}
	return nil
}

// ForwardingClear identifies the forwarding rule to remove.
type ForwardingClear struct {
	ForwardTo string `json:"forwardTo"`
}

// ForwardingStatus describes the live forwarding rule, if any.
type ForwardingStatus struct {
	HasRule   bool   `json:"hasRule"`
	ForwardTo string `json:"forwardTo,omitempty"`
	KeepCopy  *bool  `json:"keepCopy,omitempty"`
}

// DirectoryUser is an organization member returned by a directory search.
type DirectoryUser struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type emailError string

func (e emailError) Error() string { return string(e) }

// ValidateEmail accepts only a bare address (no display name).
func ValidateEmail(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return emailError("required")
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr || parsed.Name != "" {
		return emailError("must be a valid email address")
	}
	return nil
}

// EmailDomain returns the lower-cased domain part of addr, or "" if there is none.
func EmailDomain(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	return strings.ToLower(addr[at+1:])
}

// MessageRule is an inbox rule as the mail provider stores it, reduced to
// the parts the dashboard reads and writes.
type MessageRule struct {
	ID          string
	DisplayName string
	Enabled     bool
	ForwardTo   []string
	Delete      bool
}
