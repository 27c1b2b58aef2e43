// Package entry contains the pure business logic for time-entry operations.
// This is part of the Functional Core - no I/O, only pure functions.
package entry

import "fmt"

// Status represents the workflow state of a time entry.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// AllStatuses lists every workflow state in lifecycle order.
var AllStatuses = []Status{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected}

// legacyStatuses maps status spellings found in older exports to the
// canonical enumeration. Legacy values are translated here, at the
// ingestion boundary, and never compared ad hoc in business logic.
var legacyStatuses = map[string]Status{
	"DRAFT":       StatusDraft,
	"opgeslagen":  StatusDraft,
	"SUBMITTED":   StatusSubmitted,
	"ingeleverd":  StatusSubmitted,
	"APPROVED":    StatusApproved,
	"goedgekeurd": StatusApproved,
	"REJECTED":    StatusRejected,
	"afgekeurd":   StatusRejected,
}

// ParseStatus converts a raw status string to the canonical Status.
// It accepts canonical values and known legacy spellings.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return Status(raw), nil
	}
	if s, ok := legacyStatuses[raw]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown entry status %q", raw)
}

// Mutable reports whether the owner may still edit or delete an entry
// in this state. Submitted and approved entries are read-only to the owner.
func (s Status) Mutable() bool {
	return s == StatusDraft || s == StatusRejected
}

// Terminal reports whether the state admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved
}

// InitialStatus returns the status for a newly created entry.
func InitialStatus() Status {
	return StatusDraft
}
