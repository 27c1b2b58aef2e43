// Package review contains the pure business logic for the manager review
// flow. Guards are pure functions that evaluate preconditions without
// side effects.
package review

import (
	"fmt"
	"strings"

	"github.com/example/tally/internal/core/entry"
)

// Additional guard failure codes specific to the review flow.
const (
	CodeMissingReason = "missing_reason"
	CodeNoAuthority   = "no_authority"
)

// ValidateRejectionReason evaluates that a reject operation carries a
// usable reason. Whitespace-only reasons are treated as missing.
func ValidateRejectionReason(reason string) entry.GuardResult {
	if strings.TrimSpace(reason) == "" {
		return entry.GuardResult{
			Allowed: false,
			Code:    CodeMissingReason,
			Reason:  "a rejection requires a non-empty reason",
		}
	}
	return entry.GuardResult{Allowed: true}
}

// ReviewContext provides context for per-entry review guards.
type ReviewContext struct {
	EntryID      string
	Status       entry.Status
	HasAuthority bool // does the reviewer have authority over the owner
}

// CanReview evaluates whether a single entry can be approved or rejected.
// Rules:
// - Reviewer must have authority over the entry's owner
// - Status must be submitted
func CanReview(ctx ReviewContext) entry.GuardResult {
	if !ctx.HasAuthority {
		return entry.GuardResult{
			Allowed: false,
			Code:    CodeNoAuthority,
			Reason:  fmt.Sprintf("no reviewer authority over the owner of entry %s", ctx.EntryID),
		}
	}
	if ctx.Status != entry.StatusSubmitted {
		return entry.GuardResult{
			Allowed: false,
			Code:    entry.CodeInvalidTransition,
			Reason:  fmt.Sprintf("cannot review entry %s: only submitted entries can be reviewed (current status: %s)", ctx.EntryID, ctx.Status),
		}
	}
	return entry.GuardResult{Allowed: true}
}
