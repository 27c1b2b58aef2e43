package entry

import "fmt"

// Guard failure codes. Batch operations report these per entry so callers
// can tell why an individual entry was skipped.
const (
	CodeExceedsDailyCap   = "exceeds_daily_cap"
	CodeDayClosed         = "day_closed"
	CodeInvalidQuantity   = "invalid_quantity"
	CodeNotEditable       = "not_editable"
	CodeInvalidTransition = "invalid_transition"
	CodeNotFound          = "not_found"
	CodePeriodClosed      = "period_closed"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Code    string
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// DailyCapContext provides context for the daily-cap guard.
// ExistingTotal is the sum of quantities already registered for the same
// owner and date, excluding the entry being replaced when editing.
type DailyCapContext struct {
	ExistingTotal float64
	Candidate     float64
	Cap           float64
}

// ValidateDailyCap evaluates whether adding Candidate hours keeps the
// owner's day total within the configured cap.
func ValidateDailyCap(ctx DailyCapContext) GuardResult {
	total := ctx.ExistingTotal + ctx.Candidate
	if total > ctx.Cap {
		return GuardResult{
			Allowed: false,
			Code:    CodeExceedsDailyCap,
			Reason:  fmt.Sprintf("daily total %.2f hours exceeds cap of %.2f", total, ctx.Cap),
		}
	}
	return GuardResult{Allowed: true}
}

// ValidateNotClosedDay evaluates whether hours may be registered on date.
// closedDays is the externally supplied closed-day set for the relevant year,
// keyed by ISO date (YYYY-MM-DD).
func ValidateNotClosedDay(date string, closedDays map[string]bool) GuardResult {
	if closedDays[date] {
		return GuardResult{
			Allowed: false,
			Code:    CodeDayClosed,
			Reason:  fmt.Sprintf("no hours may be registered on closed day %s", date),
		}
	}
	return GuardResult{Allowed: true}
}

// ValidateQuantity evaluates that quantity is a non-negative number of hours.
func ValidateQuantity(quantity float64) GuardResult {
	if quantity < 0 {
		return GuardResult{
			Allowed: false,
			Code:    CodeInvalidQuantity,
			Reason:  fmt.Sprintf("quantity %.2f must not be negative", quantity),
		}
	}
	return GuardResult{Allowed: true}
}

// MutateContext provides context for owner-side mutation guards.
type MutateContext struct {
	EntryID string
	Status  Status
}

// ValidateMutable evaluates whether the owner may edit the entry.
// Rules:
// - Only draft and rejected entries are owner-editable
func ValidateMutable(ctx MutateContext) GuardResult {
	if !ctx.Status.Mutable() {
		return GuardResult{
			Allowed: false,
			Code:    CodeNotEditable,
			Reason:  fmt.Sprintf("entry %s is %s and read-only to its owner", ctx.EntryID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanDeleteDraft evaluates whether an entry can be deleted.
// Rules:
// - Only drafts may be deleted; anything past draft stays on record
func CanDeleteDraft(ctx MutateContext) GuardResult {
	if ctx.Status != StatusDraft {
		return GuardResult{
			Allowed: false,
			Code:    CodeInvalidTransition,
			Reason:  fmt.Sprintf("cannot delete entry %s: only drafts can be deleted (current status: %s)", ctx.EntryID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}

// CanSubmit evaluates whether an entry can be submitted for review.
// Rules:
// - Status must be draft
// - Date must not fall on a closed day (re-checked at submit time)
func CanSubmit(ctx MutateContext, date string, closedDays map[string]bool) GuardResult {
	if ctx.Status != StatusDraft {
		return GuardResult{
			Allowed: false,
			Code:    CodeInvalidTransition,
			Reason:  fmt.Sprintf("cannot submit entry %s: only drafts can be submitted (current status: %s)", ctx.EntryID, ctx.Status),
		}
	}
	if closed := ValidateNotClosedDay(date, closedDays); !closed.Allowed {
		return closed
	}
	return GuardResult{Allowed: true}
}

// CanResubmit evaluates whether a rejected entry can be sent back for review.
// Rules:
// - Status must be rejected
// - Date must not fall on a closed day (re-checked, same as submit)
func CanResubmit(ctx MutateContext, date string, closedDays map[string]bool) GuardResult {
	if ctx.Status != StatusRejected {
		return GuardResult{
			Allowed: false,
			Code:    CodeInvalidTransition,
			Reason:  fmt.Sprintf("cannot resubmit entry %s: only rejected entries can be resubmitted (current status: %s)", ctx.EntryID, ctx.Status),
		}
	}
	if closed := ValidateNotClosedDay(date, closedDays); !closed.Allowed {
		return closed
	}
	return GuardResult{Allowed: true}
}
