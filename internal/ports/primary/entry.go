// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI and HTTP surfaces consume,
// plus their request/response types.
package primary

import "context"

// EntryService defines the primary port for the owner-side entry workflow.
type EntryService interface {
	// SaveDraft creates or overwrites a draft for one logical slot
	// (owner, date, task, project). Fails when the daily cap would be
	// exceeded or the date is a closed day.
	SaveDraft(ctx context.Context, req SaveDraftRequest) (*Entry, error)

	// UpdateEntry edits quantity and description of a draft or rejected
	// entry owned by the caller.
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (*Entry, error)

	// DeleteDraft removes a draft owned by the caller.
	DeleteDraft(ctx context.Context, ownerID, entryID string) error

	// SubmitBatch submits the given drafts for review. Per-entry failures
	// do not abort the batch.
	SubmitBatch(ctx context.Context, req BatchRequest) (*BatchResult, error)

	// ResubmitBatch sends rejected entries back for review, clearing their
	// rejection reasons. Per-entry failures do not abort the batch.
	ResubmitBatch(ctx context.Context, req BatchRequest) (*BatchResult, error)

	// ListEntries lists the caller's entries in a period, filtered by status.
	// An empty status set means all statuses.
	ListEntries(ctx context.Context, filters EntryFilters) ([]*Entry, error)
}

// SaveDraftRequest contains parameters for saving a draft.
type SaveDraftRequest struct {
	OwnerID     string
	PeriodID    string
	Task        string
	ProjectID   string // optional
	Date        string // ISO date YYYY-MM-DD
	Quantity    float64
	Description string
}

// UpdateEntryRequest contains parameters for editing a mutable entry.
type UpdateEntryRequest struct {
	OwnerID     string
	EntryID     string
	Quantity    float64
	Description string
}

// BatchRequest targets a set of entry IDs with one bulk operation.
type BatchRequest struct {
	OwnerID  string
	PeriodID string
	EntryIDs []string
}

// EntryFilters contains filter options for the owner's entry listings.
type EntryFilters struct {
	OwnerID  string
	PeriodID string
	Statuses []string // canonical status values; empty means all
}

// Entry represents a time entry at the port boundary.
type Entry struct {
	ID              string
	OwnerID         string
	PeriodID        string
	Task            string
	ProjectID       string
	Date            string
	Quantity        float64
	Description     string
	Status          string
	RejectionReason string
	SubmittedAt     string
	ReviewedBy      string
	ReviewedAt      string
	CreatedAt       string
	UpdatedAt       string
}

// EntryOutcome is the per-entry result of a bulk operation.
type EntryOutcome struct {
	EntryID string
	OK      bool
	Code    string // failure code, empty on success
	Reason  string // human-readable failure reason, empty on success
}

// BatchResult aggregates a bulk operation. A batch never reports total
// success when items failed: callers must surface both counts.
type BatchResult struct {
	SuccessCount int
	FailedCount  int
	Outcomes     []EntryOutcome
}

// Failed returns the outcomes of entries that did not make the transition.
func (r *BatchResult) Failed() []EntryOutcome {
	var failed []EntryOutcome
	for _, o := range r.Outcomes {
		if !o.OK {
			failed = append(failed, o)
		}
	}
	return failed
}
