package primary

import "context"

// ReviewService defines the primary port for the manager review flow.
type ReviewService interface {
	// ListForReview lists entries in a period across all owners the
	// reviewer has authority over. Defaults to submitted entries when no
	// status filter is given.
	ListForReview(ctx context.Context, filters ReviewFilters) ([]*Entry, error)

	// ReviewBatch approves or rejects a set of submitted entries. A reject
	// without a reason fails fast before touching any entry; per-entry
	// guard failures do not abort the rest of the batch.
	ReviewBatch(ctx context.Context, req ReviewBatchRequest) (*BatchResult, error)
}

// ReviewFilters contains filter options for the review queue.
type ReviewFilters struct {
	ReviewerID string
	PeriodID   string
	Statuses   []string // empty means submitted only
}

// ReviewBatchRequest contains parameters for a bulk review.
type ReviewBatchRequest struct {
	ReviewerID string
	EntryIDs   []string
	Approve    bool
	Reason     string // required when Approve is false
}
