package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/tally/internal/ports/primary"
)

// ReviewAdapter is a thin adapter that translates CLI operations to
// ReviewService calls.
type ReviewAdapter struct {
	service primary.ReviewService
	out     io.Writer
}

// NewReviewAdapter creates a new ReviewAdapter with the given service.
func NewReviewAdapter(service primary.ReviewService, out io.Writer) *ReviewAdapter {
	return &ReviewAdapter{
		service: service,
		out:     out,
	}
}

// Queue lists the entries waiting for the reviewer.
func (a *ReviewAdapter) Queue(ctx context.Context, filters primary.ReviewFilters) error {
	entries, err := a.service.ListForReview(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list review queue: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Nothing waiting for review")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-10s %-12s %-20s %7s  %s\n", "ID", "OWNER", "DATE", "TASK", "HOURS", "STATUS")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-12s %-10s %-12s %-20s %7.2f  %s\n", e.ID, e.OwnerID, e.Date, e.Task, e.Quantity, formatStatus(e.Status))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Approve approves a set of submitted entries.
func (a *ReviewAdapter) Approve(ctx context.Context, reviewerID string, entryIDs []string) error {
	result, err := a.service.ReviewBatch(ctx, primary.ReviewBatchRequest{
		ReviewerID: reviewerID,
		EntryIDs:   entryIDs,
		Approve:    true,
	})
	if err != nil {
		return err
	}
	a.printBatchResult(result, "approved")
	return nil
}

// Reject rejects a set of submitted entries with a reason.
func (a *ReviewAdapter) Reject(ctx context.Context, reviewerID string, entryIDs []string, reason string) error {
	result, err := a.service.ReviewBatch(ctx, primary.ReviewBatchRequest{
		ReviewerID: reviewerID,
		EntryIDs:   entryIDs,
		Approve:    false,
		Reason:     reason,
	})
	if err != nil {
		return err
	}
	a.printBatchResult(result, "rejected")
	return nil
}

func (a *ReviewAdapter) printBatchResult(result *primary.BatchResult, verb string) {
	fmt.Fprintf(a.out, "%d %s, %d failed\n", result.SuccessCount, verb, result.FailedCount)
	for _, o := range result.Failed() {
		fmt.Fprintf(a.out, "  ✗ %s: %s\n", o.EntryID, o.Reason)
	}
}
