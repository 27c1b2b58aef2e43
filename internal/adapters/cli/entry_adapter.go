// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/tally/internal/ports/primary"
)

// EntryAdapter is a thin adapter that translates CLI operations to
// EntryService calls.
type EntryAdapter struct {
	service primary.EntryService
	out     io.Writer
}

// NewEntryAdapter creates a new EntryAdapter with the given service.
func NewEntryAdapter(service primary.EntryService, out io.Writer) *EntryAdapter {
	return &EntryAdapter{
		service: service,
		out:     out,
	}
}

// Save creates or overwrites a draft.
func (a *EntryAdapter) Save(ctx context.Context, req primary.SaveDraftRequest) error {
	entry, err := a.service.SaveDraft(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Saved draft %s: %s on %s (%.2f hours)\n", entry.ID, entry.Task, entry.Date, entry.Quantity)
	return nil
}

// Update edits quantity and description of a mutable entry.
func (a *EntryAdapter) Update(ctx context.Context, req primary.UpdateEntryRequest) error {
	entry, err := a.service.UpdateEntry(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated %s: %.2f hours\n", entry.ID, entry.Quantity)
	return nil
}

// Delete removes a draft.
func (a *EntryAdapter) Delete(ctx context.Context, ownerID, entryID string) error {
	if err := a.service.DeleteDraft(ctx, ownerID, entryID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted draft %s\n", entryID)
	return nil
}

// List lists the owner's entries in a period.
func (a *EntryAdapter) List(ctx context.Context, filters primary.EntryFilters) error {
	entries, err := a.service.ListEntries(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-12s %-20s %7s  %s\n", "ID", "DATE", "TASK", "HOURS", "STATUS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-12s %-12s %-20s %7.2f  %s\n", e.ID, e.Date, e.Task, e.Quantity, formatStatus(e.Status))
		if e.RejectionReason != "" {
			fmt.Fprintf(a.out, "             rejected: %s\n", e.RejectionReason)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Submit submits drafts for review, then prints the per-entry outcome.
func (a *EntryAdapter) Submit(ctx context.Context, req primary.BatchRequest) error {
	result, err := a.service.SubmitBatch(ctx, req)
	if err != nil {
		return err
	}
	a.printBatchResult(result, "submitted")
	return nil
}

// Resubmit sends rejected entries back for review.
func (a *EntryAdapter) Resubmit(ctx context.Context, req primary.BatchRequest) error {
	result, err := a.service.ResubmitBatch(ctx, req)
	if err != nil {
		return err
	}
	a.printBatchResult(result, "resubmitted")
	return nil
}

func (a *EntryAdapter) printBatchResult(result *primary.BatchResult, verb string) {
	fmt.Fprintf(a.out, "%d %s, %d failed\n", result.SuccessCount, verb, result.FailedCount)
	for _, o := range result.Failed() {
		fmt.Fprintf(a.out, "  ✗ %s: %s\n", o.EntryID, o.Reason)
	}
}

// formatStatus renders a workflow status with its conventional color.
func formatStatus(status string) string {
	switch status {
	case "draft":
		return color.New(color.FgHiBlack).Sprint("[draft]")
	case "submitted":
		return color.New(color.FgHiYellow).Sprint("[submitted]")
	case "approved":
		return color.New(color.FgHiGreen).Sprint("[approved]")
	case "rejected":
		return color.New(color.FgRed).Sprint("[rejected]")
	default:
		return fmt.Sprintf("[%s]", status)
	}
}
