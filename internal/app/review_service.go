package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/tally/internal/core/entry"
	"github.com/example/tally/internal/core/review"
	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// ReviewServiceImpl implements the ReviewService interface.
type ReviewServiceImpl struct {
	entryRepo secondary.EntryRepository
	authority secondary.AuthorityChecker
}

// NewReviewService creates a new ReviewService with injected dependencies.
func NewReviewService(
	entryRepo secondary.EntryRepository,
	authority secondary.AuthorityChecker,
) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		entryRepo: entryRepo,
		authority: authority,
	}
}

// ListForReview lists entries the reviewer has authority over.
// Defaults to submitted entries when no status filter is given.
func (s *ReviewServiceImpl) ListForReview(ctx context.Context, filters primary.ReviewFilters) ([]*primary.Entry, error) {
	statuses := filters.Statuses
	if len(statuses) == 0 {
		statuses = []string{string(entry.StatusSubmitted)}
	}

	records, err := s.entryRepo.List(ctx, secondary.EntryFilters{
		PeriodID: filters.PeriodID,
		Statuses: statuses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review queue: %w", err)
	}

	// Keep only owners the reviewer is allowed to see.
	authorized := map[string]bool{}
	var entries []*primary.Entry
	for _, r := range records {
		allowed, seen := authorized[r.OwnerID]
		if !seen {
			allowed, err = s.authority.HasAuthority(ctx, filters.ReviewerID, r.OwnerID)
			if err != nil {
				return nil, fmt.Errorf("failed to check reviewer authority: %w", err)
			}
			authorized[r.OwnerID] = allowed
		}
		if allowed {
			entries = append(entries, recordToEntry(r))
		}
	}
	return entries, nil
}

// ReviewBatch approves or rejects a set of submitted entries. A reject
// without a reason fails fast before touching any entry; per-entry guard
// failures do not abort the rest of the batch.
func (s *ReviewServiceImpl) ReviewBatch(ctx context.Context, req primary.ReviewBatchRequest) (*primary.BatchResult, error) {
	if !req.Approve {
		if result := review.ValidateRejectionReason(req.Reason); !result.Allowed {
			return nil, result.Error()
		}
	}

	result := &primary.BatchResult{}
	authorized := map[string]bool{}

	for _, entryID := range req.EntryIDs {
		outcome := s.reviewOne(ctx, req, entryID, authorized)
		if outcome.OK {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

func (s *ReviewServiceImpl) reviewOne(ctx context.Context, req primary.ReviewBatchRequest, entryID string, authorized map[string]bool) primary.EntryOutcome {
	record, err := s.entryRepo.GetByID(ctx, entryID)
	if errors.Is(err, secondary.ErrNotFound) {
		return primary.EntryOutcome{
			EntryID: entryID,
			Code:    entry.CodeNotFound,
			Reason:  fmt.Sprintf("entry %s not found", entryID),
		}
	}
	if err != nil {
		return primary.EntryOutcome{EntryID: entryID, Code: entry.CodeNotFound, Reason: err.Error()}
	}

	allowed, seen := authorized[record.OwnerID]
	if !seen {
		allowed, err = s.authority.HasAuthority(ctx, req.ReviewerID, record.OwnerID)
		if err != nil {
			return primary.EntryOutcome{EntryID: entryID, Code: review.CodeNoAuthority, Reason: err.Error()}
		}
		authorized[record.OwnerID] = allowed
	}

	status, err := entry.ParseStatus(record.Status)
	if err != nil {
		return primary.EntryOutcome{EntryID: entryID, Code: entry.CodeInvalidTransition, Reason: err.Error()}
	}

	guard := review.CanReview(review.ReviewContext{
		EntryID:      record.ID,
		Status:       status,
		HasAuthority: allowed,
	})
	if !guard.Allowed {
		return primary.EntryOutcome{EntryID: entryID, Code: guard.Code, Reason: guard.Reason}
	}

	change := toStatusChange(entry.ApplyReview(req.Approve, req.ReviewerID, req.Reason, time.Now()))
	applied, err := s.entryRepo.TransitionStatus(ctx, entryID, string(entry.StatusSubmitted), change)
	if err != nil {
		return primary.EntryOutcome{EntryID: entryID, Code: entry.CodeInvalidTransition, Reason: err.Error()}
	}
	if !applied {
		return primary.EntryOutcome{
			EntryID: entryID,
			Code:    entry.CodeInvalidTransition,
			Reason:  fmt.Sprintf("entry %s changed status concurrently", entryID),
		}
	}

	return primary.EntryOutcome{EntryID: entryID, OK: true}
}

// Ensure ReviewServiceImpl implements the interface
var _ primary.ReviewService = (*ReviewServiceImpl)(nil)
