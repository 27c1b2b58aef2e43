// Package app contains application services that orchestrate between
// primary ports (driving) and secondary ports (driven).
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/tally/internal/core/entry"
	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// EntryServiceImpl implements the EntryService interface.
type EntryServiceImpl struct {
	entryRepo     secondary.EntryRepository
	closedDayRepo secondary.ClosedDayRepository
	periodRepo    secondary.PeriodRepository
	dailyCap      float64
}

// NewEntryService creates a new EntryService with injected dependencies.
// dailyCap is the maximum number of hours an owner may register per day.
func NewEntryService(
	entryRepo secondary.EntryRepository,
	closedDayRepo secondary.ClosedDayRepository,
	periodRepo secondary.PeriodRepository,
	dailyCap float64,
) *EntryServiceImpl {
	return &EntryServiceImpl{
		entryRepo:     entryRepo,
		closedDayRepo: closedDayRepo,
		periodRepo:    periodRepo,
		dailyCap:      dailyCap,
	}
}

// SaveDraft creates or overwrites a draft for one logical slot.
func (s *EntryServiceImpl) SaveDraft(ctx context.Context, req primary.SaveDraftRequest) (*primary.Entry, error) {
	if req.Task == "" {
		return nil, fmt.Errorf("task is required")
	}
	if result := entry.ValidateQuantity(req.Quantity); !result.Allowed {
		return nil, result.Error()
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", req.Date)
	}

	// The target period must exist, be open, and cover the date.
	period, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("period %s not found", req.PeriodID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to validate period: %w", err)
	}
	if !period.Open {
		return nil, fmt.Errorf("period %s is closed for submissions", period.ID)
	}
	if req.Date < period.StartDate || req.Date > period.EndDate {
		return nil, fmt.Errorf("date %s falls outside period %s (%s to %s)", req.Date, period.ID, period.StartDate, period.EndDate)
	}

	closedDays, err := s.closedDayRepo.SetForYear(ctx, day.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to load closed days: %w", err)
	}
	if result := entry.ValidateNotClosedDay(req.Date, closedDays); !result.Allowed {
		return nil, result.Error()
	}

	record := &secondary.EntryRecord{
		OwnerID:     req.OwnerID,
		PeriodID:    req.PeriodID,
		Task:        req.Task,
		ProjectID:   req.ProjectID,
		Date:        req.Date,
		Quantity:    req.Quantity,
		Description: req.Description,
	}

	err = s.entryRepo.UpsertDraft(ctx, record, func(dayTotal float64) error {
		return entry.ValidateDailyCap(entry.DailyCapContext{
			ExistingTotal: dayTotal,
			Candidate:     req.Quantity,
			Cap:           s.dailyCap,
		}).Error()
	})
	if err != nil {
		return nil, err
	}

	created, err := s.entryRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved draft: %w", err)
	}
	return recordToEntry(created), nil
}

// UpdateEntry edits quantity and description of a mutable entry owned by
// the caller.
func (s *EntryServiceImpl) UpdateEntry(ctx context.Context, req primary.UpdateEntryRequest) (*primary.Entry, error) {
	if result := entry.ValidateQuantity(req.Quantity); !result.Allowed {
		return nil, result.Error()
	}

	record, err := s.entryRepo.GetByID(ctx, req.EntryID)
	if err != nil {
		return nil, err
	}
	// Another owner's entries are invisible, not forbidden.
	if record.OwnerID != req.OwnerID {
		return nil, secondary.ErrNotFound
	}

	status, err := entry.ParseStatus(record.Status)
	if err != nil {
		return nil, err
	}
	if result := entry.ValidateMutable(entry.MutateContext{EntryID: record.ID, Status: status}); !result.Allowed {
		return nil, result.Error()
	}

	record.Quantity = req.Quantity
	record.Description = req.Description

	err = s.entryRepo.UpdateMutable(ctx, record, func(dayTotal float64) error {
		return entry.ValidateDailyCap(entry.DailyCapContext{
			ExistingTotal: dayTotal,
			Candidate:     req.Quantity,
			Cap:           s.dailyCap,
		}).Error()
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.entryRepo.GetByID(ctx, req.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated entry: %w", err)
	}
	return recordToEntry(updated), nil
}

// DeleteDraft removes a draft owned by the caller.
func (s *EntryServiceImpl) DeleteDraft(ctx context.Context, ownerID, entryID string) error {
	record, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if record.OwnerID != ownerID {
		return secondary.ErrNotFound
	}

	status, err := entry.ParseStatus(record.Status)
	if err != nil {
		return err
	}
	if result := entry.CanDeleteDraft(entry.MutateContext{EntryID: record.ID, Status: status}); !result.Allowed {
		return result.Error()
	}

	deleted, err := s.entryRepo.DeleteDraft(ctx, entryID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("entry %s is no longer a draft", entryID)
	}
	return nil
}

// SubmitBatch submits the given drafts for review. Each entry is guarded
// and transitioned independently; one bad entry never blocks the rest.
func (s *EntryServiceImpl) SubmitBatch(ctx context.Context, req primary.BatchRequest) (*primary.BatchResult, error) {
	return s.transitionBatch(ctx, req, false)
}

// ResubmitBatch sends rejected entries back for review, clearing their
// rejection reasons.
func (s *EntryServiceImpl) ResubmitBatch(ctx context.Context, req primary.BatchRequest) (*primary.BatchResult, error) {
	return s.transitionBatch(ctx, req, true)
}

func (s *EntryServiceImpl) transitionBatch(ctx context.Context, req primary.BatchRequest, resubmit bool) (*primary.BatchResult, error) {
	result := &primary.BatchResult{}
	closedByYear := map[int]map[string]bool{}
	periods := map[string]*secondary.PeriodRecord{}

	for _, entryID := range req.EntryIDs {
		outcome := s.transitionOne(ctx, req.OwnerID, entryID, resubmit, closedByYear, periods)
		if outcome.OK {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

func (s *EntryServiceImpl) transitionOne(
	ctx context.Context,
	ownerID, entryID string,
	resubmit bool,
	closedByYear map[int]map[string]bool,
	periods map[string]*secondary.PeriodRecord,
) primary.EntryOutcome {
	record, err := s.entryRepo.GetByID(ctx, entryID)
	if errors.Is(err, secondary.ErrNotFound) || (err == nil && record.OwnerID != ownerID) {
		return primary.EntryOutcome{
			EntryID: entryID,
			Code:    entry.CodeNotFound,
			Reason:  fmt.Sprintf("entry %s not found", entryID),
		}
	}
	if err != nil {
		return primary.EntryOutcome{EntryID: entryID, Code: entry.CodeNotFound, Reason: err.Error()}
	}

	period, ok := periods[record.PeriodID]
	if !ok {
		period, err = s.periodRepo.GetByID(ctx, record.PeriodID)
		if err != nil {
			return primary.EntryOutcome{
				EntryID: entryID,
				Code:    entry.CodePeriodClosed,
				Reason:  fmt.Sprintf("period %s could not be resolved", record.PeriodID),
			}
		}
		periods[record.PeriodID] = period
	}
	if !period.Open {
		return primary.EntryOutcome{
			EntryID: entryID,
			Code:    entry.CodePeriodClosed,
			Reason:  fmt.Sprintf("period %s is closed for submissions", period.ID),
		}
	}

	day, err := time.Parse("2006-01-02", record.Date)
	if err != nil {
		return primary.EntryOutcome{
			EntryID: entryID,
			Code:    entry.CodeInvalidTransition,
			Reason:  fmt.Sprintf("entry %s has an unreadable date %q", entryID, record.Date),
		}
	}
	closedDays, ok := closedByYear[day.Year()]
	if !ok {
		closedDays, err = s.closedDayRepo.SetForYear(ctx, day.Year())
		if err != nil {
			return primary.EntryOutcome{
				EntryID: entryID,
				Code:    entry.CodeDayClosed,
				Reason:  fmt.Sprintf("closed days for %d could not be resolved", day.Year()),
			}
		}
		closedByYear[day.Year()] = closedDays
	}

	status, err := entry.ParseStatus(record.Status)
	if err != nil {
		return primary.EntryOutcome{EntryID: entryID, Code: entry.CodeInvalidTransition, Reason: err.Error()}
	}

	mutate := entry.MutateContext{EntryID: record.ID, Status: status}
	var guard entry.GuardResult
	if resubmit {
		guard = entry.CanResubmit(mutate, record.Date, closedDays)
	} else {
		guard = entry.CanSubmit(mutate, record.Date, closedDays)
	}
	if !guard.Allowed {
		return primary.EntryOutcome{EntryID: entryID, Code: guard.Code, Reason: guard.Reason}
	}

	change := toStatusChange(entry.ApplySubmit(time.Now()))
	applied, err := s.entryRepo.TransitionStatus(ctx, entryID, string(status), change)
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

// ListEntries lists the caller's entries in a period, filtered by status.
func (s *EntryServiceImpl) ListEntries(ctx context.Context, filters primary.EntryFilters) ([]*primary.Entry, error) {
	records, err := s.entryRepo.List(ctx, secondary.EntryFilters{
		OwnerID:  filters.OwnerID,
		PeriodID: filters.PeriodID,
		Statuses: filters.Statuses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entries := make([]*primary.Entry, len(records))
	for i, r := range records {
		entries[i] = recordToEntry(r)
	}
	return entries, nil
}

// toStatusChange flattens a workflow transition into the update the
// repository applies. Timestamps are stamped by the database.
func toStatusChange(t entry.TransitionResult) secondary.StatusChange {
	return secondary.StatusChange{
		NewStatus:       string(t.NewStatus),
		SetSubmittedAt:  t.SubmittedAt != nil,
		ReviewedBy:      t.ReviewedBy,
		SetReviewedAt:   t.ReviewedAt != nil,
		RejectionReason: t.RejectionReason,
		ClearRejection:  t.ClearRejection,
	}
}

// recordToEntry converts a persistence record to the port boundary type.
func recordToEntry(r *secondary.EntryRecord) *primary.Entry {
	return &primary.Entry{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		PeriodID:        r.PeriodID,
		Task:            r.Task,
		ProjectID:       r.ProjectID,
		Date:            r.Date,
		Quantity:        r.Quantity,
		Description:     r.Description,
		Status:          r.Status,
		RejectionReason: r.RejectionReason,
		SubmittedAt:     r.SubmittedAt,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Ensure EntryServiceImpl implements the interface
var _ primary.EntryService = (*EntryServiceImpl)(nil)
