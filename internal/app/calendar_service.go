package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// CalendarServiceImpl implements the CalendarService interface.
type CalendarServiceImpl struct {
	closedDayRepo secondary.ClosedDayRepository
	periodRepo    secondary.PeriodRepository
}

// NewCalendarService creates a new CalendarService with injected dependencies.
func NewCalendarService(
	closedDayRepo secondary.ClosedDayRepository,
	periodRepo secondary.PeriodRepository,
) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		closedDayRepo: closedDayRepo,
		periodRepo:    periodRepo,
	}
}

// AddClosedDay registers a holiday or company closure.
func (s *CalendarServiceImpl) AddClosedDay(ctx context.Context, date, label string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", date)
	}
	if label == "" {
		return fmt.Errorf("label is required")
	}
	return s.closedDayRepo.Add(ctx, &secondary.ClosedDayRecord{Date: date, Label: label})
}

// RemoveClosedDay deletes a closed day.
func (s *CalendarServiceImpl) RemoveClosedDay(ctx context.Context, date string) error {
	err := s.closedDayRepo.Remove(ctx, date)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("closed day %s not found", date)
	}
	return err
}

// ListClosedDays lists the closed days of a calendar year.
func (s *CalendarServiceImpl) ListClosedDays(ctx context.Context, year int) ([]*primary.ClosedDay, error) {
	records, err := s.closedDayRepo.ListYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed days: %w", err)
	}

	days := make([]*primary.ClosedDay, len(records))
	for i, r := range records {
		days[i] = &primary.ClosedDay{Date: r.Date, Label: r.Label}
	}
	return days, nil
}

// CreatePeriod registers an accounting period. Periods open on creation.
func (s *CalendarServiceImpl) CreatePeriod(ctx context.Context, req primary.CreatePeriodRequest) (*primary.Period, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: must be YYYY-MM-DD", req.StartDate)
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: must be YYYY-MM-DD", req.EndDate)
	}
	if req.EndDate < req.StartDate {
		return nil, fmt.Errorf("period end %s precedes start %s", req.EndDate, req.StartDate)
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("PER-%04d-%02d", start.Year(), start.Month())
	}

	record := &secondary.PeriodRecord{
		ID:        id,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Open:      true,
	}
	if err := s.periodRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	created, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created period: %w", err)
	}
	return recordToPeriod(created), nil
}

// ListPeriods lists all periods, newest first.
func (s *CalendarServiceImpl) ListPeriods(ctx context.Context) ([]*primary.Period, error) {
	records, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	periods := make([]*primary.Period, len(records))
	for i, r := range records {
		periods[i] = recordToPeriod(r)
	}
	return periods, nil
}

// ActivePeriod resolves the open period covering the given ISO date.
func (s *CalendarServiceImpl) ActivePeriod(ctx context.Context, date string) (*primary.Period, error) {
	record, err := s.periodRepo.FindCovering(ctx, date)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, fmt.Errorf("no period covers %s", date)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period: %w", err)
	}
	if !record.Open {
		return nil, fmt.Errorf("period %s covering %s is closed", record.ID, date)
	}
	return recordToPeriod(record), nil
}

// SetPeriodOpen opens or closes a period for submissions.
func (s *CalendarServiceImpl) SetPeriodOpen(ctx context.Context, periodID string, open bool) error {
	err := s.periodRepo.SetOpen(ctx, periodID, open)
	if errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("period %s not found", periodID)
	}
	return err
}

func recordToPeriod(r *secondary.PeriodRecord) *primary.Period {
	return &primary.Period{
		ID:        r.ID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Open:      r.Open,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure CalendarServiceImpl implements the interface
var _ primary.CalendarService = (*CalendarServiceImpl)(nil)
