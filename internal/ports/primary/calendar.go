package primary

import "context"

// CalendarService defines the primary port for closed days and periods:
// the reference calendar the workflow engine validates against.
type CalendarService interface {
	// AddClosedDay registers a holiday or company closure.
	AddClosedDay(ctx context.Context, date, label string) error

	// RemoveClosedDay deletes a closed day.
	RemoveClosedDay(ctx context.Context, date string) error

	// ListClosedDays lists the closed days of a calendar year.
	ListClosedDays(ctx context.Context, year int) ([]*ClosedDay, error)

	// CreatePeriod registers an accounting period.
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (*Period, error)

	// ListPeriods lists all periods, newest first.
	ListPeriods(ctx context.Context) ([]*Period, error)

	// ActivePeriod resolves the open period covering the given ISO date
	// (usually "today").
	ActivePeriod(ctx context.Context, date string) (*Period, error)

	// SetPeriodOpen opens or closes a period for submissions.
	SetPeriodOpen(ctx context.Context, periodID string, open bool) error
}

// ClosedDay represents a closed day at the port boundary.
type ClosedDay struct {
	Date  string
	Label string
}

// CreatePeriodRequest contains parameters for registering a period.
type CreatePeriodRequest struct {
	ID        string // e.g. PER-2024-06; derived from StartDate when empty
	StartDate string
	EndDate   string
}

// Period represents an accounting period at the port boundary.
type Period struct {
	ID        string
	StartDate string
	EndDate   string
	Open      bool
	CreatedAt string
}
