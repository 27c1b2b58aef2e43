package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/tally/internal/ports/primary"
)

// CalendarAdapter is a thin adapter that translates CLI operations to
// CalendarService calls.
type CalendarAdapter struct {
	service primary.CalendarService
	out     io.Writer
}

// NewCalendarAdapter creates a new CalendarAdapter with the given service.
func NewCalendarAdapter(service primary.CalendarService, out io.Writer) *CalendarAdapter {
	return &CalendarAdapter{
		service: service,
		out:     out,
	}
}

// AddClosedDay registers a closed day.
func (a *CalendarAdapter) AddClosedDay(ctx context.Context, date, label string) error {
	if err := a.service.AddClosedDay(ctx, date, label); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Closed %s (%s)\n", date, label)
	return nil
}

// RemoveClosedDay deletes a closed day.
func (a *CalendarAdapter) RemoveClosedDay(ctx context.Context, date string) error {
	if err := a.service.RemoveClosedDay(ctx, date); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Reopened %s\n", date)
	return nil
}

// ListClosedDays lists the closed days of a year.
func (a *CalendarAdapter) ListClosedDays(ctx context.Context, year int) error {
	days, err := a.service.ListClosedDays(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to list closed days: %w", err)
	}

	if len(days) == 0 {
		fmt.Fprintf(a.out, "No closed days in %d\n", year)
		return nil
	}

	fmt.Fprintf(a.out, "\nClosed days in %d:\n", year)
	for _, d := range days {
		fmt.Fprintf(a.out, "  %s  %s\n", d.Date, d.Label)
	}
	fmt.Fprintln(a.out)

	return nil
}

// CreatePeriod registers an accounting period.
func (a *CalendarAdapter) CreatePeriod(ctx context.Context, req primary.CreatePeriodRequest) error {
	period, err := a.service.CreatePeriod(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created period %s (%s to %s)\n", period.ID, period.StartDate, period.EndDate)
	return nil
}

// ListPeriods lists all periods, newest first.
func (a *CalendarAdapter) ListPeriods(ctx context.Context) error {
	periods, err := a.service.ListPeriods(ctx)
	if err != nil {
		return fmt.Errorf("failed to list periods: %w", err)
	}

	if len(periods) == 0 {
		fmt.Fprintln(a.out, "No periods found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-14s %-12s %-12s %s\n", "ID", "START", "END", "STATE")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────")
	for _, p := range periods {
		state := "open"
		if !p.Open {
			state = "closed"
		}
		fmt.Fprintf(a.out, "%-14s %-12s %-12s %s\n", p.ID, p.StartDate, p.EndDate, state)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ShowActivePeriod prints the open period covering the given date.
func (a *CalendarAdapter) ShowActivePeriod(ctx context.Context, date string) error {
	period, err := a.service.ActivePeriod(ctx, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Active period: %s (%s to %s)\n", period.ID, period.StartDate, period.EndDate)
	return nil
}

// SetPeriodOpen opens or closes a period for submissions.
func (a *CalendarAdapter) SetPeriodOpen(ctx context.Context, periodID string, open bool) error {
	if err := a.service.SetPeriodOpen(ctx, periodID, open); err != nil {
		return err
	}

	if open {
		fmt.Fprintf(a.out, "✓ Opened period %s\n", periodID)
	} else {
		fmt.Fprintf(a.out, "✓ Closed period %s\n", periodID)
	}
	return nil
}
