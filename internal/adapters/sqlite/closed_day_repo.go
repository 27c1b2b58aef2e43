package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/tally/internal/ports/secondary"
)

// ClosedDayRepository implements secondary.ClosedDayRepository with SQLite.
type ClosedDayRepository struct {
	db *sql.DB
}

// NewClosedDayRepository creates a new SQLite closed-day repository.
func NewClosedDayRepository(db *sql.DB) *ClosedDayRepository {
	return &ClosedDayRepository{db: db}
}

// Add registers a closed day.
func (r *ClosedDayRepository) Add(ctx context.Context, record *secondary.ClosedDayRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO closed_days (date, label) VALUES (?, ?)",
		record.Date, record.Label,
	)
	if err != nil {
		return fmt.Errorf("failed to add closed day: %w", err)
	}
	return nil
}

// Remove deletes a closed day.
func (r *ClosedDayRepository) Remove(ctx context.Context, date string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM closed_days WHERE date = ?", date)
	if err != nil {
		return fmt.Errorf("failed to remove closed day: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// ListYear returns all closed days within a calendar year, in date order.
func (r *ClosedDayRepository) ListYear(ctx context.Context, year int) ([]*secondary.ClosedDayRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT date, label FROM closed_days WHERE date >= ? AND date <= ? ORDER BY date ASC",
		fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed days: %w", err)
	}
	defer rows.Close()

	var days []*secondary.ClosedDayRecord
	for rows.Next() {
		record := &secondary.ClosedDayRecord{}
		if err := rows.Scan(&record.Date, &record.Label); err != nil {
			return nil, fmt.Errorf("failed to scan closed day: %w", err)
		}
		days = append(days, record)
	}

	return days, rows.Err()
}

// SetForYear returns the closed dates of a year as a lookup set.
func (r *ClosedDayRepository) SetForYear(ctx context.Context, year int) (map[string]bool, error) {
	days, err := r.ListYear(ctx, year)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d.Date] = true
	}
	return set, nil
}

// Ensure ClosedDayRepository implements the interface
var _ secondary.ClosedDayRepository = (*ClosedDayRepository)(nil)
