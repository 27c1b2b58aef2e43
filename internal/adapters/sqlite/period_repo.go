package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tally/internal/ports/secondary"
)

// PeriodRepository implements secondary.PeriodRepository with SQLite.
type PeriodRepository struct {
	db *sql.DB
}

// NewPeriodRepository creates a new SQLite period repository.
func NewPeriodRepository(db *sql.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

func scanPeriod(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PeriodRecord, error) {
	var (
		open      int
		createdAt time.Time
	)

	record := &secondary.PeriodRecord{}
	err := scanner.Scan(&record.ID, &record.StartDate, &record.EndDate, &open, &createdAt)
	if err != nil {
		return nil, err
	}

	record.Open = open != 0
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new period.
func (r *PeriodRepository) Create(ctx context.Context, record *secondary.PeriodRecord) error {
	open := 0
	if record.Open {
		open = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO periods (id, start_date, end_date, open) VALUES (?, ?, ?, ?)",
		record.ID, record.StartDate, record.EndDate, open,
	)
	if err != nil {
		return fmt.Errorf("failed to create period: %w", err)
	}
	return nil
}

// GetByID retrieves a period by its ID.
func (r *PeriodRepository) GetByID(ctx context.Context, id string) (*secondary.PeriodRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, start_date, end_date, open, created_at FROM periods WHERE id = ?",
		id,
	)

	record, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	return record, nil
}

// List retrieves all periods, newest first.
func (r *PeriodRepository) List(ctx context.Context) ([]*secondary.PeriodRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, start_date, end_date, open, created_at FROM periods ORDER BY start_date DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	defer rows.Close()

	var periods []*secondary.PeriodRecord
	for rows.Next() {
		record, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		periods = append(periods, record)
	}

	return periods, rows.Err()
}

// FindCovering returns the period whose date range contains the given date.
func (r *PeriodRepository) FindCovering(ctx context.Context, date string) (*secondary.PeriodRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, start_date, end_date, open, created_at FROM periods WHERE start_date <= ? AND end_date >= ? ORDER BY start_date DESC LIMIT 1",
		date, date,
	)

	record, err := scanPeriod(row)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find period: %w", err)
	}

	return record, nil
}

// SetOpen opens or closes a period for submissions.
func (r *PeriodRepository) SetOpen(ctx context.Context, id string, open bool) error {
	value := 0
	if open {
		value = 1
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE periods SET open = ? WHERE id = ?",
		value, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update period: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}
	return nil
}

// Ensure PeriodRepository implements the interface
var _ secondary.PeriodRepository = (*PeriodRepository)(nil)
