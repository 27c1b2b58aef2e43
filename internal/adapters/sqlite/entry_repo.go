// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/tally/internal/ports/secondary"
)

// EntryRepository implements secondary.EntryRepository with SQLite.
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new SQLite entry repository.
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

const entrySelectCols = "id, owner_id, period_id, task, project_id, date, quantity, description, status, rejection_reason, submitted_at, reviewed_by, reviewed_at, created_at, updated_at"

// scanEntry scans an entry row into an EntryRecord.
func scanEntry(scanner interface {
	Scan(dest ...any) error
}) (*secondary.EntryRecord, error) {
	var (
		projectID       sql.NullString
		description     sql.NullString
		rejectionReason sql.NullString
		reviewedBy      sql.NullString
		submittedAt     sql.NullTime
		reviewedAt      sql.NullTime
		createdAt       time.Time
		updatedAt       time.Time
	)

	record := &secondary.EntryRecord{}
	err := scanner.Scan(
		&record.ID, &record.OwnerID, &record.PeriodID, &record.Task, &projectID,
		&record.Date, &record.Quantity, &description, &record.Status,
		&rejectionReason, &submittedAt, &reviewedBy, &reviewedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.ProjectID = projectID.String
	record.Description = description.String
	record.RejectionReason = rejectionReason.String
	record.ReviewedBy = reviewedBy.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	if submittedAt.Valid {
		record.SubmittedAt = submittedAt.Time.Format(time.RFC3339)
	}
	if reviewedAt.Valid {
		record.ReviewedAt = reviewedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// UpsertDraft creates or replaces a draft within one write transaction.
// The day total handed to capGuard is computed inside the transaction, so
// two concurrent saves for the same owner and date cannot both validate
// against a stale sum.
func (r *EntryRepository) UpsertDraft(ctx context.Context, record *secondary.EntryRecord, capGuard func(dayTotal float64) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// A draft on the same logical slot is overwritten, not duplicated.
	var existingID string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM entries WHERE owner_id = ? AND date = ? AND task = ? AND COALESCE(project_id, '') = ? AND status = 'draft'",
		record.OwnerID, record.Date, record.Task, record.ProjectID,
	).Scan(&existingID)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to look up draft slot: %w", err)
	}

	var dayTotal float64
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(quantity), 0) FROM entries WHERE owner_id = ? AND date = ? AND id != ?",
		record.OwnerID, record.Date, existingID,
	).Scan(&dayTotal)
	if err != nil {
		return fmt.Errorf("failed to sum day quantity: %w", err)
	}

	if err := capGuard(dayTotal); err != nil {
		return err
	}

	var description sql.NullString
	if record.Description != "" {
		description = sql.NullString{String: record.Description, Valid: true}
	}

	if existingID != "" {
		_, err = tx.ExecContext(ctx,
			"UPDATE entries SET quantity = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			record.Quantity, description, existingID,
		)
		if err != nil {
			return fmt.Errorf("failed to replace draft: %w", err)
		}
		record.ID = existingID
	} else {
		nextID, err := nextEntryID(ctx, tx)
		if err != nil {
			return err
		}

		var projectID sql.NullString
		if record.ProjectID != "" {
			projectID = sql.NullString{String: record.ProjectID, Valid: true}
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO entries (id, owner_id, period_id, task, project_id, date, quantity, description, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'draft')",
			nextID, record.OwnerID, record.PeriodID, record.Task, projectID, record.Date, record.Quantity, description,
		)
		if err != nil {
			return fmt.Errorf("failed to create draft: %w", err)
		}
		record.ID = nextID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draft: %w", err)
	}
	record.Status = "draft"

	return nil
}

// UpdateMutable rewrites quantity and description of a draft or rejected
// entry under the same transactional cap check as UpsertDraft.
func (r *EntryRepository) UpdateMutable(ctx context.Context, record *secondary.EntryRecord, capGuard func(dayTotal float64) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dayTotal float64
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(quantity), 0) FROM entries WHERE owner_id = ? AND date = ? AND id != ?",
		record.OwnerID, record.Date, record.ID,
	).Scan(&dayTotal)
	if err != nil {
		return fmt.Errorf("failed to sum day quantity: %w", err)
	}

	if err := capGuard(dayTotal); err != nil {
		return err
	}

	var description sql.NullString
	if record.Description != "" {
		description = sql.NullString{String: record.Description, Valid: true}
	}

	result, err := tx.ExecContext(ctx,
		"UPDATE entries SET quantity = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status IN ('draft', 'rejected')",
		record.Quantity, description, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return secondary.ErrNotFound
	}

	return tx.Commit()
}

// GetByID retrieves an entry by its ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*secondary.EntryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+entrySelectCols+" FROM entries WHERE id = ?",
		id,
	)

	record, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return record, nil
}

// List retrieves entries matching the given filters.
func (r *EntryRepository) List(ctx context.Context, filters secondary.EntryFilters) ([]*secondary.EntryRecord, error) {
	query := "SELECT " + entrySelectCols + " FROM entries WHERE 1=1"
	args := []any{}

	if filters.OwnerID != "" {
		query += " AND owner_id = ?"
		args = append(args, filters.OwnerID)
	}

	if filters.PeriodID != "" {
		query += " AND period_id = ?"
		args = append(args, filters.PeriodID)
	}

	if filters.Date != "" {
		query += " AND date = ?"
		args = append(args, filters.Date)
	}

	if len(filters.Statuses) > 0 {
		query += " AND status IN (?" + strings.Repeat(", ?", len(filters.Statuses)-1) + ")"
		for _, s := range filters.Statuses {
			args = append(args, s)
		}
	}

	query += " ORDER BY date DESC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.EntryRecord
	for rows.Next() {
		record, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, record)
	}

	return entries, rows.Err()
}

// TransitionStatus applies a workflow transition guarded by the current
// status. Status, timestamps and review fields change in one statement,
// and only when the stored status still equals fromStatus; a concurrent
// writer that got there first leaves this update matching zero rows.
func (r *EntryRepository) TransitionStatus(ctx context.Context, id, fromStatus string, change secondary.StatusChange) (bool, error) {
	query := "UPDATE entries SET status = ?, updated_at = CURRENT_TIMESTAMP"
	args := []any{change.NewStatus}

	if change.SetSubmittedAt {
		query += ", submitted_at = CURRENT_TIMESTAMP"
	}
	if change.SetReviewedAt {
		query += ", reviewed_by = ?, reviewed_at = CURRENT_TIMESTAMP"
		args = append(args, change.ReviewedBy)
	}
	if change.RejectionReason != "" {
		query += ", rejection_reason = ?"
		args = append(args, change.RejectionReason)
	} else if change.ClearRejection {
		query += ", rejection_reason = NULL"
	}

	query += " WHERE id = ? AND status = ?"
	args = append(args, id, fromStatus)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition entry status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// DeleteDraft removes an entry if it is still a draft.
func (r *EntryRepository) DeleteDraft(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM entries WHERE id = ? AND status = 'draft'",
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete draft: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// SumQuantityForDay returns the summed quantity for an owner and date,
// excluding the given entry ID when non-empty.
func (r *EntryRepository) SumQuantityForDay(ctx context.Context, ownerID, date, excludeID string) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(quantity), 0) FROM entries WHERE owner_id = ? AND date = ? AND id != ?",
		ownerID, date, excludeID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum day quantity: %w", err)
	}
	return total, nil
}

// GetNextID returns the next available entry ID.
func (r *EntryRepository) GetNextID(ctx context.Context) (string, error) {
	return nextEntryID(ctx, r.db)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func nextEntryID(ctx context.Context, q queryRower) (string, error) {
	var maxID int
	err := q.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 7) AS INTEGER)), 0) FROM entries",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next entry ID: %w", err)
	}

	return fmt.Sprintf("ENTRY-%04d", maxID+1), nil
}

// Ensure EntryRepository implements the interface
var _ secondary.EntryRepository = (*EntryRepository)(nil)
