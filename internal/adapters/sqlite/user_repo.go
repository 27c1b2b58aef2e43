package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tally/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository and
// secondary.AuthorityChecker with SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userSelectCols = "id, username, full_name, password_hash, role, manager_id, created_at"

func scanUser(scanner interface {
	Scan(dest ...any) error
}) (*secondary.UserRecord, error) {
	var (
		managerID sql.NullString
		createdAt time.Time
	)

	record := &secondary.UserRecord{}
	err := scanner.Scan(
		&record.ID, &record.Username, &record.FullName, &record.PasswordHash,
		&record.Role, &managerID, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.ManagerID = managerID.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, record *secondary.UserRecord) error {
	var managerID sql.NullString
	if record.ManagerID != "" {
		managerID = sql.NullString{String: record.ManagerID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, username, full_name, password_hash, role, manager_id) VALUES (?, ?, ?, ?, ?, ?)",
		record.ID, record.Username, record.FullName, record.PasswordHash, record.Role, managerID,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*secondary.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userSelectCols+" FROM users WHERE id = ?",
		id,
	)

	record, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return record, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*secondary.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userSelectCols+" FROM users WHERE username = ?",
		username,
	)

	record, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return record, nil
}

// List retrieves all users.
func (r *UserRepository) List(ctx context.Context) ([]*secondary.UserRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userSelectCols+" FROM users ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*secondary.UserRecord
	for rows.Next() {
		record, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, record)
	}

	return users, rows.Err()
}

// GetNextID returns the next available user ID.
func (r *UserRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM users",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next user ID: %w", err)
	}

	return fmt.Sprintf("USER-%03d", maxID+1), nil
}

// HasAuthority reports whether reviewerID may review ownerID's entries:
// admins review everyone, managers review their direct reports. Nobody
// reviews their own entries.
func (r *UserRepository) HasAuthority(ctx context.Context, reviewerID, ownerID string) (bool, error) {
	if reviewerID == ownerID {
		return false, nil
	}

	reviewer, err := r.GetByID(ctx, reviewerID)
	if err != nil {
		return false, err
	}
	if reviewer.Role == "admin" {
		return true, nil
	}
	if reviewer.Role != "manager" {
		return false, nil
	}

	owner, err := r.GetByID(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return owner.ManagerID == reviewerID, nil
}

// Ensure UserRepository implements both interfaces
var (
	_ secondary.UserRepository   = (*UserRepository)(nil)
	_ secondary.AuthorityChecker = (*UserRepository)(nil)
)
