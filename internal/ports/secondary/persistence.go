// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Services translate it into a per-entry not_found outcome in batches.
var ErrNotFound = errors.New("record not found")

// EntryRecord represents a time entry as stored in persistence.
// Timestamps are RFC3339 strings; Date is an ISO date (YYYY-MM-DD).
type EntryRecord struct {
	ID              string
	OwnerID         string
	PeriodID        string
	Task            string
	ProjectID       string // optional, empty when not linked to a project
	Date            string
	Quantity        float64
	Description     string
	Status          string
	RejectionReason string
	SubmittedAt     string
	ReviewedBy      string
	ReviewedAt      string
	CreatedAt       string
	UpdatedAt       string
}

// EntryFilters contains filter options for querying entries.
type EntryFilters struct {
	OwnerID  string
	PeriodID string
	Statuses []string
	Date     string
}

// StatusChange describes the field updates a workflow transition carries.
// The repository applies it together with the status change in one
// statement so an interrupted transition can never be half-applied.
type StatusChange struct {
	NewStatus       string
	SetSubmittedAt  bool
	ReviewedBy      string
	SetReviewedAt   bool
	RejectionReason string
	ClearRejection  bool
}

// EntryRepository defines the secondary port for time-entry persistence.
type EntryRepository interface {
	// UpsertDraft creates or replaces a draft within one write transaction.
	// The cap guard receives the day total for the entry's owner and date,
	// excluding the draft being replaced, computed inside the same
	// transaction so concurrent saves cannot validate against a stale sum.
	// When a draft already occupies the same (owner, date, task, project)
	// slot it is overwritten and record.ID is set to the existing ID.
	UpsertDraft(ctx context.Context, record *EntryRecord, capGuard func(dayTotal float64) error) error

	// UpdateMutable rewrites quantity and description of an owner-editable
	// entry. The same capGuard contract as UpsertDraft applies. The update
	// only matches draft and rejected entries; ErrNotFound is returned when
	// the entry exists in a read-only state.
	UpdateMutable(ctx context.Context, record *EntryRecord, capGuard func(dayTotal float64) error) error

	// GetByID retrieves an entry by its ID. Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*EntryRecord, error)

	// List retrieves entries matching the given filters.
	List(ctx context.Context, filters EntryFilters) ([]*EntryRecord, error)

	// TransitionStatus applies a workflow transition guarded by the current
	// status: the update only takes effect when the stored status still
	// equals fromStatus. Returns false when another writer got there first
	// or the entry is gone.
	TransitionStatus(ctx context.Context, id, fromStatus string, change StatusChange) (bool, error)

	// DeleteDraft removes an entry if it is still a draft. Returns false
	// when the entry is absent or no longer a draft.
	DeleteDraft(ctx context.Context, id string) (bool, error)

	// SumQuantityForDay returns the summed quantity for an owner and date,
	// excluding the given entry ID when non-empty.
	SumQuantityForDay(ctx context.Context, ownerID, date, excludeID string) (float64, error)

	// GetNextID returns the next available entry ID.
	GetNextID(ctx context.Context) (string, error)
}

// ClosedDayRecord represents a company closure or holiday.
type ClosedDayRecord struct {
	Date  string
	Label string
}

// ClosedDayRepository defines the secondary port for the closed-day calendar.
type ClosedDayRepository interface {
	// Add registers a closed day. Adding the same date twice is an error.
	Add(ctx context.Context, record *ClosedDayRecord) error

	// Remove deletes a closed day. Returns ErrNotFound when absent.
	Remove(ctx context.Context, date string) error

	// ListYear returns all closed days within a calendar year.
	ListYear(ctx context.Context, year int) ([]*ClosedDayRecord, error)

	// SetForYear returns the closed dates of a year as a lookup set.
	SetForYear(ctx context.Context, year int) (map[string]bool, error)
}

// PeriodRecord represents an accounting period.
type PeriodRecord struct {
	ID        string
	StartDate string
	EndDate   string
	Open      bool
	CreatedAt string
}

// PeriodRepository defines the secondary port for period persistence.
type PeriodRepository interface {
	// Create persists a new period.
	Create(ctx context.Context, record *PeriodRecord) error

	// GetByID retrieves a period by its ID. Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*PeriodRecord, error)

	// List retrieves all periods, newest first.
	List(ctx context.Context) ([]*PeriodRecord, error)

	// FindCovering returns the period whose date range contains the given
	// ISO date. Returns ErrNotFound when no period covers it.
	FindCovering(ctx context.Context, date string) (*PeriodRecord, error)

	// SetOpen opens or closes a period for submissions.
	SetOpen(ctx context.Context, id string, open bool) error
}

// UserRecord represents a user as stored in persistence.
type UserRecord struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Role         string
	ManagerID    string // optional, the user's direct manager
	CreatedAt    string
}

// UserRepository defines the secondary port for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, record *UserRecord) error

	// GetByID retrieves a user by ID. Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*UserRecord, error)

	// GetByUsername retrieves a user by username. Returns ErrNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*UserRecord, error)

	// List retrieves all users.
	List(ctx context.Context) ([]*UserRecord, error)

	// GetNextID returns the next available user ID.
	GetNextID(ctx context.Context) (string, error)
}

// AuthorityChecker resolves whether a reviewer may approve or reject an
// owner's entries. This is the only view of the user directory the
// workflow engine itself consumes.
type AuthorityChecker interface {
	// HasAuthority reports whether reviewerID holds reviewer authority
	// over ownerID's entries.
	HasAuthority(ctx context.Context, reviewerID, ownerID string) (bool, error)
}
