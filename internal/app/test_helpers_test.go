package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/tally/internal/ports/secondary"
)

// ============================================================================
// Shared Mock Implementations
// ============================================================================

// Ensure mocks implement the interfaces
var (
	_ secondary.EntryRepository     = (*mockEntryRepository)(nil)
	_ secondary.ClosedDayRepository = (*mockClosedDayRepository)(nil)
	_ secondary.PeriodRepository    = (*mockPeriodRepository)(nil)
	_ secondary.UserRepository      = (*mockUserRepository)(nil)
	_ secondary.AuthorityChecker    = (*mockAuthorityChecker)(nil)
)

// mockEntryRepository implements secondary.EntryRepository for testing.
// It mirrors the transactional semantics of the SQLite adapter: cap guards
// see the day total excluding the replaced entry, and transitions only
// apply when the stored status still matches.
type mockEntryRepository struct {
	entries       map[string]*secondary.EntryRecord
	nextID        int
	getErr        error
	listErr       error
	upsertErr     error
	transitionErr error
}

func newMockEntryRepository() *mockEntryRepository {
	return &mockEntryRepository{entries: make(map[string]*secondary.EntryRecord)}
}

func (m *mockEntryRepository) sumDay(ownerID, date, excludeID string) float64 {
	var total float64
	for _, e := range m.entries {
		if e.OwnerID == ownerID && e.Date == date && e.ID != excludeID {
			total += e.Quantity
		}
	}
	return total
}

func (m *mockEntryRepository) UpsertDraft(ctx context.Context, record *secondary.EntryRecord, capGuard func(dayTotal float64) error) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}

	var existingID string
	for _, e := range m.entries {
		if e.OwnerID == record.OwnerID && e.Date == record.Date && e.Task == record.Task && e.ProjectID == record.ProjectID && e.Status == "draft" {
			existingID = e.ID
			break
		}
	}

	if err := capGuard(m.sumDay(record.OwnerID, record.Date, existingID)); err != nil {
		return err
	}

	if existingID != "" {
		existing := m.entries[existingID]
		existing.Quantity = record.Quantity
		existing.Description = record.Description
		record.ID = existingID
	} else {
		m.nextID++
		record.ID = fmt.Sprintf("ENTRY-%04d", m.nextID)
		stored := *record
		stored.Status = "draft"
		m.entries[record.ID] = &stored
	}
	record.Status = "draft"
	return nil
}

func (m *mockEntryRepository) UpdateMutable(ctx context.Context, record *secondary.EntryRecord, capGuard func(dayTotal float64) error) error {
	if err := capGuard(m.sumDay(record.OwnerID, record.Date, record.ID)); err != nil {
		return err
	}

	existing, ok := m.entries[record.ID]
	if !ok || (existing.Status != "draft" && existing.Status != "rejected") {
		return secondary.ErrNotFound
	}
	existing.Quantity = record.Quantity
	existing.Description = record.Description
	return nil
}

func (m *mockEntryRepository) GetByID(ctx context.Context, id string) (*secondary.EntryRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if e, ok := m.entries[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockEntryRepository) List(ctx context.Context, filters secondary.EntryFilters) ([]*secondary.EntryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.EntryRecord
	for _, e := range m.entries {
		if filters.OwnerID != "" && e.OwnerID != filters.OwnerID {
			continue
		}
		if filters.PeriodID != "" && e.PeriodID != filters.PeriodID {
			continue
		}
		if filters.Date != "" && e.Date != filters.Date {
			continue
		}
		if len(filters.Statuses) > 0 {
			match := false
			for _, s := range filters.Statuses {
				if e.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		copied := *e
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEntryRepository) TransitionStatus(ctx context.Context, id, fromStatus string, change secondary.StatusChange) (bool, error) {
	if m.transitionErr != nil {
		return false, m.transitionErr
	}
	e, ok := m.entries[id]
	if !ok || e.Status != fromStatus {
		return false, nil
	}

	e.Status = change.NewStatus
	if change.SetSubmittedAt {
		e.SubmittedAt = "2024-06-15T10:00:00Z"
	}
	if change.SetReviewedAt {
		e.ReviewedBy = change.ReviewedBy
		e.ReviewedAt = "2024-06-15T10:00:00Z"
	}
	if change.RejectionReason != "" {
		e.RejectionReason = change.RejectionReason
	} else if change.ClearRejection {
		e.RejectionReason = ""
	}
	return true, nil
}

func (m *mockEntryRepository) DeleteDraft(ctx context.Context, id string) (bool, error) {
	e, ok := m.entries[id]
	if !ok || e.Status != "draft" {
		return false, nil
	}
	delete(m.entries, id)
	return true, nil
}

func (m *mockEntryRepository) SumQuantityForDay(ctx context.Context, ownerID, date, excludeID string) (float64, error) {
	return m.sumDay(ownerID, date, excludeID), nil
}

func (m *mockEntryRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("ENTRY-%04d", m.nextID+1), nil
}

// mockClosedDayRepository implements secondary.ClosedDayRepository for testing.
type mockClosedDayRepository struct {
	days    map[string]string // date -> label
	listErr error
}

func newMockClosedDayRepository() *mockClosedDayRepository {
	return &mockClosedDayRepository{days: make(map[string]string)}
}

func (m *mockClosedDayRepository) Add(ctx context.Context, record *secondary.ClosedDayRecord) error {
	if _, ok := m.days[record.Date]; ok {
		return fmt.Errorf("closed day %s already registered", record.Date)
	}
	m.days[record.Date] = record.Label
	return nil
}

func (m *mockClosedDayRepository) Remove(ctx context.Context, date string) error {
	if _, ok := m.days[date]; !ok {
		return secondary.ErrNotFound
	}
	delete(m.days, date)
	return nil
}

func (m *mockClosedDayRepository) ListYear(ctx context.Context, year int) ([]*secondary.ClosedDayRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	prefix := fmt.Sprintf("%04d-", year)
	var result []*secondary.ClosedDayRecord
	for date, label := range m.days {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			result = append(result, &secondary.ClosedDayRecord{Date: date, Label: label})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *mockClosedDayRepository) SetForYear(ctx context.Context, year int) (map[string]bool, error) {
	records, err := m.ListYear(ctx, year)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(records))
	for _, r := range records {
		set[r.Date] = true
	}
	return set, nil
}

// mockPeriodRepository implements secondary.PeriodRepository for testing.
type mockPeriodRepository struct {
	periods map[string]*secondary.PeriodRecord
	getErr  error
}

func newMockPeriodRepository() *mockPeriodRepository {
	return &mockPeriodRepository{periods: make(map[string]*secondary.PeriodRecord)}
}

func (m *mockPeriodRepository) Create(ctx context.Context, record *secondary.PeriodRecord) error {
	if _, ok := m.periods[record.ID]; ok {
		return fmt.Errorf("period %s already exists", record.ID)
	}
	stored := *record
	m.periods[record.ID] = &stored
	return nil
}

func (m *mockPeriodRepository) GetByID(ctx context.Context, id string) (*secondary.PeriodRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.periods[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPeriodRepository) List(ctx context.Context) ([]*secondary.PeriodRecord, error) {
	var result []*secondary.PeriodRecord
	for _, p := range m.periods {
		copied := *p
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate > result[j].StartDate })
	return result, nil
}

func (m *mockPeriodRepository) FindCovering(ctx context.Context, date string) (*secondary.PeriodRecord, error) {
	for _, p := range m.periods {
		if date >= p.StartDate && date <= p.EndDate {
			copied := *p
			return &copied, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockPeriodRepository) SetOpen(ctx context.Context, id string, open bool) error {
	p, ok := m.periods[id]
	if !ok {
		return secondary.ErrNotFound
	}
	p.Open = open
	return nil
}

// mockUserRepository implements secondary.UserRepository for testing.
type mockUserRepository struct {
	users     map[string]*secondary.UserRecord
	nextID    int
	createErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*secondary.UserRecord)}
}

func (m *mockUserRepository) Create(ctx context.Context, record *secondary.UserRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *record
	m.users[record.ID] = &stored
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*secondary.UserRecord, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, secondary.ErrNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*secondary.UserRecord, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]*secondary.UserRecord, error) {
	var result []*secondary.UserRecord
	for _, u := range m.users {
		copied := *u
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockUserRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("USER-%03d", m.nextID), nil
}

// mockAuthorityChecker implements secondary.AuthorityChecker with a fixed
// reviewer/owner table.
type mockAuthorityChecker struct {
	allowed map[string]bool // "reviewerID/ownerID" -> allowed
	err     error
}

func newMockAuthorityChecker() *mockAuthorityChecker {
	return &mockAuthorityChecker{allowed: make(map[string]bool)}
}

func (m *mockAuthorityChecker) allow(reviewerID, ownerID string) {
	m.allowed[reviewerID+"/"+ownerID] = true
}

func (m *mockAuthorityChecker) HasAuthority(ctx context.Context, reviewerID, ownerID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.allowed[reviewerID+"/"+ownerID], nil
}
