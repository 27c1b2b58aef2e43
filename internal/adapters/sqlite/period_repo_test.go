package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/tally/internal/adapters/sqlite"
	"github.com/example/tally/internal/ports/secondary"
)

func TestPeriodRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPeriodRepository(db)
	ctx := context.Background()

	record := &secondary.PeriodRecord{
		ID:        "PER-2024-06",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Open:      true,
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "PER-2024-06")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Open {
		t.Error("period should be open")
	}
	if got.StartDate != "2024-06-01" || got.EndDate != "2024-06-30" {
		t.Errorf("unexpected range %s..%s", got.StartDate, got.EndDate)
	}
}

func TestPeriodRepository_FindCovering(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPeriodRepository(db)
	ctx := context.Background()

	periods := []secondary.PeriodRecord{
		{ID: "PER-2024-05", StartDate: "2024-05-01", EndDate: "2024-05-31", Open: false},
		{ID: "PER-2024-06", StartDate: "2024-06-01", EndDate: "2024-06-30", Open: true},
	}
	for i := range periods {
		if err := repo.Create(ctx, &periods[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := repo.FindCovering(ctx, "2024-06-15")
	if err != nil {
		t.Fatalf("FindCovering failed: %v", err)
	}
	if got.ID != "PER-2024-06" {
		t.Errorf("ID = %s, want PER-2024-06", got.ID)
	}

	if _, err := repo.FindCovering(ctx, "2024-07-15"); !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for uncovered date, got %v", err)
	}
}

func TestPeriodRepository_SetOpen(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPeriodRepository(db)
	ctx := context.Background()

	record := &secondary.PeriodRecord{ID: "PER-2024-06", StartDate: "2024-06-01", EndDate: "2024-06-30", Open: true}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.SetOpen(ctx, "PER-2024-06", false); err != nil {
		t.Fatalf("SetOpen failed: %v", err)
	}
	got, _ := repo.GetByID(ctx, "PER-2024-06")
	if got.Open {
		t.Error("period should be closed")
	}

	if err := repo.SetOpen(ctx, "PER-9999-01", false); !errors.Is(err, secondary.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown period, got %v", err)
	}
}

func TestPeriodRepository_List_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPeriodRepository(db)
	ctx := context.Background()

	periods := []secondary.PeriodRecord{
		{ID: "PER-2024-05", StartDate: "2024-05-01", EndDate: "2024-05-31"},
		{ID: "PER-2024-06", StartDate: "2024-06-01", EndDate: "2024-06-30"},
	}
	for i := range periods {
		if err := repo.Create(ctx, &periods[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(got))
	}
	if got[0].ID != "PER-2024-06" {
		t.Errorf("newest period first, got %s", got[0].ID)
	}
}
