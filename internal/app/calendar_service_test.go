package app

import (
	"context"
	"testing"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

func newTestCalendarService() (*CalendarServiceImpl, *mockClosedDayRepository, *mockPeriodRepository) {
	closedDayRepo := newMockClosedDayRepository()
	periodRepo := newMockPeriodRepository()
	service := NewCalendarService(closedDayRepo, periodRepo)
	return service, closedDayRepo, periodRepo
}

// ============================================================================
// Closed Day Tests
// ============================================================================

func TestAddClosedDay_Success(t *testing.T) {
	service, closedDayRepo, _ := newTestCalendarService()
	ctx := context.Background()

	if err := service.AddClosedDay(ctx, "2024-12-25", "Eerste kerstdag"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if closedDayRepo.days["2024-12-25"] != "Eerste kerstdag" {
		t.Error("expected closed day to be stored")
	}
}

func TestAddClosedDay_InvalidDate(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	if err := service.AddClosedDay(ctx, "25-12-2024", "Eerste kerstdag"); err == nil {
		t.Fatal("expected error for malformed date, got nil")
	}
}

func TestAddClosedDay_MissingLabel(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	if err := service.AddClosedDay(ctx, "2024-12-25", ""); err == nil {
		t.Fatal("expected error for missing label, got nil")
	}
}

func TestRemoveClosedDay_NotFound(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	if err := service.RemoveClosedDay(ctx, "2024-12-25"); err == nil {
		t.Fatal("expected error for unknown closed day, got nil")
	}
}

func TestListClosedDays(t *testing.T) {
	service, closedDayRepo, _ := newTestCalendarService()
	ctx := context.Background()

	closedDayRepo.days["2024-12-25"] = "Eerste kerstdag"
	closedDayRepo.days["2024-12-26"] = "Tweede kerstdag"
	closedDayRepo.days["2025-01-01"] = "Nieuwjaarsdag"

	days, err := service.ListClosedDays(ctx, 2024)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 closed days in 2024, got %d", len(days))
	}
}

// ============================================================================
// Period Tests
// ============================================================================

func TestCreatePeriod_DerivesID(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	period, err := service.CreatePeriod(ctx, primary.CreatePeriodRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if period.ID != "PER-2024-06" {
		t.Errorf("expected ID PER-2024-06, got %s", period.ID)
	}
	if !period.Open {
		t.Error("expected new period to open on creation")
	}
}

func TestCreatePeriod_EndBeforeStart(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	_, err := service.CreatePeriod(ctx, primary.CreatePeriodRequest{
		StartDate: "2024-06-30",
		EndDate:   "2024-06-01",
	})

	if err == nil {
		t.Fatal("expected error for inverted range, got nil")
	}
}

func TestActivePeriod_Success(t *testing.T) {
	service, _, periodRepo := newTestCalendarService()
	ctx := context.Background()

	periodRepo.periods["PER-2024-06"] = &secondary.PeriodRecord{
		ID: "PER-2024-06", StartDate: "2024-06-01", EndDate: "2024-06-30", Open: true,
	}

	period, err := service.ActivePeriod(ctx, "2024-06-14")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if period.ID != "PER-2024-06" {
		t.Errorf("expected PER-2024-06, got %s", period.ID)
	}
}

func TestActivePeriod_ClosedPeriod(t *testing.T) {
	service, _, periodRepo := newTestCalendarService()
	ctx := context.Background()

	periodRepo.periods["PER-2024-06"] = &secondary.PeriodRecord{
		ID: "PER-2024-06", StartDate: "2024-06-01", EndDate: "2024-06-30", Open: false,
	}

	if _, err := service.ActivePeriod(ctx, "2024-06-14"); err == nil {
		t.Fatal("expected error for closed period, got nil")
	}
}

func TestActivePeriod_Uncovered(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	if _, err := service.ActivePeriod(ctx, "2024-06-14"); err == nil {
		t.Fatal("expected error for uncovered date, got nil")
	}
}

func TestSetPeriodOpen_NotFound(t *testing.T) {
	service, _, _ := newTestCalendarService()
	ctx := context.Background()

	if err := service.SetPeriodOpen(ctx, "PER-1999-01", false); err == nil {
		t.Fatal("expected error for unknown period, got nil")
	}
}

func TestSetPeriodOpen_Closes(t *testing.T) {
	service, _, periodRepo := newTestCalendarService()
	ctx := context.Background()

	periodRepo.periods["PER-2024-06"] = &secondary.PeriodRecord{
		ID: "PER-2024-06", StartDate: "2024-06-01", EndDate: "2024-06-30", Open: true,
	}

	if err := service.SetPeriodOpen(ctx, "PER-2024-06", false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if periodRepo.periods["PER-2024-06"].Open {
		t.Error("expected period to be closed")
	}
}
