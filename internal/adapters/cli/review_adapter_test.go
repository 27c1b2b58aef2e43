package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/tally/internal/ports/primary"
)

// mockReviewService implements primary.ReviewService for testing
type mockReviewService struct {
	listFn   func(ctx context.Context, filters primary.ReviewFilters) ([]*primary.Entry, error)
	reviewFn func(ctx context.Context, req primary.ReviewBatchRequest) (*primary.BatchResult, error)

	lastReviewReq primary.ReviewBatchRequest
}

func (m *mockReviewService) ListForReview(ctx context.Context, filters primary.ReviewFilters) ([]*primary.Entry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return []*primary.Entry{}, nil
}

func (m *mockReviewService) ReviewBatch(ctx context.Context, req primary.ReviewBatchRequest) (*primary.BatchResult, error) {
	m.lastReviewReq = req
	if m.reviewFn != nil {
		return m.reviewFn(ctx, req)
	}
	return &primary.BatchResult{SuccessCount: len(req.EntryIDs)}, nil
}

func TestReviewAdapter_QueueEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewReviewAdapter(&mockReviewService{}, &buf)

	if err := adapter.Queue(context.Background(), primary.ReviewFilters{ReviewerID: "USER-002"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Nothing waiting for review") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestReviewAdapter_Queue(t *testing.T) {
	var buf bytes.Buffer
	service := &mockReviewService{
		listFn: func(ctx context.Context, filters primary.ReviewFilters) ([]*primary.Entry, error) {
			return []*primary.Entry{
				{ID: "ENTRY-0001", OwnerID: "USER-003", Date: "2024-06-14", Task: "Montage", Quantity: 4, Status: "submitted"},
			}, nil
		},
	}
	adapter := NewReviewAdapter(service, &buf)

	if err := adapter.Queue(context.Background(), primary.ReviewFilters{ReviewerID: "USER-002"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "USER-003") {
		t.Errorf("expected owner in output, got %q", buf.String())
	}
}

func TestReviewAdapter_Approve(t *testing.T) {
	var buf bytes.Buffer
	service := &mockReviewService{}
	adapter := NewReviewAdapter(service, &buf)

	err := adapter.Approve(context.Background(), "USER-002", []string{"ENTRY-0001", "ENTRY-0002"})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !service.lastReviewReq.Approve {
		t.Error("expected approve request")
	}
	if !strings.Contains(buf.String(), "2 approved, 0 failed") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestReviewAdapter_RejectCarriesReason(t *testing.T) {
	var buf bytes.Buffer
	service := &mockReviewService{}
	adapter := NewReviewAdapter(service, &buf)

	err := adapter.Reject(context.Background(), "USER-002", []string{"ENTRY-0001"}, "uren kloppen niet")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if service.lastReviewReq.Approve {
		t.Error("expected reject request")
	}
	if service.lastReviewReq.Reason != "uren kloppen niet" {
		t.Errorf("expected reason to reach service, got %q", service.lastReviewReq.Reason)
	}
}

func TestReviewAdapter_PrintsPerEntryFailures(t *testing.T) {
	var buf bytes.Buffer
	service := &mockReviewService{
		reviewFn: func(ctx context.Context, req primary.ReviewBatchRequest) (*primary.BatchResult, error) {
			return &primary.BatchResult{
				SuccessCount: 0,
				FailedCount:  1,
				Outcomes: []primary.EntryOutcome{
					{EntryID: "ENTRY-0001", Code: "no_authority", Reason: "no reviewer authority over the owner of entry ENTRY-0001"},
				},
			}, nil
		},
	}
	adapter := NewReviewAdapter(service, &buf)

	if err := adapter.Approve(context.Background(), "USER-005", []string{"ENTRY-0001"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "no reviewer authority") {
		t.Errorf("expected failure reason in output, got %q", buf.String())
	}
}
