package entry

import (
	"testing"
	"time"
)

func TestApplySubmit(t *testing.T) {
	now := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

	result := ApplySubmit(now)

	if result.NewStatus != StatusSubmitted {
		t.Errorf("NewStatus = %s, want %s", result.NewStatus, StatusSubmitted)
	}
	if result.SubmittedAt == nil || !result.SubmittedAt.Equal(now) {
		t.Errorf("SubmittedAt = %v, want %v", result.SubmittedAt, now)
	}
	if !result.ClearRejection {
		t.Error("submit should clear any stale rejection reason")
	}
	if result.ReviewedAt != nil || result.ReviewedBy != "" {
		t.Error("submit must not touch review fields")
	}
}

func TestApplyResubmit(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	result := ApplyResubmit(now)

	if result.NewStatus != StatusSubmitted {
		t.Errorf("NewStatus = %s, want %s", result.NewStatus, StatusSubmitted)
	}
	if !result.ClearRejection {
		t.Error("resubmit must clear the previous rejection reason")
	}
	if result.SubmittedAt == nil || !result.SubmittedAt.Equal(now) {
		t.Errorf("SubmittedAt = %v, want %v", result.SubmittedAt, now)
	}
}

func TestApplyReview_Approve(t *testing.T) {
	now := time.Date(2024, 6, 4, 16, 15, 0, 0, time.UTC)

	result := ApplyReview(true, "USER-002", "", now)

	if result.NewStatus != StatusApproved {
		t.Errorf("NewStatus = %s, want %s", result.NewStatus, StatusApproved)
	}
	if result.ReviewedBy != "USER-002" {
		t.Errorf("ReviewedBy = %s, want USER-002", result.ReviewedBy)
	}
	if result.ReviewedAt == nil || !result.ReviewedAt.Equal(now) {
		t.Errorf("ReviewedAt = %v, want %v", result.ReviewedAt, now)
	}
	if result.RejectionReason != "" {
		t.Error("approval must not set a rejection reason")
	}
}

func TestApplyReview_Reject(t *testing.T) {
	now := time.Date(2024, 6, 4, 16, 20, 0, 0, time.UTC)

	result := ApplyReview(false, "USER-002", "uren kloppen niet", now)

	if result.NewStatus != StatusRejected {
		t.Errorf("NewStatus = %s, want %s", result.NewStatus, StatusRejected)
	}
	if result.RejectionReason != "uren kloppen niet" {
		t.Errorf("RejectionReason = %q, want %q", result.RejectionReason, "uren kloppen niet")
	}
	if result.ReviewedBy != "USER-002" || result.ReviewedAt == nil {
		t.Error("rejection must record reviewer and review time")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{raw: "draft", want: StatusDraft},
		{raw: "submitted", want: StatusSubmitted},
		{raw: "approved", want: StatusApproved},
		{raw: "rejected", want: StatusRejected},
		{raw: "DRAFT", want: StatusDraft},
		{raw: "opgeslagen", want: StatusDraft},
		{raw: "ingeleverd", want: StatusSubmitted},
		{raw: "goedgekeurd", want: StatusApproved},
		{raw: "afgekeurd", want: StatusRejected},
		{raw: "pending", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %s", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusMutable(t *testing.T) {
	if !StatusDraft.Mutable() || !StatusRejected.Mutable() {
		t.Error("draft and rejected must be mutable")
	}
	if StatusSubmitted.Mutable() || StatusApproved.Mutable() {
		t.Error("submitted and approved must be read-only")
	}
	if !StatusApproved.Terminal() {
		t.Error("approved is the terminal state")
	}
	if StatusRejected.Terminal() {
		t.Error("rejected is not terminal: it can loop back to submitted")
	}
}
