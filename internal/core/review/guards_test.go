package review

import (
	"testing"

	"github.com/example/tally/internal/core/entry"
)

func TestValidateRejectionReason(t *testing.T) {
	tests := []struct {
		name        string
		reason      string
		wantAllowed bool
	}{
		{name: "plain reason", reason: "uren kloppen niet", wantAllowed: true},
		{name: "empty reason", reason: "", wantAllowed: false},
		{name: "whitespace only", reason: "   \t", wantAllowed: false},
		{name: "reason with surrounding whitespace", reason: "  te veel uren  ", wantAllowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRejectionReason(tt.reason)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", got.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && got.Code != CodeMissingReason {
				t.Errorf("Code = %q, want %q", got.Code, CodeMissingReason)
			}
		})
	}
}

func TestCanReview(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ReviewContext
		wantAllowed bool
		wantCode    string
	}{
		{
			name: "submitted entry with authority",
			ctx: ReviewContext{
				EntryID:      "ENTRY-0001",
				Status:       entry.StatusSubmitted,
				HasAuthority: true,
			},
			wantAllowed: true,
		},
		{
			name: "no authority over owner",
			ctx: ReviewContext{
				EntryID:      "ENTRY-0001",
				Status:       entry.StatusSubmitted,
				HasAuthority: false,
			},
			wantAllowed: false,
			wantCode:    CodeNoAuthority,
		},
		{
			name: "draft cannot be reviewed",
			ctx: ReviewContext{
				EntryID:      "ENTRY-0002",
				Status:       entry.StatusDraft,
				HasAuthority: true,
			},
			wantAllowed: false,
			wantCode:    entry.CodeInvalidTransition,
		},
		{
			name: "approved cannot be reviewed again",
			ctx: ReviewContext{
				EntryID:      "ENTRY-0003",
				Status:       entry.StatusApproved,
				HasAuthority: true,
			},
			wantAllowed: false,
			wantCode:    entry.CodeInvalidTransition,
		},
		{
			name: "rejected cannot be re-reviewed until resubmitted",
			ctx: ReviewContext{
				EntryID:      "ENTRY-0004",
				Status:       entry.StatusRejected,
				HasAuthority: true,
			},
			wantAllowed: false,
			wantCode:    entry.CodeInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanReview(tt.ctx)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (reason: %s)", got.Allowed, tt.wantAllowed, got.Reason)
			}
			if !tt.wantAllowed && got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}
