package entry

import "time"

// TransitionResult captures the new status plus the field changes a
// transition carries. This is a value object; the repository applies it
// atomically together with the status change.
type TransitionResult struct {
	NewStatus       Status
	SubmittedAt     *time.Time // set on submit and resubmit
	ReviewedBy      string     // set on approve and reject
	ReviewedAt      *time.Time // set on approve and reject
	RejectionReason string     // set on reject
	ClearRejection  bool       // set on submit/resubmit to drop a stale reason
}

// ApplySubmit returns the transition for draft -> submitted.
// The caller passes the current time to enable testing.
func ApplySubmit(now time.Time) TransitionResult {
	return TransitionResult{
		NewStatus:      StatusSubmitted,
		SubmittedAt:    &now,
		ClearRejection: true,
	}
}

// ApplyResubmit returns the transition for rejected -> submitted.
// The previous rejection reason is cleared and a new submission
// timestamp recorded.
func ApplyResubmit(now time.Time) TransitionResult {
	return ApplySubmit(now)
}

// ApplyReview returns the transition for submitted -> approved or
// submitted -> rejected. Reason is only meaningful when approve is false;
// the review guards require it to be non-empty in that case.
func ApplyReview(approve bool, reviewerID, reason string, now time.Time) TransitionResult {
	result := TransitionResult{
		ReviewedBy: reviewerID,
		ReviewedAt: &now,
	}
	if approve {
		result.NewStatus = StatusApproved
	} else {
		result.NewStatus = StatusRejected
		result.RejectionReason = reason
	}
	return result
}
