package httpapi

import (
	"net/http"
	"strings"

	"github.com/example/tally/internal/ports/primary"
)

// GET /api/review?period=PER-2024-06&status=submitted
func (s *Server) handleListForReview(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())

	filters := primary.ReviewFilters{
		ReviewerID: caller.UserID,
		PeriodID:   r.URL.Query().Get("period"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		filters.Statuses = strings.Split(raw, ",")
	}

	entries, err := s.reviews.ListForReview(r.Context(), filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryListJSON(entries))
}

// POST /api/review
func (s *Server) handleReviewBatch(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())

	var body struct {
		EntryIDs []string `json:"entry_ids"`
		Approve  bool     `json:"approve"`
		Reason   string   `json:"reason"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.EntryIDs) == 0 {
		writeError(w, http.StatusBadRequest, "entry_ids is required")
		return
	}

	result, err := s.reviews.ReviewBatch(r.Context(), primary.ReviewBatchRequest{
		ReviewerID: caller.UserID,
		EntryIDs:   body.EntryIDs,
		Approve:    body.Approve,
		Reason:     body.Reason,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResultJSON(result))
}
