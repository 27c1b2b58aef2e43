package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/tally/internal/ports/primary"
)

// entryJSON is the wire representation of a time entry.
type entryJSON struct {
	ID              string  `json:"id"`
	OwnerID         string  `json:"owner_id"`
	PeriodID        string  `json:"period_id"`
	Task            string  `json:"task"`
	ProjectID       string  `json:"project_id,omitempty"`
	Date            string  `json:"date"`
	Quantity        float64 `json:"quantity"`
	Description     string  `json:"description,omitempty"`
	Status          string  `json:"status"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at,omitempty"`
	ReviewedBy      string  `json:"reviewed_by,omitempty"`
	ReviewedAt      string  `json:"reviewed_at,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

func toEntryJSON(e *primary.Entry) entryJSON {
	return entryJSON{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		PeriodID:        e.PeriodID,
		Task:            e.Task,
		ProjectID:       e.ProjectID,
		Date:            e.Date,
		Quantity:        e.Quantity,
		Description:     e.Description,
		Status:          e.Status,
		RejectionReason: e.RejectionReason,
		SubmittedAt:     e.SubmittedAt,
		ReviewedBy:      e.ReviewedBy,
		ReviewedAt:      e.ReviewedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toEntryListJSON(entries []*primary.Entry) []entryJSON {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = toEntryJSON(e)
	}
	return out
}

// batchResultJSON is the wire representation of a bulk operation result.
type batchResultJSON struct {
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	Outcomes     []entryOutcomeJSON `json:"outcomes"`
}

type entryOutcomeJSON struct {
	EntryID string `json:"entry_id"`
	OK      bool   `json:"ok"`
	Code    string `json:"code,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func toBatchResultJSON(r *primary.BatchResult) batchResultJSON {
	out := batchResultJSON{
		SuccessCount: r.SuccessCount,
		FailedCount:  r.FailedCount,
		Outcomes:     make([]entryOutcomeJSON, len(r.Outcomes)),
	}
	for i, o := range r.Outcomes {
		out.Outcomes[i] = entryOutcomeJSON{EntryID: o.EntryID, OK: o.OK, Code: o.Code, Reason: o.Reason}
	}
	return out
}

// GET /api/entries?period=PER-2024-06&status=draft,rejected
func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())

	filters := primary.EntryFilters{
		OwnerID:  caller.UserID,
		PeriodID: r.URL.Query().Get("period"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		filters.Statuses = strings.Split(raw, ",")
	}

	entries, err := s.entries.ListEntries(r.Context(), filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryListJSON(entries))
}

// POST /api/entries
func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())

	var body struct {
		PeriodID    string  `json:"period_id"`
		Task        string  `json:"task"`
		ProjectID   string  `json:"project_id"`
		Date        string  `json:"date"`
		Quantity    float64 `json:"quantity"`
		Description string  `json:"description"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.entries.SaveDraft(r.Context(), primary.SaveDraftRequest{
		OwnerID:     caller.UserID,
		PeriodID:    body.PeriodID,
		Task:        body.Task,
		ProjectID:   body.ProjectID,
		Date:        body.Date,
		Quantity:    body.Quantity,
		Description: body.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryJSON(entry))
}

// PUT /api/entries/{id}
func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())

	var body struct {
		Quantity    float64 `json:"quantity"`
		Description string  `json:"description"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := s.entries.UpdateEntry(r.Context(), primary.UpdateEntryRequest{
		OwnerID:     caller.UserID,
		EntryID:     chi.URLParam(r, "id"),
		Quantity:    body.Quantity,
		Description: body.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryJSON(entry))
}

// DELETE /api/entries/{id}
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())

	if err := s.entries.DeleteDraft(r.Context(), caller.UserID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/entries/submit
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.handleOwnerBatch(w, r, s.entries.SubmitBatch)
}

// POST /api/entries/resubmit
func (s *Server) handleResubmit(w http.ResponseWriter, r *http.Request) {
	s.handleOwnerBatch(w, r, s.entries.ResubmitBatch)
}

func (s *Server) handleOwnerBatch(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, req primary.BatchRequest) (*primary.BatchResult, error)) {
	caller := CallerFromContext(r.Context())

	var body struct {
		PeriodID string   `json:"period_id"`
		EntryIDs []string `json:"entry_ids"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.EntryIDs) == 0 {
		writeError(w, http.StatusBadRequest, "entry_ids is required")
		return
	}

	result, err := op(r.Context(), primary.BatchRequest{
		OwnerID:  caller.UserID,
		PeriodID: body.PeriodID,
		EntryIDs: body.EntryIDs,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResultJSON(result))
}
