package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/example/tally/internal/ports/primary"
)

// GET /api/closed-days?year=2024
func (s *Server) handleListClosedDays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}

	days, err := s.calendar.ListClosedDays(r.Context(), year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]map[string]string, len(days))
	for i, d := range days {
		out[i] = map[string]string{"date": d.Date, "label": d.Label}
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /api/closed-days
func (s *Server) handleAddClosedDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date  string `json:"date"`
		Label string `json:"label"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.calendar.AddClosedDay(r.Context(), body.Date, body.Label); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"date": body.Date, "label": body.Label})
}

// DELETE /api/closed-days/{date}
func (s *Server) handleRemoveClosedDay(w http.ResponseWriter, r *http.Request) {
	if err := s.calendar.RemoveClosedDay(r.Context(), chi.URLParam(r, "date")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// periodJSON is the wire representation of an accounting period.
type periodJSON struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Open      bool   `json:"open"`
	CreatedAt string `json:"created_at,omitempty"`
}

func toPeriodJSON(p *primary.Period) periodJSON {
	return periodJSON{
		ID:        p.ID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Open:      p.Open,
		CreatedAt: p.CreatedAt,
	}
}

// GET /api/periods
func (s *Server) handleListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := s.calendar.ListPeriods(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]periodJSON, len(periods))
	for i, p := range periods {
		out[i] = toPeriodJSON(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/periods/active?date=2024-06-14
func (s *Server) handleActivePeriod(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	period, err := s.calendar.ActivePeriod(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodJSON(period))
}

// POST /api/periods
func (s *Server) handleCreatePeriod(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID        string `json:"id"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	period, err := s.calendar.CreatePeriod(r.Context(), primary.CreatePeriodRequest{
		ID:        body.ID,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPeriodJSON(period))
}

// POST /api/periods/{id}/open
func (s *Server) handleSetPeriodOpen(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Open bool `json:"open"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.calendar.SetPeriodOpen(r.Context(), chi.URLParam(r, "id"), body.Open); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
