package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/example/tally/internal/ports/primary"
	"github.com/example/tally/internal/ports/secondary"
)

// Server wires the application services into a chi router.
type Server struct {
	entries  primary.EntryService
	reviews  primary.ReviewService
	calendar primary.CalendarService
	users    primary.UserService
	auth     *Authenticator
}

// NewServer creates a Server with injected services.
func NewServer(
	entries primary.EntryService,
	reviews primary.ReviewService,
	calendar primary.CalendarService,
	users primary.UserService,
	auth *Authenticator,
) *Server {
	return &Server{
		entries:  entries,
		reviews:  reviews,
		calendar: calendar,
		users:    users,
		auth:     auth,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Post("/api/login", s.handleLogin)

	router.Group(func(r chi.Router) {
		r.Use(s.auth.Middleware)

		r.Get("/api/entries", s.handleListEntries)
		r.Post("/api/entries", s.handleSaveDraft)
		r.Put("/api/entries/{id}", s.handleUpdateEntry)
		r.Delete("/api/entries/{id}", s.handleDeleteDraft)
		r.Post("/api/entries/submit", s.handleSubmit)
		r.Post("/api/entries/resubmit", s.handleResubmit)

		r.Get("/api/periods", s.handleListPeriods)
		r.Get("/api/periods/active", s.handleActivePeriod)
		r.Get("/api/closed-days", s.handleListClosedDays)

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(primary.RoleManager, primary.RoleAdmin))
			r.Get("/api/review", s.handleListForReview)
			r.Post("/api/review", s.handleReviewBatch)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(primary.RoleAdmin))
			r.Post("/api/closed-days", s.handleAddClosedDay)
			r.Delete("/api/closed-days/{date}", s.handleRemoveClosedDay)
			r.Post("/api/periods", s.handleCreatePeriod)
			r.Post("/api/periods/{id}/open", s.handleSetPeriodOpen)
			r.Get("/api/users", s.handleListUsers)
			r.Post("/api/users", s.handleCreateUser)
		})
	})

	return router
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response as {"error": ...}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error to an HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, secondary.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, err.Error())
}

// decodeBody parses the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
