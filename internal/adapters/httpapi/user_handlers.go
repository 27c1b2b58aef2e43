package httpapi

import (
	"net/http"

	"github.com/example/tally/internal/ports/primary"
)

// userJSON is the wire representation of a user.
type userJSON struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	ManagerID string `json:"manager_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func toUserJSON(u *primary.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		ManagerID: u.ManagerID,
		CreatedAt: u.CreatedAt,
	}
}

// POST /api/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), body.Username, body.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.auth.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  toUserJSON(user),
	})
}

// GET /api/users
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]userJSON, len(users))
	for i, u := range users {
		out[i] = toUserJSON(u)
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /api/users
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"`
		FullName  string `json:"full_name"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		ManagerID string `json:"manager_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.CreateUser(r.Context(), primary.CreateUserRequest{
		Username:  body.Username,
		FullName:  body.FullName,
		Password:  body.Password,
		Role:      body.Role,
		ManagerID: body.ManagerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserJSON(user))
}
