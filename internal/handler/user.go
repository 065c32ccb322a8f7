package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/staffdesk/internal/service"
)

// UserHandler manages the console's user administration screen.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

type userRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// HandleList returns all users, optionally sorted via sortBy / order query
// parameters. Password hashes never appear in the response.
//
// GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), sortFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// HandleCount returns the total number of users.
//
// GET /api/users/count
func (h *UserHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.users.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": total})
}

// HandleGet returns a single user.
//
// GET /api/users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleCreate adds a user.
//
// POST /api/users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.Create(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// HandleUpdate rewrites a user record, including the password.
//
// PUT /api/users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req userRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.Update(r.Context(), id, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// HandleDelete removes a user.
//
// DELETE /api/users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully."})
}
