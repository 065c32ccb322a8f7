package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/auth"
	"github.com/sakif/staffdesk/internal/model"
	"github.com/sakif/staffdesk/internal/service"
)

// AuthHandler exposes registration, login and the current-user profile.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// HandleRegister creates a new console user.
//
// POST /api/auth/register
//
// A successful registration confirms with 201 and no token; the client is
// expected to log in afterwards.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	err := h.auth.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully."})
}

// HandleLogin verifies credentials and issues a signed token.
//
// POST /api/auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: result.Token, User: result.User})
}

// HandleMe returns the profile of the authenticated user, resolved from the
// verified token claims placed in the request context by the middleware.
//
// GET /api/auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("Access denied. No token provided."))
		return
	}

	user, err := h.auth.Profile(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
