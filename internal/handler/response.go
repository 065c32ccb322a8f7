package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/repository"
)

// ErrorResponse is the error shape returned by every API endpoint. The
// console keys its toasts off the message field.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// MessageResponse is the body for operations that confirm an action without
// returning a resource, such as registration and deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; nothing left to do but log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError translates domain errors into HTTP responses. The service layer
// speaks apperror sentinels; status codes exist only here.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden
			errorType = "forbidden"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
			errorType = "conflict"
		}

		writeJSON(w, status, ErrorResponse{Error: errorType, Message: appErr.Message})
		return
	}

	// Unknown errors stay opaque; the raw message may carry SQL or paths.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// idParam parses the {id} route parameter. Non-numeric or non-positive
// values are a validation failure, not a lookup miss.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.ValidationFailed("id", "Invalid id.")
	}
	return id, nil
}

// sortFromQuery reads the optional sortBy / order query parameters.
// Unknown columns fall back to each repository's default ordering.
func sortFromQuery(r *http.Request) repository.Sort {
	q := r.URL.Query()
	return repository.Sort{
		By:    q.Get("sortBy"),
		Order: q.Get("order"),
	}
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.ValidationFailed("body", "Invalid JSON body.")
	}
	return nil
}
