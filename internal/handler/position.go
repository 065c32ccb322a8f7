package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/staffdesk/internal/service"
)

// PositionHandler manages the position endpoints.
type PositionHandler struct {
	positions *service.PositionService
	logger    *slog.Logger
}

func NewPositionHandler(positions *service.PositionService, logger *slog.Logger) *PositionHandler {
	return &PositionHandler{positions: positions, logger: logger}
}

type positionRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id"`
}

// HandleList returns all positions with their department names joined in.
//
// GET /api/positions
func (h *PositionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	positions, err := h.positions.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, positions)
}

// HandleCount returns the total number of positions.
//
// GET /api/positions/count
func (h *PositionHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.positions.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": total})
}

// HandleGet returns a single position.
//
// GET /api/positions/{id}
func (h *PositionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	position, err := h.positions.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, position)
}

// HandleCreate adds a position.
//
// POST /api/positions
func (h *PositionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	position, err := h.positions.Create(r.Context(), req.Title, req.Description, req.DepartmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, position)
}

// HandleUpdate rewrites a position.
//
// PUT /api/positions/{id}
func (h *PositionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req positionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	position, err := h.positions.Update(r.Context(), id, req.Title, req.Description, req.DepartmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, position)
}

// HandleDelete removes a position.
//
// DELETE /api/positions/{id}
func (h *PositionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.positions.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Position deleted successfully."})
}
