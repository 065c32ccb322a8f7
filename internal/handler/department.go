package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/staffdesk/internal/service"
)

// DepartmentHandler manages the department endpoints.
type DepartmentHandler struct {
	departments *service.DepartmentService
	logger      *slog.Logger
}

func NewDepartmentHandler(departments *service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{departments: departments, logger: logger}
}

type departmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleList returns all departments in insertion order.
//
// GET /api/departments
func (h *DepartmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departments.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, departments)
}

// HandleGet returns a single department.
//
// GET /api/departments/{id}
func (h *DepartmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	department, err := h.departments.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, department)
}

// HandleCreate adds a department.
//
// POST /api/departments
func (h *DepartmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	department, err := h.departments.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, department)
}

// HandleUpdate rewrites a department.
//
// PUT /api/departments/{id}
func (h *DepartmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req departmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	department, err := h.departments.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, department)
}

// HandleDelete removes a department.
//
// DELETE /api/departments/{id}
func (h *DepartmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.departments.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Department deleted successfully."})
}
