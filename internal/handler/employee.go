package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/staffdesk/internal/service"
)

// EmployeeHandler manages the employee directory endpoints.
type EmployeeHandler struct {
	employees *service.EmployeeService
	logger    *slog.Logger
}

func NewEmployeeHandler(employees *service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, logger: logger}
}

// HandleList returns all employees with their department and position names
// joined in. Supports sortBy / order query parameters.
//
// GET /api/employees
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context(), sortFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// HandleCount returns the total number of employees.
//
// GET /api/employees/count
func (h *EmployeeHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.employees.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": total})
}

// HandleGet returns a single employee.
//
// GET /api/employees/{id}
func (h *EmployeeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	employee, err := h.employees.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// HandleCreate adds an employee.
//
// POST /api/employees
func (h *EmployeeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.EmployeeInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	employee, err := h.employees.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

// HandleUpdate rewrites an employee record.
//
// PUT /api/employees/{id}
func (h *EmployeeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in service.EmployeeInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	employee, err := h.employees.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// HandleDelete removes an employee.
//
// DELETE /api/employees/{id}
func (h *EmployeeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.employees.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Employee deleted successfully."})
}
