package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/staffdesk/internal/service"
)

// ProjectHandler manages the project endpoints.
type ProjectHandler struct {
	projects *service.ProjectService
	logger   *slog.Logger
}

func NewProjectHandler(projects *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// HandleList returns all projects with their department names joined in.
// Supports sortBy / order query parameters.
//
// GET /api/projects
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context(), sortFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// HandleCount returns the total number of projects.
//
// GET /api/projects/count
func (h *ProjectHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.projects.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": total})
}

// HandleGet returns a single project.
//
// GET /api/projects/{id}
func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	project, err := h.projects.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// HandleCreate adds a project.
//
// POST /api/projects
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.ProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	project, err := h.projects.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// HandleUpdate rewrites a project.
//
// PUT /api/projects/{id}
func (h *ProjectHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var in service.ProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	project, err := h.projects.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// HandleDelete removes a project.
//
// DELETE /api/projects/{id}
func (h *ProjectHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully."})
}
