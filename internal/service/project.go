package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/model"
	"github.com/sakif/staffdesk/internal/repository"
)

// ProjectInput carries the writable project fields. All four are required;
// the console always submits a status from its dropdown.
type ProjectInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id"`
	Status       string `json:"status"`
}

type ProjectService struct {
	projects repository.ProjectRepository
	logger   *slog.Logger
}

func NewProjectService(projects repository.ProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

func (s *ProjectService) List(ctx context.Context, sort repository.Sort) ([]model.Project, error) {
	projects, err := s.projects.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Count(ctx context.Context) (int64, error) {
	total, err := s.projects.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return total, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*model.Project, error) {
	if err := validateProjectInput(&in); err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:        in.Title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
		Status:       in.Status,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created",
		slog.Int64("project_id", project.ProjectID),
		slog.String("title", project.Title),
	)
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id int64, in ProjectInput) (*model.Project, error) {
	if err := validateProjectInput(&in); err != nil {
		return nil, err
	}

	project := &model.Project{
		ProjectID:    id,
		Title:        in.Title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
		Status:       in.Status,
	}
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", slog.Int64("project_id", id))
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("project deleted", slog.Int64("project_id", id))
	return nil
}

func validateProjectInput(in *ProjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Status = strings.TrimSpace(in.Status)

	if in.DepartmentID == 0 {
		return apperror.ValidationFailed("department_id", "department_id is required")
	}
	if in.Title == "" {
		return apperror.ValidationFailed("title", "title is required")
	}
	if in.Description == "" {
		return apperror.ValidationFailed("description", "description is required")
	}
	if in.Status == "" {
		return apperror.ValidationFailed("status", "status is required")
	}
	return nil
}
