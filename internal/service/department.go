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

type DepartmentService struct {
	departments repository.DepartmentRepository
	logger      *slog.Logger
}

func NewDepartmentService(departments repository.DepartmentRepository, logger *slog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, logger: logger}
}

func (s *DepartmentService) List(ctx context.Context) ([]model.Department, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}
	return departments, nil
}

func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, name, description string) (*model.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}

	department := &model.Department{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}

	s.logger.Info("department created",
		slog.Int64("department_id", department.DepartmentID),
		slog.String("name", department.Name),
	)
	return department, nil
}

func (s *DepartmentService) Update(ctx context.Context, id int64, name, description string) (*model.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}

	department := &model.Department{
		DepartmentID: id,
		Name:         name,
		Description:  strings.TrimSpace(description),
	}
	if err := s.departments.Update(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info("department updated", slog.Int64("department_id", id))
	return department, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("department deleted", slog.Int64("department_id", id))
	return nil
}
