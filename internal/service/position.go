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

type PositionService struct {
	positions repository.PositionRepository
	logger    *slog.Logger
}

func NewPositionService(positions repository.PositionRepository, logger *slog.Logger) *PositionService {
	return &PositionService{positions: positions, logger: logger}
}

func (s *PositionService) List(ctx context.Context) ([]model.Position, error) {
	positions, err := s.positions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing positions: %w", err)
	}
	return positions, nil
}

func (s *PositionService) Count(ctx context.Context) (int64, error) {
	total, err := s.positions.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting positions: %w", err)
	}
	return total, nil
}

func (s *PositionService) GetByID(ctx context.Context, id int64) (*model.Position, error) {
	return s.positions.GetByID(ctx, id)
}

func (s *PositionService) Create(ctx context.Context, title, description string, departmentID int64) (*model.Position, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if departmentID == 0 {
		return nil, apperror.ValidationFailed("department_id", "department_id is required")
	}

	position := &model.Position{
		Title:        title,
		Description:  strings.TrimSpace(description),
		DepartmentID: departmentID,
	}
	if err := s.positions.Create(ctx, position); err != nil {
		return nil, fmt.Errorf("creating position: %w", err)
	}

	s.logger.Info("position created",
		slog.Int64("position_id", position.PositionID),
		slog.String("title", position.Title),
	)
	return position, nil
}

func (s *PositionService) Update(ctx context.Context, id int64, title, description string, departmentID int64) (*model.Position, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title is required")
	}
	if departmentID == 0 {
		return nil, apperror.ValidationFailed("department_id", "department_id is required")
	}

	position := &model.Position{
		PositionID:   id,
		Title:        title,
		Description:  strings.TrimSpace(description),
		DepartmentID: departmentID,
	}
	if err := s.positions.Update(ctx, position); err != nil {
		return nil, err
	}

	s.logger.Info("position updated", slog.Int64("position_id", id))
	return position, nil
}

func (s *PositionService) Delete(ctx context.Context, id int64) error {
	if err := s.positions.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("position deleted", slog.Int64("position_id", id))
	return nil
}
