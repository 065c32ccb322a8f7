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

// EmployeeInput carries the writable employee fields from a create or update
// request.
type EmployeeInput struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DepartmentID int64   `json:"department_id"`
	PositionID   int64   `json:"position_id"`
	Salary       float64 `json:"salary"`
}

type EmployeeService struct {
	employees repository.EmployeeRepository
	logger    *slog.Logger
}

func NewEmployeeService(employees repository.EmployeeRepository, logger *slog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context, sort repository.Sort) ([]model.Employee, error) {
	employees, err := s.employees.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	total, err := s.employees.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting employees: %w", err)
	}
	return total, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, in EmployeeInput) (*model.Employee, error) {
	if err := validateEmployeeInput(&in); err != nil {
		return nil, err
	}

	employee := &model.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		DepartmentID: in.DepartmentID,
		PositionID:   in.PositionID,
		Salary:       in.Salary,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	s.logger.Info("employee created",
		slog.Int64("employee_id", employee.EmployeeID),
		slog.String("email", employee.Email),
	)
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, in EmployeeInput) (*model.Employee, error) {
	if err := validateEmployeeInput(&in); err != nil {
		return nil, err
	}

	employee := &model.Employee{
		EmployeeID:   id,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		DepartmentID: in.DepartmentID,
		PositionID:   in.PositionID,
		Salary:       in.Salary,
	}
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("employee updated", slog.Int64("employee_id", id))
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("employee deleted", slog.Int64("employee_id", id))
	return nil
}

func validateEmployeeInput(in *EmployeeInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	required := []struct {
		field string
		empty bool
	}{
		{"first_name", in.FirstName == ""},
		{"last_name", in.LastName == ""},
		{"email", in.Email == ""},
		{"phone", in.Phone == ""},
		{"department_id", in.DepartmentID == 0},
		{"position_id", in.PositionID == 0},
		{"salary", in.Salary == 0},
	}
	for _, f := range required {
		if f.empty {
			return apperror.ValidationFailed(f.field, f.field+" is required.")
		}
	}

	if !emailPattern.MatchString(in.Email) {
		return apperror.ValidationFailed("email", "Invalid email format.")
	}
	if in.Salary < 0 {
		return apperror.ValidationFailed("salary", "Salary must be a positive number.")
	}
	return nil
}
