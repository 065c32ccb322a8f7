package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/model"
	"github.com/sakif/staffdesk/internal/repository"
)

type fakeEmployeeRepo struct {
	byID   map[int64]*model.Employee
	nextID int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[int64]*model.Employee)}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	f.nextID++
	e.EmployeeID = f.nextID
	stored := *e
	f.byID[e.EmployeeID] = &stored
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, apperror.NotFound("employee", "id")
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ repository.Sort) ([]model.Employee, error) {
	employees := make([]model.Employee, 0, len(f.byID))
	for _, e := range f.byID {
		employees = append(employees, *e)
	}
	return employees, nil
}

func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	if _, ok := f.byID[e.EmployeeID]; !ok {
		return apperror.NotFound("employee", "id")
	}
	stored := *e
	f.byID[e.EmployeeID] = &stored
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return apperror.NotFound("employee", "id")
	}
	delete(f.byID, id)
	return nil
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func validEmployeeInput() EmployeeInput {
	return EmployeeInput{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Phone:        "555-0100",
		DepartmentID: 1,
		PositionID:   1,
		Salary:       90000,
	}
}

func TestEmployeeCreate(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testLogger())

	employee, err := svc.Create(context.Background(), validEmployeeInput())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if employee.EmployeeID == 0 {
		t.Error("Create() did not assign an id")
	}

	got, err := svc.GetByID(context.Background(), employee.EmployeeID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("email = %q, want %q", got.Email, "ada@example.com")
	}
}

func TestEmployeeValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testLogger())

	mutations := map[string]func(*EmployeeInput){
		"first_name":    func(in *EmployeeInput) { in.FirstName = " " },
		"last_name":     func(in *EmployeeInput) { in.LastName = "" },
		"email":         func(in *EmployeeInput) { in.Email = "" },
		"phone":         func(in *EmployeeInput) { in.Phone = "" },
		"department_id": func(in *EmployeeInput) { in.DepartmentID = 0 },
		"position_id":   func(in *EmployeeInput) { in.PositionID = 0 },
		"salary":        func(in *EmployeeInput) { in.Salary = 0 },
		"bad email":     func(in *EmployeeInput) { in.Email = "not-an-email" },
		"negative pay":  func(in *EmployeeInput) { in.Salary = -1 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			in := validEmployeeInput()
			mutate(&in)
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestEmployeeUpdateUnknownID(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), testLogger())

	if _, err := svc.Update(context.Background(), 42, validEmployeeInput()); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}
