package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/model"
	"github.com/sakif/staffdesk/internal/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

type EmployeeRepo struct {
	conn *sql.DB
}

var employeeSortColumns = map[string]string{
	"employee_id":     "e.employee_id",
	"first_name":      "e.first_name",
	"last_name":       "e.last_name",
	"email":           "e.email",
	"phone":           "e.phone",
	"salary":          "e.salary",
	"department_name": "d.name",
	"position_name":   "p.title",
	"created_at":      "e.created_at",
	"updated_at":      "e.updated_at",
	"name":            "e.last_name, e.first_name",
}

const employeeSelect = `SELECT e.employee_id, e.first_name, e.last_name, e.email, e.phone,
       e.department_id, e.position_id, e.salary, e.created_at, e.updated_at,
       d.name, p.title
FROM employees e
LEFT JOIN departments d ON e.department_id = d.department_id
LEFT JOIN positions p ON e.position_id = p.position_id`

func (r *EmployeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO employees
		   (first_name, last_name, email, phone, department_id, position_id, salary, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Phone,
		employee.DepartmentID,
		employee.PositionID,
		employee.Salary,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("An employee with this email already exists.")
		}
		return fmt.Errorf("sqlite: inserting employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted employee id: %w", err)
	}
	employee.EmployeeID = id
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	row := r.conn.QueryRowContext(ctx, employeeSelect+` WHERE e.employee_id = ?`, id)

	e, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("employee", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting employee %d: %w", id, err)
	}
	return e, nil
}

func (r *EmployeeRepo) List(ctx context.Context, sort repository.Sort) ([]model.Employee, error) {
	query := employeeSelect + orderClause(employeeSortColumns, sort.By, sort.Desc(), "e.employee_id ASC")

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning employee row: %w", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating employee rows: %w", err)
	}

	return employees, nil
}

func (r *EmployeeRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sqlite: counting employees: %w", err)
	}
	return total, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	employee.UpdatedAt = time.Now().UTC()

	res, err := r.conn.ExecContext(ctx,
		`UPDATE employees
		 SET first_name = ?, last_name = ?, email = ?, phone = ?,
		     department_id = ?, position_id = ?, salary = ?, updated_at = ?
		 WHERE employee_id = ?`,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Phone,
		employee.DepartmentID,
		employee.PositionID,
		employee.Salary,
		employee.UpdatedAt,
		employee.EmployeeID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("An employee with this email already exists.")
		}
		return fmt.Errorf("sqlite: updating employee %d: %w", employee.EmployeeID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("employee", strconv.FormatInt(employee.EmployeeID, 10))
	}
	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting employee %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("employee", strconv.FormatInt(id, 10))
	}
	return nil
}

// scanEmployee reads one joined employee row. Taking the Scan func lets it
// serve both QueryRow and Rows.
func scanEmployee(scan func(dest ...any) error) (*model.Employee, error) {
	var e model.Employee
	var departmentName, positionName sql.NullString

	err := scan(
		&e.EmployeeID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.DepartmentID,
		&e.PositionID,
		&e.Salary,
		&e.CreatedAt,
		&e.UpdatedAt,
		&departmentName,
		&positionName,
	)
	if err != nil {
		return nil, err
	}

	e.DepartmentName = departmentName.String
	e.PositionName = positionName.String
	return &e, nil
}
