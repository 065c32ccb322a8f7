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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

type DepartmentRepo struct {
	conn *sql.DB
}

func (r *DepartmentRepo) Create(ctx context.Context, department *model.Department) error {
	now := time.Now().UTC()
	department.CreatedAt = now
	department.UpdatedAt = now

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO departments (name, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		department.Name,
		department.Description,
		department.CreatedAt,
		department.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting department: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted department id: %w", err)
	}
	department.DepartmentID = id
	return nil
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var d model.Department

	err := r.conn.QueryRowContext(ctx,
		`SELECT department_id, name, description, created_at, updated_at
		 FROM departments WHERE department_id = ?`,
		id,
	).Scan(&d.DepartmentID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("department", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting department %d: %w", id, err)
	}

	return &d, nil
}

func (r *DepartmentRepo) List(ctx context.Context) ([]model.Department, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT department_id, name, description, created_at, updated_at
		 FROM departments ORDER BY department_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing departments: %w", err)
	}
	defer rows.Close()

	departments := []model.Department{}
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.DepartmentID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning department row: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating department rows: %w", err)
	}

	return departments, nil
}

func (r *DepartmentRepo) Update(ctx context.Context, department *model.Department) error {
	department.UpdatedAt = time.Now().UTC()

	res, err := r.conn.ExecContext(ctx,
		`UPDATE departments SET name = ?, description = ?, updated_at = ?
		 WHERE department_id = ?`,
		department.Name,
		department.Description,
		department.UpdatedAt,
		department.DepartmentID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating department %d: %w", department.DepartmentID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("department", strconv.FormatInt(department.DepartmentID, 10))
	}
	return nil
}

func (r *DepartmentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM departments WHERE department_id = ?`, id)
	if err != nil {
		// Positions, projects, and employees reference departments; deleting a
		// department still in use trips the FK constraint.
		return fmt.Errorf("sqlite: deleting department %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("department", strconv.FormatInt(id, 10))
	}
	return nil
}
