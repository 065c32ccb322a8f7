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

var _ repository.PositionRepository = (*PositionRepo)(nil)

type PositionRepo struct {
	conn *sql.DB
}

func (r *PositionRepo) Create(ctx context.Context, position *model.Position) error {
	now := time.Now().UTC()
	position.CreatedAt = now
	position.UpdatedAt = now

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO positions (title, description, department_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		position.Title,
		position.Description,
		position.DepartmentID,
		position.CreatedAt,
		position.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting position: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted position id: %w", err)
	}
	position.PositionID = id
	return nil
}

// GetByID returns the position with its department name joined in.
// LEFT JOIN keeps the row readable even if the department was deleted out
// from under it.
func (r *PositionRepo) GetByID(ctx context.Context, id int64) (*model.Position, error) {
	var p model.Position
	var departmentName sql.NullString

	err := r.conn.QueryRowContext(ctx,
		`SELECT p.position_id, p.title, p.description, p.department_id,
		        p.created_at, p.updated_at, d.name
		 FROM positions p
		 LEFT JOIN departments d ON p.department_id = d.department_id
		 WHERE p.position_id = ?`,
		id,
	).Scan(&p.PositionID, &p.Title, &p.Description, &p.DepartmentID,
		&p.CreatedAt, &p.UpdatedAt, &departmentName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("position", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting position %d: %w", id, err)
	}

	p.DepartmentName = departmentName.String
	return &p, nil
}

func (r *PositionRepo) List(ctx context.Context) ([]model.Position, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT p.position_id, p.title, p.description, p.department_id,
		        p.created_at, p.updated_at, d.name
		 FROM positions p
		 LEFT JOIN departments d ON p.department_id = d.department_id
		 ORDER BY p.position_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing positions: %w", err)
	}
	defer rows.Close()

	positions := []model.Position{}
	for rows.Next() {
		var p model.Position
		var departmentName sql.NullString
		if err := rows.Scan(&p.PositionID, &p.Title, &p.Description, &p.DepartmentID,
			&p.CreatedAt, &p.UpdatedAt, &departmentName); err != nil {
			return nil, fmt.Errorf("sqlite: scanning position row: %w", err)
		}
		p.DepartmentName = departmentName.String
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating position rows: %w", err)
	}

	return positions, nil
}

func (r *PositionRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM positions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sqlite: counting positions: %w", err)
	}
	return total, nil
}

func (r *PositionRepo) Update(ctx context.Context, position *model.Position) error {
	position.UpdatedAt = time.Now().UTC()

	res, err := r.conn.ExecContext(ctx,
		`UPDATE positions SET title = ?, description = ?, department_id = ?, updated_at = ?
		 WHERE position_id = ?`,
		position.Title,
		position.Description,
		position.DepartmentID,
		position.UpdatedAt,
		position.PositionID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating position %d: %w", position.PositionID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("position", strconv.FormatInt(position.PositionID, 10))
	}
	return nil
}

func (r *PositionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM positions WHERE position_id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting position %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("position", strconv.FormatInt(id, 10))
	}
	return nil
}
