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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

type ProjectRepo struct {
	conn *sql.DB
}

// projectSortColumns mirrors the console's sortable project table headers.
// department_name refers to the joined column alias.
var projectSortColumns = map[string]string{
	"project_id":      "p.project_id",
	"title":           "p.title",
	"department_name": "d.name",
	"description":     "p.description",
	"status":          "p.status",
	"created_at":      "p.created_at",
	"updated_at":      "p.updated_at",
}

func (r *ProjectRepo) Create(ctx context.Context, project *model.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO projects (title, description, department_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		project.Title,
		project.Description,
		project.DepartmentID,
		project.Status,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted project id: %w", err)
	}
	project.ProjectID = id
	return nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	var departmentName sql.NullString

	err := r.conn.QueryRowContext(ctx,
		`SELECT p.project_id, p.title, p.description, p.department_id, p.status,
		        p.created_at, p.updated_at, d.name
		 FROM projects p
		 LEFT JOIN departments d ON p.department_id = d.department_id
		 WHERE p.project_id = ?`,
		id,
	).Scan(&p.ProjectID, &p.Title, &p.Description, &p.DepartmentID, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &departmentName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("project", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting project %d: %w", id, err)
	}

	p.DepartmentName = departmentName.String
	return &p, nil
}

func (r *ProjectRepo) List(ctx context.Context, sort repository.Sort) ([]model.Project, error) {
	query := `SELECT p.project_id, p.title, p.description, p.department_id, p.status,
	                 p.created_at, p.updated_at, d.name
	          FROM projects p
	          LEFT JOIN departments d ON p.department_id = d.department_id`
	query += orderClause(projectSortColumns, sort.By, sort.Desc(), "p.project_id ASC")

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		var departmentName sql.NullString
		if err := rows.Scan(&p.ProjectID, &p.Title, &p.Description, &p.DepartmentID, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &departmentName); err != nil {
			return nil, fmt.Errorf("sqlite: scanning project row: %w", err)
		}
		p.DepartmentName = departmentName.String
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating project rows: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sqlite: counting projects: %w", err)
	}
	return total, nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *model.Project) error {
	project.UpdatedAt = time.Now().UTC()

	res, err := r.conn.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, department_id = ?, status = ?, updated_at = ?
		 WHERE project_id = ?`,
		project.Title,
		project.Description,
		project.DepartmentID,
		project.Status,
		project.UpdatedAt,
		project.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating project %d: %w", project.ProjectID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("project", strconv.FormatInt(project.ProjectID, 10))
	}
	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM projects WHERE project_id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting project %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("project", strconv.FormatInt(id, 10))
	}
	return nil
}
