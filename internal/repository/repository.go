// Package repository declares the storage interfaces consumed by the service
// layer. The sqlite subpackage is the only implementation; services depend on
// these interfaces so tests can substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/sakif/staffdesk/internal/model"
)

// Sort carries the caller's sort request straight from the query string.
// Implementations resolve By against a per-table allow-list and fall back to
// the table's default order for anything unknown, so no caller-supplied text
// ever reaches the SQL.
type Sort struct {
	By    string
	Order string
}

// Desc reports whether the requested direction is descending. Anything other
// than "desc" (case-insensitive) sorts ascending.
func (s Sort) Desc() bool {
	return s.Order == "desc" || s.Order == "DESC"
}

// UserRepository stores login principals. It is the credential store: the
// only table carrying password hashes.
type UserRepository interface {
	// Create inserts a new user and fills UserID and timestamps.
	// Returns apperror.ErrConflict if the email is already taken.
	Create(ctx context.Context, user *model.User) error
	// GetByEmail looks up a principal by exact email match, password hash
	// included. Returns apperror.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByID returns a user without exposing whether the hash is set.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, sort Sort) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	// Update rewrites all mutable fields including the password hash.
	// Returns apperror.ErrConflict if the email belongs to another user.
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	List(ctx context.Context, sort Sort) ([]model.Employee, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id int64) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Update(ctx context.Context, department *model.Department) error
	Delete(ctx context.Context, id int64) error
}

type PositionRepository interface {
	Create(ctx context.Context, position *model.Position) error
	GetByID(ctx context.Context, id int64) (*model.Position, error)
	List(ctx context.Context) ([]model.Position, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, position *model.Position) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	List(ctx context.Context, sort Sort) ([]model.Project, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id int64) error
}
