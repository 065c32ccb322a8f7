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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo is the credential store: the users table backs both login and the
// users admin screen. List and GetByID never select the password column.
type UserRepo struct {
	conn *sql.DB
}

// userSortColumns is the allow-list for list sorting. "name" sorts by last
// name then first name, matching the console's combined name column.
var userSortColumns = map[string]string{
	"user_id":    "user_id",
	"first_name": "first_name",
	"last_name":  "last_name",
	"email":      "email",
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "last_name, first_name",
}

func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, email, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Email already exists.")
		}
		return fmt.Errorf("sqlite: inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading inserted user id: %w", err)
	}
	user.UserID = id
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := r.conn.QueryRowContext(ctx,
		`SELECT user_id, first_name, last_name, email, password, created_at, updated_at
		 FROM users WHERE email = ?`,
		email,
	).Scan(
		&u.UserID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", email)
		}
		return nil, fmt.Errorf("sqlite: getting user by email: %w", err)
	}

	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User

	err := r.conn.QueryRowContext(ctx,
		`SELECT user_id, first_name, last_name, email, created_at, updated_at
		 FROM users WHERE user_id = ?`,
		id,
	).Scan(
		&u.UserID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}

	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, sort repository.Sort) ([]model.User, error) {
	query := `SELECT user_id, first_name, last_name, email, created_at, updated_at FROM users`
	query += orderClause(userSortColumns, sort.By, sort.Desc(), "user_id ASC")

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.UserID,
			&u.FirstName,
			&u.LastName,
			&u.Email,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating user rows: %w", err)
	}

	return users, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("sqlite: counting users: %w", err)
	}
	return total, nil
}

func (r *UserRepo) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now().UTC()

	res, err := r.conn.ExecContext(ctx,
		`UPDATE users
		 SET first_name = ?, last_name = ?, email = ?, password = ?, updated_at = ?
		 WHERE user_id = ?`,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.UpdatedAt,
		user.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Email already in use by another user.")
		}
		return fmt.Errorf("sqlite: updating user %d: %w", user.UserID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("user", strconv.FormatInt(user.UserID, 10))
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting user %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("user", strconv.FormatInt(id, 10))
	}
	return nil
}
