// Package sqlite implements the repository interfaces on an embedded SQLite
// database through the pure-Go modernc.org/sqlite driver. Tests open the
// store at ":memory:".
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DB owns the connection pool and hands out per-table repositories that
// share it. The server creates one DB at startup and closes it on shutdown.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at path, applies the connection
// pragmas, and bootstraps the schema.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Each pooled connection to ":memory:" would get its own empty database,
	// so the in-memory store must stay on a single connection.
	if path == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL keeps reads running while a write is in flight; foreign keys are
	// off by default in SQLite and the schema relies on them.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Users() *UserRepo             { return &UserRepo{conn: db.conn} }
func (db *DB) Employees() *EmployeeRepo     { return &EmployeeRepo{conn: db.conn} }
func (db *DB) Departments() *DepartmentRepo { return &DepartmentRepo{conn: db.conn} }
func (db *DB) Positions() *PositionRepo     { return &PositionRepo{conn: db.conn} }
func (db *DB) Projects() *ProjectRepo       { return &ProjectRepo{conn: db.conn} }

// migrate bootstraps the schema. Every statement is idempotent, so this is
// safe to run on an existing database.
//
// users.email and employees.email carry UNIQUE constraints: the services do a
// readable check-then-insert, and the constraint closes the race window
// between the check and the insert.
func (db *DB) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id    INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			password   TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS departments (
			department_id INTEGER PRIMARY KEY AUTOINCREMENT,
			name          TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS positions (
			position_id   INTEGER PRIMARY KEY AUTOINCREMENT,
			title         TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			department_id INTEGER NOT NULL REFERENCES departments(department_id),
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			project_id    INTEGER PRIMARY KEY AUTOINCREMENT,
			title         TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			department_id INTEGER NOT NULL REFERENCES departments(department_id),
			status        TEXT NOT NULL,
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			employee_id   INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone         TEXT NOT NULL,
			department_id INTEGER NOT NULL REFERENCES departments(department_id),
			position_id   INTEGER NOT NULL REFERENCES positions(position_id),
			salary        REAL NOT NULL,
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_positions_department_id ON positions(department_id)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_department_id ON projects(department_id)`,
		`CREATE INDEX IF NOT EXISTS idx_employees_department_id ON employees(department_id)`,
		`CREATE INDEX IF NOT EXISTS idx_employees_position_id ON employees(position_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The driver does not export a typed error for this, so match on
// the stable message prefix SQLite emits.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// orderClause resolves a requested sort column against an allow-list and
// returns a safe ORDER BY fragment. Unknown columns get the fallback.
func orderClause(allowed map[string]string, by string, desc bool, fallback string) string {
	expr, ok := allowed[by]
	if !ok {
		return " ORDER BY " + fallback
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	// Composite expressions apply the direction to every column.
	cols := strings.Split(expr, ",")
	for i, c := range cols {
		cols[i] = strings.TrimSpace(c) + " " + dir
	}
	return " ORDER BY " + strings.Join(cols, ", ")
}
