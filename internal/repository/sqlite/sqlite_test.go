package sqlite

import (
	"context"
	"testing"

	"github.com/sakif/staffdesk/internal/model"
)

// newTestDB opens an in-memory database with the full schema applied.
// Each test gets its own isolated store.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(:memory:) error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestDepartment inserts a department and fails the test on error.
func createTestDepartment(t *testing.T, db *DB, name string) *model.Department {
	t.Helper()
	d := &model.Department{Name: name, Description: name + " dept"}
	if err := db.Departments().Create(context.Background(), d); err != nil {
		t.Fatalf("creating test department: %v", err)
	}
	return d
}

// createTestPosition inserts a position in the given department.
func createTestPosition(t *testing.T, db *DB, title string, departmentID int64) *model.Position {
	t.Helper()
	p := &model.Position{Title: title, DepartmentID: departmentID}
	if err := db.Positions().Create(context.Background(), p); err != nil {
		t.Fatalf("creating test position: %v", err)
	}
	return p
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	// Second run must not error on the existing schema.
	if err := db.migrate(); err != nil {
		t.Fatalf("migrate() on existing schema error = %v", err)
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"email": "email",
		"name":  "last_name, first_name",
	}

	tests := []struct {
		by   string
		desc bool
		want string
	}{
		{"email", false, " ORDER BY email ASC"},
		{"email", true, " ORDER BY email DESC"},
		{"name", true, " ORDER BY last_name DESC, first_name DESC"},
		{"password", false, " ORDER BY user_id ASC"},            // not allow-listed
		{"email; DROP TABLE users", true, " ORDER BY user_id ASC"}, // injection attempt
		{"", false, " ORDER BY user_id ASC"},
	}

	for _, tt := range tests {
		got := orderClause(allowed, tt.by, tt.desc, "user_id ASC")
		if got != tt.want {
			t.Errorf("orderClause(%q, desc=%v) = %q, want %q", tt.by, tt.desc, got, tt.want)
		}
	}
}
