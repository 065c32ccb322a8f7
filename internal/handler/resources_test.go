package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/staffdesk/internal/model"
)

func createDepartment(t *testing.T, router http.Handler, token, name string) int64 {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/departments", token, map[string]string{
		"name":        name,
		"description": name + " department",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var dep model.Department
	decodeResponse(t, rr, &dep)
	return dep.DepartmentID
}

func createPosition(t *testing.T, router http.Handler, token string, departmentID int64) int64 {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/positions", token, map[string]interface{}{
		"title":         "Engineer",
		"description":   "Builds things",
		"department_id": departmentID,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var pos model.Position
	decodeResponse(t, rr, &pos)
	return pos.PositionID
}

func TestDepartmentEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	id := createDepartment(t, router, token, "Engineering")

	t.Run("get", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/departments/%d", id), token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var dep model.Department
		decodeResponse(t, rr, &dep)
		assert.Equal(t, "Engineering", dep.Name)
	})

	t.Run("update", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/departments/%d", id), token, map[string]string{
			"name":        "Platform Engineering",
			"description": "Renamed",
		})
		require.Equal(t, http.StatusOK, rr.Code)

		var dep model.Department
		decodeResponse(t, rr, &dep)
		assert.Equal(t, "Platform Engineering", dep.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/departments", token, map[string]string{
			"description": "anonymous",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/departments/9999", token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/departments/abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/departments/%d", id), token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/departments/%d", id), token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEmployeeEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	depID := createDepartment(t, router, token, "Engineering")
	posID := createPosition(t, router, token, depID)

	newEmployee := func(email string, salary float64) map[string]interface{} {
		return map[string]interface{}{
			"first_name":    "Grace",
			"last_name":     "Hopper",
			"email":         email,
			"phone":         "555-0101",
			"department_id": depID,
			"position_id":   posID,
			"salary":        salary,
		}
	}

	var employeeID int64

	t.Run("create", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/employees", token, newEmployee("grace@example.com", 120000))
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var emp model.Employee
		decodeResponse(t, rr, &emp)
		require.NotZero(t, emp.EmployeeID)
		employeeID = emp.EmployeeID
	})

	t.Run("get joins names", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/employees/%d", employeeID), token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var emp model.Employee
		decodeResponse(t, rr, &emp)
		assert.Equal(t, "Engineering", emp.DepartmentName)
		assert.Equal(t, "Engineer", emp.PositionName)
	})

	t.Run("sorted list", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/employees", token, newEmployee("second@example.com", 90000))
		require.Equal(t, http.StatusCreated, rr.Code)

		rr = doJSON(t, router, http.MethodGet, "/api/employees?sortBy=salary&order=desc", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var employees []model.Employee
		decodeResponse(t, rr, &employees)
		require.Len(t, employees, 2)
		assert.GreaterOrEqual(t, employees[0].Salary, employees[1].Salary)
	})

	t.Run("count", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/employees/count", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Count int64 `json:"count"`
		}
		decodeResponse(t, rr, &res)
		assert.Equal(t, int64(2), res.Count)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/employees", token, newEmployee("grace@example.com", 100))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing salary", func(t *testing.T) {
		body := newEmployee("nopay@example.com", 0)
		rr := doJSON(t, router, http.MethodPost, "/api/employees", token, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/employees/%d", employeeID), token, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestProjectEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")
	depID := createDepartment(t, router, token, "Engineering")

	t.Run("create and get", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]interface{}{
			"title":         "Migration",
			"description":   "Move everything",
			"department_id": depID,
			"status":        "active",
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var project model.Project
		decodeResponse(t, rr, &project)

		rr = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ProjectID), token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		decodeResponse(t, rr, &project)
		assert.Equal(t, "Migration", project.Title)
		assert.Equal(t, "Engineering", project.DepartmentName)
	})

	t.Run("missing status", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]interface{}{
			"title":         "No status",
			"description":   "x",
			"department_id": depID,
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "admin@example.com")

	t.Run("list omits hashes", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/users", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("create and count", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/users", token, map[string]string{
			"first_name": "Second",
			"last_name":  "Admin",
			"email":      "second@example.com",
			"password":   "secret2",
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		rr = doJSON(t, router, http.MethodGet, "/api/users/count", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Count int64 `json:"count"`
		}
		decodeResponse(t, rr, &res)
		assert.Equal(t, int64(2), res.Count)
	})

	t.Run("created user can log in", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "second@example.com",
			"password": "secret2",
		})
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("update to taken email", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/users", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var users []model.User
		decodeResponse(t, rr, &users)
		require.Len(t, users, 2)

		rr = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d", users[1].UserID), token, map[string]string{
			"first_name": "Second",
			"last_name":  "Admin",
			"email":      users[0].Email,
			"password":   "secret2",
		})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
