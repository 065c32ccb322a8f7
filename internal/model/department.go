package model

import "time"

// Department is an organizational unit that positions, projects, and
// employees reference by ID.
type Department struct {
	DepartmentID int64     `json:"department_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
