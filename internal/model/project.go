package model

import "time"

// Project belongs to a department. Status is a free-form label chosen in the
// console (e.g. "active", "completed"); the API only requires it to be
// non-empty. DepartmentName is filled by joined reads.
type Project struct {
	ProjectID      int64     `json:"project_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DepartmentID   int64     `json:"department_id"`
	Status         string    `json:"status"`
	DepartmentName string    `json:"department_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
