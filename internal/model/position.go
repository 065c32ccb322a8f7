package model

import "time"

// Position is a job title within a department.
// DepartmentName is filled by joined reads only.
type Position struct {
	PositionID     int64     `json:"position_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DepartmentID   int64     `json:"department_id"`
	DepartmentName string    `json:"department_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
