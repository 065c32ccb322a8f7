package model

import "time"

// Employee is a staff record. It carries no credentials — employees are data
// managed through the admin console, distinct from the User principals who
// log into it.
//
// DepartmentName and PositionName are populated by list/get queries that join
// the related tables; they are never written back.
type Employee struct {
	EmployeeID     int64     `json:"employee_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DepartmentID   int64     `json:"department_id"`
	PositionID     int64     `json:"position_id"`
	Salary         float64   `json:"salary"`
	DepartmentName string    `json:"department_name,omitempty"`
	PositionName   string    `json:"position_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
