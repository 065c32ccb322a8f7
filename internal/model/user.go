// Package model defines the data structures shared across the handler,
// service, and repository layers.
package model

import "time"

// User is a login principal: the only entity holding credentials.
//
// PasswordHash is the full bcrypt digest (salt and cost embedded). It is
// tagged `json:"-"` so it can never leak through an API response, and it is
// excluded from list queries entirely — only the login lookup reads it.
type User struct {
	UserID       int64     `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
