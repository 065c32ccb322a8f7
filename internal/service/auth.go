// Package service contains the business logic layer: validation and
// orchestration between the HTTP handlers and the repositories. Services
// return apperror sentinels; they know nothing about HTTP.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/auth"
	"github.com/sakif/staffdesk/internal/model"
	"github.com/sakif/staffdesk/internal/repository"
)

// emailPattern is the console's basic local@domain check. Intentionally
// loose; the source of truth for deliverability is the mail system, not us.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService orchestrates registration and login against the credential
// store. It is the only service that touches password hashes.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// LoginResult bundles the issued token with the principal's public identity,
// which the console stores client-side for the session.
type LoginResult struct {
	Token string
	User  *model.User
}

// Register creates a new principal.
//
// Order matters: validate, check for an existing email, hash, insert. Every
// failure path returns before the insert, so a failed registration never
// leaves a partial row. The users.email UNIQUE constraint backs the
// check-then-insert against a concurrent registration with the same email —
// the loser of that race gets the same Conflict error.
//
// Registration deliberately returns no token; the client logs in afterwards.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if err := validateUserFields(firstName, lastName, email, password); err != nil {
		return err
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return apperror.Conflict("Email already exists.")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("checking existing email: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		if len(password) > 72 {
			return apperror.ValidationFailed("password", "Password must be 72 characters or fewer.")
		}
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.Int64("user_id", user.UserID),
		slog.String("email", user.Email),
	)
	return nil
}

// Login verifies credentials and issues a bearer token whose claims are the
// principal's identity fields, never the hash.
//
// "User does not exist." and "Wrong password." are kept distinct for parity
// with the console's existing behavior.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperror.ValidationFailed("email", "Email and password are required.")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("User does not exist.")
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized("Wrong password.")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issuing token for user %d: %w", user.UserID, err)
	}

	s.logger.Info("user logged in", slog.Int64("user_id", user.UserID))

	user.PasswordHash = ""
	return &LoginResult{Token: token, User: user}, nil
}

// Profile returns the principal behind an authenticated request.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// validateUserFields is shared by registration and the users admin screen —
// both create principals and enforce the same rules.
func validateUserFields(firstName, lastName, email, password string) error {
	if firstName == "" {
		return apperror.ValidationFailed("first_name", "first_name is required.")
	}
	if lastName == "" {
		return apperror.ValidationFailed("last_name", "last_name is required.")
	}
	if email == "" {
		return apperror.ValidationFailed("email", "email is required.")
	}
	if password == "" {
		return apperror.ValidationFailed("password", "password is required.")
	}
	if !emailPattern.MatchString(email) {
		return apperror.ValidationFailed("email", "Invalid email format.")
	}
	return nil
}
