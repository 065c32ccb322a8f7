package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/staffdesk/internal/apperror"
	"github.com/sakif/staffdesk/internal/auth"
	"github.com/sakif/staffdesk/internal/model"
	"github.com/sakif/staffdesk/internal/repository"
)

// UserService backs the users admin screen. Its rows are the same principals
// AuthService authenticates — creating a user here is equivalent to
// registering one, and updates always re-hash the supplied password.
type UserService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewUserService(users repository.UserRepository, passwords *auth.PasswordService, logger *slog.Logger) *UserService {
	return &UserService{users: users, passwords: passwords, logger: logger}
}

func (s *UserService) List(ctx context.Context, sort repository.Sort) ([]model.User, error) {
	users, err := s.users.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return total, nil
}

func (s *UserService) Create(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if err := validateUserFields(firstName, lastName, email, password); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created", slog.Int64("user_id", user.UserID))

	user.PasswordHash = ""
	return user, nil
}

// Update rewrites the principal, including a freshly hashed password. The
// console always sends the full record, so there is no partial update.
func (s *UserService) Update(ctx context.Context, id int64, firstName, lastName, email, password string) (*model.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if err := validateUserFields(firstName, lastName, email, password); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperror.ValidationFailed("user_id", "user_id is required.")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		UserID:       id,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", slog.Int64("user_id", id))

	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", slog.Int64("user_id", id))
	return nil
}
