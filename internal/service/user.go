package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is returned for both an unknown email and a wrong
// password.
const invalidCredentials = "invalid email or password"

// UserService handles account registration, login and lookup. Passwords
// are hashed with bcrypt at the configured cost before they reach the
// repository.
type UserService struct {
	server *server.Server
	users  *repository.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(s *server.Server, users *repository.UserRepository) *UserService {
	return &UserService{
		server: s,
		users:  users,
	}
}

// Register hashes password, stores the user and queues a welcome email.
// A duplicate email surfaces as the users_email_key unique violation.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.server.Config.Auth.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errs.NewBadRequestError("Password must not exceed 72 bytes", true, nil,
				[]errs.FieldError{{Field: "password", Error: "must not exceed 72 bytes"}}, nil)
		}
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.enqueueWelcomeEmail(ctx, user)

	return user, nil
}

// enqueueWelcomeEmail is best effort: the account already exists, so a queue
// failure is logged and not returned.
func (s *UserService) enqueueWelcomeEmail(ctx context.Context, user *model.User) {
	if s.server.Job == nil || s.server.Job.Client == nil {
		return
	}

	task, err := job.NewWelcomeEmailTask(user.Email, user.Name)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to build welcome email task")
		return
	}

	info, err := s.server.Job.Client.EnqueueContext(ctx, task)
	if err != nil {
		s.server.Logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email task")
		return
	}

	s.server.Logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("user_id", user.ID).
		Msg("welcome email task enqueued")
}

// Login returns the user whose email and password match.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewUnauthorizedError(invalidCredentials, true)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errs.NewUnauthorizedError(invalidCredentials, true)
	}

	return user, nil
}

// GetByID returns the user with id, or a USER_NOT_FOUND 404.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		code := "USER_NOT_FOUND"
		return nil, errs.NewNotFoundError("User not found", true, &code)
	}
	return user, nil
}
