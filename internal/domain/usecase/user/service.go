package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/slot-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/usecase"
)

// Service handles registration, login and account lookups
type Service struct {
	users        persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a user use case instance
func NewService(
	users persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account. An empty role defaults to the regular
// user role; the username must not be taken yet.
func (s *Service) Register(ctx context.Context, username, password, role string) (*entity.User, error) {
	if role == "" {
		role = string(entity.RoleUser)
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateUser
	}

	account, err := entity.NewUser(username, password, entity.Role(role), s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, account); err != nil {
		s.logger.Error("Failed to register user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  account.ID,
		"username": account.Username,
		"role":     string(account.Role),
	})

	return account, nil
}

// Login authenticates by username and password. The credential comparison is
// plaintext, kept from the original system; hashing is out of scope here.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, error) {
	account, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.CheckPassword(password) {
		s.logger.Warn("Failed login attempt", map[string]any{
			"username": username,
		})
		return nil, errs.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, errs.ErrUserInvalid
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id":  account.ID,
		"username": account.Username,
	})

	return account, nil
}

// GetByID retrieves an account
func (s *Service) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.users.GetByID(ctx, id)
}

var _ usecase.UserUseCase = (*Service)(nil)
