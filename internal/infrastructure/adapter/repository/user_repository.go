package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/slot-booking/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/slot-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/slot-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/slot-booking/internal/infrastructure/adapter/model"
)

// UserRepository implements the user repository port using GORM
type UserRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when getting user", map[string]any{
				"user_id": id,
				"error":   result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapEntityNotFoundError(result.Error, database.EntityTypeUser)
	}

	return userModel.ToEntity(), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when getting user by username", map[string]any{
				"username": username,
				"error":    result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapEntityNotFoundError(result.Error, database.EntityTypeUser)
	}

	return userModel.ToEntity(), nil
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "create user")
	}
	return nil
}

var _ persistence.UserRepository = (*UserRepository)(nil)
