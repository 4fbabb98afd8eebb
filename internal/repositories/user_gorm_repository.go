package repositories

import (
	"context"
	"errors"
	"fmt"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/database"
	"vegfeedback/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database. The id comes from the
// table's auto-increment column; unique indexes on email and username
// turn races into conflicts.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = 0
	err := r.db.WithContext(ctx).Create(user).Error
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err) {
		if _, lookupErr := r.GetByEmail(ctx, user.Email); lookupErr == nil {
			return apperrors.Conflict(fmt.Sprintf("email '%s' already registered", user.Email))
		}
		return apperrors.Conflict(fmt.Sprintf("username '%s' already taken", user.Username))
	}
	return fmt.Errorf("failed to create user: %w", err)
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.first(ctx, "username = ?", username, "username "+username)
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "email = ?", email, "email "+email)
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.first(ctx, "id = ?", id, fmt.Sprintf("ID %d", id))
}

func (r *GORMUserRepository) first(ctx context.Context, query string, arg interface{}, what string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("user with %s not found", what))
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", what, err)
	}
	return &user, nil
}
