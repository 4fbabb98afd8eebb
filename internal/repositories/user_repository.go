package repositories

import (
	"context"

	"vegfeedback/internal/models"
)

// UserRepository defines the interface for user data access.
// Lookups return an apperrors.ErrNotFound error when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
