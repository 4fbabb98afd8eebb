package repositories

import (
	"context"

	"vegfeedback/internal/models"
)

// VegetableRepository defines the interface for the vegetable catalog.
type VegetableRepository interface {
	// GetAll returns the catalog ordered by id.
	GetAll(ctx context.Context) ([]models.Vegetable, error)
	GetByID(ctx context.Context, id uint) (*models.Vegetable, error)
	Create(ctx context.Context, vegetable *models.Vegetable) error
	Count(ctx context.Context) (int64, error)
}
