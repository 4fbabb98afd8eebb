package repositories

import (
	"context"
	"errors"
	"fmt"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"

	"gorm.io/gorm"
)

// GORMVegetableRepository is a GORM implementation of VegetableRepository.
type GORMVegetableRepository struct {
	db *gorm.DB
}

// NewGORMVegetableRepository creates a new instance of GORMVegetableRepository.
func NewGORMVegetableRepository(db *gorm.DB) *GORMVegetableRepository {
	return &GORMVegetableRepository{
		db: db,
	}
}

// GetAll retrieves the catalog ordered by id.
func (r *GORMVegetableRepository) GetAll(ctx context.Context) ([]models.Vegetable, error) {
	vegetables := make([]models.Vegetable, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&vegetables).Error; err != nil {
		return nil, fmt.Errorf("failed to get all vegetables: %w", err)
	}
	return vegetables, nil
}

// GetByID retrieves a single vegetable by its ID.
func (r *GORMVegetableRepository) GetByID(ctx context.Context, id uint) (*models.Vegetable, error) {
	var vegetable models.Vegetable
	if err := r.db.WithContext(ctx).First(&vegetable, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("vegetable with ID %d not found", id))
		}
		return nil, fmt.Errorf("failed to get vegetable by ID %d: %w", id, err)
	}
	return &vegetable, nil
}

// Create inserts a vegetable into the catalog.
func (r *GORMVegetableRepository) Create(ctx context.Context, vegetable *models.Vegetable) error {
	vegetable.ID = 0
	if err := r.db.WithContext(ctx).Create(vegetable).Error; err != nil {
		return fmt.Errorf("failed to create vegetable: %w", err)
	}
	return nil
}

// Count returns the catalog size.
func (r *GORMVegetableRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Vegetable{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count vegetables: %w", err)
	}
	return count, nil
}
