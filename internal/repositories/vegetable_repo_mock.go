package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
)

// MockVegetableRepository is an in-memory implementation of VegetableRepository.
type MockVegetableRepository struct {
	vegetables map[uint]models.Vegetable
	nextID     uint
	mu         sync.RWMutex
}

// NewMockVegetableRepository creates a new instance of MockVegetableRepository.
func NewMockVegetableRepository() *MockVegetableRepository {
	return &MockVegetableRepository{
		vegetables: make(map[uint]models.Vegetable),
		nextID:     1,
	}
}

// GetAll returns the catalog ordered by id.
func (r *MockVegetableRepository) GetAll(ctx context.Context) ([]models.Vegetable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Vegetable, 0, len(r.vegetables))
	for _, v := range r.vegetables {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetByID returns a vegetable by its ID.
func (r *MockVegetableRepository) GetByID(ctx context.Context, id uint) (*models.Vegetable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vegetables[id]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("vegetable with ID %d not found", id))
	}
	return &v, nil
}

// Create adds a vegetable to the catalog.
func (r *MockVegetableRepository) Create(ctx context.Context, vegetable *models.Vegetable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vegetable.ID = r.nextID
	r.nextID++
	r.vegetables[vegetable.ID] = *vegetable
	return nil
}

// Count returns the catalog size.
func (r *MockVegetableRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.vegetables)), nil
}
