package services

import (
	"context"
	"fmt"

	"vegfeedback/internal/models"
	"vegfeedback/internal/repositories"
	"vegfeedback/pkg/logger"
)

func imageURL(s string) *string { return &s }

// DefaultCatalog is the vegetable list seeded into an empty store.
var DefaultCatalog = []models.Vegetable{
	{Name: "Spinach Curry", MealType: models.MealLunch, ImageURL: imageURL("https://images.unsplash.com/photo-1576046563361-7e1108b8c8d3?auto=format&fit=crop&w=500&q=80")},
	{Name: "Aloo Gobi", MealType: models.MealLunch, ImageURL: imageURL("https://images.unsplash.com/photo-1585937421612-70a008356fbe?auto=format&fit=crop&w=500&q=80")},
	{Name: "Bhindi Masala", MealType: models.MealLunch, ImageURL: imageURL("https://images.unsplash.com/photo-1601050690597-df0568f70950?auto=format&fit=crop&w=500&q=80")},
	{Name: "Mixed Vegetable Sabzi", MealType: models.MealLunch, ImageURL: imageURL("https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=500&q=80")},
	{Name: "Dal Tadka", MealType: models.MealDinner, ImageURL: imageURL("https://images.unsplash.com/photo-1546833999-b9f581a1996d?auto=format&fit=crop&w=500&q=80")},
	{Name: "Baingan Bharta", MealType: models.MealDinner, ImageURL: imageURL("https://images.unsplash.com/photo-1631292784640-2b24be784d5d?auto=format&fit=crop&w=500&q=80")},
	{Name: "Chana Masala", MealType: models.MealDinner, ImageURL: imageURL("https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&w=500&q=80")},
	{Name: "Matar Paneer", MealType: models.MealDinner, ImageURL: imageURL("https://images.unsplash.com/photo-1631452180519-c014fe946bc7?auto=format&fit=crop&w=500&q=80")},
}

// VegetableService serves the vegetable catalog.
type VegetableService struct {
	repo repositories.VegetableRepository
}

// NewVegetableService creates a new VegetableService.
func NewVegetableService(repo repositories.VegetableRepository) *VegetableService {
	return &VegetableService{
		repo: repo,
	}
}

// SeedCatalog inserts catalog when the store has no vegetables yet and
// returns the number of rows inserted.
func (s *VegetableService) SeedCatalog(ctx context.Context, catalog []models.Vegetable) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for _, v := range catalog {
		vegetable := v
		if err := s.repo.Create(ctx, &vegetable); err != nil {
			return 0, fmt.Errorf("failed to seed vegetable %s: %w", v.Name, err)
		}
		logger.Debug().Uint("id", vegetable.ID).Str("name", vegetable.Name).Msg("seeded vegetable")
	}
	return len(catalog), nil
}

// GetVegetables returns the catalog, optionally restricted to one meal type.
// An empty mealType returns everything.
func (s *VegetableService) GetVegetables(ctx context.Context, mealType models.MealType) ([]models.Vegetable, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if mealType == "" {
		return all, nil
	}
	return filterVegetables(all, mealType), nil
}

// GetVegetable returns one vegetable.
func (s *VegetableService) GetVegetable(ctx context.Context, id uint) (*models.Vegetable, error) {
	return s.repo.GetByID(ctx, id)
}
