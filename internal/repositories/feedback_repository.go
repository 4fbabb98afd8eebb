package repositories

import (
	"context"

	"vegfeedback/internal/models"
)

// FeedbackRepository defines the interface for feedback data access.
// Feedback rows are never updated or deleted.
type FeedbackRepository interface {
	// Create stores a single vote. Existence of the user and vegetable is
	// not checked here.
	Create(ctx context.Context, feedback *models.Feedback) error
	// CreateBatch stores all rows or none of them.
	CreateBatch(ctx context.Context, feedback []models.Feedback) error
	GetByID(ctx context.Context, id uint) (*models.Feedback, error)
	GetByUser(ctx context.Context, userID uint) ([]models.Feedback, error)
	// Tally counts likes and dislikes per vegetable. Vegetables without
	// votes are absent from the result.
	Tally(ctx context.Context) ([]models.VoteTally, error)
}
