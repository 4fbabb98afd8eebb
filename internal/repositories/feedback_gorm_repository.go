package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"

	"gorm.io/gorm"
)

// GORMFeedbackRepository is a GORM implementation of FeedbackRepository.
type GORMFeedbackRepository struct {
	db *gorm.DB
}

// NewGORMFeedbackRepository creates a new instance of GORMFeedbackRepository.
func NewGORMFeedbackRepository(db *gorm.DB) *GORMFeedbackRepository {
	return &GORMFeedbackRepository{
		db: db,
	}
}

// Create stores a single vote. CreatedAt is filled in by GORM.
func (r *GORMFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.ID = 0
	feedback.CreatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// CreateBatch stores every row inside one transaction.
func (r *GORMFeedbackRepository) CreateBatch(ctx context.Context, feedback []models.Feedback) error {
	if len(feedback) == 0 {
		return nil
	}
	now := time.Now()
	for i := range feedback {
		feedback[i].ID = 0
		feedback[i].CreatedAt = now
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&feedback).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create feedback batch: %w", err)
	}
	return nil
}

// GetByID retrieves a feedback row by its ID.
func (r *GORMFeedbackRepository) GetByID(ctx context.Context, id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("feedback with ID %d not found", id))
		}
		return nil, fmt.Errorf("failed to get feedback by ID %d: %w", id, err)
	}
	return &feedback, nil
}

// GetByUser retrieves the votes cast by a user, oldest first.
func (r *GORMFeedbackRepository) GetByUser(ctx context.Context, userID uint) ([]models.Feedback, error) {
	feedback := make([]models.Feedback, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to get feedback for user %d: %w", userID, err)
	}
	return feedback, nil
}

// Tally counts likes and dislikes per vegetable with a single GROUP BY.
func (r *GORMFeedbackRepository) Tally(ctx context.Context) ([]models.VoteTally, error) {
	tallies := make([]models.VoteTally, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Select("vegetable_id, " +
			"COUNT(CASE WHEN is_liked THEN 1 END) AS likes, " +
			"COUNT(CASE WHEN is_liked THEN NULL ELSE 1 END) AS dislikes").
		Group("vegetable_id").
		Order("vegetable_id").
		Scan(&tallies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to tally feedback: %w", err)
	}
	return tallies, nil
}
