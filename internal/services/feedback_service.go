package services

import (
	"context"
	"errors"
	"fmt"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
	"vegfeedback/internal/repositories"
	"vegfeedback/internal/validation"
	"vegfeedback/pkg/logger"

	"github.com/google/uuid"
)

// FeedbackService records votes and computes satisfaction statistics.
type FeedbackService struct {
	feedbackRepo  repositories.FeedbackRepository
	vegetableRepo repositories.VegetableRepository
	validate      *validation.Validator
	publisher     EventPublisher
}

// NewFeedbackService creates a new FeedbackService. publisher may be nil.
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, vegetableRepo repositories.VegetableRepository, validate *validation.Validator, publisher EventPublisher) *FeedbackService {
	return &FeedbackService{
		feedbackRepo:  feedbackRepo,
		vegetableRepo: vegetableRepo,
		validate:      validate,
		publisher:     publisher,
	}
}

// SubmitFeedback stores one independent vote. Repeated votes for the same
// vegetable are kept as separate rows.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, userID uint, input models.FeedbackInput) (*models.Feedback, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}
	if _, err := s.vegetableRepo.GetByID(ctx, input.VegetableID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validation(fmt.Sprintf("Vegetable %d does not exist", input.VegetableID))
		}
		return nil, err
	}

	feedback := &models.Feedback{
		UserID:      userID,
		VegetableID: input.VegetableID,
		IsLiked:     *input.IsLiked,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	publish(s.publisher, RoutingFeedbackCreated, newFeedbackEvent(userID, "", "", []models.Feedback{*feedback}))
	return feedback, nil
}

// SubmitSession stores a complete submission session at once. Every
// vegetable of the catalog (or of input.MealType when set) needs exactly
// one decision; later duplicates overwrite earlier ones. Nothing is stored
// unless the whole batch is accepted.
func (s *FeedbackService) SubmitSession(ctx context.Context, userID uint, input models.BatchFeedbackInput) ([]models.Feedback, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	catalog, err := s.vegetableRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if input.MealType != "" {
		catalog = filterVegetables(catalog, input.MealType)
	}
	if len(catalog) == 0 {
		return nil, apperrors.Validation("No vegetables available for feedback")
	}

	session := NewSubmissionSession(catalog)
	for _, r := range input.Responses {
		if err := session.Record(r.VegetableID, *r.IsLiked); err != nil {
			return nil, err
		}
	}

	submissionID := uuid.NewString()
	rows, err := session.Feedback(userID, submissionID)
	if err != nil {
		return nil, err
	}
	if err := s.feedbackRepo.CreateBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to store feedback submission: %w", err)
	}

	logger.Info().Uint("user_id", userID).Str("submission_id", submissionID).Int("votes", len(rows)).Msg("feedback submission stored")
	publish(s.publisher, RoutingFeedbackSubmitted, newFeedbackEvent(userID, submissionID, input.MealType, rows))
	return rows, nil
}

// GetUserFeedback lists the votes cast by a user.
func (s *FeedbackService) GetUserFeedback(ctx context.Context, userID uint) ([]models.Feedback, error) {
	return s.feedbackRepo.GetByUser(ctx, userID)
}

// GetFeedbackStats returns satisfaction statistics for the whole catalog.
func (s *FeedbackService) GetFeedbackStats(ctx context.Context) ([]models.FeedbackStats, error) {
	catalog, err := s.vegetableRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tallies, err := s.feedbackRepo.Tally(ctx)
	if err != nil {
		return nil, err
	}
	return BuildFeedbackStats(catalog, tallies), nil
}

// GetFeedbackStatsByMealType filters GetFeedbackStats to one meal type.
// Unknown meal types yield an empty result.
func (s *FeedbackService) GetFeedbackStatsByMealType(ctx context.Context, mealType models.MealType) ([]models.FeedbackStats, error) {
	stats, err := s.GetFeedbackStats(ctx)
	if err != nil {
		return nil, err
	}
	return FilterStatsByMealType(stats, mealType), nil
}

// GetStatsSummary returns the dashboard digest. An empty mealType covers
// the whole catalog.
func (s *FeedbackService) GetStatsSummary(ctx context.Context, mealType models.MealType) (models.StatsSummary, error) {
	var (
		stats []models.FeedbackStats
		err   error
	)
	if mealType == "" {
		stats, err = s.GetFeedbackStats(ctx)
	} else {
		stats, err = s.GetFeedbackStatsByMealType(ctx, mealType)
	}
	if err != nil {
		return models.StatsSummary{}, err
	}
	return SummarizeStats(stats), nil
}

func filterVegetables(vegetables []models.Vegetable, mealType models.MealType) []models.Vegetable {
	filtered := make([]models.Vegetable, 0, len(vegetables))
	for _, v := range vegetables {
		if v.MealType == mealType {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
