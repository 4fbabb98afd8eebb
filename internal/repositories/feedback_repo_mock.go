package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
)

// MockFeedbackRepository is an in-memory implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	feedback map[uint]models.Feedback
	nextID   uint
	mu       sync.RWMutex
}

// NewMockFeedbackRepository creates a new instance of MockFeedbackRepository.
func NewMockFeedbackRepository() *MockFeedbackRepository {
	return &MockFeedbackRepository{
		feedback: make(map[uint]models.Feedback),
		nextID:   1,
	}
}

// Create stores a single vote.
func (r *MockFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.insert(feedback, time.Now())
	return nil
}

// CreateBatch stores every row under one lock, so readers see either all
// of them or none.
func (r *MockFeedbackRepository) CreateBatch(ctx context.Context, feedback []models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for i := range feedback {
		r.insert(&feedback[i], now)
	}
	return nil
}

func (r *MockFeedbackRepository) insert(feedback *models.Feedback, now time.Time) {
	feedback.ID = r.nextID
	r.nextID++
	feedback.CreatedAt = now
	r.feedback[feedback.ID] = *feedback
}

// GetByID returns a feedback row by its ID.
func (r *MockFeedbackRepository) GetByID(ctx context.Context, id uint) (*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.feedback[id]
	if !ok {
		return nil, apperrors.NotFound(fmt.Sprintf("feedback with ID %d not found", id))
	}
	return &f, nil
}

// GetByUser returns the votes cast by a user, oldest first.
func (r *MockFeedbackRepository) GetByUser(ctx context.Context, userID uint) ([]models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Feedback, 0)
	for _, f := range r.feedback {
		if f.UserID == userID {
			list = append(list, f)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Tally counts likes and dislikes per vegetable, ordered by vegetable id.
func (r *MockFeedbackRepository) Tally(ctx context.Context) ([]models.VoteTally, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byVegetable := make(map[uint]*models.VoteTally)
	for _, f := range r.feedback {
		t, ok := byVegetable[f.VegetableID]
		if !ok {
			t = &models.VoteTally{VegetableID: f.VegetableID}
			byVegetable[f.VegetableID] = t
		}
		if f.IsLiked {
			t.Likes++
		} else {
			t.Dislikes++
		}
	}

	tallies := make([]models.VoteTally, 0, len(byVegetable))
	for _, t := range byVegetable {
		tallies = append(tallies, *t)
	}
	sort.Slice(tallies, func(i, j int) bool { return tallies[i].VegetableID < tallies[j].VegetableID })
	return tallies, nil
}
