package services

import (
	"fmt"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
)

// SubmissionSession walks a user through a fixed, ordered set of
// vegetables and collects one like/dislike decision per vegetable.
// Decisions can be revisited and overwritten until the session is
// submitted. A session is not safe for concurrent use.
type SubmissionSession struct {
	vegetables []models.Vegetable
	index      map[uint]int
	decisions  map[uint]bool
	cursor     int
}

// NewSubmissionSession starts a session over vegetables in the given order.
func NewSubmissionSession(vegetables []models.Vegetable) *SubmissionSession {
	s := &SubmissionSession{
		vegetables: vegetables,
		index:      make(map[uint]int, len(vegetables)),
		decisions:  make(map[uint]bool, len(vegetables)),
	}
	for i, v := range vegetables {
		s.index[v.ID] = i
	}
	return s
}

// Len is the number of vegetables in the session.
func (s *SubmissionSession) Len() int {
	return len(s.vegetables)
}

// Current returns the vegetable under the cursor.
func (s *SubmissionSession) Current() (models.Vegetable, bool) {
	if len(s.vegetables) == 0 {
		return models.Vegetable{}, false
	}
	return s.vegetables[s.cursor], true
}

// Next moves the cursor forward. It reports false on the last vegetable.
func (s *SubmissionSession) Next() bool {
	if s.cursor >= len(s.vegetables)-1 {
		return false
	}
	s.cursor++
	return true
}

// Previous moves the cursor back. It reports false on the first vegetable.
func (s *SubmissionSession) Previous() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Progress is the 1-based position of the cursor as a percentage of the
// session length.
func (s *SubmissionSession) Progress() int {
	if len(s.vegetables) == 0 {
		return 0
	}
	return (s.cursor + 1) * 100 / len(s.vegetables)
}

// Record stores or overwrites the decision for a vegetable of the session.
func (s *SubmissionSession) Record(vegetableID uint, isLiked bool) error {
	if _, ok := s.index[vegetableID]; !ok {
		return apperrors.Validation(fmt.Sprintf("vegetable %d is not part of this feedback session", vegetableID))
	}
	s.decisions[vegetableID] = isLiked
	return nil
}

// Decision returns the recorded decision for a vegetable.
func (s *SubmissionSession) Decision(vegetableID uint) (isLiked, ok bool) {
	isLiked, ok = s.decisions[vegetableID]
	return isLiked, ok
}

// Pending lists the vegetables still without a decision, in session order.
func (s *SubmissionSession) Pending() []models.Vegetable {
	pending := make([]models.Vegetable, 0)
	for _, v := range s.vegetables {
		if _, ok := s.decisions[v.ID]; !ok {
			pending = append(pending, v)
		}
	}
	return pending
}

// Complete reports whether every vegetable has a decision.
func (s *SubmissionSession) Complete() bool {
	return len(s.vegetables) > 0 && len(s.decisions) == len(s.vegetables)
}

// Feedback returns one row per vegetable in session order. It fails with
// a validation error until the session is complete.
func (s *SubmissionSession) Feedback(userID uint, submissionID string) ([]models.Feedback, error) {
	if !s.Complete() {
		return nil, apperrors.Validation("Please provide feedback for all vegetables before submitting")
	}
	rows := make([]models.Feedback, 0, len(s.vegetables))
	for _, v := range s.vegetables {
		rows = append(rows, models.Feedback{
			UserID:       userID,
			VegetableID:  v.ID,
			IsLiked:      s.decisions[v.ID],
			SubmissionID: submissionID,
		})
	}
	return rows, nil
}
