package models

import "time"

// Feedback is one user's like/dislike vote for one vegetable.
type Feedback struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint      `json:"userId" gorm:"index;not null"`
	VegetableID  uint      `json:"vegetableId" gorm:"index;not null"`
	IsLiked      bool      `json:"isLiked" gorm:"not null"`
	SubmissionID string    `json:"submissionId,omitempty" gorm:"type:varchar(36);index"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName keeps the table name singular like the rest of the schema.
func (Feedback) TableName() string {
	return "feedback"
}

// FeedbackInput is a single vote as sent by a client. The user is taken from the session.
type FeedbackInput struct {
	VegetableID uint  `json:"vegetableId" validate:"required,gt=0"`
	IsLiked     *bool `json:"isLiked" validate:"required"`
}

// BatchFeedbackInput carries every decision of a submission session.
type BatchFeedbackInput struct {
	MealType  MealType        `json:"mealType" validate:"omitempty,oneof=lunch dinner"`
	Responses []FeedbackInput `json:"responses" validate:"required,min=1,dive"`
}
