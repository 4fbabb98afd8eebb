package services

import (
	"encoding/json"
	"time"

	"vegfeedback/internal/models"
	"vegfeedback/pkg/logger"

	"github.com/google/uuid"
)

// Routing keys of the events published on the feedback exchange.
const (
	FeedbackExchange         = "feedback"
	RoutingFeedbackCreated   = "feedback.created"
	RoutingFeedbackSubmitted = "feedback.submitted"
)

// EventPublisher publishes a message body. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// FeedbackEvent describes newly stored votes.
type FeedbackEvent struct {
	EventID      string          `json:"eventId"`
	SubmissionID string          `json:"submissionId,omitempty"`
	UserID       uint            `json:"userId"`
	MealType     models.MealType `json:"mealType,omitempty"`
	Votes        int             `json:"votes"`
	Likes        int             `json:"likes"`
	OccurredAt   time.Time       `json:"occurredAt"`
}

func newFeedbackEvent(userID uint, submissionID string, mealType models.MealType, rows []models.Feedback) FeedbackEvent {
	event := FeedbackEvent{
		EventID:      uuid.NewString(),
		SubmissionID: submissionID,
		UserID:       userID,
		MealType:     mealType,
		Votes:        len(rows),
		OccurredAt:   time.Now().UTC(),
	}
	for _, r := range rows {
		if r.IsLiked {
			event.Likes++
		}
	}
	return event
}

// publish sends event if a publisher is configured. Failures are logged;
// the votes are already stored.
func publish(publisher EventPublisher, routingKey string, event FeedbackEvent) {
	if publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal feedback event")
		return
	}
	if err := publisher.Publish(FeedbackExchange, routingKey, body); err != nil {
		logger.Warn().Err(err).Str("event_id", event.EventID).Str("routing_key", routingKey).Msg("failed to publish feedback event")
		return
	}
	logger.Debug().Str("event_id", event.EventID).Str("routing_key", routingKey).Msg("published feedback event")
}
