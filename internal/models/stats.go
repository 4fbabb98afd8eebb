package models

// VoteTally holds raw like/dislike counts for one vegetable.
type VoteTally struct {
	VegetableID uint `json:"vegetableId"`
	Likes       int  `json:"likes"`
	Dislikes    int  `json:"dislikes"`
}

// FeedbackStats is the derived satisfaction record for one vegetable.
type FeedbackStats struct {
	VegetableID   uint     `json:"vegetableId"`
	VegetableName string   `json:"vegetableName"`
	MealType      MealType `json:"mealType"`
	Likes         int      `json:"likes"`
	Dislikes      int      `json:"dislikes"`
	Percentage    int      `json:"percentage"`
}

// StatsSummary is the dashboard digest computed from a stats set.
type StatsSummary struct {
	TopLiked            []FeedbackStats `json:"topLiked"`
	TopDisliked         []FeedbackStats `json:"topDisliked"`
	TotalResponses      int             `json:"totalResponses"`
	TotalLikes          int             `json:"totalLikes"`
	AverageSatisfaction int             `json:"averageSatisfaction"`
	ParticipantCount    int             `json:"participantCount"`
}
