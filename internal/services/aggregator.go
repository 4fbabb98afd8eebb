package services

import (
	"sort"

	"vegfeedback/internal/models"
)

// DashboardTopN is how many vegetables the summary lists as most liked and
// most disliked.
const DashboardTopN = 3

// SatisfactionPercentage returns likes/(likes+dislikes)*100 rounded half
// up, or 0 when there are no votes.
func SatisfactionPercentage(likes, dislikes int) int {
	total := likes + dislikes
	if total <= 0 {
		return 0
	}
	return (likes*200 + total) / (2 * total)
}

// BuildFeedbackStats joins the catalog with vote tallies. Every vegetable
// appears once, in catalog order, including those nobody voted on.
func BuildFeedbackStats(catalog []models.Vegetable, tallies []models.VoteTally) []models.FeedbackStats {
	byVegetable := make(map[uint]models.VoteTally, len(tallies))
	for _, t := range tallies {
		byVegetable[t.VegetableID] = t
	}

	stats := make([]models.FeedbackStats, 0, len(catalog))
	for _, v := range catalog {
		t := byVegetable[v.ID]
		stats = append(stats, models.FeedbackStats{
			VegetableID:   v.ID,
			VegetableName: v.Name,
			MealType:      v.MealType,
			Likes:         t.Likes,
			Dislikes:      t.Dislikes,
			Percentage:    SatisfactionPercentage(t.Likes, t.Dislikes),
		})
	}
	return stats
}

// FilterStatsByMealType keeps the rows of the given meal type. An unknown
// meal type yields an empty slice.
func FilterStatsByMealType(stats []models.FeedbackStats, mealType models.MealType) []models.FeedbackStats {
	filtered := make([]models.FeedbackStats, 0, len(stats))
	for _, s := range stats {
		if s.MealType == mealType {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// TopByPercentage returns up to n rows sorted by percentage, highest first
// when descending is set. Ties keep their input order.
func TopByPercentage(stats []models.FeedbackStats, n int, descending bool) []models.FeedbackStats {
	sorted := make([]models.FeedbackStats, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Percentage > sorted[j].Percentage
		}
		return sorted[i].Percentage < sorted[j].Percentage
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SummarizeStats computes the dashboard digest for a stats set.
func SummarizeStats(stats []models.FeedbackStats) models.StatsSummary {
	summary := models.StatsSummary{
		TopLiked:    TopByPercentage(stats, DashboardTopN, true),
		TopDisliked: TopByPercentage(stats, DashboardTopN, false),
	}
	for _, s := range stats {
		summary.TotalResponses += s.Likes + s.Dislikes
		summary.TotalLikes += s.Likes
	}
	summary.AverageSatisfaction = SatisfactionPercentage(summary.TotalLikes, summary.TotalResponses-summary.TotalLikes)
	if len(stats) > 0 {
		summary.ParticipantCount = summary.TotalResponses / len(stats)
	}
	return summary
}
