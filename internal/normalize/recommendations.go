package normalize

import (
	"sort"
	"time"

	"yfmcp/internal/models"
	"yfmcp/internal/provider"
)

// Recommendations maps the current-ratings table row by row, no filtering.
func Recommendations(ticker string, rows []provider.RecommendationRow) *models.RecommendationsResponse {
	points := make([]models.RecommendationPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, models.RecommendationPoint{
			Date:      timeOrNil(row.Date),
			Firm:      strOrNil(row.Firm),
			ToGrade:   strOrNil(row.ToGrade),
			FromGrade: strOrNil(row.FromGrade),
			Action:    strOrNil(row.Action),
		})
	}
	return models.NewRecommendationsResponse(ticker, models.RecommendationCurrent, points)
}

// RatingChanges filters the upgrade/downgrade history to the trailing window,
// sorts by change date descending, and keeps only each firm's most recent
// row. monthsBack is caller-supplied and deliberately unconstrained.
func RatingChanges(ticker string, rows []provider.GradeChange, monthsBack int, now time.Time) *models.RecommendationsResponse {
	cutoff := now.AddDate(0, -monthsBack, 0)

	windowed := make([]provider.GradeChange, 0, len(rows))
	for _, row := range rows {
		if !row.Date.Before(cutoff) {
			windowed = append(windowed, row)
		}
	}

	sort.SliceStable(windowed, func(i, j int) bool {
		return windowed[i].Date.After(windowed[j].Date)
	})

	seen := make(map[string]bool, len(windowed))
	points := make([]models.RecommendationPoint, 0, len(windowed))
	for _, row := range windowed {
		if seen[row.Firm] {
			continue
		}
		seen[row.Firm] = true
		points = append(points, models.RecommendationPoint{
			Date:      timeOrNil(row.Date),
			Firm:      strOrNil(row.Firm),
			ToGrade:   strOrNil(row.ToGrade),
			FromGrade: strOrNil(row.FromGrade),
			Action:    strOrNil(row.Action),
		})
	}
	return models.NewRecommendationsResponse(ticker, models.RecommendationUpgradesDowngrades, points)
}
