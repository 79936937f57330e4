package models

// RecommendationPoint is a single analyst rating or rating change.
type RecommendationPoint struct {
	Date      *string `json:"date"`
	Firm      *string `json:"firm"`
	ToGrade   *string `json:"to_grade"`
	FromGrade *string `json:"from_grade"`
	Action    *string `json:"action"`
}

// RecommendationsResponse wraps analyst recommendation data for one ticker.
type RecommendationsResponse struct {
	Ticker             string                `json:"ticker"`
	RecommendationType string                `json:"recommendation_type"`
	Recommendations    []RecommendationPoint `json:"recommendations"`
	Count              int                   `json:"count"`
}

// NewRecommendationsResponse derives Count from the point slice.
func NewRecommendationsResponse(ticker string, recommendationType RecommendationType, points []RecommendationPoint) *RecommendationsResponse {
	if points == nil {
		points = []RecommendationPoint{}
	}
	return &RecommendationsResponse{
		Ticker:             ticker,
		RecommendationType: string(recommendationType),
		Recommendations:    points,
		Count:              len(points),
	}
}
