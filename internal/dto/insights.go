package dto

import "spendsight/internal/models"

// Insights Request DTOs

// InsightsRequest represents the request payload for computing spending
// insights. Transactions is untyped on purpose: the batch may hold canonical
// transactions, raw aggregator records, or a mix, and the insights service
// coerces each element.
type InsightsRequest struct {
	Transactions any    `json:"transactions"`
	Month        string `json:"month" validate:"omitempty,month_key"`
}

// Insights Response DTOs

// CategoryTotalResponse represents one ranked category entry
type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

// InsightsResponse represents the computed spending summary
type InsightsResponse struct {
	TotalThisMonth string                  `json:"totalThisMonth"`
	TopCategories  []CategoryTotalResponse `json:"topCategories"`
}

// NewInsightsResponse maps computed insights onto the wire shape
func NewInsightsResponse(insights *models.Insights) InsightsResponse {
	top := make([]CategoryTotalResponse, 0, len(insights.TopCategories))
	for _, ct := range insights.TopCategories {
		top = append(top, CategoryTotalResponse{
			Name:  ct.Name,
			Total: ct.Total.String(),
		})
	}
	return InsightsResponse{
		TotalThisMonth: insights.TotalThisMonth.String(),
		TopCategories:  top,
	}
}
