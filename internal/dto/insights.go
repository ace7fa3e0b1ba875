package dto

import (
	"finance-tracker/internal/models"
)

// Insights Response DTOs

// InsightsResponse wraps the aggregation result for one user's snapshot
type InsightsResponse struct {
	*models.SpendingInsights
}

// ProjectionResponse wraps the month-end projection with its advisory
// feedback
type ProjectionResponse struct {
	*models.SpendingProjection
}
