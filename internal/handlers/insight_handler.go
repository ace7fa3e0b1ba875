package handlers

import (
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightHandler serves spending insights and month-end projections
type InsightHandler struct {
	insightsService   services.InsightsServiceInterface
	projectionService services.ProjectionServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	insightsService services.InsightsServiceInterface,
	projectionService services.ProjectionServiceInterface,
) *InsightHandler {
	return &InsightHandler{
		insightsService:   insightsService,
		projectionService: projectionService,
	}
}

// GetInsights computes spending insights over a date range.
// The range defaults to the current calendar month.
// @Summary Get spending insights
// @Description Compute category totals, daily trend, recurring payments and summary statistics over a date range
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD), defaults to first day of current month"
// @Param end_date query string false "Range end (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.InsightsResponse "Spending insights"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid or inverted date range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights [get]
func (h *InsightHandler) GetInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now := time.Now().UTC()
	defaultStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	startDate, err := parseDateParam(c, "start_date", defaultStart)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	endDate, err := parseDateParam(c, "end_date", now)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	insights, err := h.insightsService.ComputeInsights(userID, startDate, endDate)
	if err != nil {
		if err == services.ErrInvalidDateRange {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.InsightsResponse{SpendingInsights: insights})
}

// GetProjection extrapolates the current month's spend to a month-end
// estimate with advisory feedback
// @Summary Get spending projection
// @Description Project month-end spending from the pace so far and compare against the budget
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProjectionResponse "Month-end projection with feedback"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /projection [get]
func (h *InsightHandler) GetProjection(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	projection, err := h.projectionService.ComputeProjection(userID, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ProjectionResponse{SpendingProjection: projection})
}
