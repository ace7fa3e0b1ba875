package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InsightHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	echo           *echo.Echo
	mockInsights   *service_mocks.MockInsightsServiceInterface
	mockProjection *service_mocks.MockProjectionServiceInterface
	handler        *InsightHandler
	userID         uuid.UUID
}

func TestInsightHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightHandlerTestSuite))
}

func (s *InsightHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockInsights = service_mocks.NewMockInsightsServiceInterface(s.ctrl)
	s.mockProjection = service_mocks.NewMockProjectionServiceInterface(s.ctrl)
	s.handler = NewInsightHandler(s.mockInsights, s.mockProjection)
	s.userID = uuid.New()
}

func (s *InsightHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *InsightHandlerTestSuite) TestGetInsights_ExplicitRange() {
	c, rec := s.newContext("/api/v1/insights?start_date=2025-04-01&end_date=2025-04-30")

	insights := &models.SpendingInsights{
		OwnerID: s.userID,
		CategoryTotals: []models.CategoryTotal{
			{Category: models.CategoryFood, Value: decimal.NewFromInt(120)},
		},
		HighestSpendingCategory: models.CategoryFood,
		LowestSpendingCategory:  models.CategoryFood,
		DailyAverageSpending:    decimal.NewFromInt(40),
		RecurringKeys:           []models.RecurringKey{},
		TransactionCount:        3,
	}

	s.mockInsights.EXPECT().
		ComputeInsights(
			s.userID,
			time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		).
		Return(insights, nil)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"transaction_count":3`)
	s.Contains(rec.Body.String(), `"highest_spending_category":"Food"`)
}

func (s *InsightHandlerTestSuite) TestGetInsights_DefaultsToCurrentMonth() {
	c, rec := s.newContext("/api/v1/insights")

	now := time.Now().UTC()
	expectedStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	s.mockInsights.EXPECT().
		ComputeInsights(s.userID, expectedStart, gomock.Any()).
		Return(&models.SpendingInsights{OwnerID: s.userID}, nil)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *InsightHandlerTestSuite) TestGetInsights_MalformedDate() {
	c, rec := s.newContext("/api/v1/insights?start_date=April%201st")

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *InsightHandlerTestSuite) TestGetInsights_InvertedRange() {
	c, rec := s.newContext("/api/v1/insights?start_date=2025-04-30&end_date=2025-04-01")

	s.mockInsights.EXPECT().
		ComputeInsights(s.userID, gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidDateRange)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *InsightHandlerTestSuite) TestGetInsights_MissingUser() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.GetInsights(c)

	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *InsightHandlerTestSuite) TestGetProjection_Success() {
	c, rec := s.newContext("/api/v1/projection")

	total := decimal.NewFromInt(1500)
	delta := decimal.NewFromInt(150)
	projection := &models.SpendingProjection{
		OwnerID:           s.userID,
		MonthToDateSpend:  decimal.NewFromInt(450),
		DaysElapsed:       10,
		DaysInMonth:       30,
		PredictedSpending: decimal.NewFromInt(1350),
		TotalBudget:       &total,
		BudgetDelta:       &delta,
		Status:            models.ProjectionStatusWithinBudget,
		Feedback:          []string{"You have spending headroom this month."},
	}

	s.mockProjection.EXPECT().
		ComputeProjection(s.userID, gomock.Any()).
		Return(projection, nil)

	err := s.handler.GetProjection(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"within-budget"`)
	s.Contains(rec.Body.String(), `"predicted_spending":"1350"`)
}

func (s *InsightHandlerTestSuite) TestGetProjection_NoBudget() {
	c, rec := s.newContext("/api/v1/projection")

	projection := &models.SpendingProjection{
		OwnerID:          s.userID,
		MonthToDateSpend: decimal.NewFromInt(450),
		DaysElapsed:      10,
		DaysInMonth:      30,
		Status:           models.ProjectionStatusNoBudget,
		Feedback:         []string{},
	}

	s.mockProjection.EXPECT().
		ComputeProjection(s.userID, gomock.Any()).
		Return(projection, nil)

	err := s.handler.GetProjection(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"no-budget"`)
	s.NotContains(rec.Body.String(), "total_budget")
}
