package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type projectionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewProjectionService creates a new projection service
func NewProjectionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
) ProjectionServiceInterface {
	return &projectionService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
	}
}

// ComputeProjection extrapolates the month-to-date spend of the month
// containing now to a full-month estimate and classifies it against the
// active budget. A missing budget degrades the result to a plain
// extrapolation; it is not an error.
func (s *projectionService) ComputeProjection(ownerID uuid.UUID, now time.Time) (*models.SpendingProjection, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner ID is required")
	}

	monthStart, monthEnd := monthBounds(now)

	transactions, err := s.transactionRepo.GetByDateRange(ownerID, monthStart, monthEnd)
	if err != nil {
		slog.Error("failed to fetch transactions for projection",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	budget, err := s.budgetRepo.GetByOwner(ownerID)
	if err != nil {
		if !errors.Is(err, repositories.ErrBudgetNotFound) {
			slog.Error("failed to fetch budget for projection",
				"owner_id", ownerID,
				"error", err)
			return nil, fmt.Errorf("failed to fetch budget: %w", err)
		}
		budget = nil
	}

	projection := projectMonthlySpend(ownerID, transactions, budget, now.Day(), daysIn(now))

	insights := buildSpendingInsights(ownerID, transactions)
	projection.Feedback = buildFeedback(budget, insights, projection)

	s.metrics.IncrementCounter("projection.computed", map[string]string{"status": projection.Status})

	slog.Info("spending projection computed",
		"owner_id", ownerID,
		"status", projection.Status,
		"days_elapsed", projection.DaysElapsed,
		"predicted_spending", projection.PredictedSpending.String())

	return projection, nil
}

// projectMonthlySpend is the pure projection core:
// (monthToDateSpend / daysElapsed) * daysInMonth, full decimal precision.
// With zero elapsed days there is nothing to extrapolate from and the
// projection reports insufficient data instead of dividing by zero.
func projectMonthlySpend(ownerID uuid.UUID, transactions []models.Transaction, budget *models.Budget, daysElapsed, daysInMonth int) *models.SpendingProjection {
	monthToDate := decimal.Zero
	for i := range transactions {
		monthToDate = monthToDate.Add(transactions[i].Amount)
	}

	projection := &models.SpendingProjection{
		OwnerID:          ownerID,
		MonthToDateSpend: monthToDate,
		DaysElapsed:      daysElapsed,
		DaysInMonth:      daysInMonth,
	}

	if daysElapsed <= 0 {
		projection.Status = models.ProjectionStatusInsufficientData
		return projection
	}

	projection.PredictedSpending = monthToDate.
		Div(decimal.NewFromInt(int64(daysElapsed))).
		Mul(decimal.NewFromInt(int64(daysInMonth)))

	if budget == nil {
		projection.Status = models.ProjectionStatusNoBudget
		return projection
	}

	total := budget.TotalBudget
	delta := total.Sub(projection.PredictedSpending)
	projection.TotalBudget = &total
	projection.BudgetDelta = &delta

	if projection.PredictedSpending.GreaterThan(total) {
		projection.Status = models.ProjectionStatusOverBudget
	} else {
		projection.Status = models.ProjectionStatusWithinBudget
	}

	return projection
}

// monthBounds returns the first and last instant of the month containing t
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// daysIn returns the number of calendar days in the month containing t
func daysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
