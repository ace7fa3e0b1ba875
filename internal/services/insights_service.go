package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

type insightsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewInsightsService creates a new insights service
func NewInsightsService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) InsightsServiceInterface {
	return &insightsService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ComputeInsights aggregates one owner's transactions over the date range.
// The aggregation is recomputed from the stored snapshot on every call;
// there is no cache to invalidate, so a read is never stale.
func (s *insightsService) ComputeInsights(ownerID uuid.UUID, startDate, endDate time.Time) (*models.SpendingInsights, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner ID is required")
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	started := time.Now()

	transactions, err := s.transactionRepo.GetByDateRange(ownerID, startDate, endDate)
	if err != nil {
		slog.Error("failed to fetch transactions for insights",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	insights := buildSpendingInsights(ownerID, transactions)

	s.metrics.IncrementCounter("insights.computed", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("insights.computation", time.Since(started))

	slog.Info("spending insights computed",
		"owner_id", ownerID,
		"transaction_count", insights.TransactionCount,
		"recurring_keys", len(insights.RecurringKeys),
		"total_spend", insights.TotalSpend().String())

	return insights, nil
}
