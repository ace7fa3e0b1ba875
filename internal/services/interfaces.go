package services

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionServiceInterface defines transaction business operations.
// Every operation is scoped to the owner carried on the transaction or
// passed explicitly; cross-user access is not a thing here.
type TransactionServiceInterface interface {
	CreateTransaction(transaction *models.Transaction) (*models.Transaction, error)
	GetTransaction(ownerID, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	UpdateTransaction(transaction *models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ownerID, id uuid.UUID) error
}

// BudgetServiceInterface defines budget business operations
type BudgetServiceInterface interface {
	GetBudget(ownerID uuid.UUID) (*models.Budget, error)
	UpsertBudget(budget *models.Budget) (*models.Budget, error)
	// SyncSpending refreshes the per-category spent figures from the
	// completed transactions of the month containing now.
	SyncSpending(ownerID uuid.UUID, now time.Time) (*models.Budget, error)
}

// GoalServiceInterface defines savings goal operations
type GoalServiceInterface interface {
	CreateGoal(ownerID uuid.UUID, name string, target decimal.Decimal, deadline time.Time) (*models.Goal, error)
	GetGoal(ownerID, id uuid.UUID) (*models.Goal, error)
	ListGoals(ownerID uuid.UUID) ([]models.Goal, error)
	// Contribute applies an all-or-nothing contribution and reports whether
	// this contribution completed the goal.
	Contribute(ownerID, goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, bool, error)
	DeleteGoal(ownerID, id uuid.UUID) error
}

// InsightsServiceInterface computes spending aggregations over a date range.
// The result is a pure function of the stored transactions: recomputing over
// an unchanged snapshot yields an identical result.
type InsightsServiceInterface interface {
	ComputeInsights(ownerID uuid.UUID, startDate, endDate time.Time) (*models.SpendingInsights, error)
}

// ProjectionServiceInterface extrapolates month-to-date spend to a
// full-month estimate and compares it against the active budget.
type ProjectionServiceInterface interface {
	ComputeProjection(ownerID uuid.UUID, now time.Time) (*models.SpendingProjection, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// SampleDataGeneratorInterface generates realistic spending histories for
// development seeding
type SampleDataGeneratorInterface interface {
	GenerateHistory(ownerID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction
	GenerateMonthlyPayments(ownerID uuid.UUID, startDate, endDate time.Time) []*models.Transaction
	GenerateDailyPurchases(ownerID uuid.UUID, startDate, endDate time.Time, count int) []*models.Transaction
	GenerateAmount(category string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
