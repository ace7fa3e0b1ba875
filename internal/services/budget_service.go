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

type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// GetBudget retrieves an owner's budget with derived fields recomputed
func (s *budgetService) GetBudget(ownerID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByOwner(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, err
		}
		slog.Error("failed to get budget",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// UpsertBudget creates or replaces an owner's budget. Category remaining
// figures are recomputed on the way in, so stale client values never stick.
func (s *budgetService) UpsertBudget(budget *models.Budget) (*models.Budget, error) {
	if budget == nil {
		return nil, errors.New("budget cannot be nil")
	}

	budget.Recalculate()
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		slog.Error("failed to upsert budget",
			"owner_id", budget.OwnerID,
			"error", err)
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	slog.Info("budget saved",
		"owner_id", budget.OwnerID,
		"total_budget", budget.TotalBudget.String(),
		"categories", len(budget.Categories))

	return s.budgetRepo.GetByOwner(budget.OwnerID)
}

// SyncSpending recomputes the per-category spent figures from the completed
// transactions of the month containing now and persists the refreshed
// envelopes. Callers with no budget configured get ErrBudgetNotFound back
// and decide for themselves whether that matters.
func (s *budgetService) SyncSpending(ownerID uuid.UUID, now time.Time) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByOwner(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	monthStart, monthEnd := monthBounds(now)
	transactions, err := s.transactionRepo.GetByDateRange(ownerID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for i := range transactions {
		t := &transactions[i]
		if !t.IsCompleted() {
			continue
		}
		spentByCategory[t.Category] = spentByCategory[t.Category].Add(t.Amount)
	}

	for i := range budget.Categories {
		c := &budget.Categories[i]
		c.Spent = spentByCategory[c.Name]
	}
	budget.Recalculate()

	// Without envelopes there is nothing for Recalculate to derive from, so
	// the cached total comes straight from the month's completed spend.
	if len(budget.Categories) == 0 {
		total := decimal.Zero
		for _, spent := range spentByCategory {
			total = total.Add(spent)
		}
		budget.Spent = total
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		return nil, fmt.Errorf("failed to persist budget sync: %w", err)
	}

	slog.Info("budget spending synced",
		"owner_id", ownerID,
		"spent", budget.Spent.String(),
		"month", monthStart.Format("2006-01"))

	return budget, nil
}
