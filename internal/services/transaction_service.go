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

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetService   BudgetServiceInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetService BudgetServiceInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		budgetService:   budgetService,
		metrics:         metrics,
	}
}

// CreateTransaction validates and stores a new transaction, then refreshes
// the owner's budget spending figures
func (s *transactionService) CreateTransaction(transaction *models.Transaction) (*models.Transaction, error) {
	if transaction == nil {
		return nil, errors.New("transaction cannot be nil")
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"owner_id", transaction.OwnerID,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.created", map[string]string{"category": transaction.Category})

	slog.Info("transaction created",
		"owner_id", transaction.OwnerID,
		"transaction_id", transaction.ID,
		"category", transaction.Category,
		"amount", transaction.Amount.String())

	s.refreshBudget(transaction.OwnerID)

	return transaction, nil
}

// GetTransaction retrieves a single transaction scoped to its owner
func (s *transactionService) GetTransaction(ownerID, id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ownerID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		slog.Error("failed to get transaction",
			"owner_id", ownerID,
			"transaction_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions retrieves an owner's transactions, newest first, with
// optional filters
func (s *transactionService) ListTransactions(ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.ListByOwner(ownerID, filters)
	if err != nil {
		slog.Error("failed to list transactions",
			"owner_id", ownerID,
			"error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// UpdateTransaction applies changes to an existing transaction. ID and
// OwnerID never change; everything else may.
func (s *transactionService) UpdateTransaction(transaction *models.Transaction) (*models.Transaction, error) {
	if transaction == nil {
		return nil, errors.New("transaction cannot be nil")
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, err
		}
		slog.Error("failed to update transaction",
			"owner_id", transaction.OwnerID,
			"transaction_id", transaction.ID,
			"error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	slog.Info("transaction updated",
		"owner_id", transaction.OwnerID,
		"transaction_id", transaction.ID)

	s.refreshBudget(transaction.OwnerID)

	return s.transactionRepo.GetByID(transaction.OwnerID, transaction.ID)
}

// DeleteTransaction removes a transaction and refreshes the owner's budget
// spending figures
func (s *transactionService) DeleteTransaction(ownerID, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ownerID, id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return err
		}
		slog.Error("failed to delete transaction",
			"owner_id", ownerID,
			"transaction_id", id,
			"error", err)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	slog.Info("transaction deleted",
		"owner_id", ownerID,
		"transaction_id", id)

	s.refreshBudget(ownerID)

	return nil
}

// refreshBudget resyncs the owner's budget envelopes after a write. A
// failed sync is logged but never fails the write that triggered it; the
// budget catches up on the next sync.
func (s *transactionService) refreshBudget(ownerID uuid.UUID) {
	if _, err := s.budgetService.SyncSpending(ownerID, time.Now()); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return
		}
		slog.Warn("failed to refresh budget after transaction write",
			"owner_id", ownerID,
			"error", err)
	}
}
