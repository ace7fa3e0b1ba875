package repositories

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines transaction persistence operations.
// Every read is scoped to a single owner; the engine never aggregates
// across users.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(ownerID, id uuid.UUID) (*models.Transaction, error)
	ListByOwner(ownerID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, error)
	GetByDateRange(ownerID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(ownerID, id uuid.UUID) error
}

// BudgetRepositoryInterface defines budget persistence operations
type BudgetRepositoryInterface interface {
	GetByOwner(ownerID uuid.UUID) (*models.Budget, error)
	Upsert(budget *models.Budget) error
}

// GoalRepositoryInterface defines goal persistence operations.
// ApplyContribution is the single write path for savings: it checks and
// applies the contribution inside one database transaction so that
// concurrent contributions to the same goal cannot break the
// 0 <= saved <= target invariant.
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(ownerID, id uuid.UUID) (*models.Goal, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Goal, error)
	ApplyContribution(ownerID, id uuid.UUID, amount decimal.Decimal) (*models.Goal, bool, error)
	Delete(ownerID, id uuid.UUID) error
}

// UserRepositoryInterface defines user persistence operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
