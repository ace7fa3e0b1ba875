package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// GetByOwner retrieves the single active budget for a user. Derived fields
// are recomputed on the way out so stale stored values never leak.
func (r *budgetRepository) GetByOwner(ownerID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("owner_id = ?", ownerID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	budget.Recalculate()
	return &budget, nil
}

// Upsert creates or replaces the owner's budget. One active budget per user:
// the owner_id unique index plus the conflict clause keep it that way.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	budget.Recalculate()

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_budget", "spent", "categories", "updated_at"}),
	}).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}
