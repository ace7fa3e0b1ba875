package repositories

import (
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if goal == nil {
		return errors.New("goal cannot be nil")
	}
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal scoped to its owner
func (r *goalRepository) GetByID(ownerID, id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// ListByOwner retrieves all goals for a user ordered by deadline
func (r *goalRepository) ListByOwner(ownerID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("deadline ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// ApplyContribution atomically checks and applies a contribution. The goal
// row is locked for the duration of the database transaction, so the check
// against the target and the write of the new saved amount happen as one
// step even under concurrent requests for the same goal.
func (r *goalRepository) ApplyContribution(ownerID, id uuid.UUID, amount decimal.Decimal) (*models.Goal, bool, error) {
	var goal models.Goal
	var achieved bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Row-level locking serializes contributions to the same goal
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("failed to get goal for contribution: %w", err)
		}

		var err error
		achieved, err = goal.Contribute(amount)
		if err != nil {
			return err
		}

		if err := tx.Save(&goal).Error; err != nil {
			return fmt.Errorf("failed to save contribution: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &goal, achieved, nil
}

// Delete removes a goal in any state, scoped to its owner. Irreversible.
func (r *goalRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Goal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
