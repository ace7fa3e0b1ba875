package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeBudget             = errors.New("total budget must not be negative")
	ErrNegativeCategoryAllocation = errors.New("category allocation must not be negative")
)

// BudgetCategory is a single envelope within a budget. Remaining is always
// recomputed as Allocated - Spent before the budget leaves the model layer;
// a stored value is never trusted.
type BudgetCategory struct {
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Icon      string          `json:"icon,omitempty"`
}

// BudgetCategoryList stores the category envelopes as a JSONB column
type BudgetCategoryList []BudgetCategory

// Value implements driver.Valuer for BudgetCategoryList
func (l BudgetCategoryList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for BudgetCategoryList
func (l *BudgetCategoryList) Scan(value interface{}) error {
	if value == nil {
		*l = BudgetCategoryList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into BudgetCategoryList", value)
	}

	return json.Unmarshal(data, l)
}

// Budget is the single active budget for one user and period.
type Budget struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	TotalBudget decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"total_budget"`
	Spent       decimal.Decimal    `gorm:"type:decimal(15,2);not null;default:0" json:"spent"`
	Categories  BudgetCategoryList `gorm:"type:jsonb" json:"categories"`
	CreatedAt   time.Time          `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	b.Recalculate()
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	b.Recalculate()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if b.TotalBudget.IsNegative() {
		return ErrNegativeBudget
	}

	for _, c := range b.Categories {
		if c.Name == "" {
			return errors.New("category name is required")
		}
		if c.Allocated.IsNegative() {
			return ErrNegativeCategoryAllocation
		}
	}

	return nil
}

// Recalculate refreshes every derived field on the budget: per-category
// Remaining from Allocated - Spent, and the cached Spent total from the
// category envelopes when they are present.
func (b *Budget) Recalculate() {
	if len(b.Categories) == 0 {
		return
	}

	spent := decimal.Zero
	for i := range b.Categories {
		c := &b.Categories[i]
		c.Remaining = c.Allocated.Sub(c.Spent)
		spent = spent.Add(c.Spent)
	}
	b.Spent = spent
}

// Remaining returns the unspent portion of the total budget. Negative when
// overspent.
func (b *Budget) Remaining() decimal.Decimal {
	return b.TotalBudget.Sub(b.Spent)
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
