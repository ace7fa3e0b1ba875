package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	GoalStatusActive   = "active"
	GoalStatusAchieved = "achieved"
)

var (
	ErrInvalidTarget       = errors.New("goal target must be positive")
	ErrInvalidContribution = errors.New("contribution amount must be positive")
	ErrExceedsTarget       = errors.New("contribution would exceed the goal target")
	ErrGoalAchieved        = errors.New("goal already achieved")
	ErrInvalidGoalStatus   = errors.New("invalid goal status")
)

// Goal is a savings goal. It starts Active with nothing saved and moves to
// Achieved exactly once, when Saved reaches Target. Achieved is terminal:
// no further contributions are accepted.
type Goal struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Target    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target"`
	Saved     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"saved"`
	Deadline  time.Time       `gorm:"not null" json:"deadline"`
	Status    string          `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for Goal
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the goal fields and the 0 <= Saved <= Target invariant
func (g *Goal) Validate() error {
	if g.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if g.Name == "" {
		return errors.New("goal name is required")
	}

	if !g.Target.IsPositive() {
		return ErrInvalidTarget
	}

	if g.Saved.IsNegative() || g.Saved.GreaterThan(g.Target) {
		return errors.New("saved amount must stay between zero and the target")
	}

	switch g.Status {
	case GoalStatusActive, GoalStatusAchieved:
	default:
		return ErrInvalidGoalStatus
	}

	return nil
}

// Contribute applies a validated contribution. A contribution that would
// overshoot the target is rejected outright, never clamped; the caller must
// resubmit a smaller amount. Returns true when this contribution completed
// the goal.
func (g *Goal) Contribute(amount decimal.Decimal) (bool, error) {
	if g.Status == GoalStatusAchieved {
		return false, ErrGoalAchieved
	}

	if !amount.IsPositive() {
		return false, ErrInvalidContribution
	}

	if g.Saved.Add(amount).GreaterThan(g.Target) {
		return false, ErrExceedsTarget
	}

	g.Saved = g.Saved.Add(amount)

	if g.Saved.Equal(g.Target) {
		g.Status = GoalStatusAchieved
		return true, nil
	}

	return false, nil
}

// IsAchieved returns true if the goal has reached its target
func (g *Goal) IsAchieved() bool {
	return g.Status == GoalStatusAchieved
}

// Progress returns the saved fraction of the target in percent
func (g *Goal) Progress() decimal.Decimal {
	if g.Target.IsZero() {
		return decimal.Zero
	}
	return g.Saved.Div(g.Target).Mul(decimal.NewFromInt(100))
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}
