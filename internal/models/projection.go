package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Projection statuses. NoBudget covers the graceful-degradation path where
// spending can be extrapolated but there is no budget to compare it against.
const (
	ProjectionStatusWithinBudget     = "within-budget"
	ProjectionStatusOverBudget       = "over-budget"
	ProjectionStatusInsufficientData = "insufficient-data"
	ProjectionStatusNoBudget         = "no-budget"
)

// SpendingProjection is the linear extrapolation of month-to-date spend to a
// full-month estimate, compared against the active budget when one exists.
// PredictedSpending and BudgetDelta carry full precision; rounding is a
// presentation concern.
type SpendingProjection struct {
	OwnerID           uuid.UUID        `json:"owner_id"`
	MonthToDateSpend  decimal.Decimal  `json:"month_to_date_spend"`
	DaysElapsed       int              `json:"days_elapsed"`
	DaysInMonth       int              `json:"days_in_month"`
	PredictedSpending decimal.Decimal  `json:"predicted_spending"`
	TotalBudget       *decimal.Decimal `json:"total_budget,omitempty"`
	BudgetDelta       *decimal.Decimal `json:"budget_delta,omitempty"`
	Status            string           `json:"status"`
	Feedback          []string         `json:"feedback"`
}

// IsOverBudget returns true when the projection exceeds the active budget
func (p *SpendingProjection) IsOverBudget() bool {
	return p.Status == ProjectionStatusOverBudget
}
