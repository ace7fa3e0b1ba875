package dto

import (
	"finance-tracker/internal/models"
)

// Budget Request DTOs

// BudgetCategoryRequest represents one category envelope in a budget upsert
type BudgetCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	Allocated string `json:"allocated" validate:"required,tx_amount"`
	Spent     string `json:"spent" validate:"omitempty,tx_amount"`
	Icon      string `json:"icon" validate:"omitempty,max=50"`
}

// UpsertBudgetRequest represents the request payload for creating or
// replacing the caller's budget
type UpsertBudgetRequest struct {
	TotalBudget string                  `json:"total_budget" validate:"required,tx_amount"`
	Categories  []BudgetCategoryRequest `json:"categories" validate:"omitempty,dive"`
}

// Budget Response DTOs

// BudgetResponse represents the budget in API responses. Remaining figures
// are always server-computed.
type BudgetResponse struct {
	*models.Budget
	Remaining string `json:"remaining"`
}
