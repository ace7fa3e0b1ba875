package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// GetBudget retrieves the caller's budget
// @Summary Get budget
// @Description Retrieve the caller's budget with per-category envelopes
// @Tags Budget
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BudgetResponse "Budget with computed remaining figures"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - No budget data found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budget, err := h.budgetService.GetBudget(userID)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotConfigured)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{
		Budget:    budget,
		Remaining: budget.Remaining().String(),
	})
}

// UpsertBudget creates or replaces the caller's budget
// @Summary Upsert budget
// @Description Create or replace the caller's budget and category envelopes
// @Tags Budget
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse "Stored budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload or BUDGET_002 - Negative total"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budget [put]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	budget, err := budgetFromRequest(userID, req)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	stored, err := h.budgetService.UpsertBudget(budget)
	if err != nil {
		switch err {
		case models.ErrNegativeBudget:
			return SendError(c, errors.BudgetInvalidTotal)
		case models.ErrNegativeCategoryAllocation:
			return SendError(c, errors.BudgetInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{
		Budget:    stored,
		Remaining: stored.Remaining().String(),
	})
}

// budgetFromRequest builds a budget model from a validated upsert request.
// Amount parsing cannot fail after validation, but the decimal conversion
// still reports errors rather than silently zeroing.
func budgetFromRequest(ownerID uuid.UUID, req dto.UpsertBudgetRequest) (*models.Budget, error) {
	total, err := decimal.NewFromString(req.TotalBudget)
	if err != nil {
		return nil, err
	}

	categories := make(models.BudgetCategoryList, 0, len(req.Categories))
	for _, cr := range req.Categories {
		allocated, err := decimal.NewFromString(cr.Allocated)
		if err != nil {
			return nil, err
		}

		spent := decimal.Zero
		if cr.Spent != "" {
			spent, err = decimal.NewFromString(cr.Spent)
			if err != nil {
				return nil, err
			}
		}

		categories = append(categories, models.BudgetCategory{
			Name:      cr.Name,
			Allocated: allocated,
			Spent:     spent,
			Icon:      cr.Icon,
		})
	}

	return &models.Budget{
		OwnerID:     ownerID,
		TotalBudget: total,
		Categories:  categories,
	}, nil
}
