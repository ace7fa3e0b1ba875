package handlers

import (
	"net/http"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// ListGoals retrieves all of the caller's savings goals
// @Summary List goals
// @Description Retrieve all of the caller's savings goals
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.GoalListResponse "Goal list"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalService.ListGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalListResponse{
		Goals: goals,
		Total: len(goals),
	})
}

// GetGoal retrieves a single savings goal by ID
// @Summary Get goal
// @Description Retrieve a single savings goal owned by the caller
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} dto.GoalResponse "Goal with progress"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid goal ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.GetGoal(userID, goalID)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalResponse{
		Goal:     goal,
		Progress: goal.Progress().StringFixed(2),
	})
}

// CreateGoal creates a new savings goal for the caller
// @Summary Create goal
// @Description Create a new savings goal starting at zero saved
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse "Created goal"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload or GOAL_005 - Non-positive target"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("deadline must be formatted as YYYY-MM-DD"))
	}

	// Validation guarantees the target parses
	target, err := decimal.NewFromString(req.Target)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, target, deadline)
	if err != nil {
		if err == models.ErrInvalidTarget {
			return SendError(c, errors.GoalInvalidTarget)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GoalResponse{
		Goal:     goal,
		Progress: goal.Progress().StringFixed(2),
	})
}

// Contribute applies a contribution to a savings goal
// @Summary Contribute to goal
// @Description Apply an all-or-nothing contribution to a savings goal
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.ContributeRequest true "Contribution amount"
// @Success 200 {object} dto.ContributionResponse "Contribution result"
// @Failure 400 {object} errors.ErrorResponse "GOAL_002 - Non-positive contribution"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 409 {object} errors.ErrorResponse "GOAL_004 - Goal already achieved"
// @Failure 422 {object} errors.ErrorResponse "GOAL_003 - Contribution exceeds target"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id}/contributions [post]
func (h *GoalHandler) Contribute(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.ContributeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	goal, achieved, err := h.goalService.Contribute(userID, goalID, amount)
	if err != nil {
		switch err {
		case repositories.ErrGoalNotFound:
			return SendError(c, errors.GoalNotFound)
		case models.ErrInvalidContribution:
			return SendError(c, errors.GoalInvalidContribution)
		case models.ErrExceedsTarget:
			return SendError(c, errors.GoalExceedsTarget)
		case models.ErrGoalAchieved:
			return SendError(c, errors.GoalAlreadyAchieved)
		}
		return SendSystemError(c, err)
	}

	response := dto.ContributionResponse{
		Goal:     goal,
		Achieved: achieved,
	}
	if achieved {
		response.Message = "Congratulations! You have achieved your goal."
	}

	return c.JSON(http.StatusOK, response)
}

// DeleteGoal removes a savings goal in any state
// @Summary Delete goal
// @Description Delete a savings goal owned by the caller
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid goal ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted successfully"})
}
